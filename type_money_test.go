package tracker

import (
	"strings"
	"testing"
)

func TestMoneyString(t *testing.T) {
	m := M(11000.555, "USD")
	got := m.String()
	if !strings.Contains(got, "11,000.56") {
		t.Errorf("M(11000.555, USD) = %q, want grouped and rounded to cents", got)
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(0, "USD").SignedString(); got != "-" {
		t.Errorf("zero = %q, want -", got)
	}
	if got := M(250, "USD").SignedString(); !strings.HasPrefix(got, "+") {
		t.Errorf("positive = %q, want a + prefix", got)
	}
	if got := M(-250, "USD").SignedString(); !strings.Contains(got, "-") {
		t.Errorf("negative = %q, want a - sign", got)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := M(100.10, "BDT")
	b := M(0.20, "BDT")

	if got := a.Add(b).AsFloat(); !almostEqual(got, 100.30) {
		t.Errorf("add = %v, want 100.30", got)
	}
	if got := a.Sub(a); !got.IsZero() {
		t.Errorf("a-a = %v, want zero", got)
	}
	if !M(-1, "BDT").IsNegative() {
		t.Error("IsNegative failed")
	}
}
