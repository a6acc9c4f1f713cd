package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tracker "github.com/etnz/dollartracker"
)

func when(n int) time.Time {
	return time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestJSONLMissingFileIsEmpty(t *testing.T) {
	s := NewJSONL(filepath.Join(t.TempDir(), "ledger.jsonl"))

	l, err := s.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 0 {
		t.Errorf("missing file produced %d records, want 0", l.Len())
	}
}

func TestJSONLCreateAndReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sub", "ledger.jsonl")
	s := NewJSONL(path)

	tr := tracker.NewBuy(when(0), 100, 110, 11000, "first")
	d := tracker.NewDeposit(when(0), 10000, "seed")
	e := tracker.NewExpense(when(1), 500, "fees")

	if err := s.CreateTrade(ctx, tr); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateDeposit(ctx, d); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateExpense(ctx, e); err != nil {
		t.Fatal(err)
	}

	l, err := s.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 3 {
		t.Fatalf("reloaded %d records, want 3", l.Len())
	}
	if got := l.Trades()[0]; got != tr {
		t.Errorf("trade roundtrip mismatch: got %+v, want %+v", got, tr)
	}
}

func TestJSONLDeleteRewrites(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.jsonl")
	s := NewJSONL(path)

	t1 := tracker.NewBuy(when(0), 100, 110, 11000, "")
	t2 := tracker.NewSell(when(1), 50, 115, 5750, "")
	if err := s.CreateTrade(ctx, t1); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateTrade(ctx, t2); err != nil {
		t.Fatal(err)
	}

	if err := s.DeleteTrade(ctx, t1.ID); err != nil {
		t.Fatal(err)
	}

	l, err := s.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	trades := l.Trades()
	if len(trades) != 1 || trades[0].ID != t2.ID {
		t.Errorf("after delete the ledger holds %+v, want only %s", trades, t2.ID)
	}

	// no temp file left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("ledger directory holds %d files, want 1", len(entries))
	}
}

func TestJSONLDeleteUnknownID(t *testing.T) {
	s := NewJSONL(filepath.Join(t.TempDir(), "ledger.jsonl"))

	err := s.DeleteDeposit(context.Background(), "nope")
	if !errors.Is(err, tracker.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
