package tracker

import "testing"

func TestNetBalanceReconciliation(t *testing.T) {
	deposits := []Deposit{NewDeposit(day(0), 10000, "seed capital")}
	expenses := []Expense{NewExpense(day(3), 2000, "shop rent")}
	trades := []Trade{
		NewBuy(day(1), 100, 110, 11000, ""),
		NewSell(day(2), 50, 115, 5750, ""),
	}

	got := NetBalance(deposits, expenses, trades)

	if !almostEqual(got, 2750) {
		t.Errorf("net balance = %v, want (10000+5750)-(11000+2000) = 2750", got)
	}
}

func TestNetBalanceNegativeSurfaces(t *testing.T) {
	// Overspending is a real condition, not noise: no clamping.
	trades := []Trade{NewBuy(day(0), 10, 100, 1000, "")}

	if got := NetBalance(nil, nil, trades); got != -1000 {
		t.Errorf("net balance = %v, want -1000", got)
	}
}

func TestNetBalanceEmpty(t *testing.T) {
	if got := NetBalance(nil, nil, nil); got != 0 {
		t.Errorf("net balance = %v, want 0", got)
	}
}

func TestNetBalanceOrderIrrelevant(t *testing.T) {
	trades := []Trade{
		NewSell(day(2), 50, 115, 5750, ""),
		NewBuy(day(1), 100, 110, 11000, ""),
	}
	deposits := []Deposit{NewDeposit(day(5), 500, "late top-up")}

	if got := NetBalance(deposits, nil, trades); !almostEqual(got, 500+5750-11000) {
		t.Errorf("net balance = %v, want -4750", got)
	}
}
