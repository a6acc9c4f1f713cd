package tracker

import (
	"fmt"
	"slices"
	"sort"
)

// Ledger holds an in-memory snapshot of the three record sets: trades,
// deposits and expenses. It owns no persistence; a Store loads and saves
// ledgers, the engine derives statistics from them.
type Ledger struct {
	trades   []Trade
	deposits []Deposit
	expenses []Expense
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Append adds records to the ledger after validating them. It returns an
// error naming the first invalid record, leaving the ledger with every
// record appended before it.
func (l *Ledger) Append(records ...Record) error {
	for _, rec := range records {
		switch v := rec.(type) {
		case Trade:
			if err := v.Validate(); err != nil {
				return err
			}
			l.trades = append(l.trades, v)
		case Deposit:
			if err := v.Validate(); err != nil {
				return err
			}
			l.deposits = append(l.deposits, v)
		case Expense:
			if err := v.Validate(); err != nil {
				return err
			}
			l.expenses = append(l.expenses, v)
		default:
			return fmt.Errorf("unsupported record type %T", rec)
		}
	}
	return nil
}

// RemoveTrade deletes the trade with the given id and returns it.
func (l *Ledger) RemoveTrade(id string) (Trade, bool) {
	for i, t := range l.trades {
		if t.ID == id {
			l.trades = slices.Delete(l.trades, i, i+1)
			return t, true
		}
	}
	return Trade{}, false
}

// RemoveDeposit deletes the deposit with the given id and returns it.
func (l *Ledger) RemoveDeposit(id string) (Deposit, bool) {
	for i, d := range l.deposits {
		if d.ID == id {
			l.deposits = slices.Delete(l.deposits, i, i+1)
			return d, true
		}
	}
	return Deposit{}, false
}

// RemoveExpense deletes the expense with the given id and returns it.
func (l *Ledger) RemoveExpense(id string) (Expense, bool) {
	for i, e := range l.expenses {
		if e.ID == id {
			l.expenses = slices.Delete(l.expenses, i, i+1)
			return e, true
		}
	}
	return Expense{}, false
}

// Trades returns a copy of the trade snapshot in insertion order.
func (l *Ledger) Trades() []Trade { return slices.Clone(l.trades) }

// Deposits returns a copy of the deposit snapshot in insertion order.
func (l *Ledger) Deposits() []Deposit { return slices.Clone(l.deposits) }

// Expenses returns a copy of the expense snapshot in insertion order.
func (l *Ledger) Expenses() []Expense { return slices.Clone(l.expenses) }

// Len returns the total number of records in the ledger.
func (l *Ledger) Len() int { return len(l.trades) + len(l.deposits) + len(l.expenses) }

// stableSort orders each record set chronologically, keeping the original
// relative order of same-instant records.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.trades, func(i, j int) bool {
		return l.trades[i].Date.Before(l.trades[j].Date)
	})
	sort.SliceStable(l.deposits, func(i, j int) bool {
		return l.deposits[i].Date.Before(l.deposits[j].Date)
	})
	sort.SliceStable(l.expenses, func(i, j int) bool {
		return l.expenses[i].Date.Before(l.expenses[j].Date)
	})
}

// CashFlows merges deposits and expenses into a single chronological view.
// The deposit source and the expense reason both surface as Description.
func (l *Ledger) CashFlows() []CashFlow {
	flows := make([]CashFlow, 0, len(l.deposits)+len(l.expenses))
	for _, d := range l.deposits {
		flows = append(flows, CashFlow{Kind: KindDeposit, ID: d.ID, AmountLocal: d.AmountLocal, Description: d.Source, Date: d.Date})
	}
	for _, e := range l.expenses {
		flows = append(flows, CashFlow{Kind: KindExpense, ID: e.ID, AmountLocal: e.AmountLocal, Description: e.Reason, Date: e.Date})
	}
	sort.SliceStable(flows, func(i, j int) bool {
		return flows[i].Date.Before(flows[j].Date)
	})
	return flows
}

// Stats derives the portfolio statistics from the current trade snapshot.
func (l *Ledger) Stats() PortfolioStats { return Replay(l.trades) }

// ProfitPerUnit derives the per-sale profit annotations from the current
// trade snapshot.
func (l *Ledger) ProfitPerUnit() map[string]float64 { return ProfitPerUnit(l.trades) }

// NetBalance derives the net local-currency balance from the current
// snapshot of all three record sets.
func (l *Ledger) NetBalance() float64 { return NetBalance(l.deposits, l.expenses, l.trades) }
