package tracker

import (
	"fmt"
	"time"
)

// RecordKind is a typed string identifying the kind of a ledger record.
type RecordKind string

// Record kinds used as discriminators in the ledger.
const (
	KindBuy     RecordKind = "buy"
	KindSell    RecordKind = "sell"
	KindDeposit RecordKind = "deposit"
	KindExpense RecordKind = "expense"
)

// Record is the common interface of the three record kinds stored in a ledger.
type Record interface {
	What() RecordKind // What returns the kind of the record (e.g. "buy", "deposit").
	When() time.Time  // When returns the time at which the record occurred.
	RecordID() string // RecordID returns the record's unique identifier.
}

// Trade represents a single buy or sell of foreign currency against the
// local currency. Trades are immutable once created.
//
// TotalLocal is supplied by the caller and is expected to be close to
// AmountForeign*RateLocal; a caller-side mismatch is kept as-is, the value
// is never recomputed here.
type Trade struct {
	ID            string
	Kind          RecordKind // KindBuy or KindSell
	AmountForeign float64    // units of foreign currency
	RateLocal     float64    // local-currency price per foreign unit
	TotalLocal    float64
	Date          time.Time
	Note          string
}

// NewBuy creates a buy trade with a fresh id.
func NewBuy(on time.Time, amountForeign, rateLocal, totalLocal float64, note string) Trade {
	return Trade{ID: NewID(), Kind: KindBuy, AmountForeign: amountForeign, RateLocal: rateLocal, TotalLocal: totalLocal, Date: on, Note: note}
}

// NewSell creates a sell trade with a fresh id.
func NewSell(on time.Time, amountForeign, rateLocal, totalLocal float64, note string) Trade {
	return Trade{ID: NewID(), Kind: KindSell, AmountForeign: amountForeign, RateLocal: rateLocal, TotalLocal: totalLocal, Date: on, Note: note}
}

func (t Trade) What() RecordKind { return t.Kind }
func (t Trade) When() time.Time  { return t.Date }
func (t Trade) RecordID() string { return t.ID }

// Validate checks the trade fields. The engine assumes pre-validated input,
// so every write path goes through here first.
func (t Trade) Validate() error {
	if t.Kind != KindBuy && t.Kind != KindSell {
		return fmt.Errorf("trade %s: kind must be %q or %q, got %q", t.ID, KindBuy, KindSell, t.Kind)
	}
	if t.AmountForeign <= 0 {
		return fmt.Errorf("trade %s: amount must be positive, got %v", t.ID, t.AmountForeign)
	}
	if t.RateLocal <= 0 {
		return fmt.Errorf("trade %s: rate must be positive, got %v", t.ID, t.RateLocal)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("trade %s: date is missing", t.ID)
	}
	return nil
}

// Deposit represents cash added to the local-currency balance.
type Deposit struct {
	ID          string
	AmountLocal float64
	Source      string
	Date        time.Time
}

// NewDeposit creates a deposit with a fresh id.
func NewDeposit(on time.Time, amountLocal float64, source string) Deposit {
	return Deposit{ID: NewID(), AmountLocal: amountLocal, Source: source, Date: on}
}

func (d Deposit) What() RecordKind { return KindDeposit }
func (d Deposit) When() time.Time  { return d.Date }
func (d Deposit) RecordID() string { return d.ID }

// Validate checks the deposit fields.
func (d Deposit) Validate() error {
	if d.AmountLocal <= 0 {
		return fmt.Errorf("deposit %s: amount must be positive, got %v", d.ID, d.AmountLocal)
	}
	if d.Date.IsZero() {
		return fmt.Errorf("deposit %s: date is missing", d.ID)
	}
	return nil
}

// Expense represents cash spent out of the local-currency balance.
type Expense struct {
	ID          string
	AmountLocal float64
	Reason      string
	Date        time.Time
}

// NewExpense creates an expense with a fresh id.
func NewExpense(on time.Time, amountLocal float64, reason string) Expense {
	return Expense{ID: NewID(), AmountLocal: amountLocal, Reason: reason, Date: on}
}

func (e Expense) What() RecordKind { return KindExpense }
func (e Expense) When() time.Time  { return e.Date }
func (e Expense) RecordID() string { return e.ID }

// Validate checks the expense fields.
func (e Expense) Validate() error {
	if e.AmountLocal <= 0 {
		return fmt.Errorf("expense %s: amount must be positive, got %v", e.ID, e.AmountLocal)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("expense %s: date is missing", e.ID)
	}
	return nil
}

// CashFlow is the merged display view over deposits and expenses. Kind is
// the discriminant; Description carries the deposit source or the expense
// reason depending on the kind.
type CashFlow struct {
	Kind        RecordKind // KindDeposit or KindExpense
	ID          string
	AmountLocal float64
	Description string
	Date        time.Time
}

// Signed returns the amount with deposits positive and expenses negative.
func (f CashFlow) Signed() float64 {
	if f.Kind == KindExpense {
		return -f.AmountLocal
	}
	return f.AmountLocal
}
