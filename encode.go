package tracker

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// The ledger's flat-file format is JSONL: one record per line, discriminated
// by a "kind" field. Field order in each line follows the line structs below,
// which keeps the output canonical.

// tradeLine is the wire shape of a buy or sell record.
type tradeLine struct {
	Kind   RecordKind `json:"kind"`
	ID     string     `json:"id"`
	Amount float64    `json:"amount"` // foreign-currency units
	Rate   float64    `json:"rate"`   // local per foreign unit
	Total  float64    `json:"total"`  // local currency
	Date   time.Time  `json:"date"`
	Note   string     `json:"note,omitempty"`
}

// depositLine is the wire shape of a deposit record.
type depositLine struct {
	Kind   RecordKind `json:"kind"`
	ID     string     `json:"id"`
	Amount float64    `json:"amount"` // local currency
	Source string     `json:"source,omitempty"`
	Date   time.Time  `json:"date"`
}

// expenseLine is the wire shape of an expense record.
type expenseLine struct {
	Kind   RecordKind `json:"kind"`
	ID     string     `json:"id"`
	Amount float64    `json:"amount"` // local currency
	Reason string     `json:"reason,omitempty"`
	Date   time.Time  `json:"date"`
}

// EncodeRecord marshals a single record and writes it to w followed by a
// newline, in JSONL format.
func EncodeRecord(w io.Writer, rec Record) error {
	var line any
	switch v := rec.(type) {
	case Trade:
		line = tradeLine{Kind: v.Kind, ID: v.ID, Amount: v.AmountForeign, Rate: v.RateLocal, Total: v.TotalLocal, Date: v.Date, Note: v.Note}
	case Deposit:
		line = depositLine{Kind: KindDeposit, ID: v.ID, Amount: v.AmountLocal, Source: v.Source, Date: v.Date}
	case Expense:
		line = expenseLine{Kind: KindExpense, ID: v.ID, Amount: v.AmountLocal, Reason: v.Reason, Date: v.Date}
	default:
		return fmt.Errorf("unsupported record type %T", rec)
	}
	data, err := json.Marshal(line)
	if err != nil {
		return fmt.Errorf("failed to marshal %s record: %w", rec.What(), err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// EncodeLedger reorders records by date and persists them to w in JSONL
// format. The sort is stable, so same-day records keep their relative order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	l.stableSort()
	for _, t := range l.trades {
		if err := EncodeRecord(w, t); err != nil {
			return err
		}
	}
	for _, d := range l.deposits {
		if err := EncodeRecord(w, d); err != nil {
			return err
		}
	}
	for _, e := range l.expenses {
		if err := EncodeRecord(w, e); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a JSONL stream, decodes each line into the record kind
// named by its discriminator, and returns a chronologically sorted ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // skip empty lines
		}

		var identifier struct {
			Kind RecordKind `json:"kind"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(lineBytes), err)
		}

		switch identifier.Kind {
		case KindBuy, KindSell:
			var temp tradeLine
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			ledger.trades = append(ledger.trades, Trade{
				ID: temp.ID, Kind: temp.Kind,
				AmountForeign: temp.Amount, RateLocal: temp.Rate, TotalLocal: temp.Total,
				Date: temp.Date, Note: temp.Note,
			})
		case KindDeposit:
			var temp depositLine
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			ledger.deposits = append(ledger.deposits, Deposit{ID: temp.ID, AmountLocal: temp.Amount, Source: temp.Source, Date: temp.Date})
		case KindExpense:
			var temp expenseLine
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			ledger.expenses = append(ledger.expenses, Expense{ID: temp.ID, AmountLocal: temp.Amount, Reason: temp.Reason, Date: temp.Date})
		default:
			return nil, fmt.Errorf("unknown record kind: %q", identifier.Kind)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	ledger.stableSort()
	return ledger, nil
}
