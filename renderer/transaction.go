package renderer

import (
	"bytes"
	"strings"

	md "github.com/nao1215/markdown"

	tracker "github.com/etnz/dollartracker"
)

// TransactionsMarkdown renders the trade history as a table, newest last.
// perUnit carries the weighted-average profit-per-unit annotations keyed by
// trade id; sells without an annotation show "-".
func TransactionsMarkdown(trades []tracker.Trade, perUnit map[string]float64, foreign, localCur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Trade History")

	if len(trades) == 0 {
		doc.PlainText("No transactions yet. Start trading!")
		return doc.String()
	}

	rows := make([][]string, 0, len(trades))
	for _, t := range trades {
		profit := "-"
		if t.Kind == tracker.KindSell {
			if p, ok := perUnit[t.ID]; ok {
				profit = signedLocal(p, localCur)
			}
		}
		rows = append(rows, []string{
			strings.ToUpper(string(t.Kind)),
			when(t.Date),
			amount(t.AmountForeign),
			local(t.RateLocal, localCur),
			local(t.TotalLocal, localCur),
			profit,
			t.ID,
		})
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignLeft,
		},
		Header: []string{"Type", "Date", "Amount (" + foreign + ")", "Rate", "Total", "Profit/Unit", "Id"},
		Rows:   rows,
	})

	return doc.String()
}

// CashFlowsMarkdown renders the merged deposit/expense view, oldest first.
func CashFlowsMarkdown(flows []tracker.CashFlow, localCur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cash Flows")

	if len(flows) == 0 {
		doc.PlainText("No deposits or expenses yet.")
		return doc.String()
	}

	rows := make([][]string, 0, len(flows))
	for _, f := range flows {
		rows = append(rows, []string{
			strings.ToUpper(string(f.Kind)),
			when(f.Date),
			f.Description,
			signedLocal(f.Signed(), localCur),
			f.ID,
		})
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Kind", "Date", "Description", "Amount", "Id"},
		Rows:      rows,
	})

	return doc.String()
}
