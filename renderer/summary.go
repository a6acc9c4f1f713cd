package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	tracker "github.com/etnz/dollartracker"
)

// SummaryMarkdown renders the portfolio statistics and net cash balance as
// a markdown report.
func SummaryMarkdown(stats tracker.PortfolioStats, netBalance float64, foreign, localCur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Summary")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Current Holdings (" + foreign + ")", amount(stats.CurrentHoldingsForeign)},
			{"Average Buy Cost", local(stats.AverageBuyCostLocal, localCur)},
			{"Inventory Cost", local(stats.TotalInventoryCostLocal, localCur)},
			{"Total Sold", local(stats.TotalSoldLocal, localCur)},
			{"Realized Profit", signedLocal(stats.TotalRealizedProfitLocal, localCur)},
			{"Net Cash Balance", local(netBalance, localCur)},
		},
	})

	if stats.Oversold {
		doc.PlainText(md.Bold("Warning:") + " some sales exceeded the recorded inventory; their unmatched volume was costed at zero, so realized profit is overstated.")
	}

	return doc.String()
}

// BalanceMarkdown renders the net cash balance alone.
func BalanceMarkdown(netBalance float64, localCur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Net Cash Balance")
	doc.PlainText(local(netBalance, localCur))
	if netBalance < 0 {
		doc.PlainText(md.Bold("Warning:") + " the balance is negative, spending exceeds deposits and sale proceeds.")
	}

	return doc.String()
}
