package renderer

import (
	"bytes"
	"sort"

	md "github.com/nao1215/markdown"

	tracker "github.com/etnz/dollartracker"
)

// DailyMarkdown renders the per-day realized profit buckets, oldest first.
// Days without sales have no row.
func DailyMarkdown(stats tracker.PortfolioStats, localCur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Daily Realized Profit")

	if len(stats.DailyProfits) == 0 {
		doc.PlainText("No sales recorded yet.")
		return doc.String()
	}

	days := make([]string, 0, len(stats.DailyProfits))
	for day := range stats.DailyProfits {
		days = append(days, day)
	}
	sort.Strings(days) // day keys are ISO dates, lexical order is chronological

	rows := make([][]string, 0, len(days)+1)
	for _, day := range days {
		rows = append(rows, []string{day, signedLocal(stats.DailyProfits[day], localCur)})
	}
	rows = append(rows, []string{md.Bold("Total"), md.Bold(signedLocal(stats.TotalRealizedProfitLocal, localCur))})

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Day", "Profit"},
		Rows:      rows,
	})

	return doc.String()
}
