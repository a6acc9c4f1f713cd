package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	tracker "github.com/etnz/dollartracker"
	"github.com/etnz/dollartracker/renderer"
)

type profitCmd struct{}

func (*profitCmd) Name() string     { return "profit" }
func (*profitCmd) Synopsis() string { return "display profit per sale" }
func (*profitCmd) Usage() string {
	return `dtk profit

  Lists the sales with their weighted-average profit per unit and the total
  realized profit.
`
}

func (*profitCmd) SetFlags(_ *flag.FlagSet) {}

func (c *profitCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, cfg, err := openBook(ctx)
	if err != nil {
		return fail(err)
	}
	defer book.Close()

	var sells []tracker.Trade
	for _, t := range book.Ledger().Trades() {
		if t.Kind == tracker.KindSell {
			sells = append(sells, t)
		}
	}

	printMarkdown(renderer.TransactionsMarkdown(sells, book.ProfitPerUnit(), cfg.Currency.Foreign, cfg.Currency.Local))
	fmt.Printf("Total realized profit: %s\n", tracker.M(book.Stats().TotalRealizedProfitLocal, cfg.Currency.Local).SignedString())
	return subcommands.ExitSuccess
}
