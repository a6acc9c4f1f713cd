package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/dollartracker/renderer"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the net cash balance" }
func (*balanceCmd) Usage() string {
	return `dtk balance

  Displays the net cash balance in local currency: deposits plus sale
  proceeds, minus purchases and expenses.
`
}

func (*balanceCmd) SetFlags(_ *flag.FlagSet) {}

func (c *balanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, cfg, err := openBook(ctx)
	if err != nil {
		return fail(err)
	}
	defer book.Close()

	printMarkdown(renderer.BalanceMarkdown(book.NetBalance(), cfg.Currency.Local))
	return subcommands.ExitSuccess
}
