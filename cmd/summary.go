package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/dollartracker/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio summary" }
func (*summaryCmd) Usage() string {
	return `dtk summary

  Displays the current holdings, average buy cost, inventory cost, realized
  profit and net cash balance.
`
}

func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, cfg, err := openBook(ctx)
	if err != nil {
		return fail(err)
	}
	defer book.Close()

	printMarkdown(renderer.SummaryMarkdown(book.Stats(), book.NetBalance(), cfg.Currency.Foreign, cfg.Currency.Local))
	return subcommands.ExitSuccess
}
