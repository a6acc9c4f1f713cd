package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/dollartracker/renderer"
)

type dailyCmd struct{}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display realized profit per day" }
func (*dailyCmd) Usage() string {
	return `dtk daily

  Displays the realized profit bucketed by calendar day, oldest first. Days
  without a sale have no row.
`
}

func (*dailyCmd) SetFlags(_ *flag.FlagSet) {}

func (c *dailyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, cfg, err := openBook(ctx)
	if err != nil {
		return fail(err)
	}
	defer book.Close()

	printMarkdown(renderer.DailyMarkdown(book.Stats(), cfg.Currency.Local))
	return subcommands.ExitSuccess
}
