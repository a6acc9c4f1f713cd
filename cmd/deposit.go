package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	tracker "github.com/etnz/dollartracker"
)

type depositCmd struct {
	amount float64
	source string
	date   string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "record a cash deposit" }
func (*depositCmd) Usage() string {
	return `dtk deposit -a <amount> [-from <source>] [-d <date>]

  Records local currency added to the trading float, for example seed capital
  or a top-up from savings.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "a", 0, "Amount deposited, in local currency.")
	f.StringVar(&c.source, "from", "", "Where the money came from.")
	f.StringVar(&c.date, "d", "", "Date of the deposit. Defaults to now.")
}

func (c *depositCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	when, err := parseWhen(c.date)
	if err != nil {
		return fail(err)
	}

	book, cfg, err := openBook(ctx)
	if err != nil {
		return fail(err)
	}
	defer book.Close()

	d := tracker.NewDeposit(when, c.amount, c.source)
	if err := book.AddDeposit(ctx, d); err != nil {
		return fail(err)
	}

	fmt.Printf("Recorded deposit %s: %s\n", d.ID, tracker.M(d.AmountLocal, cfg.Currency.Local))
	return subcommands.ExitSuccess
}
