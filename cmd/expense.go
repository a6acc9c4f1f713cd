package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	tracker "github.com/etnz/dollartracker"
)

type expenseCmd struct {
	amount float64
	reason string
	date   string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record a cash expense" }
func (*expenseCmd) Usage() string {
	return `dtk expense -a <amount> [-for <reason>] [-d <date>]

  Records local currency spent outside of trading, for example fees or a
  personal withdrawal from the float.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "a", 0, "Amount spent, in local currency.")
	f.StringVar(&c.reason, "for", "", "What the money was spent on.")
	f.StringVar(&c.date, "d", "", "Date of the expense. Defaults to now.")
}

func (c *expenseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	when, err := parseWhen(c.date)
	if err != nil {
		return fail(err)
	}

	book, cfg, err := openBook(ctx)
	if err != nil {
		return fail(err)
	}
	defer book.Close()

	e := tracker.NewExpense(when, c.amount, c.reason)
	if err := book.AddExpense(ctx, e); err != nil {
		return fail(err)
	}

	fmt.Printf("Recorded expense %s: %s\n", e.ID, tracker.M(e.AmountLocal, cfg.Currency.Local))
	return subcommands.ExitSuccess
}
