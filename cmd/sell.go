package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	tracker "github.com/etnz/dollartracker"
)

type sellCmd struct {
	amount float64
	rate   float64
	total  float64
	date   string
	note   string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a dollar sale" }
func (*sellCmd) Usage() string {
	return `dtk sell -a <amount> -r <rate> [-t <total>] [-d <date>] [-note <text>]

  Records a sale of foreign currency at the given rate. The total received in
  local currency defaults to amount*rate.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "a", 0, "Amount of foreign currency sold.")
	f.Float64Var(&c.rate, "r", 0, "Rate received, in local currency per unit.")
	f.Float64Var(&c.total, "t", 0, "Total received in local currency. Defaults to amount*rate.")
	f.StringVar(&c.date, "d", "", "Date of the sale. Defaults to now.")
	f.StringVar(&c.note, "note", "", "Free-form note attached to the record.")
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	when, err := parseWhen(c.date)
	if err != nil {
		return fail(err)
	}
	total := c.total
	if total == 0 {
		total = c.amount * c.rate
	}

	book, cfg, err := openBook(ctx)
	if err != nil {
		return fail(err)
	}
	defer book.Close()

	t := tracker.NewSell(when, c.amount, c.rate, total, c.note)
	if err := book.AddTrade(ctx, t); err != nil {
		return fail(err)
	}

	if book.Stats().Oversold {
		fmt.Println("Warning: this sale exceeds the recorded inventory; the unmatched volume is costed at zero.")
	}
	fmt.Printf("Recorded sell %s: %.2f %s at %s\n", t.ID, t.AmountForeign, cfg.Currency.Foreign, tracker.M(t.RateLocal, cfg.Currency.Local))
	return subcommands.ExitSuccess
}
