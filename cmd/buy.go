package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	tracker "github.com/etnz/dollartracker"
)

type buyCmd struct {
	amount float64
	rate   float64
	total  float64
	date   string
	note   string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a dollar purchase" }
func (*buyCmd) Usage() string {
	return `dtk buy -a <amount> -r <rate> [-t <total>] [-d <date>] [-note <text>]

  Records a purchase of foreign currency at the given rate. The total paid in
  local currency defaults to amount*rate; pass -t to record the actual cash
  moved when it differs (fees, rounding).
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "a", 0, "Amount of foreign currency bought.")
	f.Float64Var(&c.rate, "r", 0, "Rate paid, in local currency per unit.")
	f.Float64Var(&c.total, "t", 0, "Total paid in local currency. Defaults to amount*rate.")
	f.StringVar(&c.date, "d", "", "Date of the purchase. Defaults to now.")
	f.StringVar(&c.note, "note", "", "Free-form note attached to the record.")
}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	t := tracker.NewBuy(when, c.amount, c.rate, total, c.note)
	if err := book.AddTrade(ctx, t); err != nil {
		return fail(err)
	}

	fmt.Printf("Recorded buy %s: %.2f %s at %s\n", t.ID, t.AmountForeign, cfg.Currency.Foreign, tracker.M(t.RateLocal, cfg.Currency.Local))
	return subcommands.ExitSuccess
}
