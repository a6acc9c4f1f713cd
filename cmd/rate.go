package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	tracker "github.com/etnz/dollartracker"
)

type rateCmd struct{}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "fetch the latest market exchange rate" }
func (*rateCmd) Usage() string {
	return `dtk rate

  Fetches the latest market rate for the configured currency pair. The rate
  is informational only; recorded trades always carry their own rate.
`
}

func (*rateCmd) SetFlags(_ *flag.FlagSet) {}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}

	rate, err := tracker.LatestRate(cfg.Currency.Foreign, cfg.Currency.Local)
	if err != nil {
		return fail(err)
	}

	fmt.Printf("1 %s = %s\n", cfg.Currency.Foreign, tracker.M(rate, cfg.Currency.Local))
	return subcommands.ExitSuccess
}
