package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	tracker "github.com/etnz/dollartracker"
	"github.com/etnz/dollartracker/renderer"
)

type txCmd struct {
	cash bool
	head int
	tail int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the recorded transactions" }
func (*txCmd) Usage() string {
	return `dtk tx [-cash] [-head <n>] [-tail <n>]

  Lists trades oldest first, with the weighted-average profit per unit on
  each sale. With -cash, lists deposits and expenses instead.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.cash, "cash", false, "List deposits and expenses instead of trades.")
	f.IntVar(&c.head, "head", 0, "Show only the first N records.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N records.")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, cfg, err := openBook(ctx)
	if err != nil {
		return fail(err)
	}
	defer book.Close()

	if c.cash {
		flows := clip(book.Ledger().CashFlows(), c.head, c.tail)
		printMarkdown(renderer.CashFlowsMarkdown(flows, cfg.Currency.Local))
		return subcommands.ExitSuccess
	}

	trades := clip(book.Ledger().Trades(), c.head, c.tail)
	printMarkdown(renderer.TransactionsMarkdown(trades, book.ProfitPerUnit(), cfg.Currency.Foreign, cfg.Currency.Local))
	return subcommands.ExitSuccess
}

// clip applies the -head / -tail limits; -head wins when both are set.
func clip[T tracker.Trade | tracker.CashFlow](s []T, head, tail int) []T {
	if head > 0 && len(s) > head {
		return s[:head]
	}
	if tail > 0 && len(s) > tail {
		return s[len(s)-tail:]
	}
	return s
}
