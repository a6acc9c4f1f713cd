package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/etnz/dollartracker/agent"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "generate an AI analysis of the trading history" }
func (*assistCmd) Usage() string {
	return `dtk assist

  Sends the portfolio statistics and recent trades to Gemini and prints its
  written analysis. Requires GEMINI_API_KEY in the environment.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, cfg, err := openBook(ctx)
	if err != nil {
		return fail(err)
	}
	defer book.Close()

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail(err)
	}

	analyst := agent.NewAnalyst(cfg.Gemini.Model)
	insight, err := analyst.Analyze(ctx, client, book.Stats(), book.Ledger().Trades())
	if err != nil {
		return fail(err)
	}

	printMarkdown(insight)
	return subcommands.ExitSuccess
}
