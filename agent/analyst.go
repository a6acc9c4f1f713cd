// Package agent generates natural-language insights about the trade history
// using Gemini. The engine output is passed through as opaque context; the
// agent never feeds anything back into the accounting.
package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	tracker "github.com/etnz/dollartracker"
)

// DefaultModel is used when the configuration names no model.
const DefaultModel = "gemini-2.5-flash"

// recentTrades limits how much history is sent: the last few rows are enough
// for a short commentary and keep the prompt small.
const recentTrades = 10

// Analyst turns portfolio statistics into a short written analysis.
type Analyst struct {
	Model string
}

// NewAnalyst creates an analyst for the given model, falling back to
// DefaultModel when empty.
func NewAnalyst(model string) *Analyst {
	if model == "" {
		model = DefaultModel
	}
	return &Analyst{Model: model}
}

const promptTemplate = `You are a financial analyst helper for a small currency trader in Bangladesh.
The user speaks Bengali and English.
Analyze the following trading data (Dollar Buy/Sell).

Data: %s

Provide a concise summary in **Bengali** (Bangla) covering:
1. Their current performance (Profit/Loss).
2. A comment on their average buy rate vs current selling rates.
3. Any warning if they are holding too much stock or selling at a loss.

Keep the tone professional yet encouraging. Keep it under 150 words.`

// Analyze sends the stats and the most recent trades to the model and
// returns its prose. An empty history short-circuits without a model call.
func (a *Analyst) Analyze(ctx context.Context, client *genai.Client, stats tracker.PortfolioStats, trades []tracker.Trade) (string, error) {
	if len(trades) == 0 {
		return "No transactions to analyze yet. Add some buy/sell records!", nil
	}

	recent := trades
	if len(recent) > recentTrades {
		recent = recent[len(recent)-recentTrades:]
	}
	summary, err := json.Marshal(struct {
		Stats        tracker.PortfolioStats `json:"stats"`
		RecentTrades []tracker.Trade        `json:"recentTransactions"`
	}{stats, recent})
	if err != nil {
		return "", fmt.Errorf("could not serialize trading data: %w", err)
	}

	prompt := fmt.Sprintf(promptTemplate, summary)
	resp, err := client.Models.GenerateContent(ctx, a.Model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("analysis failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from model %s", a.Model)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
