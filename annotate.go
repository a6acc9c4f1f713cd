package tracker

import "math"

// ProfitPerUnit replays the trade snapshot with a running weighted-average
// cost and returns, for each sell, the profit per foreign-currency unit at
// that moment (sale rate minus average cost). The result keys are trade ids;
// sells that happen with no accumulated holdings are omitted, a ratio
// against zero inventory is meaningless.
//
// This is a deliberately different costing convention from Replay's FIFO:
// the per-row figures it produces will generally not sum to
// TotalRealizedProfitLocal whenever lots with different rates are partially
// consumed. The two computations are kept separate on purpose; do not
// reconcile them.
func ProfitPerUnit(trades []Trade) map[string]float64 {
	perUnit := make(map[string]float64)

	var holdings, totalCost float64
	for _, t := range sortedByDate(trades) {
		switch t.Kind {
		case KindBuy:
			holdings += t.AmountForeign
			totalCost += t.TotalLocal

		case KindSell:
			if holdings > 0 {
				avgCost := totalCost / holdings
				perUnit[t.ID] = t.RateLocal - avgCost
				totalCost -= t.AmountForeign * avgCost
			}
			holdings -= t.AmountForeign
			// Clamp per step: residue near zero must not flip the sign
			// of the next iteration's average.
			if math.Abs(holdings) < holdingsEpsilon {
				holdings = 0
				totalCost = 0
			}
		}
	}
	return perUnit
}
