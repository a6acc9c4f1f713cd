package tracker

import (
	"math"
	"slices"
	"sort"
	"time"
)

// holdingsEpsilon is the threshold below which a holdings total is treated
// as floating-point residue from repeated subtraction rather than a real
// position, and clamped to zero together with its inventory cost.
const holdingsEpsilon = 0.01

// PortfolioStats is the derived view of a trade history. It is recomputed
// from scratch on every call and never persisted.
type PortfolioStats struct {
	CurrentHoldingsForeign   float64
	AverageBuyCostLocal      float64
	TotalRealizedProfitLocal float64
	TotalInventoryCostLocal  float64
	TotalSoldLocal           float64

	// DailyProfits maps calendar-day keys (see DayKey) to the realized
	// profit of that day's sales. Days without sales have no entry.
	DailyProfits map[string]float64

	// Oversold reports that at least one sale exceeded the inventory
	// available at that moment. The unmatched volume was costed at zero,
	// so TotalRealizedProfitLocal is inflated relative to a consistent
	// trading history.
	Oversold bool
}

// lot is a FIFO-tracked batch of foreign currency acquired by one buy, at
// one rate, partially or fully consumable by later sells. Lots are internal
// to a single replay.
type lot struct {
	amountForeign float64 // remaining
	rateLocal     float64
	date          time.Time
}

// sortedByDate returns a chronologically sorted copy of trades. The sort is
// stable: trades on the same instant keep their snapshot order.
func sortedByDate(trades []Trade) []Trade {
	sorted := slices.Clone(trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// Replay computes portfolio statistics by replaying the trade snapshot
// chronologically with FIFO lot consumption.
//
// Daily profits are bucketed in the same pass, from the same per-sale profit
// figures that are summed into TotalRealizedProfitLocal, so the two always
// reconcile.
//
// Replay is a pure function: it never mutates its input and raises no
// errors. An empty snapshot yields all-zero stats.
func Replay(trades []Trade) PortfolioStats {
	stats := PortfolioStats{DailyProfits: make(map[string]float64)}

	var queue []lot
	for _, t := range sortedByDate(trades) {
		switch t.Kind {
		case KindBuy:
			queue = append(queue, lot{amountForeign: t.AmountForeign, rateLocal: t.RateLocal, date: t.Date})

		case KindSell:
			remaining := t.AmountForeign
			var costBasis float64
			for remaining > 0 && len(queue) > 0 {
				head := &queue[0]
				if head.amountForeign <= remaining {
					// consume the oldest lot entirely
					costBasis += head.amountForeign * head.rateLocal
					remaining -= head.amountForeign
					queue = queue[1:]
				} else {
					// partial consumption, the lot survives
					costBasis += remaining * head.rateLocal
					head.amountForeign -= remaining
					remaining = 0
				}
			}
			if remaining > 0 {
				// Sale against an empty queue: the unmatched volume
				// contributes zero cost basis.
				stats.Oversold = true
			}

			profit := t.TotalLocal - costBasis
			stats.TotalRealizedProfitLocal += profit
			stats.TotalSoldLocal += t.TotalLocal
			stats.DailyProfits[DayKey(t.Date)] += profit
		}
	}

	for _, l := range queue {
		stats.CurrentHoldingsForeign += l.amountForeign
		stats.TotalInventoryCostLocal += l.amountForeign * l.rateLocal
	}
	if math.Abs(stats.CurrentHoldingsForeign) < holdingsEpsilon {
		stats.CurrentHoldingsForeign = 0
		stats.TotalInventoryCostLocal = 0
	}
	if stats.CurrentHoldingsForeign > 0 {
		stats.AverageBuyCostLocal = stats.TotalInventoryCostLocal / stats.CurrentHoldingsForeign
	}
	return stats
}
