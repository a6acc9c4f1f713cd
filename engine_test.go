package tracker

import (
	"math"
	"reflect"
	"testing"
	"time"
)

// day returns a timestamp n days after a fixed origin, for building trade
// histories with a known chronology.
func day(n int) time.Time {
	return time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func buy(n int, amount, rate float64) Trade {
	return NewBuy(day(n), amount, rate, amount*rate, "")
}

func sell(n int, amount, rate float64) Trade {
	return NewSell(day(n), amount, rate, amount*rate, "")
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestReplaySimpleFIFO(t *testing.T) {
	// One buy, one partial sell against it.
	trades := []Trade{
		buy(0, 100, 110),
		sell(1, 50, 115),
	}

	stats := Replay(trades)

	if !almostEqual(stats.CurrentHoldingsForeign, 50) {
		t.Errorf("holdings = %v, want 50", stats.CurrentHoldingsForeign)
	}
	if !almostEqual(stats.AverageBuyCostLocal, 110) {
		t.Errorf("average buy cost = %v, want 110", stats.AverageBuyCostLocal)
	}
	if !almostEqual(stats.TotalInventoryCostLocal, 5500) {
		t.Errorf("inventory cost = %v, want 5500", stats.TotalInventoryCostLocal)
	}
	if !almostEqual(stats.TotalRealizedProfitLocal, 250) {
		t.Errorf("realized profit = %v, want 250", stats.TotalRealizedProfitLocal)
	}
	if !almostEqual(stats.TotalSoldLocal, 5750) {
		t.Errorf("total sold = %v, want 5750", stats.TotalSoldLocal)
	}
	if stats.Oversold {
		t.Error("unexpected oversold flag")
	}
}

func TestReplayMultiLotFIFO(t *testing.T) {
	// The sell crosses a lot boundary: all of lot 1 plus 30 of lot 2.
	trades := []Trade{
		buy(0, 50, 100),
		buy(1, 50, 120),
		sell(2, 80, 130),
	}

	stats := Replay(trades)

	if !almostEqual(stats.CurrentHoldingsForeign, 20) {
		t.Errorf("holdings = %v, want 20", stats.CurrentHoldingsForeign)
	}
	if !almostEqual(stats.AverageBuyCostLocal, 120) {
		t.Errorf("average buy cost = %v, want 120 (surviving lot rate)", stats.AverageBuyCostLocal)
	}
	if !almostEqual(stats.TotalRealizedProfitLocal, 1800) {
		t.Errorf("realized profit = %v, want 1800", stats.TotalRealizedProfitLocal)
	}
	if !almostEqual(stats.TotalSoldLocal, 10400) {
		t.Errorf("total sold = %v, want 10400", stats.TotalSoldLocal)
	}
}

func TestReplayAllBuyInvariant(t *testing.T) {
	trades := []Trade{
		buy(0, 100, 110),
		buy(1, 37.5, 121.3),
		buy(2, 12.25, 99.9),
	}

	stats := Replay(trades)

	if stats.TotalRealizedProfitLocal != 0 {
		t.Errorf("realized profit = %v, want 0 with no sells", stats.TotalRealizedProfitLocal)
	}
	want := stats.TotalInventoryCostLocal / stats.CurrentHoldingsForeign
	if !almostEqual(stats.AverageBuyCostLocal, want) {
		t.Errorf("average buy cost = %v, want inventory/holdings = %v", stats.AverageBuyCostLocal, want)
	}
	if len(stats.DailyProfits) != 0 {
		t.Errorf("daily profits = %v, want empty with no sells", stats.DailyProfits)
	}
}

func TestReplayExactLotConsumption(t *testing.T) {
	// Selling exactly the oldest lot removes it and leaves the next lot
	// untouched in both amount and rate.
	trades := []Trade{
		buy(0, 50, 100),
		buy(1, 70, 120),
		sell(2, 50, 130),
	}

	stats := Replay(trades)

	if !almostEqual(stats.CurrentHoldingsForeign, 70) {
		t.Errorf("holdings = %v, want 70", stats.CurrentHoldingsForeign)
	}
	if !almostEqual(stats.AverageBuyCostLocal, 120) {
		t.Errorf("average buy cost = %v, want 120", stats.AverageBuyCostLocal)
	}
	if !almostEqual(stats.TotalRealizedProfitLocal, 50*30) {
		t.Errorf("realized profit = %v, want 1500", stats.TotalRealizedProfitLocal)
	}
}

func TestReplayDeterminism(t *testing.T) {
	trades := []Trade{
		buy(0, 50, 100),
		buy(0, 50, 120), // same instant, snapshot order must hold
		sell(1, 80, 130),
		sell(2, 10, 90),
	}

	first := Replay(trades)
	second := Replay(trades)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two replays of the same snapshot differ:\n%+v\n%+v", first, second)
	}
}

func TestReplayInputOrderIrrelevant(t *testing.T) {
	sorted := []Trade{
		buy(0, 50, 100),
		buy(1, 50, 120),
		sell(2, 80, 130),
	}
	shuffled := []Trade{sorted[2], sorted[0], sorted[1]}

	if !reflect.DeepEqual(Replay(sorted), Replay(shuffled)) {
		t.Error("replay depends on snapshot order instead of dates")
	}
}

func TestReplayDailySumConsistency(t *testing.T) {
	trades := []Trade{
		buy(0, 100, 110),
		sell(1, 30, 115),
		sell(1, 20, 108),
		sell(3, 50, 120),
	}

	stats := Replay(trades)

	if len(stats.DailyProfits) != 2 {
		t.Fatalf("daily buckets = %v, want 2 days", stats.DailyProfits)
	}
	var sum float64
	for _, p := range stats.DailyProfits {
		sum += p
	}
	if !almostEqual(sum, stats.TotalRealizedProfitLocal) {
		t.Errorf("daily sum = %v, total = %v", sum, stats.TotalRealizedProfitLocal)
	}
	if _, ok := stats.DailyProfits[DayKey(day(1))]; !ok {
		t.Errorf("missing bucket for %s in %v", DayKey(day(1)), stats.DailyProfits)
	}
}

func TestReplayEpsilonClamp(t *testing.T) {
	// A residue below 0.01 is floating-point noise, not a position.
	trades := []Trade{
		buy(0, 100.005, 110),
		sell(1, 100, 115),
	}

	stats := Replay(trades)

	if stats.CurrentHoldingsForeign != 0 {
		t.Errorf("holdings = %v, want exactly 0 after clamp", stats.CurrentHoldingsForeign)
	}
	if stats.TotalInventoryCostLocal != 0 {
		t.Errorf("inventory cost = %v, want exactly 0 after clamp", stats.TotalInventoryCostLocal)
	}
	if stats.AverageBuyCostLocal != 0 {
		t.Errorf("average buy cost = %v, want 0 with no holdings", stats.AverageBuyCostLocal)
	}
}

func TestReplayOversell(t *testing.T) {
	// The unmatched 50 units have no recorded cost: profit counts their
	// full proceeds, and the condition is flagged.
	trades := []Trade{
		buy(0, 50, 100),
		sell(1, 100, 110),
	}

	stats := Replay(trades)

	if !stats.Oversold {
		t.Error("oversell not flagged")
	}
	if !almostEqual(stats.TotalRealizedProfitLocal, 100*110-50*100) {
		t.Errorf("realized profit = %v, want 6000", stats.TotalRealizedProfitLocal)
	}
	if stats.CurrentHoldingsForeign != 0 {
		t.Errorf("holdings = %v, want 0", stats.CurrentHoldingsForeign)
	}
}

func TestReplayEmpty(t *testing.T) {
	stats := Replay(nil)

	if stats.CurrentHoldingsForeign != 0 || stats.TotalRealizedProfitLocal != 0 || stats.TotalSoldLocal != 0 {
		t.Errorf("empty snapshot produced non-zero stats: %+v", stats)
	}
	if stats.Oversold {
		t.Error("empty snapshot flagged oversold")
	}
}

func TestReplayDoesNotMutateInput(t *testing.T) {
	trades := []Trade{
		sell(2, 80, 130),
		buy(0, 50, 100),
	}
	before := make([]Trade, len(trades))
	copy(before, trades)

	Replay(trades)

	if !reflect.DeepEqual(trades, before) {
		t.Error("replay reordered or mutated the caller's snapshot")
	}
}
