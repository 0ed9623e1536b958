package forecast

import (
	"math"
	"testing"
)

func TestDailyDemandStatsUniformSales(t *testing.T) {
	t.Parallel()

	daily := map[string]int{}
	for _, day := range []string{
		"2026-08-01", "2026-08-02", "2026-08-03", "2026-08-04", "2026-08-05",
	} {
		daily[day] = 6
	}

	mean, std := DailyDemandStats(daily, 5)
	if mean != 6 {
		t.Fatalf("mean = %v, want 6", mean)
	}
	if std != 0 {
		t.Fatalf("std = %v, want 0", std)
	}
}

func TestDailyDemandStatsCountsZeroDays(t *testing.T) {
	t.Parallel()

	// 10 units over a 10-day window with sales on only 2 days.
	daily := map[string]int{
		"2026-08-01": 4,
		"2026-08-06": 6,
	}

	mean, std := DailyDemandStats(daily, 10)
	if mean != 1 {
		t.Fatalf("mean = %v, want 1", mean)
	}

	// Variance = (9 + 25 + 8·1) / 10 = 4.2.
	want := math.Sqrt(4.2)
	if math.Abs(std-want) > 1e-9 {
		t.Fatalf("std = %v, want %v", std, want)
	}
}

func TestDailyDemandStatsEmptyWindow(t *testing.T) {
	t.Parallel()

	mean, std := DailyDemandStats(map[string]int{}, 0)
	if mean != 0 || std != 0 {
		t.Fatalf("got mean=%v std=%v, want zeros", mean, std)
	}
}

func TestSafetyStockRoundsUp(t *testing.T) {
	t.Parallel()

	// 1.65 · 2 · √7 ≈ 8.73 → 9.
	if got := SafetyStock(2, 7); got != 9 {
		t.Fatalf("SafetyStock(2, 7) = %d, want 9", got)
	}

	if got := SafetyStock(0, 7); got != 0 {
		t.Fatalf("SafetyStock(0, 7) = %d, want 0", got)
	}
}

func TestReorderPoint(t *testing.T) {
	t.Parallel()

	// 1.5 units/day · 7 days = 10.5 → 11, plus safety stock 9.
	if got := ReorderPoint(1.5, 7, 9); got != 20 {
		t.Fatalf("ReorderPoint(1.5, 7, 9) = %d, want 20", got)
	}
}
