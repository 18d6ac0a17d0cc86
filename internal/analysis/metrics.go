package analysis

import (
	"math"

	"github.com/montanaflynn/stats"

	"solar-quote/internal/model"
)

// NPV discounts flows at rate, with flows[0] undiscounted.
func NPV(rate float64, flows []float64) float64 {
	total := 0.0
	for t, cf := range flows {
		total += cf / math.Pow(1+rate, float64(t))
	}
	return total
}

// Payback returns the fractional year in which the cumulative balance, seeded
// at -equity, first crosses from negative to non-negative. The crossing is
// interpolated linearly within that year. ok is false when there is no such
// crossing, including a balance that starts at zero and never dips below it.
func Payback(equity float64, ledger []model.YearRecord) (year float64, ok bool) {
	cum := -equity
	for _, row := range ledger {
		prev := cum
		cum += row.NetCashFlow
		if prev < 0 && cum >= 0 {
			// prev < 0 and cum >= 0 imply NetCashFlow > 0
			return float64(row.Year-1) + (-prev)/row.NetCashFlow, true
		}
	}
	return 0, false
}

// TotalProfit is the sum of yearly net flows minus the equity invested.
func TotalProfit(equity float64, ledger []model.YearRecord) float64 {
	return sumNet(ledger) - equity
}

func sumNet(ledger []model.YearRecord) float64 {
	if len(ledger) == 0 {
		return 0
	}
	data := make(stats.Float64Data, len(ledger))
	for i, row := range ledger {
		data[i] = row.NetCashFlow
	}
	sum, err := stats.Sum(data)
	if err != nil {
		return 0
	}
	return sum
}
