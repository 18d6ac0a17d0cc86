package analysis

import (
	"math"

	"solar-quote/internal/catalog"
)

const (
	irrMaxIterations = 100
	irrTolerance     = 1e-6
	// Below this slope a Newton step is not trustworthy.
	irrMinDerivative = 1e-10
)

// IRRResult is the outcome of SolveIRR. Rate is only meaningful when
// Converged is true.
type IRRResult struct {
	Rate       float64
	Converged  bool
	Iterations int
}

// SolveIRR finds the rate r that zeroes sum(flows[t] / (1+r)^t) using
// Newton-Raphson from catalog.IRRGuess. flows[0] is the initial outlay.
//
// The result is not converged when the series has fewer than two flows, the
// derivative goes flat, the iteration cap is reached, or the root is not a
// finite rate above -100%.
func SolveIRR(flows []float64) IRRResult {
	if len(flows) < 2 {
		return IRRResult{}
	}

	rate := catalog.IRRGuess
	for i := 1; i <= irrMaxIterations; i++ {
		npv, dnpv := npvAndDerivative(rate, flows)
		if math.Abs(dnpv) < irrMinDerivative {
			return IRRResult{Iterations: i}
		}
		next := rate - npv/dnpv
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return IRRResult{Iterations: i}
		}
		if math.Abs(next-rate) < irrTolerance {
			if next <= -1 {
				return IRRResult{Iterations: i}
			}
			return IRRResult{Rate: next, Converged: true, Iterations: i}
		}
		rate = next
	}
	return IRRResult{Iterations: irrMaxIterations}
}

func npvAndDerivative(rate float64, flows []float64) (float64, float64) {
	npv, dnpv := 0.0, 0.0
	for t, cf := range flows {
		ft := float64(t)
		npv += cf / math.Pow(1+rate, ft)
		if t > 0 {
			dnpv -= ft * cf / math.Pow(1+rate, ft+1)
		}
	}
	return npv, dnpv
}
