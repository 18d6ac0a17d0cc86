package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-quote/internal/model"
)

func TestSolveIRR(t *testing.T) {
	t.Run("single sign change converges to a root", func(t *testing.T) {
		for _, flows := range [][]float64{
			{-1000, 300, 300, 300, 300, 300},
			{-626015, 66201, 66134, 66067, 66000, 65934, 65868, 65803, 65738, 65673, 65608},
			{-100, 110},
			{-5000, 100, 100, 100, 100, 6000},
		} {
			res := SolveIRR(flows)
			require.True(t, res.Converged, "flows %v", flows)
			require.Greater(t, res.Rate, -1.0)
			assert.InDelta(t, 0, NPV(res.Rate, flows), 1e-3, "flows %v", flows)
		}
	})

	t.Run("known rate", func(t *testing.T) {
		res := SolveIRR([]float64{-100, 110})
		require.True(t, res.Converged)
		assert.InDelta(t, 0.10, res.Rate, 1e-9)

		res = SolveIRR([]float64{-1000, 300, 300, 300, 300, 300})
		require.True(t, res.Converged)
		assert.InDelta(t, 0.152382, res.Rate, 1e-5)
	})

	t.Run("negative return", func(t *testing.T) {
		res := SolveIRR([]float64{-1000, 200, 200, 200})
		require.True(t, res.Converged)
		require.Less(t, res.Rate, 0.0)
		assert.InDelta(t, 0, NPV(res.Rate, []float64{-1000, 200, 200, 200}), 1e-3)
	})

	t.Run("no sign change is undefined", func(t *testing.T) {
		require.False(t, SolveIRR([]float64{100, 100, 100}).Converged)
		require.False(t, SolveIRR([]float64{-100, -100, -100}).Converged)
	})

	t.Run("flat derivative is undefined", func(t *testing.T) {
		res := SolveIRR([]float64{-100, 0, 0})
		require.False(t, res.Converged)
		require.Equal(t, 1, res.Iterations)
	})

	t.Run("too few flows", func(t *testing.T) {
		require.False(t, SolveIRR(nil).Converged)
		require.False(t, SolveIRR([]float64{-100}).Converged)
	})
}

func TestNPV(t *testing.T) {
	require.Equal(t, 0.0, NPV(0.06, nil))
	require.Equal(t, -500.0, NPV(0.06, []float64{-500}))
	assert.InDelta(t, -100+106/1.06, NPV(0.06, []float64{-100, 106}), 1e-9)
	assert.InDelta(t, 100.0, NPV(0, []float64{-200, 150, 150}), 1e-9)
}

func ledger(nets ...float64) []model.YearRecord {
	out := make([]model.YearRecord, len(nets))
	for i, n := range nets {
		out[i] = model.YearRecord{Year: i + 1, NetCashFlow: n}
	}
	return out
}

func TestPayback(t *testing.T) {
	t.Run("interpolates within the crossing year", func(t *testing.T) {
		year, ok := Payback(250, ledger(100, 100, 100, 100))
		require.True(t, ok)
		assert.InDelta(t, 2.5, year, 1e-12)
	})

	t.Run("exact crossing at year end", func(t *testing.T) {
		year, ok := Payback(200, ledger(100, 100, 100))
		require.True(t, ok)
		assert.InDelta(t, 2.0, year, 1e-12)
	})

	t.Run("never reached", func(t *testing.T) {
		_, ok := Payback(1000, ledger(100, 100, 100))
		require.False(t, ok)
	})

	t.Run("empty horizon", func(t *testing.T) {
		_, ok := Payback(1000, nil)
		require.False(t, ok)
	})

	t.Run("no equity and no loss year has no crossing", func(t *testing.T) {
		_, ok := Payback(0, ledger(100, 100))
		require.False(t, ok)
	})

	t.Run("no equity recovers after early losses", func(t *testing.T) {
		year, ok := Payback(0, ledger(-100, -100, 50, 200))
		require.True(t, ok)
		assert.InDelta(t, 3.75, year, 1e-12)
	})

	t.Run("no equity never recovers", func(t *testing.T) {
		_, ok := Payback(0, ledger(-100, 50))
		require.False(t, ok)
	})

	t.Run("dip below zero after a loss year", func(t *testing.T) {
		year, ok := Payback(100, ledger(-50, 100, 100))
		require.True(t, ok)
		assert.InDelta(t, 2.5, year, 1e-12)
	})
}

func TestTotalProfit(t *testing.T) {
	require.Equal(t, 50.0, TotalProfit(250, ledger(100, 100, 100)))
	require.Equal(t, -250.0, TotalProfit(250, nil))
	require.False(t, math.IsNaN(TotalProfit(0, nil)))
}
