package projection

import (
	"solar-quote/internal/catalog"
	"solar-quote/internal/model"
)

// Summary holds the quantities derived before the yearly loop. Amounts are
// unrounded NIS.
type Summary struct {
	Manufacturer     catalog.Manufacturer
	NumUnits         int
	ActualStorageKWh float64
	TotalPVDC        float64

	PVAdditionalCost float64
	StorageCost      float64
	TotalInstallCost float64

	LoanAmount        float64
	EquityAmount      float64
	AnnualLoanPayment float64

	StorageACKW float64
	Years       int
}

// Result is the projector output: the summary plus one rounded row per year.
type Result struct {
	Summary
	Ledger []model.YearRecord
}

// NetCashFlows returns the levered yearly net flows.
func (r *Result) NetCashFlows() []float64 {
	out := make([]float64, len(r.Ledger))
	for i, row := range r.Ledger {
		out[i] = row.NetCashFlow
	}
	return out
}

// ProjectFlows returns the unlevered flows used for IRR: the full install cost
// as the initial outlay, then each year's net flow with the loan payment added
// back.
func (r *Result) ProjectFlows() []float64 {
	out := make([]float64, 0, len(r.Ledger)+1)
	out = append(out, -r.TotalInstallCost)
	for _, row := range r.Ledger {
		out = append(out, row.NetCashFlow+row.LoanPayment)
	}
	return out
}

// EquityFlows returns the levered flows used for NPV, seeded at -equity.
func (r *Result) EquityFlows() []float64 {
	out := make([]float64, 0, len(r.Ledger)+1)
	out = append(out, -r.EquityAmount)
	return append(out, r.NetCashFlows()...)
}
