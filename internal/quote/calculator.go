package quote

import (
	"solar-quote/internal/analysis"
	"solar-quote/internal/catalog"
	"solar-quote/internal/model"
	"solar-quote/internal/projection"
)

// Calculate resolves defaults on in and prices the quote.
func Calculate(in model.QuoteInput) (*model.Result, error) {
	return CalculateParams(in.Resolve())
}

// CalculateParams projects the cash flows for p and derives the investment
// metrics. The only error is an unknown manufacturer; an IRR without a root or
// a payback beyond the horizon is reported as an undefined metric.
func CalculateParams(p model.QuoteParameters) (*model.Result, error) {
	proj, err := projection.New().Project(p.Clamp())
	if err != nil {
		return nil, err
	}
	return Assemble(proj), nil
}

// Assemble derives IRR, NPV, payback and profit from a projection. IRR is
// computed on unlevered flows (loan payments added back) while NPV, payback and
// profit use the levered flows.
func Assemble(proj *projection.Result) *model.Result {
	irr := model.Undefined()
	if sol := analysis.SolveIRR(proj.ProjectFlows()); sol.Converged {
		irr = model.Defined(sol.Rate * 100)
	}

	payback := model.Undefined()
	if year, ok := analysis.Payback(proj.EquityAmount, proj.Ledger); ok {
		payback = model.Defined(year)
	}

	npv := analysis.NPV(catalog.DiscountRate, proj.EquityFlows())
	profit := analysis.TotalProfit(proj.EquityAmount, proj.Ledger)

	cashFlows := make([]model.YearRecord, len(proj.Ledger))
	copy(cashFlows, proj.Ledger)

	return &model.Result{
		TotalInstallCost:  model.RoundCurrency(proj.TotalInstallCost),
		StorageCost:       model.RoundCurrency(proj.StorageCost),
		PVAdditionalCost:  model.RoundCurrency(proj.PVAdditionalCost),
		LoanAmount:        model.RoundCurrency(proj.LoanAmount),
		EquityAmount:      model.RoundCurrency(proj.EquityAmount),
		AnnualLoanPayment: model.RoundCurrency(proj.AnnualLoanPayment),
		ActualStorageKWh:  proj.ActualStorageKWh,
		NumUnits:          proj.NumUnits,
		Manufacturer:      proj.Manufacturer.Name,
		IRR:               irr,
		NPV:               model.RoundCurrency(npv),
		TotalProfit:       model.RoundCurrency(profit),
		PaybackYear:       payback,
		CashFlows:         cashFlows,
		Years:             proj.Years,
	}
}
