package projection

import (
	"fmt"
	"math"

	"solar-quote/internal/catalog"
	"solar-quote/internal/model"
)

// Engine projects quote cash flows. It holds no state.
type Engine struct{}

// New returns an Engine.
func New() *Engine { return &Engine{} }

// Project builds the yearly cash-flow ledger for a resolved parameter set.
// An unknown manufacturer is the only error; a non-positive horizon yields an
// empty ledger.
func (e *Engine) Project(p model.QuoteParameters) (*Result, error) {
	mfr, err := catalog.LookupManufacturer(p.Manufacturer)
	if err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}

	s := Summary{Manufacturer: mfr}

	// Partial units cannot be purchased.
	if mfr.UnitKWh > 0 && p.StorageKWh > 0 {
		s.NumUnits = int(math.Floor(p.StorageKWh / mfr.UnitKWh))
	}
	s.ActualStorageKWh = float64(s.NumUnits) * mfr.UnitKWh
	s.TotalPVDC = p.PVDC + p.PVAdditional

	s.PVAdditionalCost = p.PVAdditional * p.PVInstallCostPerKWp
	s.StorageCost = s.ActualStorageKWh * mfr.UnitCostUSDPerKWh * catalog.USDToNIS
	s.TotalInstallCost = s.PVAdditionalCost + s.StorageCost

	s.LoanAmount = s.TotalInstallCost * (p.LoanPct / 100)
	s.EquityAmount = s.TotalInstallCost - s.LoanAmount
	s.AnnualLoanPayment = AnnualPayment(s.LoanAmount, p.InterestRatePct, p.LoanPeriodYears)

	// C/2 discharge, capped by the inverter AC rating.
	s.StorageACKW = math.Min(s.ActualStorageKWh/2, p.PVAC)
	s.Years = p.Horizon()

	seasons := catalog.Seasons()
	ledger := make([]model.YearRecord, 0, s.Years)
	cum := -s.EquityAmount
	// Capacity added by augmentation; degrades from the augmentation year on.
	augmentedKWh := 0.0

	for y := 1; y <= s.Years; y++ {
		pvDeg := math.Pow(1-catalog.PVDegradationRate, float64(y-1))
		stDeg := math.Pow(1-catalog.StorageDegradationRate, float64(y-1))

		augmentationCost := 0.0
		if y == catalog.AugmentationYear && s.Years > catalog.AugmentationYear {
			augmentationCost = s.StorageCost * catalog.AugmentationCapacityPct * catalog.AugmentationCostPct
			augmentedKWh = s.ActualStorageKWh * catalog.AugmentationCapacityPct
		}
		effectiveKWh := s.ActualStorageKWh*stDeg + augmentedKWh

		peakIncome := 0.0
		for _, season := range seasons {
			maxDischargeKWh := s.StorageACKW * season.PeakHours
			dischargeKWh := math.Min(
				effectiveKWh*float64(season.PeakDays)*(1-catalog.LossFactor),
				maxDischargeKWh,
			)
			// agorot -> NIS
			peakIncome += dischargeKWh * (season.Supplementary / 100)
		}

		// Storage charges from PV surplus only, so there is no grid charging cost.
		surplusKWh := s.TotalPVDC * p.PVYield * pvDeg * catalog.SurplusFraction
		surplusIncome := surplusKWh * p.PVTariff

		revenue := peakIncome + surplusIncome
		costs := s.TotalPVDC*p.PVMaintenancePerKWp +
			s.ActualStorageKWh*p.StorageMaintenancePerKWh +
			augmentationCost

		loanPayment := 0.0
		if y <= p.LoanPeriodYears {
			loanPayment = s.AnnualLoanPayment
		}
		net := revenue - costs - loanPayment
		cum += net

		ledger = append(ledger, model.YearRecord{
			Year:        y,
			Revenue:     model.RoundCurrency(revenue),
			Costs:       model.RoundCurrency(costs),
			LoanPayment: model.RoundCurrency(loanPayment),
			NetCashFlow: model.RoundCurrency(net),
			Cumulative:  model.RoundCurrency(cum),
		})

		if augmentedKWh > 0 {
			augmentedKWh *= 1 - catalog.StorageDegradationRate
		}
	}

	return &Result{
		Summary: s,
		Ledger:  ledger,
	}, nil
}

// AnnualPayment is twelve fixed monthly annuity payments on loan at
// ratePct/12 monthly interest over years*12 months. It is zero when any
// input is non-positive.
func AnnualPayment(loan, ratePct float64, years int) float64 {
	monthlyRate := (ratePct / 100) / 12
	months := float64(years * 12)
	if loan <= 0 || monthlyRate <= 0 || months <= 0 {
		return 0
	}
	growth := math.Pow(1+monthlyRate, months)
	monthly := loan * monthlyRate * growth / (growth - 1)
	return monthly * 12
}
