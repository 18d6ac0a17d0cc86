package model

import "solar-quote/internal/catalog"

// QuoteParameters defines the technical and financial parameters of a quote.
// Units:
// - PV capacities: kWp (DC) / kW (AC)
// - PVYield: kWh per installed kWp per year
// - StorageKWh: requested storage capacity, kWh (discretized into whole units)
// - PVTariff: NIS/kWh feed-in tariff
// - PVInstallCostPerKWp: NIS/kWp, PVMaintenancePerKWp: NIS/kWp/year
// - StorageMaintenancePerKWh: NIS/kWh/year
// - LoanPct, InterestRatePct: percent (0..100)
type QuoteParameters struct {
	PVDC                     float64 `json:"pv_dc" yaml:"pv_dc"`
	PVAC                     float64 `json:"pv_ac" yaml:"pv_ac"`
	PVAdditional             float64 `json:"pv_additional" yaml:"pv_additional"`
	PVYield                  float64 `json:"pv_yield" yaml:"pv_yield"`
	Manufacturer             string  `json:"manufacturer" yaml:"manufacturer"`
	StorageKWh               float64 `json:"storage_kwh" yaml:"storage_kwh"`
	PVTariff                 float64 `json:"pv_tariff" yaml:"pv_tariff"`
	PVInstallCostPerKWp      float64 `json:"pv_install_cost_per_kwp" yaml:"pv_install_cost_per_kwp"`
	PVMaintenancePerKWp      float64 `json:"pv_maintenance_per_kwp" yaml:"pv_maintenance_per_kwp"`
	StorageMaintenancePerKWh float64 `json:"storage_maintenance_per_kwh" yaml:"storage_maintenance_per_kwh"`
	PeriodYears              int     `json:"period" yaml:"period"`
	LoanPct                  float64 `json:"loan_pct" yaml:"loan_pct"`
	InterestRatePct          float64 `json:"interest_rate" yaml:"interest_rate"`
	LoanPeriodYears          int     `json:"loan_period" yaml:"loan_period"`
}

// DefaultParameters returns the documented default for every parameter.
func DefaultParameters() QuoteParameters {
	return QuoteParameters{
		PVDC:                     70,
		PVAC:                     50,
		PVAdditional:             130,
		PVYield:                  1600,
		Manufacturer:             "SOLAREDGE",
		StorageKWh:               500,
		PVTariff:                 0.42,
		PVInstallCostPerKWp:      2550,
		PVMaintenancePerKWp:      50,
		StorageMaintenancePerKWh: 5,
		PeriodYears:              22,
		LoanPct:                  0,
		InterestRatePct:          7,
		LoanPeriodYears:          20,
	}
}

// QuoteInput is the caller-facing form of QuoteParameters. A nil field means
// "use the default"; an explicit zero is kept.
type QuoteInput struct {
	PVDC                     *float64 `json:"pv_dc,omitempty" yaml:"pv_dc,omitempty"`
	PVAC                     *float64 `json:"pv_ac,omitempty" yaml:"pv_ac,omitempty"`
	PVAdditional             *float64 `json:"pv_additional,omitempty" yaml:"pv_additional,omitempty"`
	PVYield                  *float64 `json:"pv_yield,omitempty" yaml:"pv_yield,omitempty"`
	Manufacturer             *string  `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	StorageKWh               *float64 `json:"storage_kwh,omitempty" yaml:"storage_kwh,omitempty"`
	PVTariff                 *float64 `json:"pv_tariff,omitempty" yaml:"pv_tariff,omitempty"`
	PVInstallCostPerKWp      *float64 `json:"pv_install_cost_per_kwp,omitempty" yaml:"pv_install_cost_per_kwp,omitempty"`
	PVMaintenancePerKWp      *float64 `json:"pv_maintenance_per_kwp,omitempty" yaml:"pv_maintenance_per_kwp,omitempty"`
	StorageMaintenancePerKWh *float64 `json:"storage_maintenance_per_kwh,omitempty" yaml:"storage_maintenance_per_kwh,omitempty"`
	PeriodYears              *int     `json:"period,omitempty" yaml:"period,omitempty"`
	LoanPct                  *float64 `json:"loan_pct,omitempty" yaml:"loan_pct,omitempty"`
	InterestRatePct          *float64 `json:"interest_rate,omitempty" yaml:"interest_rate,omitempty"`
	LoanPeriodYears          *int     `json:"loan_period,omitempty" yaml:"loan_period,omitempty"`
}

// Resolve fills defaults and clamps out-of-range values. It never fails; an
// unknown manufacturer is left for the projector to reject.
func (in QuoteInput) Resolve() QuoteParameters {
	p := DefaultParameters()
	setFloat(&p.PVDC, in.PVDC)
	setFloat(&p.PVAC, in.PVAC)
	setFloat(&p.PVAdditional, in.PVAdditional)
	setFloat(&p.PVYield, in.PVYield)
	setFloat(&p.StorageKWh, in.StorageKWh)
	setFloat(&p.PVTariff, in.PVTariff)
	setFloat(&p.PVInstallCostPerKWp, in.PVInstallCostPerKWp)
	setFloat(&p.PVMaintenancePerKWp, in.PVMaintenancePerKWp)
	setFloat(&p.StorageMaintenancePerKWh, in.StorageMaintenancePerKWh)
	setFloat(&p.LoanPct, in.LoanPct)
	setFloat(&p.InterestRatePct, in.InterestRatePct)
	setInt(&p.PeriodYears, in.PeriodYears)
	setInt(&p.LoanPeriodYears, in.LoanPeriodYears)
	if in.Manufacturer != nil {
		p.Manufacturer = *in.Manufacturer
	}
	return p.Clamp()
}

// Clamp normalizes the manufacturer selector and bounds LoanPct to [0,100].
// Negative capacities and costs are floored at zero.
func (p QuoteParameters) Clamp() QuoteParameters {
	p.Manufacturer = catalog.NormalizeName(p.Manufacturer)
	p.LoanPct = clamp(p.LoanPct, 0, 100)
	for _, f := range []*float64{
		&p.PVDC, &p.PVAC, &p.PVAdditional, &p.PVYield, &p.StorageKWh, &p.PVTariff,
		&p.PVInstallCostPerKWp, &p.PVMaintenancePerKWp, &p.StorageMaintenancePerKWh,
		&p.InterestRatePct,
	} {
		if *f < 0 {
			*f = 0
		}
	}
	if p.LoanPeriodYears < 0 {
		p.LoanPeriodYears = 0
	}
	return p
}

// Horizon is the number of projected years: min(PeriodYears, 25), never negative.
func (p QuoteParameters) Horizon() int {
	if p.PeriodYears <= 0 {
		return 0
	}
	if p.PeriodYears > catalog.MaxHorizonYears {
		return catalog.MaxHorizonYears
	}
	return p.PeriodYears
}

// Input converts resolved parameters back into a fully populated QuoteInput.
func (p QuoteParameters) Input() QuoteInput {
	return QuoteInput{
		PVDC:                     Float(p.PVDC),
		PVAC:                     Float(p.PVAC),
		PVAdditional:             Float(p.PVAdditional),
		PVYield:                  Float(p.PVYield),
		Manufacturer:             String(p.Manufacturer),
		StorageKWh:               Float(p.StorageKWh),
		PVTariff:                 Float(p.PVTariff),
		PVInstallCostPerKWp:      Float(p.PVInstallCostPerKWp),
		PVMaintenancePerKWp:      Float(p.PVMaintenancePerKWp),
		StorageMaintenancePerKWh: Float(p.StorageMaintenancePerKWh),
		PeriodYears:              Int(p.PeriodYears),
		LoanPct:                  Float(p.LoanPct),
		InterestRatePct:          Float(p.InterestRatePct),
		LoanPeriodYears:          Int(p.LoanPeriodYears),
	}
}

// Float returns a pointer to v, for building a QuoteInput.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
