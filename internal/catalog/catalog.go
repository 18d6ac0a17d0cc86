package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// ErrUnknownManufacturer is returned when a storage manufacturer is not in the catalog.
var ErrUnknownManufacturer = errors.New("unknown manufacturer")

// Fixed reference constants used by the cash-flow model.
const (
	// USDToNIS converts manufacturer unit prices (USD) into NIS.
	USDToNIS = 3.25

	PVDegradationRate      = 0.005 // per year
	StorageDegradationRate = 0.015 // per year
	RoundTripEfficiency    = 0.90

	// LossFactor is the one-way loss applied to stored energy: (1-RTE)/2.
	LossFactor = (1 - RoundTripEfficiency) / 2

	// DiscountRate is used for NPV.
	DiscountRate = 0.06

	// Augmentation tops up storage capacity once, mid-horizon.
	AugmentationYear        = 15
	AugmentationCapacityPct = 0.20 // capacity added, as a fraction of installed capacity
	AugmentationCostPct     = 0.70 // cost per added kWh, as a fraction of the original

	// SurplusFraction is the share of PV generation assumed exported at the feed-in tariff.
	SurplusFraction = 0.10

	MaxHorizonYears = 25
	TotalPeakHours  = 1443
	DaysPerYear     = 365

	// IRRGuess seeds the Newton-Raphson IRR solver.
	IRRGuess = 0.10
)

// Manufacturer describes a storage product line.
// Units:
// - UnitKWh: kWh per purchasable unit
// - UnitCostUSDPerKWh: USD per kWh of installed capacity
type Manufacturer struct {
	Name              string  `json:"name" yaml:"name"`
	UnitKWh           float64 `json:"unit_kwh" yaml:"unit_kwh"`
	UnitCostUSDPerKWh float64 `json:"unit_cost_usd_per_kwh" yaml:"unit_cost_usd_per_kwh"`
}

// Season is one time-of-use tariff season. Rates are in agorot per kWh.
type Season struct {
	Name            string  `json:"name"`
	OffPeak         float64 `json:"off_peak"`
	Peak            float64 `json:"peak"`
	Share           float64 `json:"share"`
	PeakDays        int     `json:"peak_days"`
	OffPeakOnlyDays int     `json:"off_peak_only_days"`
	Supplementary   float64 `json:"supplementary"`
	PeakHours       float64 `json:"peak_hours"`
}

var manufacturers = map[string]Manufacturer{
	"JINKO":     {Name: "JINKO", UnitKWh: 266, UnitCostUSDPerKWh: 220},
	"FFD":       {Name: "FFD", UnitKWh: 233, UnitCostUSDPerKWh: 180},
	"SOLAREDGE": {Name: "SOLAREDGE", UnitKWh: 197, UnitCostUSDPerKWh: 230},
}

// Low voltage ToU tariffs, ordered winter -> transition -> summer.
var seasons = []Season{
	{Name: "winter", OffPeak: 38.62, Peak: 102.30, Share: 0.1331, PeakDays: 90, OffPeakOnlyDays: 0, Supplementary: 93.2, PeakHours: 450},
	{Name: "transition", OffPeak: 37.80, Peak: 42.18, Share: 0.4090, PeakDays: 99, OffPeakOnlyDays: 54, Supplementary: 42.0, PeakHours: 495},
	{Name: "summer", OffPeak: 44.70, Peak: 143.18, Share: 0.4579, PeakDays: 83, OffPeakOnlyDays: 39, Supplementary: 134.0, PeakHours: 498},
}

// NormalizeName canonicalizes a manufacturer selector.
func NormalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// LookupManufacturer resolves a manufacturer by name (case-insensitive).
func LookupManufacturer(name string) (Manufacturer, error) {
	m, ok := manufacturers[NormalizeName(name)]
	if !ok {
		return Manufacturer{}, fmt.Errorf("%w: %q", ErrUnknownManufacturer, name)
	}
	return m, nil
}

// Manufacturers lists all manufacturers sorted by name.
func Manufacturers() []Manufacturer {
	out := make([]Manufacturer, 0, len(manufacturers))
	for _, m := range manufacturers {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Seasons returns a copy of the season table in calendar order.
func Seasons() []Season {
	out := make([]Season, len(seasons))
	copy(out, seasons)
	return out
}

// Validate checks the season table is internally consistent.
func Validate() error {
	var share, hours float64
	days := 0
	for _, s := range seasons {
		share += s.Share
		hours += s.PeakHours
		days += s.PeakDays + s.OffPeakOnlyDays
	}
	if math.Abs(share-1) > 1e-3 {
		return fmt.Errorf("season shares sum to %.4f, want 1", share)
	}
	if days != DaysPerYear {
		return fmt.Errorf("season days sum to %d, want %d", days, DaysPerYear)
	}
	if hours != TotalPeakHours {
		return fmt.Errorf("season peak hours sum to %.0f, want %d", hours, TotalPeakHours)
	}
	return nil
}
