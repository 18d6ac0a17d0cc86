package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// NotAvailable is the sentinel a Metric renders to when it has no value.
const NotAvailable = "N/A"

// YearRecord is one projected year. Currency amounts are whole NIS.
type YearRecord struct {
	Year        int     `json:"year" csv:"year"`
	Revenue     float64 `json:"revenue" csv:"revenue"`
	Costs       float64 `json:"costs" csv:"costs"`
	LoanPayment float64 `json:"loan_payment" csv:"loan_payment"`
	NetCashFlow float64 `json:"net_cash_flow" csv:"net_cash_flow"`
	Cumulative  float64 `json:"cumulative" csv:"cumulative"`
}

// RoundCurrency rounds to the nearest whole currency unit, halves up.
func RoundCurrency(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Metric is a value that may be undefined (IRR with no real root, payback
// never reached). Callers must check Defined before using Value.
type Metric struct {
	Value   float64
	Defined bool
}

// Defined wraps a value rounded to one decimal place. Rounding works on the
// exact binary value, so 0.15 (stored just below 0.15) becomes 0.1.
func Defined(v float64) Metric {
	return Metric{Value: oneDecimal(v).InexactFloat64(), Defined: true}
}

// Undefined is the empty Metric.
func Undefined() Metric {
	return Metric{}
}

// String formats the metric with one decimal, or NotAvailable.
func (m Metric) String() string {
	if !m.Defined {
		return NotAvailable
	}
	return oneDecimal(m.Value).StringFixed(1)
}

func oneDecimal(v float64) decimal.Decimal {
	return decimal.NewFromFloatWithExponent(v, -1)
}

func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Defined {
		return json.Marshal(NotAvailable)
	}
	return []byte(m.String()), nil
}

func (m *Metric) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) || bytes.Equal(b, []byte(`"`+NotAvailable+`"`)) {
		*m = Undefined()
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("metric: %w", err)
	}
	*m = Metric{Value: v, Defined: true}
	return nil
}

// Result is the complete output of a quote calculation.
type Result struct {
	TotalInstallCost  float64      `json:"total_install_cost"`
	StorageCost       float64      `json:"storage_cost"`
	PVAdditionalCost  float64      `json:"pv_additional_cost"`
	LoanAmount        float64      `json:"loan_amount"`
	EquityAmount      float64      `json:"equity_amount"`
	AnnualLoanPayment float64      `json:"annual_loan_payment"`
	ActualStorageKWh  float64      `json:"actual_storage_kwh"`
	NumUnits          int          `json:"num_units"`
	Manufacturer      string       `json:"manufacturer"`
	IRR               Metric       `json:"irr"`
	NPV               float64      `json:"npv"`
	TotalProfit       float64      `json:"total_profit"`
	PaybackYear       Metric       `json:"payback_year"`
	CashFlows         []YearRecord `json:"cash_flows"`
	Years             int          `json:"years"`
}
