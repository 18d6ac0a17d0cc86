package models

import (
	"solar-quote/internal/catalog"
	"solar-quote/internal/model"
	"solar-quote/internal/store"
)

// QuoteResponse is a stored quote together with its freshly computed result
type QuoteResponse struct {
	store.Quote
	Result *model.Result `json:"result,omitempty"`
}

// QuoteListResponse lists stored quotes without results
type QuoteListResponse struct {
	Quotes []store.Quote `json:"quotes"`
	Stats  store.Stats   `json:"stats"`
}

// ManufacturerInfo describes a storage manufacturer and its unit price in NIS
type ManufacturerInfo struct {
	catalog.Manufacturer
	UnitCostNISPerKWh float64 `json:"unit_cost_nis_per_kwh"`
}

// ParameterInfo describes a quote parameter
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int", "string"
	Unit        string      `json:"unit,omitempty"`
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
