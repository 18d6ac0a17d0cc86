package models

import "solar-quote/internal/model"

// CalculateRequest is the body of POST /api/v1/calculate. Every field is
// optional; absent fields take their documented defaults.
type CalculateRequest = model.QuoteInput

// CreateQuoteRequest represents the request body for saving a quote
type CreateQuoteRequest struct {
	Customer model.Customer   `json:"customer" binding:"required"`
	Rep      string           `json:"rep,omitempty"`
	Params   model.QuoteInput `json:"params"`
}

// UpdateParamsRequest re-prices an existing quote with new parameters
type UpdateParamsRequest struct {
	Params model.QuoteInput `json:"params"`
}
