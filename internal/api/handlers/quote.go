package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"solar-quote/internal/api/models"
	"solar-quote/internal/catalog"
	"solar-quote/internal/config"
	"solar-quote/internal/logger"
	"solar-quote/internal/projection"
	"solar-quote/internal/quote"
	"solar-quote/internal/store"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles quote pricing and the saved-quote endpoints
type QuoteHandler struct {
	store *store.Store
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(s *store.Store) *QuoteHandler {
	return &QuoteHandler{store: s}
}

// Calculate handles POST /api/v1/calculate
func (h *QuoteHandler) Calculate(c *gin.Context) {
	var req models.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	result, err := quote.Calculate(req)
	if err != nil {
		writeCalcError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateQuote handles POST /api/v1/quotes
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req models.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	// Reject a quote that could never be priced.
	result, err := quote.Calculate(req.Params)
	if err != nil {
		writeCalcError(c, err)
		return
	}

	q := h.store.Create(req.Customer, req.Rep, req.Params)
	logger.FromContext(c.Request.Context()).Infow("quote created", "quote_id", q.ID, "rep", q.Rep)

	c.JSON(http.StatusCreated, models.QuoteResponse{Quote: q, Result: result})
}

// ListQuotes handles GET /api/v1/quotes
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	c.JSON(http.StatusOK, models.QuoteListResponse{
		Quotes: h.store.List(),
		Stats:  h.store.Stats(),
	})
}

// Stats handles GET /api/v1/quotes/stats
func (h *QuoteHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Stats())
}

// GetQuote handles GET /api/v1/quotes/:id. Each call counts as a customer view.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.store.TrackView(c.Param("id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	h.respondWithResult(c, http.StatusOK, q)
}

// UpdateParams handles PUT /api/v1/quotes/:id/params
func (h *QuoteHandler) UpdateParams(c *gin.Context) {
	var req models.UpdateParamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	existing, err := h.store.Get(c.Param("id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	params := config.MergeInput(existing.Params, req.Params)
	if _, err := quote.Calculate(params); err != nil {
		writeCalcError(c, err)
		return
	}

	q, err := h.store.UpdateParams(existing.ID, params)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	h.respondWithResult(c, http.StatusOK, q)
}

// DeleteQuote handles DELETE /api/v1/quotes/:id
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		writeStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CashFlowsCSV handles GET /api/v1/quotes/:id/cashflows.csv
func (h *QuoteHandler) CashFlowsCSV(c *gin.Context) {
	q, err := h.store.Get(c.Param("id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	result, err := quote.Calculate(q.Params)
	if err != nil {
		writeCalcError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "cashflows-"+q.ID+".csv"))
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)
	if err := projection.WriteLedgerCSV(c.Writer, result.CashFlows); err != nil {
		_ = c.Error(err)
	}
}

func (h *QuoteHandler) respondWithResult(c *gin.Context, status int, q store.Quote) {
	result, err := quote.Calculate(q.Params)
	if err != nil {
		writeCalcError(c, err)
		return
	}
	c.JSON(status, models.QuoteResponse{Quote: q, Result: result})
}

func writeCalcError(c *gin.Context, err error) {
	if errors.Is(err, catalog.ErrUnknownManufacturer) {
		writeError(c, http.StatusBadRequest, "UNKNOWN_MANUFACTURER", err)
		return
	}
	writeError(c, http.StatusInternalServerError, "CALCULATION_ERROR", err)
}

func writeStoreError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(c, http.StatusNotFound, "QUOTE_NOT_FOUND", err)
		return
	}
	writeError(c, http.StatusInternalServerError, "STORE_ERROR", err)
}

func writeError(c *gin.Context, status int, code string, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}
