// Package api - request handlers
// Handlers are ONLY responsible for: input ingestion, engine
// orchestration, output serialization. They NEVER perform pricing logic.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ratecard/core/calc"
	"ratecard/internal/errors"
	"ratecard/internal/logging"
)

// handleQuote handles POST /api/v1/quote
func (s *Server) handleQuote(c *gin.Context) {
	req, ok := s.bindQuoteRequest(c)
	if !ok {
		return
	}

	result, err := calc.CalculatePriceWithDefaults(req.Profile, req.Brief, req.Score, s.defaults)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	logging.Debug("quote computed",
		zap.String("model", string(result.PricingModel)),
		zap.String("total", result.TotalPrice.String()))

	c.JSON(http.StatusOK, newEnvelope(result))
}

// handleUGCQuote handles POST /api/v1/quote/ugc
func (s *Server) handleUGCQuote(c *gin.Context) {
	req, ok := s.bindQuoteRequest(c)
	if !ok {
		return
	}

	result, err := calc.CalculateUGCPrice(req.Brief, req.Profile)
	if err != nil {
		writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, newEnvelope(result))
}

// handleAffiliateQuote handles POST /api/v1/quote/affiliate
func (s *Server) handleAffiliateQuote(c *gin.Context) {
	req, ok := s.bindQuoteRequest(c)
	if !ok {
		return
	}

	result, err := calc.CalculateAffiliatePricing(req.Brief, req.Profile)
	if err != nil {
		writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, newEnvelope(result))
}

// handleRateCard handles POST /api/v1/rate-card
func (s *Server) handleRateCard(c *gin.Context) {
	req, ok := s.bindQuoteRequest(c)
	if !ok {
		return
	}

	entries, err := calc.BuildRateCard(req.Profile, req.Brief, req.Score)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	env := newEnvelope(nil)
	c.JSON(http.StatusOK, RateCardResponse{
		QuoteID:     env.QuoteID,
		GeneratedAt: env.GeneratedAt,
		Entries:     entries,
	})
}

// handleHealth handles GET /health
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleVersion handles GET /version
func (s *Server) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": s.version})
}

// bindQuoteRequest decodes and minimally validates a quote request,
// applying the configured default currency when the profile names none
func (s *Server) bindQuoteRequest(c *gin.Context) (*QuoteRequest, bool) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_JSON",
			Message: err.Error(),
		})
		return nil, false
	}
	if req.Profile == nil || req.Brief == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    string(errors.TypeInput),
			Message: "both profile and brief are required",
		})
		return nil, false
	}
	if req.Profile.Currency == "" {
		req.Profile.Currency = s.currency
	}
	return &req, true
}

// writeEngineError maps engine errors to HTTP responses. The one hard
// precondition (a missing deal configuration) is the caller's fault and
// maps to 422; anything else is unexpected.
func writeEngineError(c *gin.Context, err error) {
	if e, ok := err.(*errors.Error); ok {
		status := http.StatusInternalServerError
		switch e.Type {
		case errors.TypeConfig:
			status = http.StatusUnprocessableEntity
		case errors.TypeInput:
			status = http.StatusBadRequest
		}
		c.JSON(status, ErrorResponse{Code: string(e.Type), Message: e.Message})
		return
	}

	logging.Error("unexpected engine error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    string(errors.TypeInternal),
		Message: "internal error",
	})
}
