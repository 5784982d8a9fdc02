package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripcarbon/internal/service"
)

// CreditHandler handles HTTP requests for carbon-credit estimates.
type CreditHandler struct {
	credits *service.CreditService
}

// NewCreditHandler creates a new CreditHandler.
func NewCreditHandler(credits *service.CreditService) *CreditHandler {
	return &CreditHandler{credits: credits}
}

// CreditEstimateRequest is the HTTP request body for estimating credits.
type CreditEstimateRequest struct {
	EmissionKg float64 `json:"emission_kg"`
}

// CreditEstimateResponse is the HTTP response for estimating credits.
type CreditEstimateResponse struct {
	Credits      float64 `json:"credits"`
	PriceMin     float64 `json:"price_min"`
	PriceMax     float64 `json:"price_max"`
	PriceAverage float64 `json:"price_average"`
}

// Estimate handles POST /v1/credits/estimate
func (h *CreditHandler) Estimate(c *gin.Context) {
	var req CreditEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	estimate := h.credits.Estimate(req.EmissionKg)

	respondJSON(c, http.StatusOK, CreditEstimateResponse{
		Credits:      estimate.Credits,
		PriceMin:     estimate.PriceMin,
		PriceMax:     estimate.PriceMax,
		PriceAverage: estimate.PriceAverage,
	})
}
