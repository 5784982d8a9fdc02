package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripcarbon/internal/domain"
	"tripcarbon/internal/service"
)

// EmissionHandler handles HTTP requests for emission calculations.
type EmissionHandler struct {
	calculator *service.CalculatorService
}

// NewEmissionHandler creates a new EmissionHandler.
func NewEmissionHandler(calculator *service.CalculatorService) *EmissionHandler {
	return &EmissionHandler{calculator: calculator}
}

// CalculateEmissionRequest is the HTTP request body for calculating an emission.
type CalculateEmissionRequest struct {
	DistanceKm float64 `json:"distance_km"`
	Mode       string  `json:"mode"`
}

// CalculateEmissionResponse is the HTTP response for calculating an emission.
type CalculateEmissionResponse struct {
	Mode       string  `json:"mode"`
	DistanceKm float64 `json:"distance_km"`
	EmissionKg float64 `json:"emission_kg"`
}

// ModeComparisonResponse is one row of a multi-mode comparison response.
type ModeComparisonResponse struct {
	Mode            string  `json:"mode"`
	EmissionKg      float64 `json:"emission_kg"`
	PercentageVsCar float64 `json:"percentage_vs_car"`
}

// SavingsRequest is the HTTP request body for computing savings.
type SavingsRequest struct {
	EmissionKg float64 `json:"emission_kg"`
	BaselineKg float64 `json:"baseline_kg"`
}

// SavingsResponse is the HTTP response for computing savings.
type SavingsResponse struct {
	SavedKg    float64 `json:"saved_kg"`
	Percentage float64 `json:"percentage"`
}

// Calculate handles POST /v1/emissions/calculate
func (h *EmissionHandler) Calculate(c *gin.Context) {
	var req CalculateEmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	emission := h.calculator.CalculateEmission(req.DistanceKm, req.Mode)

	respondJSON(c, http.StatusOK, CalculateEmissionResponse{
		Mode:       string(domain.NormalizeMode(req.Mode)),
		DistanceKm: req.DistanceKm,
		EmissionKg: emission,
	})
}

// Compare handles GET /v1/emissions/compare?distance_km=
// An unparsable or missing distance degrades to 0, matching the
// calculator's fail-soft contract.
func (h *EmissionHandler) Compare(c *gin.Context) {
	distance, err := strconv.ParseFloat(c.Query("distance_km"), 64)
	if err != nil {
		distance = 0
	}

	comparison := h.calculator.CalculateAllModes(distance)

	response := make([]ModeComparisonResponse, 0, len(comparison))
	for _, row := range comparison {
		response = append(response, ModeComparisonResponse{
			Mode:            string(row.Mode),
			EmissionKg:      row.EmissionKg,
			PercentageVsCar: row.PercentageVsCar,
		})
	}

	respondJSON(c, http.StatusOK, response)
}

// Savings handles POST /v1/emissions/savings
func (h *EmissionHandler) Savings(c *gin.Context) {
	var req SavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	savings := h.calculator.CalculateSavings(req.EmissionKg, req.BaselineKg)

	respondJSON(c, http.StatusOK, SavingsResponse{
		SavedKg:    savings.SavedKg,
		Percentage: savings.Percentage,
	})
}
