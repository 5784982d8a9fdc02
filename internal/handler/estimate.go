package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripcarbon/internal/domain"
	"tripcarbon/internal/service"
)

// EstimateHandler handles HTTP requests for full trip estimates.
type EstimateHandler struct {
	estimates *service.EstimateService
}

// NewEstimateHandler creates a new EstimateHandler.
func NewEstimateHandler(estimates *service.EstimateService) *EstimateHandler {
	return &EstimateHandler{estimates: estimates}
}

// CreateEstimateRequest is the HTTP request body for creating a trip estimate.
type CreateEstimateRequest struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Mode        string   `json:"mode"`
	DistanceKm  *float64 `json:"distance_km,omitempty"`
}

// EstimateResponse is the HTTP response for a trip estimate.
type EstimateResponse struct {
	ID                string                   `json:"id"`
	Origin            string                   `json:"origin"`
	Destination       string                   `json:"destination"`
	Mode              string                   `json:"mode"`
	DistanceKm        float64                  `json:"distance_km"`
	DistanceFromTable bool                     `json:"distance_from_table"`
	EmissionKg        float64                  `json:"emission_kg"`
	BaselineKg        float64                  `json:"baseline_kg"`
	Savings           SavingsResponse          `json:"savings"`
	Comparison        []ModeComparisonResponse `json:"comparison"`
	Credits           CreditEstimateResponse   `json:"credits"`
	CreatedAt         string                   `json:"created_at"`
}

// Create handles POST /v1/estimates
func (h *EstimateHandler) Create(c *gin.Context) {
	var req CreateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	estimate, err := h.estimates.EstimateTrip(c.Request.Context(), service.EstimateTripRequest{
		Origin:      req.Origin,
		Destination: req.Destination,
		Mode:        req.Mode,
		DistanceKm:  req.DistanceKm,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toEstimateResponse(estimate))
}

// Get handles GET /v1/estimates/:id
func (h *EstimateHandler) Get(c *gin.Context) {
	estimate, err := h.estimates.GetEstimate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toEstimateResponse(estimate))
}

func toEstimateResponse(estimate *domain.TripEstimate) EstimateResponse {
	comparison := make([]ModeComparisonResponse, 0, len(estimate.Comparison))
	for _, row := range estimate.Comparison {
		comparison = append(comparison, ModeComparisonResponse{
			Mode:            string(row.Mode),
			EmissionKg:      row.EmissionKg,
			PercentageVsCar: row.PercentageVsCar,
		})
	}

	return EstimateResponse{
		ID:                estimate.ID,
		Origin:            estimate.Origin,
		Destination:       estimate.Destination,
		Mode:              string(estimate.Mode),
		DistanceKm:        estimate.DistanceKm,
		DistanceFromTable: estimate.DistanceFromTable,
		EmissionKg:        estimate.EmissionKg,
		BaselineKg:        estimate.BaselineKg,
		Savings: SavingsResponse{
			SavedKg:    estimate.Savings.SavedKg,
			Percentage: estimate.Savings.Percentage,
		},
		Comparison: comparison,
		Credits: CreditEstimateResponse{
			Credits:      estimate.Credits.Credits,
			PriceMin:     estimate.Credits.PriceMin,
			PriceMax:     estimate.Credits.PriceMax,
			PriceAverage: estimate.Credits.PriceAverage,
		},
		CreatedAt: estimate.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
