package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripcarbon/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors. Distance-unknown is a 404 so clients know to
	// prompt for a manual distance rather than retry.
	case errors.Is(err, service.ErrDistanceUnknown),
		errors.Is(err, service.ErrEstimateNotFound):
		return http.StatusNotFound

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
