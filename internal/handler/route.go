package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripcarbon/internal/directory"
)

// RouteHandler handles HTTP requests for the route directory.
type RouteHandler struct {
	directory *directory.Directory
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(directory *directory.Directory) *RouteHandler {
	return &RouteHandler{directory: directory}
}

// DistanceResponse is the HTTP response for a route distance lookup.
type DistanceResponse struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	DistanceKm  float64 `json:"distance_km"`
}

// CitiesResponse is the HTTP response listing known cities.
type CitiesResponse struct {
	Cities []string `json:"cities"`
}

// GetCities handles GET /v1/cities
func (h *RouteHandler) GetCities(c *gin.Context) {
	respondJSON(c, http.StatusOK, CitiesResponse{Cities: h.directory.AllCities()})
}

// GetDistance handles GET /v1/routes/distance?origin=&destination=
// A miss is a 404 so clients can fall back to manual distance entry.
func (h *RouteHandler) GetDistance(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")

	distance, ok := h.directory.FindDistance(origin, destination)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no known route between cities"})
		return
	}

	respondJSON(c, http.StatusOK, DistanceResponse{
		Origin:      origin,
		Destination: destination,
		DistanceKm:  distance,
	})
}
