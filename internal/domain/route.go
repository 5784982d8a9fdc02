package domain

// Route is a stored city-pair-to-distance fact used to auto-fill trip
// distance. City names use the canonical "City, Region" format.
type Route struct {
	Origin      string
	Destination string
	DistanceKm  float64
}
