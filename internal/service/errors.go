package service

import "errors"

var (
	// ErrDistanceUnknown is returned when no distance was supplied and
	// the route directory has no entry for the city pair. Callers should
	// prompt for a manual distance.
	ErrDistanceUnknown = errors.New("distance unknown for route")

	// ErrEstimateNotFound is returned when a stored estimate id does not
	// exist or has expired.
	ErrEstimateNotFound = errors.New("estimate not found")
)
