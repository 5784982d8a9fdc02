package domain

import "time"

// TripEstimate is the full result of estimating one trip: the emission
// for the chosen mode, the comparison across all modes, savings against
// the car baseline, and the credit offset cost.
type TripEstimate struct {
	ID                string
	Origin            string
	Destination       string
	Mode              TransportMode
	DistanceKm        float64
	DistanceFromTable bool // distance resolved from the route table, not caller-supplied
	EmissionKg        float64
	BaselineKg        float64 // car emission over the same distance
	Savings           SavingsResult
	Comparison        []ModeComparison
	Credits           CreditEstimate
	CreatedAt         time.Time
}
