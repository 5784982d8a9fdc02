package domain

import "strings"

// TransportMode identifies a means of transport in the factor table.
type TransportMode string

const (
	ModeBicycle TransportMode = "bicycle"
	ModeBus     TransportMode = "bus"
	ModeCar     TransportMode = "car"
	ModeTruck   TransportMode = "truck"
)

// BaselineMode is the reference mode for savings and percentage comparisons.
const BaselineMode = ModeCar

// TransportFactor is the emission factor for one transport mode.
type TransportFactor struct {
	Mode    TransportMode
	KgPerKm float64 // kg CO2 emitted per km traveled
}

// transportFactors is the emission factor table. Declaration order is
// significant: it is the tie-break order for equal emissions in
// multi-mode comparisons. Loaded once, never mutated.
var transportFactors = []TransportFactor{
	{Mode: ModeBicycle, KgPerKm: 0},
	{Mode: ModeBus, KgPerKm: 0.08},
	{Mode: ModeCar, KgPerKm: 0.12},
	{Mode: ModeTruck, KgPerKm: 0.27},
}

// TransportFactors returns the factor table in declaration order.
// Callers must not modify the returned slice.
func TransportFactors() []TransportFactor {
	return transportFactors
}

// NormalizeMode trims and case-folds a caller-supplied mode identifier.
func NormalizeMode(mode string) TransportMode {
	return TransportMode(strings.ToLower(strings.TrimSpace(mode)))
}

// FactorFor returns the emission factor for a mode. The second return
// value is false when the mode is not in the table.
func FactorFor(mode TransportMode) (float64, bool) {
	for _, f := range transportFactors {
		if f.Mode == mode {
			return f.KgPerKm, true
		}
	}
	return 0, false
}

// EmissionResult is the outcome of a single emission calculation.
// Derived per query, never persisted.
type EmissionResult struct {
	Mode       TransportMode
	DistanceKm float64
	EmissionKg float64
}

// ModeComparison is one row of a multi-mode comparison.
type ModeComparison struct {
	Mode            TransportMode
	EmissionKg      float64
	PercentageVsCar float64
}

// SavingsResult reports emission saved against a baseline. SavedKg is
// floored at zero: emitting more than the baseline never reports
// negative savings.
type SavingsResult struct {
	SavedKg    float64
	Percentage float64
}
