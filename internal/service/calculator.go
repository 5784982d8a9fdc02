package service

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"tripcarbon/internal/domain"
)

// carEmissionEpsilon substitutes for a zero car emission when computing
// percentages, producing a large but finite value instead of +Inf.
const carEmissionEpsilon = 0.001

// CalculatorService converts distances and transport modes into CO2
// emission figures. Every method is a pure function over the immutable
// factor table: invalid input degrades to a zero result, never an error.
type CalculatorService struct {
	logger *zap.Logger
}

// NewCalculatorService creates a new CalculatorService.
func NewCalculatorService(logger *zap.Logger) *CalculatorService {
	return &CalculatorService{logger: logger}
}

// CalculateEmission returns the kg of CO2 emitted traveling distanceKm
// by the given mode, rounded to 2 decimals. Negative or non-finite
// distances yield 0. An unknown mode yields 0 and a diagnostic warning;
// it is not surfaced to the caller as a failure.
func (s *CalculatorService) CalculateEmission(distanceKm float64, mode string) float64 {
	if !validNumber(distanceKm) || distanceKm < 0 {
		return 0
	}

	normalized := domain.NormalizeMode(mode)
	factor, ok := domain.FactorFor(normalized)
	if !ok {
		s.logger.Warn("unknown transport mode, emission reported as zero",
			zap.String("mode", mode))
		return 0
	}

	return round2(distanceKm * factor)
}

// CalculateAllModes computes the emission for every configured mode at
// the given distance, with each mode's emission as a percentage of the
// car emission. Results are sorted ascending by emission; ties keep the
// factor table's declaration order.
func (s *CalculatorService) CalculateAllModes(distanceKm float64) []domain.ModeComparison {
	if !validNumber(distanceKm) || distanceKm < 0 {
		distanceKm = 0
	}

	factors := domain.TransportFactors()

	carEmission := 0.0
	if f, ok := domain.FactorFor(domain.BaselineMode); ok {
		carEmission = round2(distanceKm * f)
	}
	divisor := carEmission
	if divisor == 0 {
		divisor = carEmissionEpsilon
	}

	results := make([]domain.ModeComparison, 0, len(factors))
	for _, f := range factors {
		emission := round2(distanceKm * f.KgPerKm)
		results = append(results, domain.ModeComparison{
			Mode:            f.Mode,
			EmissionKg:      emission,
			PercentageVsCar: round2(emission / divisor * 100),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].EmissionKg < results[j].EmissionKg
	})

	return results
}

// CalculateSavings reports how much CO2 an emission saves against a
// baseline. Negative inputs are clamped to 0, and an emission above the
// baseline reports zero savings rather than a negative amount.
func (s *CalculatorService) CalculateSavings(emissionKg, baselineKg float64) domain.SavingsResult {
	if !validNumber(emissionKg) || emissionKg < 0 {
		emissionKg = 0
	}
	if !validNumber(baselineKg) || baselineKg < 0 {
		baselineKg = 0
	}

	saved := baselineKg - emissionKg
	if saved < 0 {
		saved = 0
	}

	percentage := 0.0
	if baselineKg > 0 {
		percentage = saved / baselineKg * 100
	}

	return domain.SavingsResult{
		SavedKg:    round2(saved),
		Percentage: round2(percentage),
	}
}

// round2 rounds half-up on the value scaled to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round4 rounds half-up on the value scaled to 4 decimal places.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// validNumber reports whether v is a usable finite number.
func validNumber(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
