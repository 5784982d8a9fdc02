package service

import (
	"math"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"tripcarbon/internal/domain"
)

func newCalculator() *CalculatorService {
	return NewCalculatorService(zap.NewNop())
}

func TestCalculateEmission(t *testing.T) {
	calc := newCalculator()

	cases := []struct {
		name     string
		distance float64
		mode     string
		want     float64
	}{
		{"car over 100km", 100, "car", 12},
		{"bicycle is zero-emission", 100, "bicycle", 0},
		{"bus over 100km", 100, "bus", 8},
		{"truck over 100km", 100, "truck", 27},
		{"mode is normalized", 100, "  CAR ", 12},
		{"zero distance", 0, "car", 0},
		{"negative distance", -5, "car", 0},
		{"unknown mode", 100, "teleport", 0},
		{"empty mode", 100, "", 0},
		{"nan distance", math.NaN(), "car", 0},
		{"fractional result rounds to 2 decimals", 430, "bus", 34.4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := calc.CalculateEmission(tc.distance, tc.mode)
			if got != tc.want {
				t.Errorf("CalculateEmission(%v, %q) = %v, want %v", tc.distance, tc.mode, got, tc.want)
			}
		})
	}
}

func TestCalculateAllModes(t *testing.T) {
	calc := newCalculator()

	results := calc.CalculateAllModes(100)

	if len(results) != len(domain.TransportFactors()) {
		t.Fatalf("expected one entry per mode, got %d", len(results))
	}

	// Ascending by emission.
	for i := 1; i < len(results); i++ {
		if results[i].EmissionKg < results[i-1].EmissionKg {
			t.Errorf("results not sorted ascending at index %d: %v < %v",
				i, results[i].EmissionKg, results[i-1].EmissionKg)
		}
	}

	// The car row is always its own 100% baseline.
	var carRow *domain.ModeComparison
	for i := range results {
		if results[i].Mode == domain.ModeCar {
			carRow = &results[i]
		}
	}
	if carRow == nil {
		t.Fatal("car missing from comparison")
	}
	if carRow.PercentageVsCar != 100 {
		t.Errorf("car percentage = %v, want 100", carRow.PercentageVsCar)
	}

	// Spot-check the bus row.
	for _, row := range results {
		if row.Mode == domain.ModeBus {
			if row.EmissionKg != 8 {
				t.Errorf("bus emission = %v, want 8", row.EmissionKg)
			}
			if row.PercentageVsCar != 66.67 {
				t.Errorf("bus percentage = %v, want 66.67", row.PercentageVsCar)
			}
		}
	}
}

func TestCalculateAllModes_ZeroDistanceUsesEpsilonDivisor(t *testing.T) {
	calc := newCalculator()

	// At zero distance the car emission is 0; the epsilon divisor must
	// keep every percentage finite.
	for _, row := range calc.CalculateAllModes(0) {
		if math.IsNaN(row.PercentageVsCar) || math.IsInf(row.PercentageVsCar, 0) {
			t.Errorf("mode %s: percentage is not finite: %v", row.Mode, row.PercentageVsCar)
		}
		if row.EmissionKg != 0 {
			t.Errorf("mode %s: expected zero emission at zero distance, got %v", row.Mode, row.EmissionKg)
		}
	}
}

func TestCalculateAllModes_NegativeDistanceTreatedAsZero(t *testing.T) {
	calc := newCalculator()

	for _, row := range calc.CalculateAllModes(-10) {
		if row.EmissionKg != 0 {
			t.Errorf("mode %s: expected zero emission, got %v", row.Mode, row.EmissionKg)
		}
	}
}

func TestCalculateSavings(t *testing.T) {
	calc := newCalculator()

	cases := []struct {
		name           string
		emission       float64
		baseline       float64
		wantSaved      float64
		wantPercentage float64
	}{
		{"saves against baseline", 3, 12, 9, 75},
		{"bus against car", 8, 12, 4, 33.33},
		{"emission above baseline clamps to zero", 15, 12, 0, 0},
		{"equal emission and baseline", 12, 12, 0, 0},
		{"zero baseline", 5, 0, 0, 0},
		{"negative emission clamped", -3, 12, 12, 100},
		{"negative baseline clamped", 5, -10, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := calc.CalculateSavings(tc.emission, tc.baseline)
			if got.SavedKg != tc.wantSaved {
				t.Errorf("SavedKg = %v, want %v", got.SavedKg, tc.wantSaved)
			}
			if got.Percentage != tc.wantPercentage {
				t.Errorf("Percentage = %v, want %v", got.Percentage, tc.wantPercentage)
			}
		})
	}
}

func TestCalculator_Idempotent(t *testing.T) {
	calc := newCalculator()

	first := calc.CalculateAllModes(250)
	second := calc.CalculateAllModes(250)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different comparisons")
	}

	if calc.CalculateEmission(250, "car") != calc.CalculateEmission(250, "car") {
		t.Error("identical inputs produced different emissions")
	}
}
