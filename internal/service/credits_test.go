package service

import (
	"math"
	"testing"

	"tripcarbon/internal/domain"
)

func newCredits() *CreditService {
	return NewCreditService(domain.DefaultCreditPriceConfig())
}

func TestToCredits(t *testing.T) {
	credits := newCredits()

	cases := []struct {
		name     string
		emission float64
		want     float64
	}{
		{"one full credit", 1000, 1},
		{"half credit", 500, 0.5},
		{"rounds to 4 decimals", 123.456, 0.1235},
		{"small emission", 12, 0.012},
		{"zero emission", 0, 0},
		{"negative emission", -50, 0},
		{"nan emission", math.NaN(), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := credits.ToCredits(tc.emission)
			if got != tc.want {
				t.Errorf("ToCredits(%v) = %v, want %v", tc.emission, got, tc.want)
			}
		})
	}
}

func TestToCredits_MisconfiguredRatio(t *testing.T) {
	credits := NewCreditService(domain.CreditPriceConfig{KgPerCredit: 0})

	if got := credits.ToCredits(1000); got != 0 {
		t.Errorf("expected 0 with zero kg-per-credit, got %v", got)
	}
}

func TestEstimatePrice(t *testing.T) {
	credits := newCredits()

	got := credits.EstimatePrice(1)
	want := domain.CreditEstimate{Credits: 1, PriceMin: 50, PriceMax: 150, PriceAverage: 100}
	if got != want {
		t.Errorf("EstimatePrice(1) = %+v, want %+v", got, want)
	}

	got = credits.EstimatePrice(0.5)
	want = domain.CreditEstimate{Credits: 0.5, PriceMin: 25, PriceMax: 75, PriceAverage: 50}
	if got != want {
		t.Errorf("EstimatePrice(0.5) = %+v, want %+v", got, want)
	}
}

func TestEstimatePrice_InvalidInput(t *testing.T) {
	credits := newCredits()

	for _, bad := range []float64{-1, math.NaN(), math.Inf(1)} {
		if got := credits.EstimatePrice(bad); got != (domain.CreditEstimate{}) {
			t.Errorf("EstimatePrice(%v) = %+v, want all-zero estimate", bad, got)
		}
	}
}

func TestEstimate_Composition(t *testing.T) {
	credits := newCredits()

	// 12 kg of CO2 -> 0.012 credits -> price range 0.60 to 1.80.
	got := credits.Estimate(12)
	want := domain.CreditEstimate{Credits: 0.012, PriceMin: 0.6, PriceMax: 1.8, PriceAverage: 1.2}
	if got != want {
		t.Errorf("Estimate(12) = %+v, want %+v", got, want)
	}
}
