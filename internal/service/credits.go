package service

import "tripcarbon/internal/domain"

// CreditService converts emission quantities into carbon-credit counts
// and estimated market prices. Like the calculator, it is fail-soft:
// out-of-domain input produces a well-formed zero result.
type CreditService struct {
	config domain.CreditPriceConfig
}

// NewCreditService creates a new CreditService.
func NewCreditService(config domain.CreditPriceConfig) *CreditService {
	return &CreditService{config: config}
}

// ToCredits converts kg of CO2 into credits, rounded to 4 decimals.
// Negative or non-finite emissions yield 0.
func (s *CreditService) ToCredits(emissionKg float64) float64 {
	if !validNumber(emissionKg) || emissionKg < 0 {
		return 0
	}
	if s.config.KgPerCredit <= 0 {
		return 0
	}
	return round4(emissionKg / s.config.KgPerCredit)
}

// EstimatePrice returns the estimated cost range for buying the given
// number of credits, each figure rounded to 2 decimals. Negative or
// non-finite credit counts yield an all-zero estimate.
func (s *CreditService) EstimatePrice(credits float64) domain.CreditEstimate {
	if !validNumber(credits) || credits < 0 {
		return domain.CreditEstimate{}
	}

	min := round2(credits * s.config.PriceMinPerCredit)
	max := round2(credits * s.config.PriceMaxPerCredit)

	return domain.CreditEstimate{
		Credits:      credits,
		PriceMin:     min,
		PriceMax:     max,
		PriceAverage: round2((min + max) / 2),
	}
}

// Estimate converts an emission directly into a credit estimate.
func (s *CreditService) Estimate(emissionKg float64) domain.CreditEstimate {
	return s.EstimatePrice(s.ToCredits(emissionKg))
}
