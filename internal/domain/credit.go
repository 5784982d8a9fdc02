package domain

// CreditPriceConfig contains carbon-credit conversion constants.
type CreditPriceConfig struct {
	KgPerCredit       float64 // kg CO2 represented by one credit, > 0
	PriceMinPerCredit float64
	PriceMaxPerCredit float64
}

// DefaultCreditPriceConfig returns the credit market constants. One
// credit offsets one metric ton of CO2; the price range reflects the
// voluntary market spread.
func DefaultCreditPriceConfig() CreditPriceConfig {
	return CreditPriceConfig{
		KgPerCredit:       1000,
		PriceMinPerCredit: 50,
		PriceMaxPerCredit: 150,
	}
}

// CreditEstimate is the credit quantity and price range for an
// emission amount.
type CreditEstimate struct {
	Credits      float64
	PriceMin     float64
	PriceMax     float64
	PriceAverage float64
}
