// Package pricing computes retail prices from wholesale base costs.
package pricing

import (
	"math"

	"storefront_sync_backend/platform/apperr"
	"storefront_sync_backend/platform/config"
)

// Fractions holds the pricing fractions applied on top of the base cost.
type Fractions struct {
	InflationRate float64
	TaxRate       float64
	Margin        float64
}

// DefaultFractions returns the standard pricing fractions.
func DefaultFractions() Fractions {
	return Fractions{InflationRate: 0.05, TaxRate: 0.07, Margin: 0.35}
}

// FromConfig builds Fractions from the application configuration.
func FromConfig(cfg config.PricingConfig) Fractions {
	return Fractions{
		InflationRate: cfg.GetInflationRate(),
		TaxRate:       cfg.GetTaxRate(),
		Margin:        cfg.GetMargin(),
	}
}

// RetailPrice computes the retail price for a base cost: inflation, then
// margin, then tax, rounded to the nearest cent (half up).
// A negative base cost is rejected.
func RetailPrice(baseCost float64, f Fractions) (float64, error) {
	if baseCost < 0 {
		return 0, apperr.Validation("baseCost must not be negative")
	}

	inflated := baseCost * (1 + f.InflationRate)
	withMargin := inflated * (1 + f.Margin)
	retail := withMargin * (1 + f.TaxRate)

	return roundToCents(retail), nil
}

func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
