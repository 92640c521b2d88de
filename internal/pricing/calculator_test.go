package pricing

import (
	"math"
	"testing"
)

func TestRetailPriceReferenceExample(t *testing.T) {
	retail, err := RetailPrice(8, DefaultFractions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if retail != 12.13 {
		// 8 * 1.05 * 1.35 * 1.07 = 12.1338, nearest cent
		t.Fatalf("expected 12.13, got %v", retail)
	}
}

func TestRetailPriceZeroBaseCost(t *testing.T) {
	retail, err := RetailPrice(0, DefaultFractions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if retail != 0 {
		t.Fatalf("expected 0, got %v", retail)
	}
}

func TestRetailPriceRejectsNegativeBaseCost(t *testing.T) {
	if _, err := RetailPrice(-1, DefaultFractions()); err == nil {
		t.Fatal("expected error for negative baseCost, got nil")
	}
}

func TestRetailPriceNeverBelowBaseCost(t *testing.T) {
	cases := []struct {
		baseCost  float64
		fractions Fractions
	}{
		{0, Fractions{}},
		{0.01, Fractions{}},
		{8, DefaultFractions()},
		{123.45, Fractions{InflationRate: 0.99, TaxRate: 0.99, Margin: 0.99}},
		{1000000, Fractions{InflationRate: 0.001, TaxRate: 0, Margin: 0}},
	}

	for _, tc := range cases {
		retail, err := RetailPrice(tc.baseCost, tc.fractions)
		if err != nil {
			t.Fatalf("baseCost %v: unexpected error: %v", tc.baseCost, err)
		}
		if retail < tc.baseCost-0.005 {
			t.Fatalf("baseCost %v: retail %v below base cost", tc.baseCost, retail)
		}
	}
}

func TestRetailPriceRoundedToTwoDecimals(t *testing.T) {
	cases := []float64{0.01, 1.11, 3.333, 7.77, 19.99, 100.001}
	for _, baseCost := range cases {
		retail, err := RetailPrice(baseCost, DefaultFractions())
		if err != nil {
			t.Fatalf("baseCost %v: unexpected error: %v", baseCost, err)
		}
		scaled := retail * 100
		if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
			t.Fatalf("baseCost %v: retail %v not rounded to cents", baseCost, retail)
		}
	}
}
