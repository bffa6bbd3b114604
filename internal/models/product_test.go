package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinalPrice(t *testing.T) {
	assert.Equal(t, 90.0, FinalPrice(100, 10))
	assert.Equal(t, 50.0, FinalPrice(50, 0))
	assert.Equal(t, 0.0, FinalPrice(100, 100))
	// Rounded to the nearest unit.
	assert.Equal(t, 67.0, FinalPrice(99.5, 33))
}

func TestApplyPricing(t *testing.T) {
	p := Product{Mrp: 200, Discount: 25}
	p.ApplyPricing()
	assert.Equal(t, 150.0, p.FinalPrice)

	// Manual override wins over the derivation.
	p = Product{Mrp: 200, Discount: 25, FinalPrice: 149, FinalPriceManual: true}
	p.ApplyPricing()
	assert.Equal(t, 149.0, p.FinalPrice)
}
