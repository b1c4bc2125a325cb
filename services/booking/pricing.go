package booking

import (
	"math"

	"homeserve/models"
)

// ComputeQuote derives the pricing figures for a draft booking:
//
//	basePrice  = unitPrice * durationHours * multiplier
//	serviceFee = basePrice * commissionRate
//	total      = basePrice + serviceFee
//
// The result is unrounded; rounding is applied only when figures are
// rendered, to avoid compounding rounding error across recalculations.
func ComputeQuote(unitPrice float64, durationHours int, multiplier, commissionRate float64) models.Quote {
	basePrice := unitPrice * float64(durationHours) * multiplier
	serviceFee := basePrice * commissionRate
	return models.Quote{
		BasePrice:  basePrice,
		ServiceFee: serviceFee,
		Total:      basePrice + serviceFee,
	}
}

// Round2 rounds a monetary value to two decimal places for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RoundQuote returns a copy of q with every figure rounded for display.
func RoundQuote(q models.Quote) models.Quote {
	return models.Quote{
		BasePrice:  Round2(q.BasePrice),
		ServiceFee: Round2(q.ServiceFee),
		Total:      Round2(q.Total),
	}
}
