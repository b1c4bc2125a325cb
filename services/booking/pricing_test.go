package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeQuoteSurgeEvening(t *testing.T) {
	// 40/hr cleaning, 3 hours, evening surge.
	quote := ComputeQuote(40, 3, 1.25, 0.15)

	assert.InDelta(t, 150.0, quote.BasePrice, 1e-9)
	assert.InDelta(t, 22.50, quote.ServiceFee, 1e-9)
	assert.InDelta(t, 172.50, quote.Total, 1e-9)
}

func TestComputeQuoteOffPeak(t *testing.T) {
	// 85/hr electrical, 2 hours, no surge.
	quote := ComputeQuote(85, 2, 1.0, 0.15)

	assert.InDelta(t, 170.0, quote.BasePrice, 1e-9)
	assert.InDelta(t, 25.50, quote.ServiceFee, 1e-9)
	assert.InDelta(t, 195.50, quote.Total, 1e-9)
}

func TestComputeQuoteZeroCommission(t *testing.T) {
	quote := ComputeQuote(60, 1, 1.0, 0)

	assert.InDelta(t, 60.0, quote.BasePrice, 1e-9)
	assert.Zero(t, quote.ServiceFee)
	assert.InDelta(t, 60.0, quote.Total, 1e-9)
}

// The stored quote must stay unrounded; only the display copy rounds.
func TestComputeQuoteDoesNotRoundIntermediates(t *testing.T) {
	quote := ComputeQuote(33.33, 3, 1.25, 0.15)

	base := 33.33 * 3 * 1.25
	assert.Equal(t, base, quote.BasePrice)
	assert.Equal(t, base*0.15, quote.ServiceFee)
	assert.Equal(t, base+base*0.15, quote.Total)

	rounded := RoundQuote(quote)
	assert.Equal(t, Round2(quote.BasePrice), rounded.BasePrice)
	assert.Equal(t, Round2(quote.ServiceFee), rounded.ServiceFee)
	assert.Equal(t, Round2(quote.Total), rounded.Total)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 172.5, Round2(172.499999999))
	assert.Equal(t, 10.55, Round2(10.554))
	assert.Equal(t, 0.0, Round2(0))
}
