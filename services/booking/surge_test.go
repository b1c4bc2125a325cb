package booking

import (
	"context"
	"testing"

	"homeserve/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSurge() *DefaultSurgeService {
	// nil cache: the rule is evaluated directly.
	return NewDefaultSurgeService(nil, 17, 20, 1.25)
}

func TestSurgeMultiplierWindow(t *testing.T) {
	svc := newTestSurge()
	ctx := context.Background()

	cases := []struct {
		slot string
		want float64
	}{
		{"08:00", 1.0},
		{"16:00", 1.0},
		{"17:00", 1.25}, // window start is inclusive
		{"18:00", 1.25},
		{"20:00", 1.25}, // window end is inclusive
		{"21:00", 1.0},
	}
	for _, tc := range cases {
		got, err := svc.Multiplier(ctx, models.CategoryCleaning, tc.slot)
		require.NoError(t, err, "slot %s", tc.slot)
		assert.Equal(t, tc.want, got, "slot %s", tc.slot)
	}
}

func TestSurgeMultiplierMalformedSlot(t *testing.T) {
	svc := newTestSurge()
	ctx := context.Background()

	for _, slot := range []string{"", "late evening", "25:00", "7pm", "17"} {
		got, err := svc.Multiplier(ctx, models.CategoryPlumbing, slot)
		assert.Error(t, err, "slot %q", slot)
		assert.Equal(t, 1.0, got, "malformed slot %q must quote the base rate", slot)
	}
}

func TestSurgeMultiplierCancelledContext(t *testing.T) {
	svc := newTestSurge()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := svc.Multiplier(ctx, models.CategoryElectrical, "18:00")
	assert.Error(t, err)
	assert.Equal(t, 1.0, got)
}
