package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultBillingConfig(t *testing.T) {
	cfg := DefaultBillingConfig()

	assert.Equal(t, 30, cfg.DueDays)
	assert.Equal(t, int64(1000), cfg.SequenceSeed)
	assert.NoError(t, validateBillingConfig(cfg))
}

func TestDiscountMultiplierMatchesCaseInsensitively(t *testing.T) {
	cfg := DefaultBillingConfig()

	assert.Equal(t, 0.9, cfg.DiscountMultiplier("DISC10"))
	assert.Equal(t, 0.9, cfg.DiscountMultiplier("disc10"))
	assert.Equal(t, 0.9, cfg.DiscountMultiplier("Disc10"))
}

func TestDiscountMultiplierIgnoresUnknownCodes(t *testing.T) {
	cfg := DefaultBillingConfig()

	assert.Equal(t, float64(1), cfg.DiscountMultiplier(""))
	assert.Equal(t, float64(1), cfg.DiscountMultiplier("HALFOFF"))
}

func TestValidateBillingConfig(t *testing.T) {
	cfg := DefaultBillingConfig()
	cfg.DueDays = 0
	assert.Error(t, validateBillingConfig(cfg))

	cfg = DefaultBillingConfig()
	cfg.DiscountCodes = []DiscountCode{{Code: "OVER", PercentOff: 120}}
	assert.Error(t, validateBillingConfig(cfg))

	cfg = DefaultBillingConfig()
	cfg.DiscountCodes = []DiscountCode{{Code: " ", PercentOff: 10}}
	assert.Error(t, validateBillingConfig(cfg))
}

func TestStaticHolderRoundTrips(t *testing.T) {
	cfg := DefaultBillingConfig()
	cfg.DueDays = 14

	holder := NewStaticBillingConfigHolder(cfg)
	assert.Equal(t, 14, holder.Get().DueDays)
}
