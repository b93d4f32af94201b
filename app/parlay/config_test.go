package parlay

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/stakehouse/parlay/models"
)

func TestConfig_Validate(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		assert.NoError(t, GetDefaultConfig().Validate())
	})

	t.Run("rejects non-positive leg cap", func(t *testing.T) {
		cfg := GetDefaultConfig()
		cfg.MaxLegs = 0
		assert.ErrorIs(t, cfg.Validate(), models.ErrInvalidLegCap)
	})

	t.Run("rejects min legs below two", func(t *testing.T) {
		cfg := GetDefaultConfig()
		cfg.MinLegsForSubmission = 1
		assert.ErrorIs(t, cfg.Validate(), models.ErrInvalidMinLegs)
	})

	t.Run("rejects min legs above the cap", func(t *testing.T) {
		cfg := GetDefaultConfig()
		cfg.MinLegsForSubmission = cfg.MaxLegs + 1
		assert.ErrorIs(t, cfg.Validate(), models.ErrInvalidMinLegs)
	})

	t.Run("rejects unordered risk thresholds", func(t *testing.T) {
		cfg := GetDefaultConfig()
		cfg.MediumRiskMinProbability = decimal.NewFromFloat(0.45)
		assert.ErrorIs(t, cfg.Validate(), models.ErrInvalidRiskThresholds)
	})

	t.Run("rejects unordered recommendation bands", func(t *testing.T) {
		cfg := GetDefaultConfig()
		cfg.BuyMinEVRatio = cfg.StrongBuyMinEVRatio.Add(decimal.NewFromFloat(0.01))
		assert.ErrorIs(t, cfg.Validate(), models.ErrInvalidRecommendationBands)
	})

	t.Run("rejects out-of-range band probabilities", func(t *testing.T) {
		cfg := GetDefaultConfig()
		cfg.BuyMinProbability = decimal.NewFromInt(2)
		assert.ErrorIs(t, cfg.Validate(), models.ErrInvalidRecommendationBands)
	})
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	assert.Equal(t, 10, cfg.MaxLegs)
	assert.Equal(t, 2, cfg.MinLegsForSubmission)
	assert.True(t, cfg.LowRiskMinProbability.Equal(decimal.NewFromFloat(0.40)))
	assert.True(t, cfg.MediumRiskMinProbability.Equal(decimal.NewFromFloat(0.20)))
	assert.True(t, cfg.HighRiskMinProbability.Equal(decimal.NewFromFloat(0.05)))
	assert.True(t, cfg.HoldMinEVRatio.Equal(decimal.NewFromFloat(-0.10)))
}
