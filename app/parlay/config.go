package parlay

import (
	"github.com/shopspring/decimal"

	"github.com/stakehouse/parlay/models"
)

// Config represents the configuration for the parlay module. Risk and
// recommendation thresholds are configuration, not constants, so the
// classification tables can be tuned without a code change.
type Config struct {
	MaxLegs              int `env:"PARLAY_MAX_LEGS"`
	MinLegsForSubmission int `env:"PARLAY_MIN_LEGS_FOR_SUBMISSION"`

	// Risk tiers on combined probability. A parlay is low risk at or
	// above LowRiskMinProbability, medium at or above
	// MediumRiskMinProbability, high at or above
	// HighRiskMinProbability, extreme below that.
	LowRiskMinProbability    decimal.Decimal `env:"PARLAY_LOW_RISK_MIN_PROBABILITY"`
	MediumRiskMinProbability decimal.Decimal `env:"PARLAY_MEDIUM_RISK_MIN_PROBABILITY"`
	HighRiskMinProbability   decimal.Decimal `env:"PARLAY_HIGH_RISK_MIN_PROBABILITY"`

	// Recommendation bands on (EV/stake, combined probability),
	// evaluated in order: strong_buy, buy, hold, else avoid.
	StrongBuyMinEVRatio     decimal.Decimal `env:"PARLAY_STRONG_BUY_MIN_EV_RATIO"`
	StrongBuyMinProbability decimal.Decimal `env:"PARLAY_STRONG_BUY_MIN_PROBABILITY"`
	BuyMinEVRatio           decimal.Decimal `env:"PARLAY_BUY_MIN_EV_RATIO"`
	BuyMinProbability       decimal.Decimal `env:"PARLAY_BUY_MIN_PROBABILITY"`
	HoldMinEVRatio          decimal.Decimal `env:"PARLAY_HOLD_MIN_EV_RATIO"`
}

func (c *Config) Validate() error {
	type validation struct {
		ok  bool
		err error
	}

	one := decimal.NewFromInt(1)

	checks := []validation{
		{c.MaxLegs > 0, models.ErrInvalidLegCap},
		{c.MinLegsForSubmission >= 2 && c.MinLegsForSubmission <= c.MaxLegs, models.ErrInvalidMinLegs},

		{c.HighRiskMinProbability.GreaterThan(decimal.Zero) &&
			c.MediumRiskMinProbability.GreaterThan(c.HighRiskMinProbability) &&
			c.LowRiskMinProbability.GreaterThan(c.MediumRiskMinProbability) &&
			c.LowRiskMinProbability.LessThan(one),
			models.ErrInvalidRiskThresholds},

		{c.StrongBuyMinEVRatio.GreaterThan(c.BuyMinEVRatio) &&
			c.BuyMinEVRatio.GreaterThan(c.HoldMinEVRatio),
			models.ErrInvalidRecommendationBands},
		{c.StrongBuyMinProbability.GreaterThan(decimal.Zero) &&
			c.StrongBuyMinProbability.LessThan(one) &&
			c.BuyMinProbability.GreaterThan(decimal.Zero) &&
			c.BuyMinProbability.LessThan(one),
			models.ErrInvalidRecommendationBands},
	}

	for _, v := range checks {
		if !v.ok {
			return v.err
		}
	}
	return nil
}

// GetDefaultConfig returns the default parlay configuration
func GetDefaultConfig() *Config {
	return &Config{
		MaxLegs:              10,
		MinLegsForSubmission: 2,

		LowRiskMinProbability:    decimal.NewFromFloat(0.40),
		MediumRiskMinProbability: decimal.NewFromFloat(0.20),
		HighRiskMinProbability:   decimal.NewFromFloat(0.05),

		StrongBuyMinEVRatio:     decimal.NewFromFloat(0.20),
		StrongBuyMinProbability: decimal.NewFromFloat(0.15),
		BuyMinEVRatio:           decimal.NewFromFloat(0.05),
		BuyMinProbability:       decimal.NewFromFloat(0.10),
		HoldMinEVRatio:          decimal.NewFromFloat(-0.10),
	}
}
