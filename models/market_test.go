package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validMarket() Market {
	return Market{
		ID:       "will-btc-close-above-100k",
		Question: "Will BTC close above $100k this year?",
		YesPrice: decimal.NewFromFloat(0.62),
		NoPrice:  decimal.NewFromFloat(0.40),
		Platform: "polymarket",
	}
}

func TestOutcome_Valid(t *testing.T) {
	assert.True(t, OutcomeYes.Valid())
	assert.True(t, OutcomeNo.Valid())
	assert.False(t, Outcome("maybe").Valid())
	assert.False(t, Outcome("").Valid())
}

func TestMarket_PriceFor(t *testing.T) {
	m := validMarket()
	assert.True(t, m.YesPrice.Equal(m.PriceFor(OutcomeYes)))
	assert.True(t, m.NoPrice.Equal(m.PriceFor(OutcomeNo)))
}

func TestMarket_Validate(t *testing.T) {
	t.Run("valid market", func(t *testing.T) {
		m := validMarket()
		assert.NoError(t, m.Validate())
	})

	t.Run("missing id", func(t *testing.T) {
		m := validMarket()
		m.ID = ""
		assert.ErrorIs(t, m.Validate(), ErrInvalidMarketID)
	})

	t.Run("missing question", func(t *testing.T) {
		m := validMarket()
		m.Question = ""
		assert.ErrorIs(t, m.Validate(), ErrInvalidMarketQuestion)
	})

	t.Run("missing platform", func(t *testing.T) {
		m := validMarket()
		m.Platform = ""
		assert.ErrorIs(t, m.Validate(), ErrInvalidMarketPlatform)
	})

	t.Run("negative price", func(t *testing.T) {
		m := validMarket()
		m.YesPrice = decimal.NewFromFloat(-0.01)
		assert.ErrorIs(t, m.Validate(), ErrInvalidOutcomePrice)
	})

	t.Run("price above one", func(t *testing.T) {
		m := validMarket()
		m.NoPrice = decimal.NewFromFloat(1.01)
		assert.ErrorIs(t, m.Validate(), ErrInvalidOutcomePrice)
	})

	t.Run("boundary prices are allowed", func(t *testing.T) {
		m := validMarket()
		m.YesPrice = decimal.Zero
		m.NoPrice = decimal.NewFromInt(1)
		assert.NoError(t, m.Validate())
	})

	t.Run("sides need not sum to one", func(t *testing.T) {
		m := validMarket()
		m.YesPrice = decimal.NewFromFloat(0.62)
		m.NoPrice = decimal.NewFromFloat(0.44)
		assert.NoError(t, m.Validate())
	})
}
