package models

import (
	"github.com/shopspring/decimal"
)

// Outcome is the side of a binary market a leg is taken on.
type Outcome string

const (
	OutcomeYes Outcome = "yes"
	OutcomeNo  Outcome = "no"
)

// Valid reports whether the outcome is one of the two binary sides.
func (o Outcome) Valid() bool {
	return o == OutcomeYes || o == OutcomeNo
}

// Market is a tradable binary-outcome instrument as stated by a venue.
// Prices are market-implied probabilities in [0,1]; the two sides are
// not required to sum to exactly 1 (markets can be mispriced). Markets
// are immutable once fetched; the evaluator never writes to them.
type Market struct {
	ID       string          `json:"id"`
	Question string          `json:"question"`
	YesPrice decimal.Decimal `json:"yes_price"`
	NoPrice  decimal.Decimal `json:"no_price"`
	Platform string          `json:"platform"`
}

// PriceFor returns the venue price of the given side.
func (m *Market) PriceFor(outcome Outcome) decimal.Decimal {
	if outcome == OutcomeNo {
		return m.NoPrice
	}
	return m.YesPrice
}

// Validate checks the record as it arrives from a supply source.
func (m *Market) Validate() error {
	if m.ID == "" {
		return ErrInvalidMarketID
	}
	if m.Question == "" {
		return ErrInvalidMarketQuestion
	}
	if m.Platform == "" {
		return ErrInvalidMarketPlatform
	}
	one := decimal.NewFromInt(1)
	for _, p := range []decimal.Decimal{m.YesPrice, m.NoPrice} {
		if p.IsNegative() || p.GreaterThan(one) {
			return ErrInvalidOutcomePrice
		}
	}
	return nil
}
