package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RiskLevel is the discrete risk bucket of a parlay, derived from its
// combined probability.
type RiskLevel string

const (
	RiskLow     RiskLevel = "low"
	RiskMedium  RiskLevel = "medium"
	RiskHigh    RiskLevel = "high"
	RiskExtreme RiskLevel = "extreme"
)

// Recommendation is the buy/hold/avoid verdict for a parlay.
type Recommendation string

const (
	RecommendationStrongBuy Recommendation = "strong_buy"
	RecommendationBuy       Recommendation = "buy"
	RecommendationHold      Recommendation = "hold"
	RecommendationAvoid     Recommendation = "avoid"
)

// ParlayLeg is one selected outcome bound into a parlay. Probability is
// a snapshot of the venue price at the moment the leg was added; it is
// never refreshed even if the market moves. Re-adding after removal
// re-snapshots. The embedded Market is the last-known state of the
// instrument at add time.
type ParlayLeg struct {
	ID          uuid.UUID       `json:"id"`
	Market      Market          `json:"market"`
	Outcome     Outcome         `json:"outcome"`
	Probability decimal.Decimal `json:"probability"`
	AddedAt     time.Time       `json:"added_at"`
}

// ParlayResult is the derived, stateless output of the evaluator. It is
// recomputed from (legs, stake) on every change and never persisted as
// independent state.
type ParlayResult struct {
	CombinedProbability decimal.Decimal `json:"combined_probability"`
	ImpliedOdds         Odds            `json:"implied_odds"`
	PotentialPayout     Odds            `json:"potential_payout"`
	ExpectedValue       decimal.Decimal `json:"expected_value"`
	RiskLevel           RiskLevel       `json:"risk_level"`
	Recommendation      Recommendation  `json:"recommendation"`
}

// TicketLeg is the flattened leg shape carried in a submission payload
// and persisted with the ticket.
type TicketLeg struct {
	MarketID    string          `json:"market_id"`
	Platform    string          `json:"platform"`
	Outcome     Outcome         `json:"outcome"`
	Probability decimal.Decimal `json:"probability"`
	Question    string          `json:"question"`
}

// TicketLegs is stored as a JSONB column.
type TicketLegs []TicketLeg

// Value implements driver.Valuer interface
func (tl TicketLegs) Value() (driver.Value, error) {
	return json.Marshal(tl)
}

// Scan implements sql.Scanner interface
func (tl *TicketLegs) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, tl)
	case string:
		return json.Unmarshal([]byte(v), tl)
	}
	return nil
}

// ParlayTicket is the record of a submitted parlay. Placement is a
// simulated/logged action; the ticket is the log entry, not a live
// order.
type ParlayTicket struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SessionID           uuid.UUID       `gorm:"type:uuid;not null;index:idx_parlay_tickets_session" json:"session_id"`
	Legs                TicketLegs      `gorm:"type:jsonb;not null" json:"legs"`
	Stake               decimal.Decimal `gorm:"type:decimal(20,2);not null;check:stake > 0" json:"stake"`
	CombinedProbability decimal.Decimal `gorm:"type:decimal(12,10);not null" json:"combined_probability"`
	PotentialPayout     decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"potential_payout"`
	ExpectedValue       decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"expected_value"`
	RiskLevel           RiskLevel       `gorm:"type:varchar(10);not null" json:"risk_level"`
	Recommendation      Recommendation  `gorm:"type:varchar(12);not null" json:"recommendation"`
	PlacedAt            time.Time       `gorm:"autoCreateTime" json:"placed_at"`
}

// TableName specifies the table name for ParlayTicket model
func (*ParlayTicket) TableName() string {
	return "parlay_tickets"
}

// BeforeCreate sets up the model before creation
func (t *ParlayTicket) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// LegCount returns the number of legs on the ticket.
func (t *ParlayTicket) LegCount() int {
	return len(t.Legs)
}
