package parlay

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stakehouse/parlay/models"
)

// AddLegRequest represents the request to add a leg to the slip
// @Description Request payload for binding one market outcome into the parlay
type AddLegRequest struct {
	MarketID string         `json:"market_id" validate:"required" example:"will-btc-close-above-100k"` // Market ID
	Outcome  models.Outcome `json:"outcome" validate:"required,oneof=yes no" example:"yes"`            // Chosen side
}

// EvaluateRequest represents the request to evaluate the current slip
// @Description Request payload for recomputing the parlay result. Quoted odds,
// when present, price the payout from a venue quote instead of fair odds.
type EvaluateRequest struct {
	Stake      decimal.Decimal  `json:"stake" validate:"required" example:"10.00"`                 // Stake amount
	QuotedOdds *decimal.Decimal `json:"quoted_odds,omitempty" validate:"omitempty" example:"6.50"` // Venue-quoted decimal odds
}

// SubmitRequest represents the request to submit the current slip
// @Description Request payload for submitting the parlay for placement
type SubmitRequest struct {
	Stake decimal.Decimal `json:"stake" validate:"required" example:"10.00"` // Stake amount
}

// LegResponse represents one leg in API responses
// @Description A leg of the current slip with its frozen probability
type LegResponse struct {
	ID          uuid.UUID       `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"` // Leg ID
	MarketID    string          `json:"market_id" example:"will-btc-close-above-100k"`     // Market ID
	Question    string          `json:"question" example:"Will BTC close above $100k?"`    // Market question
	Platform    string          `json:"platform" example:"polymarket"`                     // Originating venue
	Outcome     models.Outcome  `json:"outcome" example:"yes"`                             // Chosen side
	Probability decimal.Decimal `json:"probability" example:"0.62"`                        // Probability at add time
	AddedAt     time.Time       `json:"added_at" example:"2024-01-15T10:30:00Z"`           // When the leg was added
}

// SlipResponse represents the current builder slip
// @Description The slip's legs, the markets they cover, and the evaluated result
type SlipResponse struct {
	SessionID      uuid.UUID           `json:"session_id" example:"550e8400-e29b-41d4-a716-446655440000"` // Session ID
	Legs           []LegResponse       `json:"legs"`                                                      // Legs in insertion order
	AddedMarketIDs []string            `json:"added_market_ids"`                                          // Markets already on the slip
	Result         models.ParlayResult `json:"result"`                                                    // Evaluated result
}

// TicketResponse represents a placed (simulated) parlay ticket
// @Description Record of a submitted parlay
type TicketResponse struct {
	ID                  uuid.UUID             `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`         // Ticket ID
	SessionID           uuid.UUID             `json:"session_id" example:"550e8400-e29b-41d4-a716-446655440001"` // Session ID
	Legs                models.TicketLegs     `json:"legs"`                                                      // Submitted legs
	Stake               decimal.Decimal       `json:"stake" example:"10.00"`                                     // Stake amount
	CombinedProbability decimal.Decimal       `json:"combined_probability" example:"0.20"`                       // Combined win probability
	PotentialPayout     decimal.Decimal       `json:"potential_payout" example:"50.00"`                          // Payout if all legs win
	ExpectedValue       decimal.Decimal       `json:"expected_value" example:"0.00"`                             // Expected profit/loss
	RiskLevel           models.RiskLevel      `json:"risk_level" example:"medium"`                               // Risk tier
	Recommendation      models.Recommendation `json:"recommendation" example:"hold"`                             // Verdict
	PlacedAt            time.Time             `json:"placed_at" example:"2024-01-15T10:30:00Z"`                  // When placement was recorded
}

// Submission is the payload handed to the placement adapter. All money
// fields are finite by construction: a degenerate slip is rejected
// before a submission is built.
type Submission struct {
	SessionID           uuid.UUID             `json:"session_id"`
	Legs                models.TicketLegs     `json:"legs"`
	Stake               decimal.Decimal       `json:"stake"`
	CombinedProbability decimal.Decimal       `json:"combined_probability"`
	PotentialPayout     decimal.Decimal       `json:"potential_payout"`
	ExpectedValue       decimal.Decimal       `json:"expected_value"`
	RiskLevel           models.RiskLevel      `json:"risk_level"`
	Recommendation      models.Recommendation `json:"recommendation"`
}

func newLegResponse(leg *models.ParlayLeg) LegResponse {
	return LegResponse{
		ID:          leg.ID,
		MarketID:    leg.Market.ID,
		Question:    leg.Market.Question,
		Platform:    leg.Market.Platform,
		Outcome:     leg.Outcome,
		Probability: leg.Probability,
		AddedAt:     leg.AddedAt,
	}
}

func newTicketResponse(ticket *models.ParlayTicket) TicketResponse {
	return TicketResponse{
		ID:                  ticket.ID,
		SessionID:           ticket.SessionID,
		Legs:                ticket.Legs,
		Stake:               ticket.Stake,
		CombinedProbability: ticket.CombinedProbability,
		PotentialPayout:     ticket.PotentialPayout,
		ExpectedValue:       ticket.ExpectedValue,
		RiskLevel:           ticket.RiskLevel,
		Recommendation:      ticket.Recommendation,
		PlacedAt:            ticket.PlacedAt,
	}
}
