package parlay

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stakehouse/parlay/models"
)

// Evaluator defines the interface for the pure parlay calculation
type Evaluator interface {
	Evaluate(legs []models.ParlayLeg, stake decimal.Decimal) models.ParlayResult
	EvaluateWithQuotedOdds(legs []models.ParlayLeg, stake, quotedOdds decimal.Decimal) models.ParlayResult
}

// MarketSource supplies the current state of a single market by id. The
// markets module implements it; the parlay service only snapshots
// prices from it when a leg is added.
type MarketSource interface {
	GetMarket(ctx context.Context, id string) (*models.Market, error)
}

// PlacementAdapter accepts a finalized parlay and records or executes
// it. The core has no opinion on the adapter's internals; the reference
// adapter persists a simulated ticket.
type PlacementAdapter interface {
	Place(ctx context.Context, submission *Submission) (*models.ParlayTicket, error)
}

// Repository defines the interface for ticket persistence
type Repository interface {
	CreateTicket(ctx context.Context, ticket *models.ParlayTicket) error
	GetTicketByID(ctx context.Context, id uuid.UUID) (*models.ParlayTicket, error)
	GetTicketsBySession(ctx context.Context, sessionID uuid.UUID) ([]models.ParlayTicket, error)
}

// Service defines the interface for parlay builder business logic
type Service interface {
	CreateSession() uuid.UUID

	AddLeg(ctx context.Context, sessionID uuid.UUID, marketID string, outcome models.Outcome) (*models.ParlayLeg, error)
	RemoveLeg(ctx context.Context, sessionID, legID uuid.UUID) error
	ClearLegs(ctx context.Context, sessionID uuid.UUID) error

	GetSlip(ctx context.Context, sessionID uuid.UUID, stake decimal.Decimal) (*SlipResponse, error)
	Evaluate(ctx context.Context, sessionID uuid.UUID, req *EvaluateRequest) (*models.ParlayResult, error)

	Submit(ctx context.Context, sessionID uuid.UUID, req *SubmitRequest) (*TicketResponse, error)
	GetSessionTickets(ctx context.Context, sessionID uuid.UUID) ([]TicketResponse, error)
}
