package parlay

import (
	"context"

	"github.com/stakehouse/parlay/internal/logger"
	"github.com/stakehouse/parlay/models"
)

// recordingAdapter is the reference placement adapter. Placement is a
// simulated action: accepting a submission means persisting a ticket
// row, not routing an order to a venue.
type recordingAdapter struct {
	repo   Repository
	logger logger.Logger
}

// NewRecordingAdapter creates a placement adapter that records tickets
func NewRecordingAdapter(repo Repository, log logger.Logger) PlacementAdapter {
	return &recordingAdapter{
		repo:   repo,
		logger: log,
	}
}

func (a *recordingAdapter) Place(ctx context.Context, submission *Submission) (*models.ParlayTicket, error) {
	ticket := &models.ParlayTicket{
		SessionID:           submission.SessionID,
		Legs:                submission.Legs,
		Stake:               submission.Stake,
		CombinedProbability: submission.CombinedProbability,
		PotentialPayout:     submission.PotentialPayout,
		ExpectedValue:       submission.ExpectedValue,
		RiskLevel:           submission.RiskLevel,
		Recommendation:      submission.Recommendation,
	}

	if err := a.repo.CreateTicket(ctx, ticket); err != nil {
		return nil, err
	}

	a.logger.Debug("simulated placement recorded", map[string]interface{}{
		"ticket_id": ticket.ID.String(),
		"legs":      len(ticket.Legs),
	})

	return ticket, nil
}
