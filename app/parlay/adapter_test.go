package parlay

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stakehouse/parlay/internal/logger"
	"github.com/stakehouse/parlay/models"
)

func TestRecordingAdapter_Place(t *testing.T) {
	submission := &Submission{
		SessionID: uuid.New(),
		Legs: models.TicketLegs{
			{MarketID: "m1", Platform: "demo", Outcome: models.OutcomeYes, Probability: decimal.NewFromFloat(0.5), Question: "q1"},
		},
		Stake:               decimal.NewFromInt(10),
		CombinedProbability: decimal.NewFromFloat(0.5),
		PotentialPayout:     decimal.NewFromInt(20),
		ExpectedValue:       decimal.Zero,
		RiskLevel:           models.RiskLow,
		Recommendation:      models.RecommendationHold,
	}

	t.Run("records a ticket from the submission", func(t *testing.T) {
		repo := &MockRepository{}
		repo.On("CreateTicket", mock.Anything, mock.MatchedBy(func(ticket *models.ParlayTicket) bool {
			return ticket.SessionID == submission.SessionID &&
				len(ticket.Legs) == 1 &&
				ticket.Stake.Equal(submission.Stake)
		})).Return(nil)

		adapter := NewRecordingAdapter(repo, logger.NewNullLogger())
		ticket, err := adapter.Place(context.Background(), submission)

		require.NoError(t, err)
		assert.Equal(t, submission.SessionID, ticket.SessionID)
		repo.AssertExpectations(t)
	})

	t.Run("propagates persistence failure", func(t *testing.T) {
		repo := &MockRepository{}
		repo.On("CreateTicket", mock.Anything, mock.Anything).Return(errors.New("db down"))

		adapter := NewRecordingAdapter(repo, logger.NewNullLogger())
		_, err := adapter.Place(context.Background(), submission)

		assert.Error(t, err)
	})
}
