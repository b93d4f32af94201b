package parlay

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stakehouse/parlay/internal/logger"
	"github.com/stakehouse/parlay/models"
)

// session is one builder slip. The mutex serializes slip mutation and
// the in-flight placement flag; evaluation itself is pure and runs
// outside the lock.
type session struct {
	mu       sync.Mutex
	store    *LegStore
	inFlight bool
}

// service implements the Service interface
type service struct {
	config    *Config
	evaluator Evaluator
	markets   MarketSource
	adapter   PlacementAdapter
	repo      Repository
	logger    logger.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
}

// NewService creates a new parlay builder service
func NewService(
	config *Config,
	evaluator Evaluator,
	markets MarketSource,
	adapter PlacementAdapter,
	repo Repository,
	log logger.Logger,
) Service {
	return &service{
		config:    config,
		evaluator: evaluator,
		markets:   markets,
		adapter:   adapter,
		repo:      repo,
		logger:    log,
		sessions:  make(map[uuid.UUID]*session),
	}
}

// CreateSession opens a new builder session with an empty slip.
func (s *service) CreateSession() uuid.UUID {
	id := uuid.New()

	s.mu.Lock()
	s.sessions[id] = &session{store: NewLegStore(s.config.MaxLegs)}
	s.mu.Unlock()

	return id
}

func (s *service) getSession(id uuid.UUID) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	return sess, nil
}

// AddLeg snapshots the chosen side of the market into the slip.
func (s *service) AddLeg(ctx context.Context, sessionID uuid.UUID, marketID string, outcome models.Outcome) (*models.ParlayLeg, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	market, err := s.markets.GetMarket(ctx, marketID)
	if err != nil {
		return nil, err
	}
	if err := market.Validate(); err != nil {
		return nil, err
	}

	sess.mu.Lock()
	leg, err := sess.store.AddLeg(*market, outcome)
	sess.mu.Unlock()
	if err != nil {
		return nil, err
	}

	return &leg, nil
}

// RemoveLeg removes one leg by id; absent ids are a no-op.
func (s *service) RemoveLeg(_ context.Context, sessionID, legID uuid.UUID) error {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	sess.store.RemoveLeg(legID)
	sess.mu.Unlock()
	return nil
}

// ClearLegs empties the slip.
func (s *service) ClearLegs(_ context.Context, sessionID uuid.UUID) error {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	sess.store.Clear()
	sess.mu.Unlock()
	return nil
}

// GetSlip returns the slip's legs, covered markets, and evaluated
// result for the given stake.
func (s *service) GetSlip(_ context.Context, sessionID uuid.UUID, stake decimal.Decimal) (*SlipResponse, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	legs := sess.store.Legs()
	marketIDs := sess.store.AddedMarketIDs()
	sess.mu.Unlock()

	legResponses := make([]LegResponse, 0, len(legs))
	for i := range legs {
		legResponses = append(legResponses, newLegResponse(&legs[i]))
	}

	ids := make([]string, 0, len(marketIDs))
	for id := range marketIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return &SlipResponse{
		SessionID:      sessionID,
		Legs:           legResponses,
		AddedMarketIDs: ids,
		Result:         s.evaluator.Evaluate(legs, stake),
	}, nil
}

// Evaluate recomputes the parlay result for the current slip.
func (s *service) Evaluate(_ context.Context, sessionID uuid.UUID, req *EvaluateRequest) (*models.ParlayResult, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	legs := sess.store.Legs()
	sess.mu.Unlock()

	var result models.ParlayResult
	if req.QuotedOdds != nil {
		result = s.evaluator.EvaluateWithQuotedOdds(legs, req.Stake, *req.QuotedOdds)
	} else {
		result = s.evaluator.Evaluate(legs, req.Stake)
	}
	return &result, nil
}

// Submit validates the slip, hands the payload to the placement
// adapter, and clears the slip on acceptance. On adapter failure the
// legs are preserved so the user can retry; retrying is always a user
// action, never automatic. An acceptance that lands after the user has
// mutated or cleared the slip leaves the slip alone.
func (s *service) Submit(ctx context.Context, sessionID uuid.UUID, req *SubmitRequest) (*TicketResponse, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if sess.inFlight {
		sess.mu.Unlock()
		return nil, models.ErrPlacementInFlight
	}

	legs := sess.store.Legs()
	if len(legs) < s.config.MinLegsForSubmission {
		sess.mu.Unlock()
		return nil, models.ErrTooFewLegs
	}
	if !req.Stake.GreaterThan(decimal.Zero) {
		sess.mu.Unlock()
		return nil, models.ErrInvalidStake
	}

	result := s.evaluator.Evaluate(legs, req.Stake)
	payout, err := result.PotentialPayout.Value()
	if err != nil {
		// The payload carries finite numbers only.
		sess.mu.Unlock()
		return nil, models.ErrDegenerateParlay
	}

	submission := &Submission{
		SessionID:           sessionID,
		Legs:                ticketLegs(legs),
		Stake:               req.Stake,
		CombinedProbability: result.CombinedProbability,
		PotentialPayout:     payout,
		ExpectedValue:       result.ExpectedValue,
		RiskLevel:           result.RiskLevel,
		Recommendation:      result.Recommendation,
	}

	sess.inFlight = true
	version := sess.store.Version()
	sess.mu.Unlock()

	ticket, placeErr := s.adapter.Place(ctx, submission)

	sess.mu.Lock()
	sess.inFlight = false
	if placeErr != nil {
		sess.mu.Unlock()
		s.logger.Error(placeErr, map[string]interface{}{
			"session_id": sessionID.String(),
			"legs":       len(legs),
		})
		return nil, fmt.Errorf("%w: %s", models.ErrPlacementFailed, placeErr)
	}
	if sess.store.Version() == version {
		sess.store.Clear()
	}
	sess.mu.Unlock()

	s.logger.Info("parlay placed", map[string]interface{}{
		"session_id":           sessionID.String(),
		"ticket_id":            ticket.ID.String(),
		"legs":                 len(legs),
		"stake":                req.Stake.String(),
		"combined_probability": result.CombinedProbability.String(),
	})

	resp := newTicketResponse(ticket)
	return &resp, nil
}

// GetSessionTickets lists the tickets recorded for a session.
func (s *service) GetSessionTickets(ctx context.Context, sessionID uuid.UUID) ([]TicketResponse, error) {
	tickets, err := s.repo.GetTicketsBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	out := make([]TicketResponse, 0, len(tickets))
	for i := range tickets {
		out = append(out, newTicketResponse(&tickets[i]))
	}
	return out, nil
}

func ticketLegs(legs []models.ParlayLeg) models.TicketLegs {
	out := make(models.TicketLegs, 0, len(legs))
	for i := range legs {
		leg := &legs[i]
		out = append(out, models.TicketLeg{
			MarketID:    leg.Market.ID,
			Platform:    leg.Market.Platform,
			Outcome:     leg.Outcome,
			Probability: leg.Probability,
			Question:    leg.Market.Question,
		})
	}
	return out
}
