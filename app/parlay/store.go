package parlay

import (
	"time"

	"github.com/google/uuid"

	"github.com/stakehouse/parlay/models"
)

// LegStore holds the ordered sequence of legs for one builder session
// and enforces the leg cap. Insertion order is display order and the
// order legs appear in a submission payload; it has no effect on the
// evaluator, which is commutative.
//
// The store itself is not goroutine-safe; the owning session serializes
// access. The version counter increments on every mutation so callers
// can detect that the store changed underneath an in-flight placement.
type LegStore struct {
	maxLegs int
	newID   func() uuid.UUID
	now     func() time.Time

	legs    []models.ParlayLeg
	version uint64
}

// NewLegStore creates a leg store with uuid/time identity sources.
func NewLegStore(maxLegs int) *LegStore {
	return NewLegStoreWithIdentity(maxLegs, uuid.New, time.Now)
}

// NewLegStoreWithIdentity creates a leg store with injected id and
// clock sources so tests are deterministic.
func NewLegStoreWithIdentity(maxLegs int, newID func() uuid.UUID, now func() time.Time) *LegStore {
	return &LegStore{
		maxLegs: maxLegs,
		newID:   newID,
		now:     now,
	}
}

// AddLeg snapshots the price of the chosen side and appends a new leg.
// The probability is locked at add time and never refreshed; re-adding
// after removal re-snapshots. Fails with models.ErrParlayFull and no
// state change when the store is at capacity.
func (s *LegStore) AddLeg(market models.Market, outcome models.Outcome) (models.ParlayLeg, error) {
	if !outcome.Valid() {
		return models.ParlayLeg{}, models.ErrInvalidOutcome
	}
	if len(s.legs) >= s.maxLegs {
		return models.ParlayLeg{}, models.ErrParlayFull
	}

	leg := models.ParlayLeg{
		ID:          s.newID(),
		Market:      market,
		Outcome:     outcome,
		Probability: market.PriceFor(outcome),
		AddedAt:     s.now(),
	}
	s.legs = append(s.legs, leg)
	s.version++
	return leg, nil
}

// RemoveLeg removes the leg with the given id. Removing an absent id is
// a no-op, not an error.
func (s *LegStore) RemoveLeg(id uuid.UUID) {
	for i := range s.legs {
		if s.legs[i].ID == id {
			s.legs = append(s.legs[:i], s.legs[i+1:]...)
			s.version++
			return
		}
	}
}

// Clear empties the store unconditionally.
func (s *LegStore) Clear() {
	if len(s.legs) == 0 {
		return
	}
	s.legs = nil
	s.version++
}

// Legs returns a copy of the legs in insertion order.
func (s *LegStore) Legs() []models.ParlayLeg {
	out := make([]models.ParlayLeg, len(s.legs))
	copy(out, s.legs)
	return out
}

// Len returns the number of legs held.
func (s *LegStore) Len() int {
	return len(s.legs)
}

// AddedMarketIDs returns the set of market ids represented by some leg,
// regardless of side. This is a presentation guard for suppressing
// re-adds, not a store invariant.
func (s *LegStore) AddedMarketIDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(s.legs))
	for i := range s.legs {
		ids[s.legs[i].Market.ID] = struct{}{}
	}
	return ids
}

// Version returns the mutation counter.
func (s *LegStore) Version() uint64 {
	return s.version
}
