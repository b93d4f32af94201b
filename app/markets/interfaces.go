package markets

import (
	"context"

	"github.com/stakehouse/parlay/models"
)

// Source supplies candidate binary-outcome markets from a venue.
type Source interface {
	FetchMarkets(ctx context.Context, limit int) ([]models.Market, error)
}

// Service defines the interface for market supply business logic
type Service interface {
	// GetMarkets returns the current market list, from cache, the
	// source, or the flagged fallback set.
	GetMarkets(ctx context.Context) (*MarketListResponse, error)
	// GetMarket returns one market by id from the current list.
	GetMarket(ctx context.Context, id string) (*models.Market, error)
	// Refresh drops the cached list so the next read refetches.
	Refresh(ctx context.Context) error
}
