package markets

import (
	"context"
	"time"

	"github.com/stakehouse/parlay/internal/cache"
	"github.com/stakehouse/parlay/internal/logger"
	"github.com/stakehouse/parlay/models"
)

const marketListKey = "markets:list"

// service implements the Service interface
type service struct {
	config *Config
	source Source
	cache  cache.Cache[MarketListResponse]
	logger logger.Logger
	now    func() time.Time
}

// NewService creates a new market supply service
func NewService(config *Config, source Source, c cache.Cache[MarketListResponse], log logger.Logger) Service {
	return &service{
		config: config,
		source: source,
		cache:  c,
		logger: log,
		now:    time.Now,
	}
}

// GetMarkets returns the current market list. Live fetches are cached
// for the configured TTL; a failed or empty fetch serves the fallback
// set flagged non-live so the builder stays demonstrable offline.
func (s *service) GetMarkets(ctx context.Context) (*MarketListResponse, error) {
	if cached, err := s.cache.Get(ctx, marketListKey); err == nil {
		return &cached, nil
	}

	fetched, err := s.source.FetchMarkets(ctx, s.config.FetchLimit)
	if err != nil || len(fetched) == 0 {
		if err != nil {
			s.logger.Error(err, map[string]interface{}{
				"fallback_markets": len(s.config.FallbackMarkets),
			})
		} else {
			s.logger.Info("market source returned no markets, serving fallback", nil)
		}
		fallback := s.fallbackResponse()
		return &fallback, nil
	}

	resp := MarketListResponse{
		Markets:   fetched,
		Live:      true,
		Source:    gammaPlatform,
		FetchedAt: s.now(),
	}
	if err := s.cache.Set(ctx, marketListKey, resp, s.config.CacheTTL); err != nil {
		s.logger.Error(err, map[string]interface{}{"key": marketListKey})
	}
	return &resp, nil
}

// GetMarket returns one market by id from the current list.
func (s *service) GetMarket(ctx context.Context, id string) (*models.Market, error) {
	list, err := s.GetMarkets(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list.Markets {
		if list.Markets[i].ID == id {
			market := list.Markets[i]
			return &market, nil
		}
	}
	return nil, models.ErrRecordNotFound
}

// Refresh drops the cached list so the next read refetches.
func (s *service) Refresh(ctx context.Context) error {
	return s.cache.Delete(ctx, marketListKey)
}

func (s *service) fallbackResponse() MarketListResponse {
	markets := make([]models.Market, len(s.config.FallbackMarkets))
	copy(markets, s.config.FallbackMarkets)
	return MarketListResponse{
		Markets:   markets,
		Live:      false,
		Source:    "fallback",
		FetchedAt: s.now(),
	}
}
