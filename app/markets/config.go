package markets

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stakehouse/parlay/internal/cache"
	"github.com/stakehouse/parlay/models"
)

// Config represents the configuration for the markets module. The
// fallback set is explicit, injectable configuration rather than a
// hidden constant so tests can substitute deterministic fixtures.
type Config struct {
	BaseURL      string        `env:"MARKETS_BASE_URL"`
	FetchLimit   int           `env:"MARKETS_FETCH_LIMIT"`
	CacheTTL     time.Duration `env:"MARKETS_CACHE_TTL"`
	CacheBackend string        `env:"MARKETS_CACHE_BACKEND"`

	FallbackMarkets []models.Market
}

func (c *Config) Validate() error {
	type validation struct {
		ok  bool
		err error
	}

	checks := []validation{
		{c.CacheTTL > 0, models.ErrInvalidCacheTTL},
		{len(c.FallbackMarkets) > 0, models.ErrNoFallbackMarkets},
	}

	for _, v := range checks {
		if !v.ok {
			return v.err
		}
	}

	for i := range c.FallbackMarkets {
		if err := c.FallbackMarkets[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// GetDefaultConfig returns the default markets configuration
func GetDefaultConfig() *Config {
	return &Config{
		BaseURL:         "https://gamma-api.polymarket.com",
		FetchLimit:      50,
		CacheTTL:        30 * time.Second,
		CacheBackend:    cache.MemoryBackend,
		FallbackMarkets: DemoMarkets(),
	}
}

// DemoMarkets is the built-in offline market set. It keeps the parlay
// builder demonstrable when no supply source is reachable; responses
// built from it are flagged as non-live.
func DemoMarkets() []models.Market {
	price := func(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }
	return []models.Market{
		{
			ID:       "demo-btc-100k",
			Question: "Will Bitcoin close above $100k this quarter?",
			YesPrice: price(0.62),
			NoPrice:  price(0.38),
			Platform: "demo",
		},
		{
			ID:       "demo-fed-cut",
			Question: "Will the Fed cut rates at the next meeting?",
			YesPrice: price(0.45),
			NoPrice:  price(0.55),
			Platform: "demo",
		},
		{
			ID:       "demo-eth-flip",
			Question: "Will ETH outperform BTC this month?",
			YesPrice: price(0.33),
			NoPrice:  price(0.67),
			Platform: "demo",
		},
		{
			ID:       "demo-sp500-ath",
			Question: "Will the S&P 500 set a new all-time high this week?",
			YesPrice: price(0.28),
			NoPrice:  price(0.72),
			Platform: "demo",
		},
		{
			ID:       "demo-oil-80",
			Question: "Will WTI crude trade above $80 before Friday?",
			YesPrice: price(0.17),
			NoPrice:  price(0.83),
			Platform: "demo",
		},
		{
			ID:       "demo-cpi-hot",
			Question: "Will next month's CPI print come in above consensus?",
			YesPrice: price(0.51),
			NoPrice:  price(0.49),
			Platform: "demo",
		},
	}
}
