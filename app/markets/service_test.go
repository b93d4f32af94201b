package markets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakehouse/parlay/internal/cache"
	"github.com/stakehouse/parlay/internal/logger"
	"github.com/stakehouse/parlay/models"
)

type fakeSource struct {
	markets []models.Market
	err     error
	calls   int
}

func (f *fakeSource) FetchMarkets(_ context.Context, _ int) ([]models.Market, error) {
	f.calls++
	return f.markets, f.err
}

func newTestService(source Source) (*service, *Config) {
	cfg := GetDefaultConfig()
	cfg.CacheTTL = time.Minute
	svc := NewService(cfg, source, cache.NewMemoryCache[MarketListResponse](), logger.NewNullLogger()).(*service)
	return svc, cfg
}

func TestService_GetMarkets(t *testing.T) {
	t.Run("serves live markets from the source", func(t *testing.T) {
		source := &fakeSource{markets: DemoMarkets()[:2]}
		svc, _ := newTestService(source)

		list, err := svc.GetMarkets(context.Background())

		require.NoError(t, err)
		assert.True(t, list.Live)
		assert.Equal(t, "polymarket", list.Source)
		assert.Len(t, list.Markets, 2)
	})

	t.Run("caches the live list", func(t *testing.T) {
		source := &fakeSource{markets: DemoMarkets()[:1]}
		svc, _ := newTestService(source)

		_, err := svc.GetMarkets(context.Background())
		require.NoError(t, err)
		_, err = svc.GetMarkets(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, source.calls)
	})

	t.Run("serves fallback when the source fails", func(t *testing.T) {
		source := &fakeSource{err: errors.New("gamma down")}
		svc, cfg := newTestService(source)

		list, err := svc.GetMarkets(context.Background())

		require.NoError(t, err)
		assert.False(t, list.Live)
		assert.Equal(t, "fallback", list.Source)
		assert.Len(t, list.Markets, len(cfg.FallbackMarkets))
	})

	t.Run("serves fallback when the source returns nothing", func(t *testing.T) {
		source := &fakeSource{}
		svc, _ := newTestService(source)

		list, err := svc.GetMarkets(context.Background())

		require.NoError(t, err)
		assert.False(t, list.Live)
	})

	t.Run("does not cache the fallback list", func(t *testing.T) {
		source := &fakeSource{err: errors.New("gamma down")}
		svc, _ := newTestService(source)

		_, err := svc.GetMarkets(context.Background())
		require.NoError(t, err)

		// Source recovers; next read should hit it again.
		source.err = nil
		source.markets = DemoMarkets()[:1]

		list, err := svc.GetMarkets(context.Background())
		require.NoError(t, err)
		assert.True(t, list.Live)
		assert.Equal(t, 2, source.calls)
	})
}

func TestService_GetMarket(t *testing.T) {
	t.Run("finds a market by id", func(t *testing.T) {
		source := &fakeSource{markets: DemoMarkets()}
		svc, _ := newTestService(source)

		market, err := svc.GetMarket(context.Background(), "demo-fed-cut")

		require.NoError(t, err)
		assert.Equal(t, "demo-fed-cut", market.ID)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		source := &fakeSource{markets: DemoMarkets()}
		svc, _ := newTestService(source)

		_, err := svc.GetMarket(context.Background(), "no-such-market")

		assert.ErrorIs(t, err, models.ErrRecordNotFound)
	})
}

func TestService_Refresh(t *testing.T) {
	source := &fakeSource{markets: DemoMarkets()[:1]}
	svc, _ := newTestService(source)

	_, err := svc.GetMarkets(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.Refresh(context.Background()))

	_, err = svc.GetMarkets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
}
