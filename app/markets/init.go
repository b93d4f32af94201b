package markets

import (
	"github.com/gin-gonic/gin"

	"github.com/stakehouse/parlay/internal/cache"
	"github.com/stakehouse/parlay/internal/logger"
)

// Dependencies represent the dependencies needed for the markets module
type Dependencies struct {
	Config *Config
	Source Source
	Redis  *cache.RedisOptions
	Logger logger.Logger
}

// Init wires the markets module and returns the service so other
// modules can consume it as their market source.
func Init(r *gin.RouterGroup, deps Dependencies) Service {
	if deps.Config == nil {
		deps.Config = GetDefaultConfig()
	}
	if deps.Logger == nil {
		deps.Logger = logger.NewNullLogger()
	}
	if deps.Source == nil {
		deps.Source = NewGammaClient(deps.Config.BaseURL)
	}

	listCache := cache.NewCache[MarketListResponse](deps.Config.CacheBackend, deps.Redis)

	srvs := NewService(deps.Config, deps.Source, listCache, deps.Logger)

	handler := NewHandler(srvs)

	marketGroup := r.Group("/markets")
	marketGroup.GET("", handler.GetMarkets)
	marketGroup.GET("/:id", handler.GetMarket)
	marketGroup.POST("/refresh", handler.Refresh)

	return srvs
}
