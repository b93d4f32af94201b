package parlay

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/stakehouse/parlay/internal/logger"
)

// Dependencies represent the dependencies needed for the parlay module
type Dependencies struct {
	DB      *gorm.DB
	Config  *Config
	Markets MarketSource
	Logger  logger.Logger
}

func Init(r *gin.RouterGroup, deps Dependencies) {
	if deps.Config == nil {
		deps.Config = GetDefaultConfig()
	}
	if deps.Logger == nil {
		deps.Logger = logger.NewNullLogger()
	}

	repo := NewRepository(deps.DB)
	eval := NewEvaluator(deps.Config)
	adapter := NewRecordingAdapter(repo, deps.Logger)

	srvs := NewService(deps.Config, eval, deps.Markets, adapter, repo, deps.Logger)

	handler := NewHandler(srvs)

	parlayGroup := r.Group("/parlays")
	parlayGroup.POST("/sessions", handler.CreateSession)
	parlayGroup.GET("/sessions/:id", handler.GetSlip)
	parlayGroup.POST("/sessions/:id/legs", handler.AddLeg)
	parlayGroup.DELETE("/sessions/:id/legs/:leg_id", handler.RemoveLeg)
	parlayGroup.DELETE("/sessions/:id/legs", handler.ClearLegs)
	parlayGroup.POST("/sessions/:id/evaluate", handler.Evaluate)
	parlayGroup.POST("/sessions/:id/submit", handler.Submit)
	parlayGroup.GET("/sessions/:id/tickets", handler.GetSessionTickets)
}
