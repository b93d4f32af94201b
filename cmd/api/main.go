package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/stakehouse/parlay/app"
	"github.com/stakehouse/parlay/app/api"
	"github.com/stakehouse/parlay/app/database"
	apiDoc "github.com/stakehouse/parlay/app/doc"
	"github.com/stakehouse/parlay/app/markets"
	"github.com/stakehouse/parlay/app/parlay"
	_ "github.com/stakehouse/parlay/docs"
	"github.com/stakehouse/parlay/internal/cache"
	"github.com/stakehouse/parlay/internal/logger"
)

// @title Parlay API
// @version 1.0
// @description Parlay builder over prediction-market outcomes: build a slip of
// @description market legs, evaluate its combined probability and risk, and
// @description submit it for simulated placement.

// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	zlog := logger.NewZeroLogger(os.Stdout, logger.LevelInfo, logger.Fields{"service": "parlay-api"})

	db, err := database.New(&cfg.DB)
	if err != nil {
		zlog.Fatal(err, map[string]interface{}{"component": "database"})
	}
	if err := database.Migrate(db); err != nil {
		zlog.Fatal(err, map[string]interface{}{"component": "migrations"})
	}

	var redisOpts *cache.RedisOptions
	if cfg.Markets.CacheBackend == cache.RedisBackend {
		redisOpts = &cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}
	}

	r := gin.Default()
	r.Use(api.CorsMiddleware())

	apiV1 := r.Group("/api/v1")
	apiV1.GET("/healthz", api.HealthCheck)

	marketService := markets.Init(apiV1, markets.Dependencies{
		Config: &cfg.Markets,
		Redis:  redisOpts,
		Logger: zlog,
	})

	parlay.Init(apiV1, parlay.Dependencies{
		DB:      db,
		Config:  &cfg.Parlay,
		Markets: marketService,
		Logger:  zlog,
	})

	apiDoc.Init(r, cfg.Env)

	zlog.Info("starting parlay API server", map[string]interface{}{
		"host": cfg.AppHost,
		"port": cfg.AppPort,
		"env":  cfg.Env,
	})
	if err := r.Run(fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
