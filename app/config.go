package app

import (
	"os"

	"github.com/stakehouse/parlay/app/database"
	"github.com/stakehouse/parlay/app/markets"
	"github.com/stakehouse/parlay/app/parlay"
	"github.com/stakehouse/parlay/internal/conf"
)

type Config struct {
	DB      database.Config
	Markets markets.Config
	Parlay  parlay.Config

	AppHost string `env:"APP_HOST"`
	AppPort string `env:"APP_PORT"`
	Env     string `env:"APP_ENV"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`
}

// Validate checks the module configs. Database credentials are checked
// by the database package when the connection is opened.
func (c *Config) Validate() error {
	if err := c.Markets.Validate(); err != nil {
		return err
	}
	return c.Parlay.Validate()
}

// LoadConfig loads the application configuration: defaults first, an
// optional APP_CONFIG_FILE overlay, then environment variables on top.
func LoadConfig() (*Config, error) {
	c := &Config{
		Markets: *markets.GetDefaultConfig(),
		Parlay:  *parlay.GetDefaultConfig(),
		AppHost: "localhost",
		AppPort: "8080",
		Env:     "development",
	}

	opts := []conf.Option{conf.WithOnlyEnvironment()}
	if fileName := os.Getenv("APP_CONFIG_FILE"); fileName != "" {
		opts = []conf.Option{conf.WithFile(fileName)}
	}

	if err := conf.NewLoader(opts...).Load(c); err != nil {
		return nil, err
	}
	return c, nil
}
