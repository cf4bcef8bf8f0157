// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting shared by the server and the CLI
type Config struct {
	Port             string        `env:"PORT" envDefault:"8080"`
	BaseURL          string        `env:"POKEAPI_BASE_URL" envDefault:"https://pokeapi.co/api/v2"`
	PageSize         int           `env:"POKEDEX_PAGE_SIZE" envDefault:"20"`
	FetchConcurrency int           `env:"POKEDEX_FETCH_CONCURRENCY" envDefault:"0"`
	HTTPTimeout      time.Duration `env:"POKEDEX_HTTP_TIMEOUT" envDefault:"10s"`
	LogLevel         string        `env:"POKEDEX_LOG_LEVEL" envDefault:"info"`
	AllowedOrigins   []string      `env:"POKEDEX_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:*"`
}

// Load reads an optional .env file and then parses the environment
func Load(dotenvFiles ...string) (*Config, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load dotenv: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges the env parser cannot express
func (c *Config) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("POKEDEX_PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	if c.FetchConcurrency < 0 {
		return fmt.Errorf("POKEDEX_FETCH_CONCURRENCY must not be negative, got %d", c.FetchConcurrency)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("POKEDEX_HTTP_TIMEOUT must not be negative, got %s", c.HTTPTimeout)
	}
	return nil
}
