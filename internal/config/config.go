package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config: service configuration, loaded from environment variables
// (with optional .env file)
type Config struct {
	Addr                 string        `env:"ADDR" envDefault:":8080"`
	MaxMessageSize       int           `env:"MAX_MESSAGE_SIZE" envDefault:"4096"`
	MaxBatchSize         int           `env:"MAX_BATCH_SIZE" envDefault:"32"`
	MaxClients           int           `env:"MAX_CLIENTS" envDefault:"256"`
	MessagesPerSecond    float64       `env:"MESSAGES_PER_SECOND" envDefault:"30"`
	BurstSize            int           `env:"BURST_SIZE" envDefault:"10"`
	ConnectionsPerMinute float64       `env:"CONNECTIONS_PER_MINUTE" envDefault:"10"`
	ConnectionBurst      int           `env:"CONNECTION_BURST" envDefault:"5"`
	CacheTTL             time.Duration `env:"CACHE_TTL" envDefault:"1h"`
	IdleTTL              time.Duration `env:"IDLE_TTL" envDefault:"1h"`
	CleanupInterval      time.Duration `env:"CLEANUP_INTERVAL" envDefault:"15m"`
	CatalogFile          string        `env:"CATALOG_FILE"`
}

// Load: reads configuration from the environment. A missing .env file
// is fine; explicit environment variables always win.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
