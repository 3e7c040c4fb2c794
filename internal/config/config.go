// Package config resolves the service configuration once at process start.
// Values come from the environment (optionally seeded from a .env file) and
// fall back to development defaults. Policy constants for the points economy
// live here so the business logic never hard-codes them.
package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds every externally tunable setting of the service.
type Config struct {
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	ServerRunAddress string        `env:"SERVER_RUN_ADDRESS" envDefault:"0.0.0.0:8080"`
	DatabaseURI      string        `env:"DATABASE_URI" envDefault:"host=db user=postgres password=password dbname=rewear sslmode=disable"`
	TokenSecret      string        `env:"TOKEN_SECRET" envDefault:"supersecretkey"`
	TokenTTL         time.Duration `env:"TOKEN_TTL" envDefault:"3h"`

	// Points policy. The listing bonus is paid to the uploader when a
	// listing passes moderation, the swap bonus to both parties of an
	// approved swap, and the redemption cost is transferred from the
	// redeemer to the owner.
	ListingBonus   int `env:"LISTING_BONUS" envDefault:"10"`
	SwapBonus      int `env:"SWAP_BONUS" envDefault:"5"`
	RedemptionCost int `env:"REDEMPTION_COST" envDefault:"15"`
	StartingPoints int `env:"STARTING_POINTS" envDefault:"0"`

	// AutoApproveItems bypasses moderation: new listings become visible
	// immediately. No listing bonus is paid in that mode.
	AutoApproveItems bool `env:"AUTO_APPROVE_ITEMS" envDefault:"false"`
}

// NewConfig loads the configuration from the environment.
func NewConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatal("Failed to parse environment:", err)
	}
	return cfg
}
