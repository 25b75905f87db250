package config

import (
	"fmt"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// RentalPolicy drives the rental fee computation: a fraction of the
// artwork price charged per billing period, prorated by day.
type RentalPolicy struct {
	Rate       float64 `yaml:"rate"`
	PeriodDays int     `yaml:"period_days"`
}

func DefaultRentalPolicy() RentalPolicy {
	return RentalPolicy{Rate: 0.05, PeriodDays: 30}
}

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// DBDriver selects the storage backend: "sqlite" (default, DBURL is a
	// file path) or "postgres" (DBURL is a DSN).
	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBURL    string `env:"DB_URL" envDefault:"art_gallery.db"`

	JWTSecret         string `env:"JWT_SECRET"`
	StaffEmail        string `env:"STAFF_EMAIL"`
	StaffPasswordHash string `env:"STAFF_PASSWORD_HASH"`

	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"*"`

	RentalPolicyFile string `env:"RENTAL_POLICY_FILE"`

	// Rental has no env tags; it is filled from defaults and the
	// optional policy file.
	Rental RentalPolicy
}

// Load reads .env (if present), the process environment, and the optional
// rental policy file. The returned Config is the single source of settings;
// nothing else in the program reads the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	cfg := &Config{Rental: DefaultRentalPolicy()}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.RentalPolicyFile != "" {
		if err := loadRentalPolicy(cfg.RentalPolicyFile, &cfg.Rental); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func loadRentalPolicy(path string, policy *RentalPolicy) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read rental policy %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, policy); err != nil {
		return fmt.Errorf("parse rental policy %s: %w", path, err)
	}
	if policy.Rate <= 0 || policy.PeriodDays <= 0 {
		return fmt.Errorf("rental policy %s: rate and period_days must be positive", path)
	}
	return nil
}
