package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the adminctl settings read from the environment. Flags
// override them per invocation.
type Config struct {
	BaseURL        string        `env:"ADMINCTL_BASE_URL" envDefault:"http://localhost:8080/api"`
	Timeout        time.Duration `env:"ADMINCTL_TIMEOUT" envDefault:"10s"`
	SectionTimeout time.Duration `env:"ADMINCTL_SECTION_TIMEOUT" envDefault:"5s"`
	Env            string        `env:"APP_ENV" envDefault:"development"`
}

// LoadConfig parses Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 || cfg.SectionTimeout <= 0 {
		return Config{}, fmt.Errorf("ADMINCTL_TIMEOUT and ADMINCTL_SECTION_TIMEOUT must be positive")
	}
	return cfg, nil
}
