// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// RateLimitConfig provides settings for the per-IP API rate limiter.
type RateLimitConfig interface {
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// LatencyConfig provides settings for the simulated upstream latency of the
// directory endpoints.
type LatencyConfig interface {
	GetMockLatencyScale() float64
}

// FixturesConfig provides the optional fixture file override.
type FixturesConfig interface {
	GetFixturesPath() string
}

// ConsoleConfig provides settings for the lookup workflow.
type ConsoleConfig interface {
	GetConsoleUpstreamURL() string
	GetConsoleSectionTimeout() time.Duration
	GetConsoleSessionTTL() time.Duration
}

// DiagnosticsConfig provides settings for the diagnostics event sinks.
type DiagnosticsConfig interface {
	GetRedisURL() string
	GetDiagnosticsChannel() string
	IsRedisEnabled() bool
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                   string
	HTTPAddr              string
	CORSAllowAll          bool
	CORSOrigins           []string
	CORSAllowCreds        bool
	RateLimitRPS          float64
	RateLimitBurst        int
	MockLatencyScale      float64
	FixturesPath          string
	ConsoleUpstreamURL    string
	ConsoleSectionTimeout time.Duration
	ConsoleSessionTTL     time.Duration
	RedisURL              string
	DiagnosticsChannel    string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// RateLimitConfig implementation
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int   { return c.RateLimitBurst }

// LatencyConfig implementation
func (c *Config) GetMockLatencyScale() float64 { return c.MockLatencyScale }

// FixturesConfig implementation
func (c *Config) GetFixturesPath() string { return c.FixturesPath }

// ConsoleConfig implementation
func (c *Config) GetConsoleUpstreamURL() string            { return c.ConsoleUpstreamURL }
func (c *Config) GetConsoleSectionTimeout() time.Duration { return c.ConsoleSectionTimeout }
func (c *Config) GetConsoleSessionTTL() time.Duration     { return c.ConsoleSessionTTL }

// DiagnosticsConfig implementation
func (c *Config) GetRedisURL() string           { return c.RedisURL }
func (c *Config) GetDiagnosticsChannel() string { return c.DiagnosticsChannel }
func (c *Config) IsRedisEnabled() bool          { return c.RedisURL != "" }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:8080"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                   getEnv("APP_ENV", "development"),
		HTTPAddr:              getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:          corsAllowAll,
		CORSOrigins:           corsOrigins,
		CORSAllowCreds:        strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		RateLimitRPS:          mustFloat(getEnv("RATE_LIMIT_RPS", "20")),
		RateLimitBurst:        mustInt(getEnv("RATE_LIMIT_BURST", "40")),
		MockLatencyScale:      mustFloat(getEnv("MOCK_LATENCY_SCALE", "1")),
		FixturesPath:          getEnv("FIXTURES_PATH", ""),
		ConsoleUpstreamURL:    strings.TrimRight(getEnv("CONSOLE_UPSTREAM_URL", ""), "/"),
		ConsoleSectionTimeout: mustDuration(getEnv("CONSOLE_SECTION_TIMEOUT", "5s")),
		ConsoleSessionTTL:     mustDuration(getEnv("CONSOLE_SESSION_TTL", "30m")),
		RedisURL:              getEnv("REDIS_URL", ""),
		DiagnosticsChannel:    getEnv("DIAGNOSTICS_CHANNEL", "admin-console:diagnostics"),
	}

	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if cfg.MockLatencyScale < 0 {
		return nil, fmt.Errorf("MOCK_LATENCY_SCALE must not be negative")
	}
	if cfg.ConsoleSectionTimeout <= 0 {
		return nil, fmt.Errorf("CONSOLE_SECTION_TIMEOUT must be a positive duration")
	}
	if cfg.ConsoleSessionTTL <= 0 {
		return nil, fmt.Errorf("CONSOLE_SESSION_TTL must be a positive duration")
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return -1
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
