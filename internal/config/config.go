// Package config loads service configuration from environment variables.
package config

import (
	"os"
	"time"
)

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr        string
	CORSOrigins []string
}

// UpstreamConfig holds the statistics provider configuration
type UpstreamConfig struct {
	BaseURL string
}

// TradingConfig holds the trading venue configuration
type TradingConfig struct {
	BaseURL string
	APIKey  string
}

// CacheConfig holds the per-operation cache windows
type CacheConfig struct {
	ScheduleTTL   time.Duration
	TeamStatsTTL  time.Duration
	HeadToHeadTTL time.Duration
	StandingsTTL  time.Duration
}

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Trading  TradingConfig
	Cache    CacheConfig
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:        getEnv("SERVER_ADDR", ":8087"),
			CORSOrigins: []string{getEnv("CORS_ORIGIN", "*")},
		},
		Upstream: UpstreamConfig{
			BaseURL: getEnv("STATS_API_URL", ""),
		},
		Trading: TradingConfig{
			BaseURL: getEnv("TRADING_API_URL", "https://clob.polymarket.com"),
			APIKey:  getEnv("TRADING_API_KEY", ""),
		},
		Cache: CacheConfig{
			ScheduleTTL:   getEnvDuration("SCHEDULE_CACHE_TTL", 5*time.Minute),
			TeamStatsTTL:  getEnvDuration("TEAM_STATS_CACHE_TTL", 10*time.Minute),
			HeadToHeadTTL: getEnvDuration("HEAD_TO_HEAD_CACHE_TTL", 10*time.Minute),
			StandingsTTL:  getEnvDuration("STANDINGS_CACHE_TTL", time.Hour),
		},
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
