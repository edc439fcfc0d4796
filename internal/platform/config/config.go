// Package config loads the companion server configuration from file and
// environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every tunable of the companion server.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Tracker  TrackerConfig  `mapstructure:"tracker"`
	Assets   AssetsConfig   `mapstructure:"assets"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Database DatabaseConfig `mapstructure:"database"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// TrackerConfig configures access to the upstream tracker API.
type TrackerConfig struct {
	APIBaseURL         string        `mapstructure:"api_base_url"`
	SummaryTTL         time.Duration `mapstructure:"summary_ttl"`
	ChartTTL           time.Duration `mapstructure:"chart_ttl"`
	StartDate          string        `mapstructure:"start_date"`
	RefreshInterval    time.Duration `mapstructure:"refresh_interval"`
	RateLimitPerMinute int           `mapstructure:"rate_limit_per_minute"`
}

// AssetsConfig configures the versioned asset cache.
type AssetsConfig struct {
	Origin       string        `mapstructure:"origin"`
	CacheVersion string        `mapstructure:"cache_version"`
	TTL          time.Duration `mapstructure:"ttl"`
}

// RedisConfig configures the Redis connection. An empty host disables
// Redis and the asset cache degrades to network-only.
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
}

// DatabaseConfig configures the preferences store. An empty URL selects
// the embedded SQLite file.
type DatabaseConfig struct {
	URL           string `mapstructure:"url"`
	SQLitePath    string `mapstructure:"sqlite_path"`
	RunMigrations bool   `mapstructure:"run_migrations"`
}

// Load reads config.yaml (if present) and the environment. Environment
// variables use underscores, e.g. TRACKER_API_BASE_URL overrides
// tracker.api_base_url.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// No file is fine, defaults and env cover everything.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// setDefaults mirrors the upstream tracker's defaults so a bare start
// against a local tracker needs no configuration at all.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)

	v.SetDefault("tracker.api_base_url", "http://localhost:5000")
	v.SetDefault("tracker.summary_ttl", 60*time.Second)
	v.SetDefault("tracker.chart_ttl", 30*time.Second)
	v.SetDefault("tracker.start_date", "2025-11-01")
	v.SetDefault("tracker.refresh_interval", 60*time.Second)
	v.SetDefault("tracker.rate_limit_per_minute", 60)

	v.SetDefault("assets.origin", "http://localhost:5000")
	v.SetDefault("assets.cache_version", "v2")
	v.SetDefault("assets.ttl", 24*time.Hour)

	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")

	v.SetDefault("database.url", "")
	v.SetDefault("database.sqlite_path", "tracker.db")
	v.SetDefault("database.run_migrations", true)
}
