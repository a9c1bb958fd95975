package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the process configuration, read from the environment and an
// optional .env file.
type Config struct {
	Port               string        `mapstructure:"app_port"`
	Env                string        `mapstructure:"app_env"`
	LogLevel           string        `mapstructure:"log_level"`
	DatabaseURL        string        `mapstructure:"database_url"`
	BoxOfficeChannelID string        `mapstructure:"box_office_channel_id"`
	DefaultCurrency    string        `mapstructure:"default_currency"`
	SyncDelay          time.Duration `mapstructure:"sync_delay"`
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (c *Config) IsProduction() bool { return strings.EqualFold(c.Env, "production") }

// UseSeed reports whether the catalog is served from the built-in seed data.
func (c *Config) UseSeed() bool { return c.DatabaseURL == "" }

var defaults = map[string]interface{}{
	"app_port":              "8080",
	"app_env":               "dev",
	"log_level":             "info",
	"database_url":          "",
	"box_office_channel_id": "box-office",
	"default_currency":      "USD",
	"sync_delay":            "1500ms",
}

// Load reads .env when present, then the environment. Environment variables
// take precedence over .env values, which take precedence over defaults.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.BoxOfficeChannelID == "" {
		return nil, fmt.Errorf("BOX_OFFICE_CHANNEL_ID must not be empty")
	}
	if cfg.SyncDelay < 0 {
		return nil, fmt.Errorf("SYNC_DELAY must not be negative, got %s", cfg.SyncDelay)
	}
	cfg.DefaultCurrency = strings.ToUpper(cfg.DefaultCurrency)
	return &cfg, nil
}
