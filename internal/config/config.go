// Package config loads server settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every runtime setting of the server.
type Config struct {
	Port        string `mapstructure:"port"`
	DatabaseURL string `mapstructure:"database_url"`

	OpenAIAPIKey string `mapstructure:"openai_api_key"`
	OpenAIModel  string `mapstructure:"openai_model_chat"`

	SessionCacheSize int           `mapstructure:"session_cache_size"`
	SessionTTL       time.Duration `mapstructure:"session_ttl"`

	NotifyChannel string `mapstructure:"notify_channel"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Load reads configuration from the environment.  A .env file in the
// working directory is loaded first when present; real environment
// variables win over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "3000")
	v.SetDefault("database_url", "")
	v.SetDefault("openai_api_key", "")
	v.SetDefault("openai_model_chat", "gpt-3.5-turbo")
	v.SetDefault("session_cache_size", 1024)
	v.SetDefault("session_ttl", time.Hour)
	v.SetDefault("notify_channel", "subscription_activated")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	// AutomaticEnv alone does not surface env vars through Unmarshal;
	// binding each key makes them visible.
	for _, key := range []string{
		"port", "database_url", "openai_api_key", "openai_model_chat",
		"session_cache_size", "session_ttl", "notify_channel",
		"log_level", "log_format",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.SessionCacheSize <= 0 {
		cfg.SessionCacheSize = 1024
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = time.Hour
	}
	return &cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string { return ":" + c.Port }
