package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config carries the process configuration, read from the environment with
// sensible development defaults.
type Config struct {
	Addr           string
	DatabaseURL    string
	RedisAddr      string
	CacheTTL       time.Duration
	AllowedOrigins []string
	LogLevel       string
}

// Load reads configuration from the environment. RedisAddr may be empty, in
// which case the list cache is disabled.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("database_url", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("cache_ttl", "30s")
	v.SetDefault("allowed_origins", []string{"*"})
	v.SetDefault("log_level", "info")
	v.AutomaticEnv()

	ttl, err := time.ParseDuration(v.GetString("cache_ttl"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Addr:           v.GetString("addr"),
		DatabaseURL:    v.GetString("database_url"),
		RedisAddr:      v.GetString("redis_addr"),
		CacheTTL:       ttl,
		AllowedOrigins: v.GetStringSlice("allowed_origins"),
		LogLevel:       v.GetString("log_level"),
	}, nil
}
