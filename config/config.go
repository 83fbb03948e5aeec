package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Scraper ScraperConfig
	Cache   CacheConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ScraperConfig holds retail site fetching configuration
type ScraperConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes"`
	SiteRatePerSec float64       `mapstructure:"site_rate_per_sec"`
	SiteRateBurst  int           `mapstructure:"site_rate_burst"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type          string        `mapstructure:"type"` // "memory", "redis" or "none"
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	TTL           time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/shopscout/")

	// Environment variable settings
	v.SetEnvPrefix("SHOPSCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values. Every key gets a default so
// that environment overrides are picked up during Unmarshal.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Scraper defaults
	v.SetDefault("scraper.request_timeout", "10s")
	v.SetDefault("scraper.max_body_bytes", 10*1024*1024)
	v.SetDefault("scraper.site_rate_per_sec", 1.0)
	v.SetDefault("scraper.site_rate_burst", 2)

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.redis_addr", "")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.ttl", "15m")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Cache.Type != "memory" && config.Cache.Type != "redis" && config.Cache.Type != "none" {
		return fmt.Errorf("cache type must be 'memory', 'redis' or 'none', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisAddr == "" {
		return fmt.Errorf("Redis address is required when cache type is 'redis' (set SHOPSCOUT_CACHE_REDIS_ADDR)")
	}

	if config.Scraper.SiteRatePerSec <= 0 {
		return fmt.Errorf("scraper rate must be positive, got: %v", config.Scraper.SiteRatePerSec)
	}

	return nil
}

// loadEnvFile loads variables from a .env file in the working directory.
// Missing files are fine; existing environment variables are never overridden.
func loadEnvFile() error {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}
