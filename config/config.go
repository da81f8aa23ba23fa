package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	OCR       OCRConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Matching  MatchingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OCRConfig holds Tesseract-related configuration
type OCRConfig struct {
	Languages     []string `mapstructure:"languages"`
	PageSegMode   int      `mapstructure:"page_seg_mode"`
	MinTextLength int      `mapstructure:"min_text_length"`
}

// CacheConfig holds OCR text cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds per-IP rate limiting configuration
type RateLimitConfig struct {
	PerMinute int `mapstructure:"per_minute"`
	Burst     int `mapstructure:"burst"`
}

// MatchingConfig holds matching engine configuration
type MatchingConfig struct {
	EnableDebugLogging bool `mapstructure:"enable_debug_logging"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/labelcheck/")

	// Environment variable settings
	v.SetEnvPrefix("LABELCHECK")
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

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// OCR defaults
	v.SetDefault("ocr.languages", []string{"eng"})
	v.SetDefault("ocr.page_seg_mode", 3) // fully automatic page segmentation
	v.SetDefault("ocr.min_text_length", 10)

	// Cache defaults
	v.SetDefault("cache.ttl", "24h")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_minute", 60)
	v.SetDefault("ratelimit.burst", 10)

	// Matching defaults
	v.SetDefault("matching.enable_debug_logging", false)
}

// validate validates the configuration
func validate(config *Config) error {
	if len(config.OCR.Languages) == 0 {
		return fmt.Errorf("at least one OCR language is required")
	}

	if config.OCR.PageSegMode < 0 || config.OCR.PageSegMode > 13 {
		return fmt.Errorf("OCR page segmentation mode must be between 0 and 13, got: %d", config.OCR.PageSegMode)
	}

	if config.OCR.MinTextLength < 0 {
		return fmt.Errorf("OCR min text length cannot be negative, got: %d", config.OCR.MinTextLength)
	}

	if config.RateLimit.PerMinute < 0 || config.RateLimit.Burst < 0 {
		return fmt.Errorf("rate limit values cannot be negative")
	}

	return nil
}
