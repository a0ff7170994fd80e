// Package config loads server settings from the environment and the trip
// description from a YAML file.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port       string
	StaticPath string

	// Database
	DBPath string

	// Trip description (YAML). Empty or missing uses the built-in trip.
	TripFile string

	LogLevel string

	// Generative AI. An empty key disables the explorer features.
	AIAPIKey            string
	AIBaseURL           string
	AIModel             string
	AITimeout           time.Duration
	AIRequestsPerMinute int
	AICacheTTL          time.Duration

	// AMQP change fan-out. An empty URL disables it.
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

func Load() *Config {
	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		StaticPath: getEnv("STATIC_PATH", "./static"),
		DBPath:     getEnv("DB_PATH", "./data/trip.db"),
		TripFile:   getEnv("TRIP_FILE", "./trip.yaml"),
		LogLevel:   strings.ToLower(getEnv("LOG_LEVEL", "info")),

		AIAPIKey:            getEnv("AI_API_KEY", ""),
		AIBaseURL:           getEnv("AI_BASE_URL", ""),
		AIModel:             getEnv("AI_MODEL", ""),
		AITimeout:           getEnvDuration("AI_TIMEOUT", 30*time.Second),
		AIRequestsPerMinute: getEnvInt("AI_REQUESTS_PER_MINUTE", 30),
		AICacheTTL:          getEnvDuration("AI_CACHE_TTL", 10*time.Minute),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "tripmate"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "trip_changes"),
	}

	return cfg
}

// AIEnabled reports whether an API key was configured.
func (c *Config) AIEnabled() bool {
	return c.AIAPIKey != ""
}

// AMQPEnabled reports whether change fan-out was configured.
func (c *Config) AMQPEnabled() bool {
	return c.AMQPURL != ""
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DBPath == "" {
		errors = append(errors, "database path cannot be empty")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	isValidLevel := false
	for _, level := range validLevels {
		if c.LogLevel == level {
			isValidLevel = true
			break
		}
	}
	if !isValidLevel {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of %v", c.LogLevel, validLevels))
	}

	if c.AIBaseURL != "" {
		if parsedURL, err := url.Parse(c.AIBaseURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AI base URL '%s': %v", c.AIBaseURL, err))
		} else if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
			errors = append(errors, fmt.Sprintf("invalid AI base URL scheme '%s': must be 'http' or 'https'", parsedURL.Scheme))
		}
	}

	if c.AITimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid AI timeout %v: must be at least 1 second", c.AITimeout))
	} else if c.AITimeout > 5*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid AI timeout %v: must be at most 5 minutes", c.AITimeout))
	}

	if c.AIRequestsPerMinute < 0 {
		errors = append(errors, fmt.Sprintf("invalid AI requests per minute %d: must not be negative", c.AIRequestsPerMinute))
	}

	if c.AICacheTTL < 0 {
		errors = append(errors, fmt.Sprintf("invalid AI cache TTL %v: must not be negative", c.AICacheTTL))
	}

	// Validate AMQP URL if provided
	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}

		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
