package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server settings
	Port string `json:"port"`

	// Text generation settings
	GeminiAPIKey string `json:"-"` // Don't expose in JSON
	GeminiModel  string `json:"gemini_model"`
	CohereAPIKey string `json:"-"` // Don't expose in JSON
	CohereModel  string `json:"cohere_model"`

	// Article source settings
	ArticleSource string `json:"article_source"` // "ai" or "rss"
	Feed          string `json:"feed"`           // preset name or URL
	FeedCount     int    `json:"feed_count"`

	// Seen-article store settings
	RedisAddr string        `json:"redis_addr"`
	RedisPass string        `json:"-"`
	SeenTTL   time.Duration `json:"seen_ttl"`

	// Article pool settings
	PoolSize     int    `json:"pool_size"`
	PoolWarmCron string `json:"pool_warm_cron"`

	// Timeouts
	FetchTimeout time.Duration `json:"fetch_timeout"`
	EvalTimeout  time.Duration `json:"eval_timeout"`
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	config := &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		GeminiAPIKey:  getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:   getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		CohereAPIKey:  getEnvOrDefault("COHERE_API_KEY", ""),
		CohereModel:   getEnvOrDefault("COHERE_MODEL", "command-r-08-2024"),
		ArticleSource: getEnvOrDefault("ARTICLE_SOURCE", "ai"),
		Feed:          getEnvOrDefault("FEED", "yonhap"),
		FeedCount:     getEnvOrDefaultInt("FEED_COUNT", 10),
		RedisAddr:     getEnvOrDefault("REDIS_ADDR", ""),
		RedisPass:     getEnvOrDefault("REDIS_PASS", ""),
		SeenTTL:       time.Duration(getEnvOrDefaultInt("SEEN_TTL_HOURS", 72)) * time.Hour,
		PoolSize:      getEnvOrDefaultInt("POOL_SIZE", 3),
		PoolWarmCron:  getEnvOrDefault("POOL_WARM_CRON", "*/5 * * * *"),
		FetchTimeout:  time.Duration(getEnvOrDefaultInt("FETCH_TIMEOUT_SECONDS", 90)) * time.Second,
		EvalTimeout:   time.Duration(getEnvOrDefaultInt("EVAL_TIMEOUT_SECONDS", 90)) * time.Second,
	}

	return config, config.validate()
}

// validate checks if required configuration values are present
func (c *Config) validate() error {
	if c.ArticleSource != "ai" && c.ArticleSource != "rss" {
		return &ConfigError{Field: "ARTICLE_SOURCE", Message: "must be \"ai\" or \"rss\""}
	}
	if c.GeminiAPIKey == "" && c.CohereAPIKey == "" {
		return &ConfigError{Field: "GEMINI_API_KEY", Message: "a Gemini or Cohere API key is required"}
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefaultInt returns environment variable value as int or default if not set
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
