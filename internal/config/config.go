// internal/config/config.go

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Environment string
	Server      ServerConfig
	Twitter     TwitterConfig
	Translate   TranslateConfig
	Sentiment   SentimentConfig
	Analysis    AnalysisConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CorsOrigins     []string
}

// TwitterConfig holds search API configuration
type TwitterConfig struct {
	BearerToken string
	Timeout     time.Duration
}

// TranslateConfig holds translation service configuration
type TranslateConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// SentimentConfig holds sentiment service configuration. An empty URL means
// the built-in lexicon model is used instead of a remote service.
type SentimentConfig struct {
	URL     string
	Timeout time.Duration
}

// AnalysisConfig holds aggregation pipeline configuration
type AnalysisConfig struct {
	StopwordDir  string
	TopWords     int
	MaxResults   int
	LookbackDays int
}

// Load loads configuration from environment variables
func Load() (Config, error) {
	config := Config{
		Environment: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			CorsOrigins:     getEnvAsSlice("SERVER_CORS_ORIGINS", []string{"*"}),
		},
		Twitter: TwitterConfig{
			BearerToken: getEnv("TWITTER_BEARER_TOKEN", ""),
			Timeout:     getEnvAsDuration("TWITTER_TIMEOUT", 10*time.Second),
		},
		Translate: TranslateConfig{
			URL:     getEnv("TRANSLATE_URL", "http://localhost:5000"),
			APIKey:  getEnv("TRANSLATE_API_KEY", ""),
			Timeout: getEnvAsDuration("TRANSLATE_TIMEOUT", 15*time.Second),
		},
		Sentiment: SentimentConfig{
			URL:     getEnv("SENTIMENT_URL", ""),
			Timeout: getEnvAsDuration("SENTIMENT_TIMEOUT", 10*time.Second),
		},
		Analysis: AnalysisConfig{
			StopwordDir:  getEnv("ANALYSIS_STOPWORD_DIR", "data/stopwords"),
			TopWords:     getEnvAsInt("ANALYSIS_TOP_WORDS", 10),
			MaxResults:   getEnvAsInt("ANALYSIS_DEFAULT_MAX_RESULTS", 10),
			LookbackDays: getEnvAsInt("ANALYSIS_DEFAULT_LOOKBACK_DAYS", 1),
		},
	}

	return config, validate(config)
}

// validate checks if config is valid
func validate(config Config) error {
	if config.Twitter.BearerToken == "" && config.Environment != "development" {
		return fmt.Errorf("TWITTER_BEARER_TOKEN must be set in non-development environments")
	}

	if config.Analysis.TopWords <= 0 {
		return fmt.Errorf("ANALYSIS_TOP_WORDS must be positive")
	}

	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}
