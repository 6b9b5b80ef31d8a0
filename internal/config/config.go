package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/xyz-asif/mentionlookup/internal/pkg/validator"
)

type Config struct {
	Port        string
	AppEnv      string
	FrontendURL string

	LogLevel  string
	LogFormat string

	// Jira directory
	JiraBaseURL  string
	JiraEmail    string
	JiraAPIToken string

	// Lookup tuning
	LookupTimeout       time.Duration
	LookupConcurrency   int
	LookupRatePerSecond float64
	LookupBurst         int

	// Host invocation tokens; empty disables auth
	HostJWTSecret string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	MetricsEnabled bool
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		AppEnv:      getEnv("APP_ENV", "development"),
		FrontendURL: getEnv("FRONTEND_URL", "*"),

		LogLevel:  getEnv("LOG_LEVEL", "INFO"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		JiraBaseURL:  strings.TrimRight(getEnv("JIRA_BASE_URL", ""), "/"),
		JiraEmail:    getEnv("JIRA_EMAIL", ""),
		JiraAPIToken: getEnv("JIRA_API_TOKEN", ""),

		LookupTimeout:       getEnvDuration("LOOKUP_TIMEOUT", 5*time.Second),
		LookupConcurrency:   getEnvInt("LOOKUP_CONCURRENCY", 8),
		LookupRatePerSecond: getEnvFloat("LOOKUP_RATE_PER_SECOND", 10),
		LookupBurst:         getEnvInt("LOOKUP_BURST", 10),

		HostJWTSecret: getEnv("HOST_JWT_SECRET", ""),

		RateLimitRequests: getEnvInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),

		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
	}
}

// Validate checks the settings needed to talk to the directory.
func (c *Config) Validate() error {
	if c.JiraBaseURL == "" {
		return errors.New("JIRA_BASE_URL is required")
	}
	if !validator.IsValidBaseURL(c.JiraBaseURL) {
		return errors.New("JIRA_BASE_URL must be an http(s) site URL")
	}
	if c.LookupConcurrency < 1 {
		return errors.New("LOOKUP_CONCURRENCY must be at least 1")
	}
	if c.LookupTimeout <= 0 {
		return errors.New("LOOKUP_TIMEOUT must be positive")
	}
	if c.RateLimitRequests > 0 && c.RateLimitWindow <= 0 {
		return errors.New("RATE_LIMIT_WINDOW must be positive when RATE_LIMIT_REQUESTS is set")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}
