package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Port              string
	LogLevel          string
	RedisAddr         string
	RedisPassword     string
	ResultTTL         time.Duration
	LLMProvider       string
	LLMAPIKey         string
	LLMModel          string
	LLMBaseURL        string
	RatePerMinute     int
	ChatRatePerMinute int
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	ttlHours, err := strconv.Atoi(getEnv("RESULT_TTL_HOURS", "24"))
	if err != nil || ttlHours <= 0 {
		return nil, fmt.Errorf("RESULT_TTL_HOURS must be a positive integer")
	}
	ratePerMinute, err := strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "60"))
	if err != nil || ratePerMinute <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be a positive integer")
	}
	chatRatePerMinute, err := strconv.Atoi(getEnv("CHAT_RATE_LIMIT_PER_MINUTE", "10"))
	if err != nil || chatRatePerMinute <= 0 {
		return nil, fmt.Errorf("CHAT_RATE_LIMIT_PER_MINUTE must be a positive integer")
	}

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "INFO"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		ResultTTL:         time.Duration(ttlHours) * time.Hour,
		LLMProvider:       getEnv("LLM_PROVIDER", "anthropic"),
		LLMAPIKey:         getEnv("LLM_API_KEY", ""),
		LLMModel:          getEnv("LLM_MODEL", ""),
		LLMBaseURL:        getEnv("LLM_BASE_URL", ""),
		RatePerMinute:     ratePerMinute,
		ChatRatePerMinute: chatRatePerMinute,
	}

	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("REDIS_ADDR is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
