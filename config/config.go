package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Env                string
	Port               string
	DBURL              string
	RedisURL           string
	SessionTokenSecret string
	ResendAPIKey       string
	NotifyFromAddress  string
	SubmitRateLimit    int
	SubmitRateWindowS  int
}

func Load() *Config {
	return &Config{
		Env:                getEnv("ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		DBURL:              mustGetEnv("DB_URL"),
		RedisURL:           getEnv("REDIS_URL", ""),
		SessionTokenSecret: mustGetEnv("SESSION_TOKEN_SECRET"),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		NotifyFromAddress:  getEnv("NOTIFY_FROM_ADDRESS", "FastSubmit <notifications@fastsubmit.dev>"),
		SubmitRateLimit:    getEnvAsInt("SUBMIT_RATE_LIMIT", 10),
		SubmitRateWindowS:  getEnvAsInt("SUBMIT_RATE_WINDOW_SECONDS", 60),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
