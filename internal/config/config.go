package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DatabaseURL string

	// Redis
	RedisURL string

	// JWT
	JWTSecret string

	// Attendance
	SessionWindow  time.Duration
	MatchThreshold float64
	EmbeddingDim   int

	// Google Sheets export (optional)
	SheetsCredentialsFile string
	SheetsSpreadsheetID   string

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:        getEnvOrDefault("PORT", "8080"),
		Env:         getEnvOrDefault("ENV", "development"),
		DatabaseURL: mustGetEnv("DATABASE_URL"),
		RedisURL:    mustGetEnv("REDIS_URL"),
		JWTSecret:   mustGetEnv("JWT_SECRET"),

		SessionWindow:  time.Duration(getEnvAsIntOrDefault("SESSION_WINDOW_SECONDS", 120)) * time.Second,
		MatchThreshold: getEnvAsFloatOrDefault("MATCH_THRESHOLD", 0.6),
		EmbeddingDim:   getEnvAsIntOrDefault("EMBEDDING_DIM", 128),

		SheetsCredentialsFile: getEnvOrDefault("SHEETS_CREDENTIALS_FILE", ""),
		SheetsSpreadsheetID:   getEnvOrDefault("SHEETS_SPREADSHEET_ID", ""),

		FrontendURL: getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsFloatOrDefault(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}
