package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Sessions
	SessionSecret      string
	SessionTTL         time.Duration
	SessionIdleTimeout time.Duration
	SessionSweepCron   string

	// Game
	CatalogDir string
	LogTail    int

	// Admin
	AdminAPIKey string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get values from environment variables with defaults
	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Database
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "cashflow"),
		DBPassword: getEnv("DB_PASSWORD", "cashflow"),
		DBName:     getEnv("DB_NAME", "cashflow"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "data/cashflow.db"),

		// Sessions
		SessionSecret:      getEnv("SESSION_SECRET", "fallback-secret-key-for-dev-only"),
		SessionTTL:         getDuration("SESSION_TTL", 24*time.Hour),
		SessionIdleTimeout: getDuration("SESSION_IDLE_TIMEOUT", 2*time.Hour),
		SessionSweepCron:   getEnv("SESSION_SWEEP_CRON", "@every 10m"),

		// Game
		CatalogDir: getEnv("CATALOG_DIR", ""),
		LogTail:    getInt("LOG_TAIL", 12),

		// Admin
		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

func getInt(key string, defaultValue int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, raw, defaultValue)
		return defaultValue
	}
	return n
}
