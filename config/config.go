package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string

	// Gemini Configuration
	GeminiAPIKey string
	GeminiModel  string

	// State Store Configuration
	StoreBackend string // file | redis | postgres
	StateDir     string
	DBUrl        string
	RedisURL     string
	RedisPass    string

	// Auth Configuration (optional local bearer token)
	APIJWTSecret string

	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int

	// Simulated delays. The original flows stand in for real network calls
	// with fixed timers; keeping them configurable lets tests run with zero.
	IntegrationSyncDelay time.Duration
	OfflineGatewayDelay  time.Duration
	ApplySubmitDelay     time.Duration
	WhatsAppEchoDelay    time.Duration

	// Toast lifetimes
	ToastTTL         time.Duration
	SmartToastTTL    time.Duration
	WhatsAppToastTTL time.Duration

	// Smart-alert cadence: a refresh fires whenever the saved set grows to a
	// positive multiple of this interval.
	SmartAlertSaveInterval int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally; ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", getEnv("API_KEY", "")),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		StoreBackend: getEnv("STORE_BACKEND", "file"),
		StateDir:     getEnv("STATE_DIR", "."),
		DBUrl:        getEnv("DATABASE_URL", ""),
		RedisURL:     getEnv("REDIS_URL", ""),
		RedisPass:    getEnv("REDIS_PASSWORD", ""),

		APIJWTSecret: getEnv("API_JWT_SECRET", ""),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),

		IntegrationSyncDelay: getEnvDurationMS("INTEGRATION_SYNC_DELAY_MS", 1500),
		OfflineGatewayDelay:  getEnvDurationMS("OFFLINE_GATEWAY_DELAY_MS", 1500),
		ApplySubmitDelay:     getEnvDurationMS("APPLY_SUBMIT_DELAY_MS", 1500),
		WhatsAppEchoDelay:    getEnvDurationMS("WHATSAPP_ECHO_DELAY_MS", 2000),

		ToastTTL:         getEnvDurationMS("TOAST_TTL_MS", 5000),
		SmartToastTTL:    getEnvDurationMS("SMART_TOAST_TTL_MS", 6000),
		WhatsAppToastTTL: getEnvDurationMS("WHATSAPP_TOAST_TTL_MS", 4000),

		SmartAlertSaveInterval: getEnvInt("SMART_ALERT_SAVE_INTERVAL", 2),
	}

	if cfg.GeminiAPIKey == "" {
		log.Println("WARNING: GEMINI_API_KEY is missing. AI features will serve canned offline results.")
	}

	switch cfg.StoreBackend {
	case "file", "redis", "postgres":
	default:
		log.Printf("WARNING: unknown STORE_BACKEND %q, falling back to file store.", cfg.StoreBackend)
		cfg.StoreBackend = "file"
	}

	if cfg.StoreBackend == "postgres" && cfg.DBUrl == "" {
		log.Println("WARNING: STORE_BACKEND=postgres but DATABASE_URL is missing. Startup will fail to connect.")
	}
	if cfg.StoreBackend == "redis" && cfg.RedisURL == "" {
		log.Println("WARNING: STORE_BACKEND=redis but REDIS_URL is missing. Startup will fail to connect.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvDurationMS reads a millisecond count and returns it as a Duration.
func getEnvDurationMS(key string, fallbackMS int) time.Duration {
	return time.Duration(getEnvInt(key, fallbackMS)) * time.Millisecond
}
