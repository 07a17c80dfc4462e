package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr        string
	Environment string
	LogFilePath string

	JWTSecret    string
	SessionTTL   time.Duration
	DatabaseURL  string
	AdminKeyHash string

	TypingMin time.Duration
	TypingMax time.Duration

	RecommendConfigPath string
	ChatIntentsPath     string
}

// DevJWTSecret signs session tokens when JWT_SECRET is unset. It is only
// accepted outside production.
const DevJWTSecret = "dev-secret"

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set in production")

// Load reads configuration from .env (when present) and environment variables.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("note: .env file not found, using system environment")
	}

	return Config{
		Addr:        getEnv("APP_ADDR", ":8080"),
		Environment: getEnv("GO_ENV", "development"),
		LogFilePath: getEnv("LOG_FILE_PATH", "logs/app.log"),

		JWTSecret:    getEnv("JWT_SECRET", DevJWTSecret),
		SessionTTL:   time.Duration(getEnvAsInt("SESSION_TTL_MINUTES", 120)) * time.Minute,
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		AdminKeyHash: getEnv("ADMIN_KEY_HASH", ""),

		TypingMin: time.Duration(getEnvAsInt("CHAT_TYPING_MIN_MS", 700)) * time.Millisecond,
		TypingMax: time.Duration(getEnvAsInt("CHAT_TYPING_MAX_MS", 1500)) * time.Millisecond,

		RecommendConfigPath: getEnv("RECOMMEND_CONFIG_PATH", "configs/recommend.yaml"),
		ChatIntentsPath:     getEnv("CHAT_INTENTS_PATH", ""),
	}
}

// IsProduction reports whether GO_ENV is set to production.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// Validate rejects settings that are only safe for local development.
func (c Config) Validate() error {
	if c.IsProduction() && (c.JWTSecret == "" || c.JWTSecret == DevJWTSecret) {
		return ErrMissingJWTSecret
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}
