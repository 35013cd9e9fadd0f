package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr          string
	DatabaseURL       string
	JWTSecret         string
	JWTIssuer         string
	AccessTokenTTL    time.Duration
	OpenAIAPIKey      string
	OpenAIBaseURL     string
	OpenAIModel       string
	OpenAITimeout     time.Duration
	CORSAllowedOrigin string
	CookieSecure      bool
	QuizJobEnabled    bool
	QuizJobAPIPause   time.Duration
}

// Load reads configuration from the environment. The database URL, the
// token-signing secret and the OpenAI key have no sane defaults and missing
// ones are reported together so the process can fail fast at startup.
func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:          getenv("HTTP_ADDR", ":8000"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		JWTIssuer:         getenv("JWT_ISSUER", "ai-tutor-api"),
		AccessTokenTTL:    getenvDuration("ACCESS_TOKEN_TTL", 24*time.Hour),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:     getenv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:       getenv("OPENAI_MODEL", "gpt-4"),
		OpenAITimeout:     getenvDuration("OPENAI_TIMEOUT", 30*time.Second),
		CORSAllowedOrigin: getenv("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),
		CookieSecure:      getenvBool("COOKIE_SECURE", true),
		QuizJobEnabled:    getenvBool("QUIZ_JOB_ENABLED", true),
		QuizJobAPIPause:   getenvDuration("QUIZ_JOB_API_PAUSE", 2*time.Second),
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if cfg.OpenAIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}
