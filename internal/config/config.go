package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// OpenAI
	OpenAIAPIKey string
	OpenAIModel  string

	// CORS
	AllowedOrigins []string

	// Rate limiting (applied to /api/*)
	RateLimitWindow time.Duration
	RateLimitMax    int

	// Optional system prompt override
	SystemPromptFile string

	// Logging
	LogLevel string
}

// Load reads configuration from the environment. It returns an error
// rather than panicking so the entry point can report and exit before
// binding a listener.
func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("required environment variable OPENAI_API_KEY is not set")
	}

	cfg := &Config{
		Port:             getEnvOrDefault("PORT", "3000"),
		Env:              getEnvOrDefault("ENV", "development"),
		OpenAIAPIKey:     apiKey,
		OpenAIModel:      getEnvOrDefault("OPENAI_MODEL", "gpt-3.5-turbo"),
		AllowedOrigins:   splitOrigins(getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:5173")),
		RateLimitWindow:  time.Duration(getEnvAsIntOrDefault("RATE_LIMIT_WINDOW_MINUTES", 15)) * time.Minute,
		RateLimitMax:     getEnvAsIntOrDefault("RATE_LIMIT_MAX_REQUESTS", 100),
		SystemPromptFile: getEnvOrDefault("SYSTEM_PROMPT_FILE", ""),
		LogLevel:         getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
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
