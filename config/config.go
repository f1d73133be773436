package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server settings
	Env      string
	Port     string
	AppUrl   string
	AppName  string
	LogLevel string

	// Security settings
	CorsOrigins []string

	// Catalog settings
	SeedDemoData bool

	// Suggestion settings
	GeminiAPIKey      string
	GeminiModel       string
	SuggestionTimeout time.Duration
}

func LoadConfig() *Config {
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	suggestionTimeout, err := strconv.Atoi(os.Getenv("SUGGESTION_TIMEOUT"))
	if err != nil || suggestionTimeout <= 0 {
		suggestionTimeout = 15 // default 15 seconds
	}

	seedDemoData, err := strconv.ParseBool(getEnv("SEED_DEMO_DATA", "true"))
	if err != nil {
		seedDemoData = true
	}

	return &Config{
		// Server settings
		Env:      getEnv("ENV", "development"),
		Port:     getEnv("PORT", "8040"),
		AppUrl:   getEnv("APP_URL", "http://localhost:8040"),
		AppName:  getEnv("APP_NAME", "Merchant Dashboard API"),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		// Security settings
		CorsOrigins: splitOrigins(corsOrigins),

		// Catalog settings
		SeedDemoData: seedDemoData,

		// Suggestion settings
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", os.Getenv("API_KEY")),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		SuggestionTimeout: time.Duration(suggestionTimeout) * time.Second,
	}
}

// IsProduction reports whether the app runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
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

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
