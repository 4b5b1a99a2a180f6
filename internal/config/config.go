package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultAllowedOrigin is used for CORS when ALLOWED_ORIGIN is not set.
const DefaultAllowedOrigin = "https://miliyon-ayalew.netlify.app"

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey string

	// CORS
	AllowedOrigin string

	// Chat behavior: when true, prior turns are sent upstream as chat
	// history instead of only the latest user message.
	ChatIncludeHistory bool

	// SMTP
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	// Contact form recipient
	ContactEmail string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port: getEnvOrDefault("PORT", "8080"),
		Env:  getEnvOrDefault("ENV", "development"),

		GeminiAPIKey: mustGetEnv("GEMINI_API_KEY"),

		AllowedOrigin:      getEnvOrDefault("ALLOWED_ORIGIN", DefaultAllowedOrigin),
		ChatIncludeHistory: getEnvAsBoolOrDefault("CHAT_INCLUDE_HISTORY", false),

		SMTPHost: getEnvOrDefault("SMTP_HOST", ""),
		SMTPPort: getEnvOrDefault("SMTP_PORT", "587"),
		SMTPUser: getEnvOrDefault("SMTP_USER", ""),
		SMTPPass: getEnvOrDefault("SMTP_PASS", ""),
		SMTPFrom: getEnvOrDefault("SMTP_FROM", "noreply@miliyon.dev"),

		ContactEmail: getEnvOrDefault("CONTACT_EMAIL", "miliayalew@gmail.com"),
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

func getEnvAsBoolOrDefault(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
