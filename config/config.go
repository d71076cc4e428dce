package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment    string
	Port           string
	ProjectName    string
	ResendAPIKey   string
	APIKey         string
	FromEmail      string
	FromEmailName  string
	BaseSiteURL    string
	LogLevel       string
	TemplateFolder string
	LocalesFolder  string
	AuthScheme     string
	EmailProvider  string
}

// Auth scheme values accepted in AUTH_SCHEME.
const (
	AuthSchemeBearer = "bearer"
	AuthSchemeAPIKey = "api-key"
)

// Load loads configuration from environment variables.
// It attempts to load from .env file if not in production.
// Required variables without a default cause Load to fail so the
// process refuses to start misconfigured.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production.
	// In production we rely on system environment variables only.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:    env,
		Port:           getEnv("PORT", "8080"),
		ProjectName:    getEnv("PROJECT_NAME", "Email Service"),
		ResendAPIKey:   os.Getenv("RESEND_API_KEY"),
		APIKey:         os.Getenv("API_KEY"),
		FromEmail:      os.Getenv("FROM_EMAIL"),
		FromEmailName:  os.Getenv("FROM_EMAIL_NAME"),
		BaseSiteURL:    os.Getenv("BASE_SITE_URL"),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		TemplateFolder: getEnv("TEMPLATE_FOLDER", "templates"),
		LocalesFolder:  getEnv("LOCALES_FOLDER", "locales"),
		AuthScheme:     strings.ToLower(getEnv("AUTH_SCHEME", AuthSchemeBearer)),
		EmailProvider:  strings.ToLower(getEnv("EMAIL_PROVIDER", "resend")),
	}

	required := []struct {
		name  string
		value string
	}{
		{"RESEND_API_KEY", cfg.ResendAPIKey},
		{"API_KEY", cfg.APIKey},
		{"FROM_EMAIL", cfg.FromEmail},
		{"FROM_EMAIL_NAME", cfg.FromEmailName},
		{"BASE_SITE_URL", cfg.BaseSiteURL},
	}
	var missing []string
	for _, v := range required {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if cfg.AuthScheme != AuthSchemeBearer && cfg.AuthScheme != AuthSchemeAPIKey {
		return nil, fmt.Errorf("invalid AUTH_SCHEME %q: must be %q or %q", cfg.AuthScheme, AuthSchemeBearer, AuthSchemeAPIKey)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
