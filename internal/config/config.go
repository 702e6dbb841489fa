package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL string

	// Redis session store (optional; cookie sessions when empty)
	RedisURL string

	// Summarizer (OpenAI-compatible endpoint)
	SummarizerBaseURL string // e.g. "http://localhost:8000/v1" for a local model
	SummarizerAPIKey  string
	SummarizerModel   string
	SummarizerEnabled bool // derived: API key or base URL present

	// Dictionary lookup service for the jargon buster
	DictionaryBaseURL string

	// OIDC (optional; app is open when issuer is empty)
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// SMTP (optional "email me the report" feature)
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	// Limits
	MaxUploadBytes int64 // Maximum accepted document size

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "ClauseLens"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	cfg := &Config{
		Env:         getEnv("ENV", "development"),
		ServerAddr:  getEnv("SERVER_ADDR", ":3000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/clauselens?sslmode=disable"),
		RedisURL:    getEnv("REDIS_URL", ""),

		SummarizerBaseURL: getEnv("SUMMARIZER_BASE_URL", ""),
		SummarizerAPIKey:  getEnv("SUMMARIZER_API_KEY", ""),
		SummarizerModel:   getEnv("SUMMARIZER_MODEL", "gpt-4o-mini"),

		DictionaryBaseURL: getEnv("DICTIONARY_BASE_URL", "https://api.dictionaryapi.dev/api/v2/entries/en"),

		OIDCIssuer:       getEnv("OIDC_ISSUER", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:  getEnv("OIDC_REDIRECT_URL", "http://localhost:3000/auth/callback"),

		SessionSecret: getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		CORSOrigins:   getEnv("CORS_ORIGINS", ""),

		SMTPHost: getEnv("SMTP_HOST", ""),
		SMTPPort: getEnvInt("SMTP_PORT", 587),
		SMTPUser: getEnv("SMTP_USER", ""),
		SMTPPass: getEnv("SMTP_PASS", ""),
		SMTPFrom: getEnv("SMTP_FROM", ""),

		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", 10*1024*1024)),

		SiteTitle:   getEnv("SITE_TITLE", "ClauseLens"),
		SiteTagline: getEnv("SITE_TAGLINE", "Know what you're agreeing to"),
		SiteFooter:  getEnv("SITE_FOOTER", "ClauseLens - Legal document analyzer"),
	}

	cfg.SummarizerEnabled = cfg.SummarizerAPIKey != "" || cfg.SummarizerBaseURL != ""
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsEmailEnabled returns true if SMTP is configured.
func (c *Config) IsEmailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != ""
}
