// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
//
// Settings are enumerated fields on Config with documented env defaults,
// not an open string-keyed map, so a typo at a call site fails to compile
// instead of silently returning an empty value.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"os"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// EmailConfig provides settings for operator notification emails.
type EmailConfig interface {
	GetEmailEnabled() bool
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
	GetLeadAlertRecipient() string
}

// RateLimitConfig provides settings for public endpoint rate limiting.
type RateLimitConfig interface {
	GetLeadSubmitPerMinute() float64
	GetLeadSubmitBurst() int
}

// SiteConfig provides business-level site settings.
type SiteConfig interface {
	GetSiteName() string
	GetTimeLocation() *time.Location
}

// Config holds all application configuration values.
type Config struct {
	// Env is the runtime environment: "development" or "production". Default: development.
	Env string
	// HTTPAddr is the listen address. Default: ":8080".
	HTTPAddr string
	// DatabaseURL is the PostgreSQL connection string. Required.
	DatabaseURL string

	// CORS settings for the marketing site frontend.
	CORSAllowAll   bool
	CORSOrigins    []string
	CORSAllowCreds bool

	// SiteName is the business name used in notification emails. Default: "Greenscape".
	SiteName string
	// TimeZone drives seasonal resolution; quote requests capture the current
	// month in this zone once per request. Default: "America/Chicago".
	TimeZone string
	location *time.Location

	// SMTP settings for lead alert emails. Email is disabled when the host is empty.
	EmailEnabled       bool
	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	EmailFromName      string
	EmailFromAddress   string
	LeadAlertRecipient string

	// Public lead form rate limiting (per client IP).
	LeadSubmitPerMinute float64
	LeadSubmitBurst     int
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	smtpHost := getEnv("SMTP_HOST", "")
	emailEnabled := strings.EqualFold(getEnv("EMAIL_ENABLED", "true"), "true")

	cfg := &Config{
		Env:                 getEnv("APP_ENV", "development"),
		HTTPAddr:            getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		CORSAllowAll:        corsAllowAll,
		CORSOrigins:         corsOrigins,
		CORSAllowCreds:      strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		SiteName:            getEnv("SITE_NAME", "Greenscape"),
		TimeZone:            getEnv("SITE_TIMEZONE", "America/Chicago"),
		EmailEnabled:        emailEnabled && smtpHost != "",
		SMTPHost:            smtpHost,
		SMTPPort:            mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:        getEnv("SMTP_USERNAME", ""),
		SMTPPassword:        getEnv("SMTP_PASSWORD", ""),
		EmailFromName:       getEnv("EMAIL_FROM_NAME", "Greenscape Website"),
		EmailFromAddress:    getEnv("EMAIL_FROM_ADDRESS", ""),
		LeadAlertRecipient:  getEnv("LEAD_ALERT_RECIPIENT", ""),
		LeadSubmitPerMinute: mustFloat(getEnv("LEAD_SUBMIT_PER_MINUTE", "10")),
		LeadSubmitBurst:     mustInt(getEnv("LEAD_SUBMIT_BURST", "5")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid SITE_TIMEZONE %q: %w", cfg.TimeZone, err)
	}
	cfg.location = loc

	return cfg, nil
}

// GetDatabaseURL returns the database connection string.
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// GetHTTPAddr returns the HTTP listen address.
func (c *Config) GetHTTPAddr() string { return c.HTTPAddr }

// GetCORSAllowAll reports whether all origins are allowed.
func (c *Config) GetCORSAllowAll() bool { return c.CORSAllowAll }

// GetCORSOrigins returns the allowed CORS origins.
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// GetCORSAllowCreds reports whether CORS credentials are allowed.
func (c *Config) GetCORSAllowCreds() bool { return c.CORSAllowCreds }

// GetEmailEnabled reports whether lead alert email is configured.
func (c *Config) GetEmailEnabled() bool { return c.EmailEnabled }

// GetSMTPHost returns the SMTP server host.
func (c *Config) GetSMTPHost() string { return c.SMTPHost }

// GetSMTPPort returns the SMTP server port.
func (c *Config) GetSMTPPort() int { return c.SMTPPort }

// GetSMTPUsername returns the SMTP username.
func (c *Config) GetSMTPUsername() string { return c.SMTPUsername }

// GetSMTPPassword returns the SMTP password.
func (c *Config) GetSMTPPassword() string { return c.SMTPPassword }

// GetEmailFromName returns the sender display name.
func (c *Config) GetEmailFromName() string { return c.EmailFromName }

// GetEmailFromAddress returns the sender address.
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }

// GetLeadAlertRecipient returns the operator inbox for new lead alerts.
func (c *Config) GetLeadAlertRecipient() string { return c.LeadAlertRecipient }

// GetLeadSubmitPerMinute returns the sustained public submission rate per IP.
func (c *Config) GetLeadSubmitPerMinute() float64 { return c.LeadSubmitPerMinute }

// GetLeadSubmitBurst returns the public submission burst per IP.
func (c *Config) GetLeadSubmitBurst() int { return c.LeadSubmitBurst }

// GetSiteName returns the business name.
func (c *Config) GetSiteName() string { return c.SiteName }

// GetTimeLocation returns the site's time zone for seasonal resolution.
func (c *Config) GetTimeLocation() *time.Location { return c.location }

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func containsWildcard(values []string) bool {
	for _, v := range values {
		if v == "*" {
			return true
		}
	}
	return false
}

func mustInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

func mustFloat(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}
