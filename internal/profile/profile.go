package profile

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Profile is the configuration to start the theme service.
type Profile struct {
	// Mode can be "prod" or "dev"
	Mode string
	// Addr is the binding address for server
	Addr string
	// Port is the binding port for server
	Port int
	// Driver is the backend driver (redis or sqlite)
	Driver string
	// DSN is the data source name for the sqlite driver
	DSN string
	// Version is the current version of server
	Version string
	// Debug enables verbose logging
	Debug bool

	// RedisURL is the connection URL for the redis backend (NAEBAK_REDIS_URL / REDIS_URL)
	RedisURL string
	// DefaultTheme is the theme returned when a user has no stored preference (DEFAULT_THEME)
	DefaultTheme string
	// AvailableThemes is the closed set of valid theme names (AVAILABLE_THEMES, comma-separated)
	AvailableThemes []string
	// CORSAllowedOrigins lists the origins allowed to call the API (CORS_ALLOWED_ORIGINS, comma-separated)
	CORSAllowedOrigins []string
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// getEnvOrDefault returns the environment variable value or the default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitList splits a comma-separated environment value, trimming whitespace
// and dropping empty entries.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}

// FromEnv loads the service-specific configuration from environment variables.
// Supports both NAEBAK_* (new) and bare (legacy) variable names.
func (p *Profile) FromEnv() {
	getEnvWithFallback := func(newKey, legacyKey, defaultValue string) string {
		if val := os.Getenv(newKey); val != "" {
			return val
		}
		return getEnvOrDefault(legacyKey, defaultValue)
	}

	p.RedisURL = getEnvWithFallback("NAEBAK_REDIS_URL", "REDIS_URL", "redis://localhost:6379/2")
	p.DefaultTheme = getEnvWithFallback("NAEBAK_DEFAULT_THEME", "DEFAULT_THEME", "light")
	p.AvailableThemes = splitList(getEnvWithFallback("NAEBAK_AVAILABLE_THEMES", "AVAILABLE_THEMES", "light,dark,blue,green"))
	p.CORSAllowedOrigins = splitList(getEnvWithFallback("NAEBAK_CORS_ALLOWED_ORIGINS", "CORS_ALLOWED_ORIGINS", "*"))

	if debug := getEnvWithFallback("NAEBAK_DEBUG", "DEBUG", ""); debug != "" {
		p.Debug = strings.EqualFold(debug, "true")
	} else {
		p.Debug = p.IsDev()
	}
}

func (p *Profile) Validate() error {
	if p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "dev"
	}

	if p.Port <= 0 || p.Port > 65535 {
		return errors.Errorf("invalid port: %d", p.Port)
	}

	switch p.Driver {
	case "redis", "sqlite":
	default:
		return errors.Errorf("unknown backend driver %q: only 'redis' and 'sqlite' are supported", p.Driver)
	}

	if p.Driver == "sqlite" && p.DSN == "" {
		p.DSN = fmt.Sprintf("naebak_theme_%s.db", p.Mode)
	}

	if p.DefaultTheme == "" {
		p.DefaultTheme = "light"
	}

	return nil
}
