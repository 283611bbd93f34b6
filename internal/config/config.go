// Package config reads runtime settings from the environment.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the server settings.
type Config struct {
	Addr        string
	WebDir      string
	DatabaseURL string // empty selects the in-memory store

	SessionTTL time.Duration

	CORSAllowedOrigins []string

	AuthRateLimitRPS   float64
	AuthRateLimitBurst int

	// TrustForwardAuth accepts the Remote-User header from a reverse proxy.
	TrustForwardAuth bool

	// TrustProxy takes client addresses from X-Forwarded-For.
	TrustProxy bool

	OIDC OIDC
}

// OIDC configures single sign-on.
type OIDC struct {
	Issuer       string
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Enabled reports whether issuer and client id are both set.
func (o OIDC) Enabled() bool {
	return o.Issuer != "" && o.ClientID != ""
}

// Load reads the configuration from environment variables.
func Load() *Config {
	return &Config{
		Addr:               env("ADDR", ":8080"),
		WebDir:             env("WEB_DIR", "web"),
		DatabaseURL:        strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SessionTTL:         envDuration("SESSION_TTL", 24*time.Hour),
		CORSAllowedOrigins: parseList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		AuthRateLimitRPS:   envFloat("AUTH_RATE_LIMIT_RPS", 1),
		AuthRateLimitBurst: envInt("AUTH_RATE_LIMIT_BURST", 5),
		TrustForwardAuth:   parseBoolEnv("TRUST_FORWARD_AUTH"),
		TrustProxy:         parseBoolEnv("TRUST_PROXY"),
		OIDC: OIDC{
			Issuer:       strings.TrimSpace(os.Getenv("OIDC_ISSUER")),
			ClientID:     strings.TrimSpace(os.Getenv("OIDC_CLIENT_ID")),
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			RedirectURL:  strings.TrimSpace(os.Getenv("OIDC_REDIRECT_URL")),
		},
	}
}

func env(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// parseList splits a comma separated value, dropping empty items.
func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("WARNING: invalid %s=%q, using %d", key, s, defaultVal)
		return defaultVal
	}
	return v
}

func envFloat(key string, defaultVal float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("WARNING: invalid %s=%q, using %g", key, s, defaultVal)
		return defaultVal
	}
	return v
}

func envDuration(key string, defaultVal time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	v, err := time.ParseDuration(s)
	if err != nil || v <= 0 {
		log.Printf("WARNING: invalid %s=%q, using %s", key, s, defaultVal)
		return defaultVal
	}
	return v
}

func parseBoolEnv(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "1" || v == "true" || v == "yes" || v == "on"
}
