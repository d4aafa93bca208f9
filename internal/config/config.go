package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultListenAddr      = ":8080"
	defaultSessionTTL      = "12h"
	defaultCookieSecure    = "false"
	defaultCookieSameSite  = "Lax"
	defaultCurrency        = "AUD"
	defaultAbandonedHours  = "24"
	defaultSessionSecret   = "change-me-session-secret"
	defaultAdminPassword   = "change-me-admin"
	defaultCMSPassword     = "change-me-cms"
	sessionCookieName      = "th_session"
	defaultCookiePathValue = "/"
)

type Config struct {
	AppEnv      string
	ListenAddr  string
	DatabaseURL string

	// Console auth. Passwords may be plain values or bcrypt hashes
	// (a value starting with "$2" is treated as a hash).
	AdminPassword string
	CMSPassword   string

	SessionSecret  string
	SessionTTL     time.Duration
	CookieName     string
	CookieSecure   bool
	CookieSameSite string
	CookiePath     string

	DefaultCurrency string
	AbandonedHours  int
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.ListenAddr = getEnv("LISTEN_ADDR", defaultListenAddr)
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))

	cfg.AdminPassword = strings.TrimSpace(getEnv("ADMIN_PASSWORD", defaultAdminPassword))
	cfg.CMSPassword = strings.TrimSpace(getEnv("CMS_PASSWORD", defaultCMSPassword))
	cfg.SessionSecret = strings.TrimSpace(getEnv("SESSION_SECRET", defaultSessionSecret))

	var err error
	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}

	cfg.CookieName = sessionCookieName
	cfg.CookieSecure = parseBoolEnv("COOKIE_SECURE", defaultCookieSecure)
	cfg.CookieSameSite = strings.TrimSpace(getEnv("COOKIE_SAMESITE", defaultCookieSameSite))
	cfg.CookiePath = strings.TrimSpace(getEnv("COOKIE_PATH", defaultCookiePathValue))

	cfg.DefaultCurrency = strings.TrimSpace(getEnv("DEFAULT_CURRENCY", defaultCurrency))

	cfg.AbandonedHours, err = parseIntEnv("ABANDONED_HOURS", defaultAbandonedHours)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	log.Printf("config: env=%s cookie secure=%t sameSite=%s path=%s", cfg.AppEnv, cfg.CookieSecure, cfg.CookieSameSite, cfg.CookiePath)

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	if cfg.AbandonedHours <= 0 {
		return fmt.Errorf("ABANDONED_HOURS must be > 0")
	}
	if cfg.CookiePath == "" {
		return fmt.Errorf("COOKIE_PATH must not be empty")
	}
	sameSite := strings.ToLower(cfg.CookieSameSite)
	if sameSite != "lax" && sameSite != "none" && sameSite != "strict" {
		return fmt.Errorf("COOKIE_SAMESITE must be one of: Lax, None, Strict")
	}
	if sameSite == "none" && !cfg.CookieSecure {
		return fmt.Errorf("COOKIE_SECURE must be true when COOKIE_SAMESITE=None")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.SessionSecret, defaultSessionSecret) {
			return fmt.Errorf("in prod/release SESSION_SECRET must be set and not default")
		}
		if isEmptyOrDefault(cfg.AdminPassword, defaultAdminPassword) {
			return fmt.Errorf("in prod/release ADMIN_PASSWORD must be set and not default")
		}
		if isEmptyOrDefault(cfg.CMSPassword, defaultCMSPassword) {
			return fmt.Errorf("in prod/release CMS_PASSWORD must be set and not default")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	switch env {
	case "prod", "production", "release":
		return true
	}
	return false
}

func isEmptyOrDefault(value, def string) bool {
	return value == "" || value == def
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}

func parseIntEnv(key, def string) (int, error) {
	raw := getEnv(key, def)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q: %w", key, raw, err)
	}
	return n, nil
}

func parseBoolEnv(key, def string) bool {
	raw := strings.ToLower(strings.TrimSpace(getEnv(key, def)))
	return raw == "1" || raw == "true" || raw == "yes" || raw == "on"
}
