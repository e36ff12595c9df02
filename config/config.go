package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type AppConfig struct {
	Port     string
	Timezone string

	DBDriver string // sqlite|postgres
	DBPath   string
	DBDSN    string

	JWTSecret     string
	TokenTTL      time.Duration
	AdminEmail    string
	AdminPassword string

	CatalogXLSX string

	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string
	EmbEndpoint string
	EmbAPIKey   string
	EmbModel    string

	TipsAllowedDomains []string
	TipsMaxBytes       int

	LogLevel      string
	LogFormat     string
	ReminderCron  string
	EnableMetrics bool
	AuthRateLimit int // requests per second per IP on /api/auth, 0 disables
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.WithField("component", "cfg").Debugf("no .env file loaded: %v", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from a lookup function so tests can feed a map.
func FromEnv(getenv func(string) string) AppConfig {
	get := func(k, def string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v, err := strconv.Atoi(get(k, "")); err == nil && v > 0 {
			return v
		}
		return def
	}

	// "0" turns the limiter off, so getInt's positive-only rule does not fit
	authRate := 5
	if v, err := strconv.Atoi(get("AUTH_RATE_LIMIT", "")); err == nil && v >= 0 {
		authRate = v
	}

	var domains []string
	for _, h := range strings.Split(get("TIPS_ALLOWED_DOMAINS", ""), ",") {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			domains = append(domains, h)
		}
	}

	return AppConfig{
		Port:               get("PORT", "8001"),
		Timezone:           get("TZ", "Europe/Paris"),
		DBDriver:           strings.ToLower(get("DB_DRIVER", "sqlite")),
		DBPath:             get("DB_PATH", "potager.db"),
		DBDSN:              get("DB_DSN", ""),
		JWTSecret:          get("JWT_SECRET", "change-me-potager-secret"),
		TokenTTL:           time.Duration(getInt("TOKEN_TTL_MINUTES", 30*24*60)) * time.Minute,
		AdminEmail:         get("ADMIN_EMAIL", "admin@lepotagermalin.com"),
		AdminPassword:      get("ADMIN_PASSWORD", "admin123"),
		CatalogXLSX:        get("CATALOG_XLSX", ""),
		LLMEndpoint:        get("LLM_ENDPOINT", ""),
		LLMAPIKey:          get("LLM_API_KEY", ""),
		LLMModel:           get("LLM_MODEL", "openai/gpt-4o"),
		EmbEndpoint:        get("EMB_ENDPOINT", ""),
		EmbAPIKey:          get("EMB_API_KEY", ""),
		EmbModel:           get("EMB_MODEL", "text-embedding-3-small"),
		TipsAllowedDomains: domains,
		TipsMaxBytes:       getInt("TIPS_MAX_BYTES_PER_PAGE", 1500000),
		LogLevel:           get("LOG_LEVEL", "info"),
		LogFormat:          get("LOG_FORMAT", "text"),
		ReminderCron:       get("REMINDER_CRON", "@hourly"),
		EnableMetrics:      get("ENABLE_METRICS", "true") == "true",
		AuthRateLimit:      authRate,
	}
}

// Redacted returns a copy safe to log.
func (c AppConfig) Redacted() AppConfig {
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return "***"
	}
	c.JWTSecret = mask(c.JWTSecret)
	c.AdminPassword = mask(c.AdminPassword)
	c.LLMAPIKey = mask(c.LLMAPIKey)
	c.EmbAPIKey = mask(c.EmbAPIKey)
	c.DBDSN = mask(c.DBDSN)
	return c
}
