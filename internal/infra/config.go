package infra

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string
	Port               string
	SessionDBPath      string
	GeminiAPIKey       string
	GeminiModel        string
	GeminiBaseURL      string
	GoogleSignInDelay  time.Duration
	NotificationTTL    time.Duration
	ContactSubs        string
	ContactGeneral     string
	AllowedOrigins     []string
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	AnalyzerRatePerMin int
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. The Gemini key may be empty; the analyzer then
// reports every run as failed, which is still a well-defined outcome.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		SessionDBPath:      getEnv("SESSION_DB_PATH", "data/session.db"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
		GeminiBaseURL:      getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GoogleSignInDelay:  time.Millisecond * time.Duration(getEnvInt("GOOGLE_SIGNIN_DELAY_MS", 1500)),
		NotificationTTL:    time.Millisecond * time.Duration(getEnvInt("NOTIFICATION_TTL_MS", 3000)),
		ContactSubs:        getEnv("CONTACT_SUBSCRIPTION", "subscriptions@tfx-id.pro"),
		ContactGeneral:     getEnv("CONTACT_GENERAL", "support@tfx-id.pro"),
		HTTPReadTimeout:    time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:   time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 90)),
		HTTPIdleTimeout:    time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		AnalyzerRatePerMin: getEnvInt("ANALYZER_RATE_PER_MINUTE", 30),
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitAndTrim(origins)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
