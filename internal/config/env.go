package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr       string
	GinMode       string
	APIBaseURL    string
	APITimeout    time.Duration
	CookieDomain  string
	CookieSecure  bool
	TemplatesGlob string
}

// LoadEnv reads configuration from the environment, with .env as a local
// development fallback.
func LoadEnv() Env {
	_ = godotenv.Load()

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	apiBase := strings.TrimSpace(os.Getenv("HOTEL_API_BASE_URL"))
	if apiBase == "" {
		apiBase = "https://localhost:7124"
	}
	apiBase = strings.TrimRight(apiBase, "/")

	timeout := 15 * time.Second
	if raw := strings.TrimSpace(os.Getenv("HOTEL_API_TIMEOUT_SECONDS")); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	secure := true
	if raw := strings.TrimSpace(os.Getenv("COOKIE_SECURE")); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			secure = v
		}
	}

	tpl := strings.TrimSpace(os.Getenv("TEMPLATES_GLOB"))
	if tpl == "" {
		tpl = "web/templates/*.html"
	}

	return Env{
		AppAddr:       appAddr,
		GinMode:       strings.TrimSpace(os.Getenv("GIN_MODE")),
		APIBaseURL:    apiBase,
		APITimeout:    timeout,
		CookieDomain:  strings.TrimSpace(os.Getenv("COOKIE_DOMAIN")),
		CookieSecure:  secure,
		TemplatesGlob: tpl,
	}
}
