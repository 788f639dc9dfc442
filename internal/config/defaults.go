package config

import "time"

// DefaultPath is the config file read when --config is not given
const DefaultPath = "portfolio.yml"

// EnvPrefix prefixes environment overrides, e.g. PORTFOLIO_SESSION__TTL
const EnvPrefix = "PORTFOLIO_"

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		ServerAddr:      ":8080",
		LogLevel:        "info",
		ShutdownTimeout: 10 * time.Second,
		Session: SessionConfig{
			CookieName:    "portfolio_session",
			TTL:           30 * time.Minute,
			SweepInterval: time.Minute,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		},
		Site: SiteConfig{
			Title:       "Creative Portfolio",
			TailwindURL: "https://cdn.tailwindcss.com",
			HTMXURL:     "https://unpkg.com/htmx.org@1.9.12",
		},
	}
}
