package config

import "time"

// Config holds all application configuration, corresponding to portfolio.yml
type Config struct {
	ServerAddr      string        `yaml:"server_addr" koanf:"server_addr"`
	LogLevel        string        `yaml:"log_level" koanf:"log_level"`
	Dev             bool          `yaml:"dev" koanf:"dev"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" koanf:"shutdown_timeout"`
	Session         SessionConfig `yaml:"session" koanf:"session"`
	CORS            CORSConfig    `yaml:"cors" koanf:"cors"`
	Site            SiteConfig    `yaml:"site" koanf:"site"`
}

// SessionConfig controls how long a visitor's view state is kept
type SessionConfig struct {
	CookieName    string        `yaml:"cookie_name" koanf:"cookie_name"`
	TTL           time.Duration `yaml:"ttl" koanf:"ttl"`
	SweepInterval time.Duration `yaml:"sweep_interval" koanf:"sweep_interval"`
}

// CORSConfig holds cross-origin settings for the JSON API
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
}

// SiteConfig holds page-level settings
type SiteConfig struct {
	Title       string `yaml:"title" koanf:"title"`
	TailwindURL string `yaml:"tailwind_url" koanf:"tailwind_url"`
	HTMXURL     string `yaml:"htmx_url" koanf:"htmx_url"`
}
