// Package config reads the service configuration from the environment.
package config

import (
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	APIURL           string   `env:"API_URL"            envDefault:"http://localhost:8080"`
	ListenAddress    string   `env:"LISTEN_ADDRESS"     envDefault:":8080"`
	DBPath           string   `env:"DB_PATH"            envDefault:"data/gorm.db"`
	GinMode          string   `env:"GIN_MODE"           envDefault:"release"`
	LogFormat        string   `env:"LOG_FORMAT"`
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:" "`
	EnablePprof      bool     `env:"ENABLE_PPROF"       envDefault:"false"`
	DemoUserEmail    string   `env:"DEMO_USER_EMAIL"    envDefault:"demo@local"`
	DefaultCurrency  string   `env:"DEFAULT_CURRENCY"   envDefault:"SEK"`

	baseURL *url.URL
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	u, err := url.Parse(cfg.APIURL)
	if err != nil {
		return Config{}, fmt.Errorf("API_URL is not a valid URL: %w", err)
	}

	if u.Scheme == "" || u.Host == "" {
		return Config{}, fmt.Errorf("API_URL must contain a scheme and a host, got %q", cfg.APIURL)
	}

	cfg.baseURL = u
	return cfg, nil
}

// BaseURL is the parsed API_URL.
func (c Config) BaseURL() *url.URL {
	return c.baseURL
}

// HumanLogs reports if logs should be written for humans instead of as JSON.
// Without an explicit LOG_FORMAT, debug mode logs for humans.
func (c Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.GinMode == "debug"
	}
	return c.LogFormat == "human"
}
