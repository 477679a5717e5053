package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string `env:"SERVER_PORT" envDefault:"8080"`
	DatabaseURL   string `env:"DATABASE_URL"`
	JWTSecret     string `env:"JWT_SECRET" envDefault:"super-secret-key-change-me"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	LogPretty     bool   `env:"LOG_PRETTY" envDefault:"false"`
}

// Load reads .env when present, then the process environment. An empty
// DATABASE_URL selects the in-memory store.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
