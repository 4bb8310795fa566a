package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type Config struct {
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	APIPort int    `env:"API_PORT" envDefault:"8080"`

	Postgres Postgres
	Redis    Redis

	CacheBackend     string        `env:"CACHE_BACKEND" envDefault:"memory"`
	SeatTypeCacheTTL time.Duration `env:"SEAT_TYPE_CACHE_TTL" envDefault:"10m"`
	// SeatTypeRefresh re-primes the seat type cache in the background; 0 disables it
	SeatTypeRefresh  time.Duration `env:"SEAT_TYPE_REFRESH_INTERVAL" envDefault:"5m"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"https://*,http://localhost:8081" envSeparator:","`
}

type Postgres struct {
	Host     string `env:"PG_HOST" envDefault:"localhost"`
	Port     int    `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER" envDefault:"postgres"`
	Password string `env:"PG_PASSWORD"`
	Name     string `env:"PG_DB" envDefault:"airline"`
	SSLMode  string `env:"PG_SSLMODE" envDefault:"disable"`
}

// DSN is the postgres:// URL used by both sqlx and gorm
func (p Postgres) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:     p.Name,
		RawQuery: "sslmode=" + url.QueryEscape(p.SSLMode),
	}
	return u.String()
}

type Redis struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

func (r Redis) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Load reads .env files when present, then the process environment.
// Variables already set in the environment win over the files.
func Load() (*Config, error) {
	for _, f := range []string{".env.local", ".env"} {
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", f, err)
			}
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) Validate() error {
	var errs []error

	if c.APIPort <= 0 || c.APIPort > 65535 {
		errs = append(errs, fmt.Errorf("API_PORT out of range: %d", c.APIPort))
	}
	if c.Postgres.Port <= 0 || c.Postgres.Port > 65535 {
		errs = append(errs, fmt.Errorf("PG_PORT out of range: %d", c.Postgres.Port))
	}
	if strings.TrimSpace(c.Postgres.Name) == "" {
		errs = append(errs, errors.New("PG_DB is required"))
	}

	switch c.CacheBackend {
	case CacheBackendMemory, CacheBackendRedis:
	default:
		errs = append(errs, fmt.Errorf("CACHE_BACKEND must be %q or %q, got %q", CacheBackendMemory, CacheBackendRedis, c.CacheBackend))
	}
	if c.SeatTypeCacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("SEAT_TYPE_CACHE_TTL must be positive, got %s", c.SeatTypeCacheTTL))
	}
	if c.SeatTypeRefresh < 0 {
		errs = append(errs, fmt.Errorf("SEAT_TYPE_REFRESH_INTERVAL must not be negative, got %s", c.SeatTypeRefresh))
	}

	if c.RateLimitRPS <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_RPS must be positive, got %v", c.RateLimitRPS))
	}
	if c.RateLimitBurst <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_BURST must be positive, got %d", c.RateLimitBurst))
	}

	return errors.Join(errs...)
}
