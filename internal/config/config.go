package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Postgres struct {
	Host     string `env:"PG_HOST"`
	Port     string `env:"PG_PORT" envDefault:"5432"`
	DB       string `env:"PG_DB"`
	User     string `env:"PG_USER"`
	Password string `env:"PG_PASSWORD"`
	SSLMode  string `env:"PG_SSLMODE" envDefault:"disable"`
}

type Retry struct {
	Attempts     int           `env:"RETRY_ATTEMPTS" envDefault:"5"`
	Base         time.Duration `env:"RETRY_BASE" envDefault:"100ms"`
	Max          time.Duration `env:"RETRY_MAX" envDefault:"5s"`
	JitterFactor float64       `env:"RETRY_JITTERFACTOR" envDefault:"0.3"`
}

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8081"`

	// CacheCap bounds the order filter cache.
	CacheCap int `env:"CACHE_CAP" envDefault:"10"`

	// CascadeWorkers bounds the favorites scan during coffee deletion.
	CascadeWorkers int `env:"CASCADE_WORKERS" envDefault:"4"`

	Pg    Postgres
	Retry Retry
}

// Load keeps the original API and fatals on error for simplicity in main().
func Load() Config {
	cfg, err := load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	return cfg
}

func load() (Config, error) {
	_ = godotenv.Load("env/.env")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	req := map[string]string{
		"PG_HOST":     c.Pg.Host,
		"PG_DB":       c.Pg.DB,
		"PG_USER":     c.Pg.User,
		"PG_PASSWORD": c.Pg.Password,
	}
	var missing []string
	for k, v := range req {
		if v == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required envs: %v", missing)
	}

	if c.CacheCap <= 0 {
		return fmt.Errorf("CACHE_CAP must be positive, got %d", c.CacheCap)
	}
	if c.CascadeWorkers <= 0 {
		return fmt.Errorf("CASCADE_WORKERS must be positive, got %d", c.CascadeWorkers)
	}
	if c.Retry.Max < c.Retry.Base {
		log.Printf("RETRY_MAX (%v) < RETRY_BASE (%v); every retry delay is capped at RETRY_MAX", c.Retry.Max, c.Retry.Base)
	}
	return nil
}

// DSN builds a proper Postgres URL, safely escaping user/pass and query.
func (c Config) DSN() string {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.Pg.User, c.Pg.Password),
		Host:   net.JoinHostPort(c.Pg.Host, c.Pg.Port),
		Path:   "/" + c.Pg.DB,
	}
	q := url.Values{}
	if c.Pg.SSLMode != "" {
		q.Set("sslmode", c.Pg.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}
