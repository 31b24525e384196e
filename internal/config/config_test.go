package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequiredEnvs(t *testing.T) {
	t.Helper()
	t.Setenv("PG_HOST", "localhost")
	t.Setenv("PG_DB", "coffeeshop")
	t.Setenv("PG_USER", "app")
	t.Setenv("PG_PASSWORD", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnvs(t)

	cfg, err := load()
	require.NoError(t, err)
	require.Equal(t, ":8081", cfg.HTTPAddr)
	require.Equal(t, 10, cfg.CacheCap)
	require.Equal(t, 4, cfg.CascadeWorkers)
	require.Equal(t, 5, cfg.Retry.Attempts)
	require.Equal(t, 100*time.Millisecond, cfg.Retry.Base)
}

func TestLoadMissingEnvs(t *testing.T) {
	t.Setenv("PG_HOST", "")
	t.Setenv("PG_DB", "")
	t.Setenv("PG_USER", "")
	t.Setenv("PG_PASSWORD", "")

	_, err := load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing required envs")
}

func TestLoadRejectsBadBounds(t *testing.T) {
	setRequiredEnvs(t)

	t.Setenv("CACHE_CAP", "0")
	_, err := load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "CACHE_CAP")

	t.Setenv("CACHE_CAP", "10")
	t.Setenv("CASCADE_WORKERS", "-1")
	_, err = load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "CASCADE_WORKERS")
}

func TestLoadKeepsRetryPolicyAsGiven(t *testing.T) {
	setRequiredEnvs(t)
	t.Setenv("RETRY_BASE", "2s")
	t.Setenv("RETRY_MAX", "1s")

	// A max below the base is tolerated, not rewritten; the retry loop
	// caps each delay at Max on its own.
	cfg, err := load()
	require.NoError(t, err)
	require.Equal(t, 2*time.Second, cfg.Retry.Base)
	require.Equal(t, time.Second, cfg.Retry.Max)
}

func TestDSN(t *testing.T) {
	cfg := Config{Pg: Postgres{
		Host:     "db",
		Port:     "5432",
		DB:       "shop",
		User:     "app",
		Password: "p@ss word",
		SSLMode:  "disable",
	}}
	require.Equal(t,
		"postgres://app:p%40ss%20word@db:5432/shop?sslmode=disable",
		cfg.DSN(),
	)
}
