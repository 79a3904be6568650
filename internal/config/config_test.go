package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("JWT_SECRET", "s")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")
	t.Setenv("REDIS_DB", "")
	t.Setenv("WORKER_COUNT", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "postgres://localhost/app", cfg.DatabaseURL)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, 0, cfg.RedisDB)
	require.Equal(t, 1, cfg.WorkerCount)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_PASSWORD", "pw")
	t.Setenv("WORKER_COUNT", "4")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, 2, cfg.RedisDB)
	require.Equal(t, "pw", cfg.RedisPassword)
	require.Equal(t, 4, cfg.WorkerCount)
}

func TestLoadMissingRequired(t *testing.T) {
	cases := []string{"DATABASE_URL", "REDIS_ADDR", "JWT_SECRET"}
	for _, key := range cases {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, "")
			_, err := Load()
			require.Error(t, err)
			require.Contains(t, err.Error(), key)
		})
	}
}

func TestLoadInvalidNumbers(t *testing.T) {
	setRequired(t)
	t.Setenv("REDIS_DB", "x")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("REDIS_DB", "0")
	t.Setenv("WORKER_COUNT", "0")
	_, err = Load()
	require.Error(t, err)
}
