package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		for _, key := range []string{"DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_PORT", "DB_SSLMODE", "DB_TIMEZONE"} {
			t.Setenv(key, "")
		}

		cfg := LoadConfigFromEnv()
		expected := Config{
			Host:     "localhost",
			User:     "postgres",
			Password: "postgres",
			DBName:   "goalboard",
			Port:     "5432",
			SSLMode:  "disable",
			TimeZone: "UTC",
		}
		assert.Equal(t, expected, cfg)
	})

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("DB_HOST", "db")
		t.Setenv("DB_USER", "board")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_NAME", "boards")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_SSLMODE", "require")
		t.Setenv("DB_TIMEZONE", "Asia/Seoul")

		cfg := LoadConfigFromEnv()
		assert.Equal(t, "db", cfg.Host)
		assert.Equal(t, "board", cfg.User)
		assert.Equal(t, "secret", cfg.Password)
		assert.Equal(t, "boards", cfg.DBName)
		assert.Equal(t, "5433", cfg.Port)
		assert.Equal(t, "require", cfg.SSLMode)
		assert.Equal(t, "Asia/Seoul", cfg.TimeZone)
	})
}

func TestBuildDSN(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		User:     "postgres",
		Password: "postgres",
		DBName:   "goalboard",
		Port:     "5432",
		SSLMode:  "disable",
		TimeZone: "UTC",
	}
	expected := "host=localhost user=postgres password=postgres dbname=goalboard port=5432 sslmode=disable TimeZone=UTC"
	assert.Equal(t, expected, BuildDSN(cfg))
}

func TestSanitizeError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, SanitizeError(nil, Config{}))
	})

	t.Run("password removed", func(t *testing.T) {
		cfg := Config{Host: "db", Password: "hunter2"}
		err := SanitizeError(errors.New("password=hunter2 authentication failed"), cfg)
		assert.NotContains(t, err.Error(), "hunter2")
		assert.Contains(t, err.Error(), "***")
		assert.Contains(t, err.Error(), "failed to connect to database")
	})

	t.Run("empty password leaves message intact", func(t *testing.T) {
		err := SanitizeError(errors.New("connection refused"), Config{})
		assert.Equal(t, "failed to connect to database: connection refused", err.Error())
	})
}

func TestLoadRetryConfigFromEnv(t *testing.T) {
	t.Setenv("DB_RETRY_MAX_ATTEMPTS", "3")
	t.Setenv("DB_RETRY_INITIAL_DELAY", "200ms")
	t.Setenv("DB_RETRY_MAX_DELAY", "2s")
	t.Setenv("DB_RETRY_MULTIPLIER", "1.5")

	cfg := LoadRetryConfigFromEnv()
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, 200*time.Millisecond, cfg.InitialDelay)
	assert.Equal(t, 2*time.Second, cfg.MaxDelay)
	assert.Equal(t, 1.5, cfg.Multiplier)
	assert.NotEmpty(t, cfg.RetryableErrors)
}

func TestLoadRetryConfigFromEnv_InvalidMultiplier(t *testing.T) {
	t.Setenv("DB_RETRY_MULTIPLIER", "fast")

	cfg := LoadRetryConfigFromEnv()
	assert.Equal(t, 2.0, cfg.Multiplier)
}

func TestLoadPoolConfigFromEnv(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "10")
	t.Setenv("DB_MAX_IDLE_CONNS", "2")
	t.Setenv("DB_CONN_MAX_LIFETIME", "1m")
	t.Setenv("DB_CONN_MAX_IDLE_TIME", "30s")

	cfg := LoadPoolConfigFromEnv()
	assert.Equal(t, 10, cfg.MaxOpenConns)
	assert.Equal(t, 2, cfg.MaxIdleConns)
	assert.Equal(t, time.Minute, cfg.ConnMaxLifetime)
	assert.Equal(t, 30*time.Second, cfg.ConnMaxIdleTime)
}
