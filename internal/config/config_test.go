package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "vendorsphere.db", cfg.DBDSN)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 1500*time.Millisecond, cfg.TaskDelay)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL_MINUTES", "15")
	t.Setenv("TASK_DELAY_MS", "0")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, time.Duration(0), cfg.TaskDelay)
}

func TestLoadIgnoresUnparsableInts(t *testing.T) {
	t.Setenv("TOKEN_TTL_MINUTES", "soon")
	cfg := Load()
	assert.Equal(t, time.Hour, cfg.TokenTTL)
}
