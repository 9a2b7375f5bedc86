package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("API_BASE_URL", "http://localhost:4000/api/")
	t.Setenv("SESSION_ID", "test-session")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("CART_STORAGE", "")
	t.Setenv("CART_FILE", "cart.json")
	t.Setenv("API_TIMEOUT_SECONDS", "")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000/api", cfg.APIBaseURL, "trailing slash is stripped")
	assert.Equal(t, 15*time.Second, cfg.APITimeout)
	assert.Equal(t, "file", cfg.CartBackend, "file backend is the default without Redis")
	assert.Equal(t, "test-session", cfg.SessionID)
}

func TestLoad_RequiresBaseURL(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("API_BASE_URL", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_RedisBackendSelection(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.CartBackend, "a Redis address implies the Redis backend")

	t.Setenv("CART_STORAGE", "memory")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.CartBackend, "explicit CART_STORAGE wins")
}

func TestLoad_RejectsBadValues(t *testing.T) {
	setBaseEnv(t)

	t.Setenv("CART_STORAGE", "cloud")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("CART_STORAGE", "redis") // without REDIS_ADDR
	_, err = Load()
	require.Error(t, err)

	t.Setenv("CART_STORAGE", "file")
	t.Setenv("API_TIMEOUT_SECONDS", "zero")
	_, err = Load()
	require.Error(t, err)
}

func TestLoad_CustomTimeout(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("API_TIMEOUT_SECONDS", "30")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.APITimeout)
}

func TestEnsureSessionID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session")

	first, err := ensureSessionID(path)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := ensureSessionID(path)
	require.NoError(t, err)
	assert.Equal(t, first, second, "the generated id must be stable across runs")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), first)
}
