package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Applies defaults for missing keys", func(t *testing.T) {
		// Given: a config file that only sets the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the delays and redis settings fall back to defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 2000*time.Millisecond, conf.Delays.HumanMove())
		assert.Equal(t, 1000*time.Millisecond, conf.Delays.RestartFirstMove())
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "rewards:default", conf.Redis.RewardKey)
		assert.Equal(t, "games:", conf.Redis.GamePrefix)
		assert.Equal(t, 168*time.Hour, conf.Redis.GameTTL())
		assert.Equal(t, 2*time.Second, conf.Redis.Timeout())
	})

	t.Run("Reads nested sections", func(t *testing.T) {
		path := writeConfig(t, `
delays:
  human-move-ms: 10
  restart-first-move-ms: 5
redis:
  enabled: true
  host: redis
  port: "6380"
  reward-key: rewards:test
`)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 10*time.Millisecond, conf.Delays.HumanMove())
		assert.Equal(t, 5*time.Millisecond, conf.Delays.RestartFirstMove())
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "rewards:test", conf.Redis.RewardKey)
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "absent.yml")) })
	})
}

func TestLoadFromEnv(t *testing.T) {
	// Given: delays overridden from the environment
	t.Setenv("DELAY_HUMAN_MOVE_MS", "250")
	t.Setenv("REDIS_HOST", "cache")

	// When: loading without a file
	conf, err := LoadFromEnv()

	// Then: the environment wins over defaults
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, conf.Delays.HumanMove())
	assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
}
