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
		// Given: a config file with only the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: loading it
		conf, err := Load(path)

		// Then: everything else has its default
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 200*time.Millisecond, conf.Game.ComputerDelay)
		assert.Equal(t, 3*time.Second, conf.Game.TurnTimeout)
		assert.Equal(t, int64(10), conf.Game.LeaderboardSize)
		assert.Equal(t, 120*time.Second, conf.Scoring.TimeCap)
		assert.Equal(t, 900, conf.Scoring.HardBase)
	})

	t.Run("Reads the scoring table from the file", func(t *testing.T) {
		path := writeConfig(t, "scoring:\n  time-cap: 240s\n  easy-base: 300\n  medium-base: 600\n  hard-base: 1000\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 240*time.Second, conf.Scoring.TimeCap)
		assert.Equal(t, 300, conf.Scoring.EasyBase)
		assert.Equal(t, 600, conf.Scoring.MediumBase)
		assert.Equal(t, 1000, conf.Scoring.HardBase)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "redis:\n  host: redis.local\n")
		t.Setenv("REDIS_HOST", "cache")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))

		require.Error(t, err)
	})
}
