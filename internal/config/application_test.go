package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationConfigDefaults(t *testing.T) {
	cfg := NewApplicationConfig()
	require.NoError(t, cfg.ObtainValuesFromEnv())

	assert.Equal(t, "runkit", cfg.ApplicationName)
	assert.Equal(t, "~/datasets", cfg.DatasetDirectory)
	assert.Equal(t, 15*time.Minute, cfg.DatasetArchiveTTL)
	assert.Equal(t, CacheMethodMemory, cfg.CacheMethod)
	assert.Equal(t, int64(42), cfg.RunBaseSeed)
}

func TestApplicationConfigParsesMirrorsInOrder(t *testing.T) {
	t.Setenv("DATASET_MIRRORS", "https://b.example, https://a.example,https://b.example")

	cfg := NewApplicationConfig()
	require.NoError(t, cfg.ObtainValuesFromEnv())

	assert.Equal(t, DatasetMirrors{"https://b.example", "https://a.example"}, cfg.DatasetMirrors)
}

func TestApplicationConfigParsesCacheMethod(t *testing.T) {
	t.Setenv("CACHE_METHOD", "REDIS")

	cfg := NewApplicationConfig()
	require.NoError(t, cfg.ObtainValuesFromEnv())
	assert.Equal(t, CacheMethodRedis, cfg.CacheMethod)

	t.Setenv("CACHE_METHOD", "BOGUS")
	require.Error(t, NewApplicationConfig().ObtainValuesFromEnv())
}
