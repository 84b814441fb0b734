package bus

import (
	"context"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisConfig_Defaults(t *testing.T) {
	var cfg RedisConfig
	require.NoError(t, env.Parse(&cfg))

	assert.Equal(t, "redis://localhost:6379/0", cfg.ConnectionURL)
	assert.Equal(t, "immediate:signal", cfg.Channel)
	assert.Equal(t, 3, cfg.RetryAttempts)
	assert.Equal(t, 5*time.Second, cfg.RetryInterval)
	assert.Equal(t, 30*time.Second, cfg.ConnectTimeout)
}

func TestRedisConfig_EnvOverrides(t *testing.T) {
	t.Setenv("IMMEDIATE_REDIS_URL", "redis://:secret@redis.internal:6380/1")
	t.Setenv("IMMEDIATE_REDIS_CHANNEL", "jobs:wakeup")

	var cfg RedisConfig
	require.NoError(t, env.Parse(&cfg))

	assert.Equal(t, "redis://:secret@redis.internal:6380/1", cfg.ConnectionURL)
	assert.Equal(t, "jobs:wakeup", cfg.Channel)
}

func TestDialRedis_InvalidURL(t *testing.T) {
	_, err := DialRedis(context.Background(), RedisConfig{
		ConnectionURL:  "not-a-redis-url",
		ConnectTimeout: time.Second,
		RetryAttempts:  1,
		RetryInterval:  time.Millisecond,
	})
	assert.ErrorIs(t, err, ErrFailedToParseRedisConnString)
}
