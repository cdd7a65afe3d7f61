package redisclient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolSize(t *testing.T) {
	req := require.New(t)

	idle, active := Config{}.poolSize()
	req.Equal(defaultMaxIdle, idle)
	req.Equal(defaultMaxActive, active)

	idle, active = Config{PoolMultiplier: 8}.poolSize()
	req.Greater(active, 0)
	req.Equal(active/4, idle)
}

func TestConnectRedisUnreachable(t *testing.T) {
	// nothing listens on port 1
	_, err := ConnectRedis(context.Background(), Config{URI: "127.0.0.1:1", Attempts: 1})
	require.Error(t, err)
}

func TestConnectRedis(t *testing.T) {
	if testing.Short() {
		t.Skip("needs a local redis")
	}
	p, err := ConnectRedis(context.Background(), Config{URI: "localhost:6379", Attempts: 2})
	require.NoError(t, err)
	defer p.Close()

	conn := p.Get()
	defer conn.Close()
	_, err = conn.Do("PING")
	require.NoError(t, err)
}
