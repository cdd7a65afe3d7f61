package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/andy-marketplace/goapi/base/ctx"
)

// Forever stores a key without expiry
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis: key not found")
	// ErrNoTTL is returned by TTL for a key without expiry
	ErrNoTTL = errors.New("redis: key has no ttl")
	// ErrNoPool is returned when no connection pool is configured
	ErrNoPool = errors.New("redis: no pool")
)

// Pools holds the connection pools of a redis cluster
type Pools struct {
	Src *redis.Pool
}

// Service is the subset of redis commands used by the cache layers
type Service interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(c ctx.Ctx, keys ...string) (int, error)
	// TTL returns the remaining seconds of key
	TTL(c ctx.Ctx, key string) (int, error)
	Name() string
}
