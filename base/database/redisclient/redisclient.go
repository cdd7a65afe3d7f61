// Package redisclient builds redigo connection pools.
package redisclient

import (
	"context"
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/andy-marketplace/goapi/base/backoff"
	"github.com/andy-marketplace/goapi/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond
	idleTimeout  = 4 * time.Minute

	defaultMaxIdle   = 200
	defaultMaxActive = 1024
)

// Config describes one redis endpoint
type Config struct {
	URI      string
	Password string
	// PoolMultiplier sizes the pool per cpu, zero keeps the defaults
	PoolMultiplier float64
	// Attempts is how many times the first PING is tried, at least once
	Attempts int
}

func (cfg Config) poolSize() (maxIdle, maxActive int) {
	if cfg.PoolMultiplier <= 0 {
		return defaultMaxIdle, defaultMaxActive
	}
	cpu := float64(runtime.NumCPU())
	maxActive = int(cpu * cfg.PoolMultiplier)
	// a quarter of the connections may sit idle
	return maxActive / 4, maxActive
}

func newPool(cfg Config) *redis.Pool {
	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if cfg.Password != "" {
		opts = append(opts, redis.DialPassword(cfg.Password))
	}
	maxIdle, maxActive := cfg.poolSize()
	return &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: idleTimeout,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", cfg.URI, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
}

// ConnectRedis returns a pool once a PING succeeds
func ConnectRedis(ctx context.Context, cfg Config) (*redis.Pool, error) {
	attempts := cfg.Attempts
	if attempts < 1 {
		attempts = 1
	}
	p := newPool(cfg)
	try := 0
	err := backoff.Retry(ctx, backoff.NewLinear(time.Second, 5*time.Second), attempts, func() error {
		try++
		conn, err := p.GetContext(ctx)
		if err != nil {
			log.Log().WithFields(log.Fields{"redisURI": cfg.URI, "err": err, "try": try}).Warn("fail to dial Redis")
			return err
		}
		defer conn.Close()
		if _, err := conn.Do("PING"); err != nil {
			log.Log().WithFields(log.Fields{"redisURI": cfg.URI, "err": err, "try": try}).Warn("fail to PING Redis")
			return err
		}
		return nil
	})
	if err != nil {
		p.Close()
		return nil, err
	}
	log.Log().WithField("redisURI", cfg.URI).Info("redis connected")
	return p, nil
}

// MustConnectRedis panics when ConnectRedis fails
func MustConnectRedis(cfg Config) *redis.Pool {
	p, err := ConnectRedis(context.Background(), cfg)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": cfg.URI, "err": err}).Panic("fail to dial Redis")
	}
	return p
}
