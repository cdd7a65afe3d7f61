package provider

import (
	"errors"
	"time"

	"github.com/andy-marketplace/goapi/base/ctx"
)

var (
	ErrNotFound = errors.New("cache not found")
	// ErrTooLarge is returned by Set when a layer refuses the value size
	ErrTooLarge = errors.New("cache value too large")
)

// Provider stores raw bytes. A zero ttl means no expiry.
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
