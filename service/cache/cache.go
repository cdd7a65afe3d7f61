// Package cache stores encoded values in a provider under a per-service prefix.
package cache

import (
	"errors"
	"time"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/service/cache/provider"
)

var ErrNotFound = errors.New("cache not found")

// OneTimeGetter loads the value on a cache miss. It must return a pointer.
type OneTimeGetter func() (interface{}, error)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

type Service interface {
	// GetByFunc reads key into container, loading it with getter on a miss.
	// Concurrent misses on the same key share one getter call.
	GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

// ServiceConfig defaults to json encoding when Serialize or Deserialize is nil
type ServiceConfig struct {
	Ttl         time.Duration
	Pfx         string
	Cache       provider.Provider
	Serialize   Serializer
	Deserialize Deserializer
}
