package compound

import (
	"errors"
	"time"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/service/cache/provider"
)

// Layer is one tier of a compound provider. A positive MaxTtl caps the
// expiry of everything written to it.
type Layer struct {
	provider.Provider
	MaxTtl time.Duration
}

func (l Layer) ttl(ttl time.Duration) time.Duration {
	if l.MaxTtl > 0 && (ttl <= 0 || ttl > l.MaxTtl) {
		return l.MaxTtl
	}
	return ttl
}

type impl struct {
	layers []Layer
}

// New stacks layers from fastest to slowest. A hit in a slower layer is
// copied into the faster ones in front of it.
func New(layers ...Layer) provider.Provider {
	return &impl{layers: layers}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	for idx, lyr := range im.layers {
		val, ttl, err := lyr.Get(c, key)
		if errors.Is(err, provider.ErrNotFound) {
			continue
		} else if err != nil {
			return nil, 0, err
		}
		for _, front := range im.layers[:idx] {
			if err := front.Set(c, key, val, front.ttl(ttl)); err != nil && !errors.Is(err, provider.ErrTooLarge) {
				c.WithFields(log.Fields{"err": err, "key": key}).Warn("backfill failed")
			}
		}
		return val, ttl, nil
	}
	return nil, 0, provider.ErrNotFound
}

// Set writes every layer, skipping the ones too small for value
func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	for _, lyr := range im.layers {
		if err := lyr.Set(c, key, value, lyr.ttl(ttl)); errors.Is(err, provider.ErrTooLarge) {
			continue
		} else if err != nil {
			return err
		}
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	var firstErr error
	for _, lyr := range im.layers {
		if err := lyr.Del(c, key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
