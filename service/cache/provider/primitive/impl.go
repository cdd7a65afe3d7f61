package primitive

import (
	"errors"
	"time"

	"github.com/coocood/freecache"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/service/cache/provider"
)

type impl struct {
	name  string
	cache *freecache.Cache
}

// New keeps entries in a freecache of sizeMB megabytes. Entries above
// 1/1024 of the size are refused with provider.ErrTooLarge.
func New(name string, sizeMB int) provider.Provider {
	return &impl{name: name, cache: freecache.NewCache(sizeMB * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	k := []byte(key)
	val, err := im.cache.Get(k)
	if errors.Is(err, freecache.ErrNotFound) {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name}).Error("freecache.Get failed")
		return nil, 0, err
	}
	left, err := im.cache.TTL(k)
	if errors.Is(err, freecache.ErrNotFound) {
		// expired in between
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		return nil, 0, err
	}
	return val, time.Duration(left) * time.Second, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	err := im.cache.Set([]byte(key), value, int(ttl.Seconds()))
	if errors.Is(err, freecache.ErrLargeEntry) || errors.Is(err, freecache.ErrLargeKey) {
		return provider.ErrTooLarge
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name}).Error("freecache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
