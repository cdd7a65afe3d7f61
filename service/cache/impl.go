package cache

import (
	"encoding/json"
	"errors"
	"reflect"

	"golang.org/x/sync/singleflight"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/domain/keys"
	"github.com/andy-marketplace/goapi/service/cache/provider"
)

type impl struct {
	cfg   ServiceConfig
	group singleflight.Group
}

func New(cfg ServiceConfig) Service {
	if cfg.Serialize == nil {
		cfg.Serialize = json.Marshal
	}
	if cfg.Deserialize == nil {
		cfg.Deserialize = json.Unmarshal
	}
	return &impl{cfg: cfg}
}

func (im *impl) key(key string) string {
	return keys.RedisKey(im.cfg.Pfx, key)
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error {
	err := im.Get(c, key, container)
	if err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	val, err, _ := im.group.Do(key, func() (interface{}, error) {
		val, err := getter()
		if err != nil {
			return nil, err
		}
		if err := im.Set(c, key, val); err != nil {
			c.WithFields(log.Fields{"err": err, "key": key}).Warn("Set failed, serving uncached value")
		}
		return val, nil
	})
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Warn("GetByFunc getter failed")
		return err
	}
	return im.fill(container, val)
}

// fill copies val into container, going through the codec when the types differ
func (im *impl) fill(container, val interface{}) error {
	dst, src := reflect.ValueOf(container), reflect.ValueOf(val)
	if src.Kind() == reflect.Ptr && !src.IsNil() && src.Type() == dst.Type() {
		dst.Elem().Set(src.Elem())
		return nil
	}
	b, err := im.cfg.Serialize(val)
	if err != nil {
		return err
	}
	return im.cfg.Deserialize(b, container)
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	key = im.key(key)
	val, _, err := im.cfg.Cache.Get(c, key)
	if errors.Is(err, provider.ErrNotFound) {
		return ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Get failed")
		return err
	}
	if err := im.cfg.Deserialize(val, container); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("deserialize failed")
		return err
	}
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	key = im.key(key)
	val, err := im.cfg.Serialize(value)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("serialize failed")
		return err
	}
	if err := im.cfg.Cache.Set(c, key, val, im.cfg.Ttl); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	key = im.key(key)
	if err := im.cfg.Cache.Del(c, key); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Del failed")
		return err
	}
	return nil
}
