package repository

import (
	"bytes"
	"errors"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/database/mongoclient"
	hcdomain "github.com/andy-marketplace/goapi/domain/healthcheck"
	"github.com/andy-marketplace/goapi/domain/keys"
	"github.com/andy-marketplace/goapi/service/redis"
)

const pingTimeout = 2 * time.Second

var errRedisMismatch = errors.New("redis returned another value")

type impl struct {
	mgoClient *mongoclient.Client
	redis     redis.Service
}

// New pings mongo, and redis when it is not nil
func New(mgoClient *mongoclient.Client, r redis.Service) hcdomain.HealthCheckRepo {
	return &impl{mgoClient: mgoClient, redis: r}
}

func (im *impl) Ping(c ctx.Ctx) map[string]error {
	res := map[string]error{"mongo": im.pingMongo(c)}
	if im.redis != nil {
		res["redis"] = im.pingRedis(c)
	}
	return res
}

func (im *impl) pingMongo(c ctx.Ctx) error {
	tc, cancel := ctx.WithTimeout(c, pingTimeout)
	defer cancel()
	if err := im.mgoClient.Ping(tc, readpref.Primary()); err != nil {
		c.WithField("err", err).Error("ping mongo failed")
		return err
	}
	return nil
}

// pingRedis writes and reads back a short lived key
func (im *impl) pingRedis(c ctx.Ctx) error {
	tc, cancel := ctx.WithTimeout(c, pingTimeout)
	defer cancel()
	key := keys.RedisKey(keys.PfxHealthCheck, im.redis.Name())
	val := []byte(strconv.FormatInt(time.Now().UnixNano(), 10))
	if err := im.redis.Set(tc, key, val, 30*time.Second); err != nil {
		c.WithField("err", err).Error("redis.Set failed")
		return err
	}
	got, err := im.redis.Get(tc, key)
	if err != nil {
		c.WithField("err", err).Error("redis.Get failed")
		return err
	}
	if !bytes.Equal(got, val) {
		// another instance may have written in between, treat as reachable
		c.WithField("err", errRedisMismatch).Warn("redis ping read another value")
	}
	return nil
}
