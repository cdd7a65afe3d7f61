package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/database/mongoclient"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/account"
	"github.com/andy-marketplace/goapi/service/cache"
	"github.com/andy-marketplace/goapi/service/cache/provider/compound"
	"github.com/andy-marketplace/goapi/service/cache/provider/primitive"
	redisCache "github.com/andy-marketplace/goapi/service/cache/provider/redis"
	"github.com/andy-marketplace/goapi/service/query"
	"github.com/andy-marketplace/goapi/service/redis"
)

type impl struct {
	query        query.Mongo
	accountCache cache.Service
}

// New creates the account repo. Lookups by id are cached; redis may be nil.
func New(query query.Mongo, redis redis.Service) account.Repo {
	layers := []compound.Layer{{Provider: primitive.New("account", 16), MaxTtl: time.Minute}}
	if redis != nil {
		layers = append(layers, compound.Layer{Provider: redisCache.New(redis)})
	}

	return &impl{
		query: query,
		accountCache: cache.New(cache.ServiceConfig{
			Ttl:   time.Hour,
			Pfx:   "account",
			Cache: compound.New(layers...),
		}),
	}
}

func (im *impl) FindOne(c ctx.Ctx, opts ...account.FindOptions) (*account.Account, error) {
	o, err := account.GetFindOptions(opts...)
	if err != nil {
		return nil, err
	}

	if o.Id != nil && o.Username == nil && o.Email == nil {
		res := &account.Account{}
		if err := im.accountCache.GetByFunc(c, *o.Id, res, func() (interface{}, error) {
			return im.findOne(c, bson.M{"_id": *o.Id})
		}); err != nil {
			return nil, err
		}
		return res, nil
	}

	qry := bson.M{}
	if o.Id != nil {
		qry["_id"] = *o.Id
	}
	if o.Username != nil {
		qry["username"] = *o.Username
	}
	if o.Email != nil {
		qry["email"] = *o.Email
	}
	if len(qry) == 0 {
		return nil, domain.ErrBadParamInput
	}
	return im.findOne(c, qry)
}

func (im *impl) findOne(c ctx.Ctx, qry bson.M) (*account.Account, error) {
	a := &account.Account{}
	err := im.query.FindOne(c, domain.TableAccounts, qry, a)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"query": qry,
			"err":   err,
		}).Error("query.FindOne failed")
		return nil, err
	}
	return a, nil
}

func (im *impl) Insert(c ctx.Ctx, a *account.Account) error {
	a.WalletAddress = a.WalletAddress.ToLower()
	if err := im.query.Insert(c, domain.TableAccounts, a); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"username": a.Username,
			"err":      err,
		}).Error("query.Insert failed")
		return err
	}
	return nil
}

func (im *impl) Update(c ctx.Ctx, id string, updater *account.Updater) error {
	if updater.WalletAddress != nil {
		lower := updater.WalletAddress.ToLower()
		updater.WalletAddress = &lower
	}
	updaterBson, err := mongoclient.MakeBsonM(updater)
	if err != nil {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := im.query.Patch(c, domain.TableAccounts, bson.M{"_id": id}, updaterBson); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("query.Patch failed")
		return err
	}
	if err := im.accountCache.Del(c, id); err != nil {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Warn("accountCache.Del failed")
	}
	return nil
}
