package ens

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	goens "github.com/wealdtech/go-ens/v3"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/base/ptr"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/keys"
	"github.com/andy-marketplace/goapi/service/cache"
)

// resolver is swapped in tests
type resolver interface {
	Resolve(name string) (string, error)
	ReverseResolve(address domain.Address) (string, error)
}

type goensResolver struct {
	backend bind.ContractBackend
}

func (r *goensResolver) Resolve(name string) (string, error) {
	addr, err := goens.Resolve(r.backend, name)
	if err != nil {
		return "", err
	}
	return addr.Hex(), nil
}

func (r *goensResolver) ReverseResolve(address domain.Address) (string, error) {
	return goens.ReverseResolve(r.backend, address.ToCommon())
}

type impl struct {
	resolver resolver
	cache    cache.Service
}

// New resolves through backend, a mainnet client, and memoizes answers in c
func New(backend bind.ContractBackend, c cache.Service) ENS {
	return &impl{
		resolver: &goensResolver{backend: backend},
		cache:    c,
	}
}

func isUnresolved(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "unregistered name") ||
		strings.Contains(msg, "not a resolver") ||
		strings.Contains(msg, "no resolution")
}

func (im *impl) Resolve(ctx ctx.Ctx, name string) (domain.Address, error) {
	res := domain.Address("")
	key := keys.RedisKey(keys.PfxEnsResolve, strings.ToLower(name))
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		addr, err := im.resolver.Resolve(name)
		if err != nil && isUnresolved(err) {
			val := domain.Address("")
			return &val, nil
		} else if err != nil {
			ctx.WithField("err", err).Error("resolver.Resolve failed")
			return nil, err
		}
		val := domain.Address(addr).ToLower()
		return &val, nil
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"name": name,
			"err":  err,
		}).Error("cache.GetByFunc failed")
		return "", err
	}
	return res, nil
}

func (im *impl) ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error) {
	res := ""
	key := keys.RedisKey(keys.PfxEnsReverse, address.ToLowerStr())
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		name, err := im.resolver.ReverseResolve(address)
		if err != nil && isUnresolved(err) {
			return ptr.Of(""), nil
		} else if err != nil {
			ctx.WithField("err", err).Error("resolver.ReverseResolve failed")
			return nil, err
		}
		return &name, nil
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("cache.GetByFunc failed")
		return "", err
	}
	return res, nil
}
