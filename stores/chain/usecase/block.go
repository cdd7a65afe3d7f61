package usecase

import (
	"time"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain/chain"
	"github.com/andy-marketplace/goapi/service/cache"
	"github.com/andy-marketplace/goapi/service/cache/provider/primitive"
)

const blockTtl = time.Hour

type blockUseCase struct {
	repo  chain.BlockRepo
	cache cache.Service
}

// NewBlockUseCase memoizes found blocks in process, a block time never changes once confirmed
func NewBlockUseCase(r chain.BlockRepo) chain.BlockUseCase {
	return &blockUseCase{
		repo: r,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   blockTtl,
			Pfx:   "block",
			Cache: primitive.New("block", 16),
		}),
	}
}

func (u *blockUseCase) Upsert(c ctx.Ctx, b *chain.Block) error {
	if err := u.repo.Upsert(c, b); err != nil {
		return err
	}
	if err := u.cache.Set(c, b.ToId().String(), b); err != nil {
		c.WithField("err", err).Warn("cache.Set failed")
	}
	return nil
}

func (u *blockUseCase) FindOne(c ctx.Ctx, id *chain.BlockId) (*chain.Block, error) {
	var b chain.Block
	if err := u.cache.GetByFunc(c, id.String(), &b, func() (interface{}, error) {
		return u.repo.FindOne(c, id)
	}); err != nil {
		return nil, err
	}
	return &b, nil
}
