package repository

import (
	"errors"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/chain"
	"github.com/andy-marketplace/goapi/service/query"
)

type blockRepo struct {
	q query.Mongo
}

func NewBlockRepo(q query.Mongo) chain.BlockRepo {
	return &blockRepo{q: q}
}

func (r *blockRepo) Upsert(c ctx.Ctx, b *chain.Block) error {
	if err := r.q.Upsert(c, domain.TableBlocks, b.ToId(), b); err != nil {
		c.WithFields(log.Fields{"err": err, "block": b.Number}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *blockRepo) FindOne(c ctx.Ctx, id *chain.BlockId) (*chain.Block, error) {
	var b chain.Block
	if err := r.q.FindOne(c, domain.TableBlocks, id, &b); errors.Is(err, query.ErrNotFound) {
		return nil, err
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "block": id.Number}).Error("q.FindOne failed")
		return nil, err
	}
	return &b, nil
}
