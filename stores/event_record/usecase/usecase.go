package usecase

import (
	"time"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/record"
)

type impl struct {
	repo       record.Repo
	ctxTimeout time.Duration
}

func New(repo record.Repo, ctxTimeout time.Duration) record.UseCase {
	return &impl{
		repo:       repo,
		ctxTimeout: ctxTimeout,
	}
}

func (im *impl) Store(c ctx.Ctx, r record.Record) error {
	if r.GetMeta().Id == "" {
		return domain.ErrBadParamInput
	}
	c, cancel := ctx.WithTimeout(c, im.ctxTimeout)
	defer cancel()
	return im.repo.Store(c, r)
}

func (im *impl) FindAll(c ctx.Ctx, table domain.Table, out interface{}, opts ...record.FindOptions) error {
	c, cancel := ctx.WithTimeout(c, im.ctxTimeout)
	defer cancel()
	return im.repo.FindAll(c, table, out, opts...)
}

func (im *impl) FindOne(c ctx.Ctx, table domain.Table, out interface{}, opts ...record.FindOptions) error {
	c, cancel := ctx.WithTimeout(c, im.ctxTimeout)
	defer cancel()
	return im.repo.FindOne(c, table, out, opts...)
}

func (im *impl) Count(c ctx.Ctx, table domain.Table, opts ...record.FindOptions) (int, error) {
	c, cancel := ctx.WithTimeout(c, im.ctxTimeout)
	defer cancel()
	return im.repo.Count(c, table, opts...)
}
