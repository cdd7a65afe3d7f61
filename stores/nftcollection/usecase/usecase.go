package usecase

import (
	"errors"
	"sort"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/nftcollection"
	"github.com/andy-marketplace/goapi/domain/record"
)

const (
	maxPage = 1000
	// batchScanPages bounds the batch mint scan of GetMint
	batchScanPages = 10
)

type impl struct {
	records record.UseCase
}

func New(records record.UseCase) nftcollection.UseCase {
	return &impl{records: records}
}

func (im *impl) GetMints(c ctx.Ctx, to domain.Address, first, skip int32) ([]nftcollection.TokenMinted, error) {
	if first < 0 || skip < 0 {
		return nil, domain.ErrBadParamInput
	}
	// both sources are newest first, so the merged page lies within their first skip+first rows
	window := skip + first
	if window > maxPage {
		window = maxPage
	}
	opts := []record.FindOptions{record.WithPagination(0, window)}
	if to != "" {
		opts = append(opts, record.WithTo(to))
	}

	singles := []nftcollection.TokenMinted{}
	if err := im.records.FindAll(c, domain.TableTokenMinteds, &singles, opts...); err != nil {
		c.WithField("err", err).Error("records.FindAll failed")
		return nil, err
	}
	batches := []nftcollection.BatchTokensMinted{}
	if err := im.records.FindAll(c, domain.TableBatchTokensMinteds, &batches, opts...); err != nil {
		c.WithField("err", err).Error("records.FindAll failed")
		return nil, err
	}

	mints := singles
	for i := range batches {
		mints = append(mints, batches[i].Expand()...)
	}
	sort.SliceStable(mints, func(i, j int) bool {
		return mints[j].Meta.Before(&mints[i].Meta)
	})

	if int(skip) >= len(mints) {
		return []nftcollection.TokenMinted{}, nil
	}
	end := int(skip + first)
	if end > len(mints) {
		end = len(mints)
	}
	return mints[skip:end], nil
}

func (im *impl) GetMint(c ctx.Ctx, tokenId domain.TokenId) (*nftcollection.TokenMinted, error) {
	mint := &nftcollection.TokenMinted{}
	err := im.records.FindOne(c, domain.TableTokenMinteds, mint, record.WithTokenId(tokenId))
	if err == nil {
		return mint, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		c.WithFields(log.Fields{
			"err":     err,
			"tokenId": tokenId,
		}).Error("records.FindOne failed")
		return nil, err
	}

	for page := int32(0); page < batchScanPages; page++ {
		batches := []nftcollection.BatchTokensMinted{}
		if err := im.records.FindAll(c, domain.TableBatchTokensMinteds, &batches, record.WithPagination(page*maxPage, maxPage)); err != nil {
			c.WithField("err", err).Error("records.FindAll failed")
			return nil, err
		}
		for i := range batches {
			for _, m := range batches[i].Expand() {
				if m.TokenId == tokenId {
					m := m
					return &m, nil
				}
			}
		}
		if len(batches) < maxPage {
			break
		}
	}
	return nil, domain.ErrNotFound
}

func (im *impl) GetTransfers(c ctx.Ctx, tokenId domain.TokenId) ([]nftcollection.Transfer, error) {
	res := []nftcollection.Transfer{}
	if err := im.records.FindAll(c, domain.TableTransfers, &res,
		record.WithTokenId(tokenId),
		record.WithPagination(0, maxPage),
	); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"tokenId": tokenId,
		}).Error("records.FindAll failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) GetEvents(c ctx.Ctx, event string, opts ...record.FindOptions) (interface{}, error) {
	kind, err := nftcollection.Kinds.Get(event)
	if err != nil {
		return nil, err
	}
	out := kind.NewSlice()
	if err := im.records.FindAll(c, kind.Table, out, opts...); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"event": event,
		}).Error("records.FindAll failed")
		return nil, err
	}
	return out, nil
}
