package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/chain"
	"github.com/andy-marketplace/goapi/domain/chain/mocks"
	"github.com/andy-marketplace/goapi/service/query"
)

func TestFindOneMemoized(t *testing.T) {
	req := require.New(t)
	repo := mocks.NewBlockRepo(t)
	u := NewBlockUseCase(repo)

	id := &chain.BlockId{ChainId: domain.ChainIdSepolia, Number: 42}
	blk := &chain.Block{ChainId: domain.ChainIdSepolia, Number: 42, Hash: "0xabc", Time: time.Unix(1700000000, 0).UTC()}
	repo.On("FindOne", mock.Anything, id).Return(blk, nil).Once()

	for i := 0; i < 3; i++ {
		got, err := u.FindOne(ctx.Background(), id)
		req.NoError(err)
		req.Equal(blk.Hash, got.Hash)
		req.True(blk.Time.Equal(got.Time))
	}
}

func TestFindOneNotFoundNotCached(t *testing.T) {
	req := require.New(t)
	repo := mocks.NewBlockRepo(t)
	u := NewBlockUseCase(repo)

	id := &chain.BlockId{ChainId: domain.ChainIdSepolia, Number: 7}
	repo.On("FindOne", mock.Anything, id).Return(nil, query.ErrNotFound).Twice()

	_, err := u.FindOne(ctx.Background(), id)
	req.ErrorIs(err, query.ErrNotFound)
	_, err = u.FindOne(ctx.Background(), id)
	req.ErrorIs(err, query.ErrNotFound)
}

func TestUpsertFillsCache(t *testing.T) {
	req := require.New(t)
	repo := mocks.NewBlockRepo(t)
	u := NewBlockUseCase(repo)

	blk := &chain.Block{ChainId: domain.ChainIdSepolia, Number: 9, Hash: "0x09", Time: time.Unix(1700000100, 0).UTC()}
	repo.On("Upsert", mock.Anything, blk).Return(nil).Once()
	req.NoError(u.Upsert(ctx.Background(), blk))

	got, err := u.FindOne(ctx.Background(), blk.ToId())
	req.NoError(err)
	req.Equal(blk.Number, got.Number)
}
