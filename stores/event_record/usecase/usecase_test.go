package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/marketplace"
	"github.com/andy-marketplace/goapi/domain/record"
	"github.com/andy-marketplace/goapi/domain/record/mocks"
)

func TestStore(t *testing.T) {
	req := require.New(t)
	repo := mocks.NewRepo(t)
	uc := New(repo, time.Second)

	r := &marketplace.ItemListed{Meta: record.Meta{Id: "0x01"}}
	repo.On("Store", mock.Anything, r).Return(nil).Once()
	req.NoError(uc.Store(ctx.Background(), r))

	req.ErrorIs(uc.Store(ctx.Background(), &marketplace.ItemListed{}), domain.ErrBadParamInput)
}

func TestFindAllPassesOptions(t *testing.T) {
	req := require.New(t)
	repo := mocks.NewRepo(t)
	uc := New(repo, time.Second)

	out := &[]marketplace.ItemListed{}
	repo.On("FindAll", mock.Anything, domain.TableItemListeds, out, mock.Anything, mock.Anything).Return(nil).Once()
	req.NoError(uc.FindAll(ctx.Background(), domain.TableItemListeds, out, record.WithChainId(domain.ChainIdAnvil), record.WithPagination(0, 10)))
}
