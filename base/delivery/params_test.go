package delivery

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/record"
)

func TestEventParamsOptions(t *testing.T) {
	req := require.New(t)

	opts, err := record.GetFindOptions(NewEventParams().Options()...)
	req.NoError(err)
	req.Equal(int32(100), *opts.First)
	req.Equal(int32(0), *opts.Skip)
	req.Nil(opts.Account)

	blk := domain.BlockNumber(100)
	account := domain.Address("0xABC")
	p := NewEventParams()
	p.Skip = 3
	p.FromBlock = &blk
	p.Account = &account
	seller := domain.Address("0xDEF")
	p.Seller = &seller
	p.Bidder = &seller
	p.Contract = &account

	opts, err = record.GetFindOptions(p.Options()...)
	req.NoError(err)
	req.Equal(int32(3), *opts.Skip)
	req.Equal(blk, *opts.FromBlock)
	req.Equal(domain.Address("0xabc"), *opts.Account)
	req.Equal(domain.Address("0xabc"), *opts.Contract)
	req.Equal(domain.Address("0xdef"), *opts.Seller)
	req.Equal(domain.Address("0xdef"), *opts.Bidder)

	p.First = -1
	_, err = record.GetFindOptions(p.Options()...)
	req.ErrorIs(err, domain.ErrBadParamInput)
}
