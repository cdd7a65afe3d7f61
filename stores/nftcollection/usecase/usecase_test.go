package usecase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/nftcollection"
	"github.com/andy-marketplace/goapi/domain/record"
	"github.com/andy-marketplace/goapi/domain/record/recordtest"
)

const (
	alice = domain.Address("0x000000000000000000000000000000000000a11c")
	bob   = domain.Address("0x0000000000000000000000000000000000000b0b")
)

func meta(blk int64, idx uint) record.Meta {
	return record.Meta{
		Id:          fmt.Sprintf("0x%d-%d", blk, idx),
		ChainId:     domain.ChainIdAnvil,
		BlockNumber: domain.BlockNumber(blk),
		LogIndex:    idx,
	}
}

type collectionSuite struct {
	suite.Suite
	ctx ctx.Ctx
	im  nftcollection.UseCase
}

func TestCollectionUseCase(t *testing.T) {
	suite.Run(t, new(collectionSuite))
}

func (s *collectionSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.im = New(recordtest.New(
		&nftcollection.TokenMinted{Meta: meta(1, 0), To: alice, TokenId: "1", TokenURI: "ipfs://1", RoyaltyFee: "250"},
		&nftcollection.BatchTokensMinted{Meta: meta(2, 0), To: bob, TokenIds: []domain.TokenId{"2", "3"}, TokenURIs: []string{"ipfs://2", "ipfs://3"}, RoyaltyFee: "500"},
		&nftcollection.TokenMinted{Meta: meta(3, 0), To: alice, TokenId: "4", TokenURI: "ipfs://4", RoyaltyFee: "250"},
		&nftcollection.Transfer{Meta: meta(1, 1), From: "0x0000000000000000000000000000000000000000", To: alice, TokenId: "1"},
		&nftcollection.Transfer{Meta: meta(5, 0), From: alice, To: bob, TokenId: "1"},
	))
}

func tokenIds(mints []nftcollection.TokenMinted) []domain.TokenId {
	res := []domain.TokenId{}
	for _, m := range mints {
		res = append(res, m.TokenId)
	}
	return res
}

func (s *collectionSuite) TestGetMints() {
	res, err := s.im.GetMints(s.ctx, "", 10, 0)
	s.Require().NoError(err)
	s.Equal([]domain.TokenId{"4", "2", "3", "1"}, tokenIds(res))
	s.Equal("ipfs://3", res[2].TokenURI)
	s.Equal("500", res[2].RoyaltyFee)

	res, err = s.im.GetMints(s.ctx, "", 2, 1)
	s.Require().NoError(err)
	s.Equal([]domain.TokenId{"2", "3"}, tokenIds(res))

	res, err = s.im.GetMints(s.ctx, alice, 10, 0)
	s.Require().NoError(err)
	s.Equal([]domain.TokenId{"4", "1"}, tokenIds(res))

	res, err = s.im.GetMints(s.ctx, "", 10, 10)
	s.Require().NoError(err)
	s.Empty(res)

	_, err = s.im.GetMints(s.ctx, "", -1, 0)
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *collectionSuite) TestGetMint() {
	m, err := s.im.GetMint(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal(alice, m.To)

	m, err = s.im.GetMint(s.ctx, "3")
	s.Require().NoError(err)
	s.Equal(bob, m.To)
	s.Equal("ipfs://3", m.TokenURI)

	_, err = s.im.GetMint(s.ctx, "99")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *collectionSuite) TestGetTransfers() {
	res, err := s.im.GetTransfers(s.ctx, "1")
	s.Require().NoError(err)
	s.Require().Len(res, 2)
	s.Equal(bob, res[0].To)
}

func (s *collectionSuite) TestGetEvents() {
	out, err := s.im.GetEvents(s.ctx, nftcollection.EventBatchTokensMinted)
	s.Require().NoError(err)
	s.Len(*out.(*[]nftcollection.BatchTokensMinted), 1)

	_, err = s.im.GetEvents(s.ctx, "Nope")
	s.ErrorIs(err, domain.ErrUnknownEvent)
}
