package usecase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/andy-marketplace/goapi/base/abi"
	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/marketplace"
	"github.com/andy-marketplace/goapi/domain/record"
	"github.com/andy-marketplace/goapi/domain/record/recordtest"
)

const (
	nftAddr = domain.Address("0x00000000000000000000000000000000000000bb")
	alice   = domain.Address("0x000000000000000000000000000000000000a11c")
	bob     = domain.Address("0x0000000000000000000000000000000000000b0b")
	carol   = domain.Address("0x00000000000000000000000000000000000ca201")
)

func meta(blk int64, idx uint) record.Meta {
	return record.Meta{
		Id:             fmt.Sprintf("0x%d-%d", blk, idx),
		ChainId:        domain.ChainIdAnvil,
		BlockNumber:    domain.BlockNumber(blk),
		BlockTimestamp: 1700000000 + blk,
		LogIndex:       idx,
	}
}

func artId() string {
	b, _ := abi.FormatBytes32String("Art")
	return record.Bytes32(b)
}

func listed(blk int64, tokenId string, isAuction bool) *marketplace.ItemListed {
	return &marketplace.ItemListed{
		Meta:       meta(blk, 0),
		Seller:     alice,
		NftAddress: nftAddr,
		TokenId:    domain.TokenId(tokenId),
		Price:      "1000",
		IsAuction:  isAuction,
		Category:   artId(),
	}
}

func bid(blk int64, tokenId string, bidder domain.Address, amount string) *marketplace.BidPlaced {
	return &marketplace.BidPlaced{
		Meta:       meta(blk, 1),
		Bidder:     bidder,
		NftAddress: nftAddr,
		TokenId:    domain.TokenId(tokenId),
		Amount:     amount,
	}
}

type marketplaceSuite struct {
	suite.Suite
	ctx     ctx.Ctx
	records *recordtest.Store
	im      marketplace.UseCase
}

func TestMarketplaceUseCase(t *testing.T) {
	suite.Run(t, new(marketplaceSuite))
}

func (s *marketplaceSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.records = recordtest.New(
		&marketplace.CategoryAdded{Meta: meta(1, 0), Category: artId(), Name: "Art"},
		&marketplace.CategoryAdded{Meta: meta(2, 0), Category: "0x01", Name: "Music"},
		listed(10, "1", true),
		bid(11, "1", bob, "1500"),
		bid(12, "1", carol, "2000"),
		&marketplace.BidWithdrawn{Meta: meta(13, 0), Bidder: carol, NftAddress: nftAddr, TokenId: "1", Amount: "2000"},
		listed(20, "2", false),
		&marketplace.ItemBought{Meta: meta(21, 0), Buyer: bob, Seller: alice, NftAddress: nftAddr, TokenId: "2", Price: "1000", Timestamp: "1700000021"},
		listed(30, "3", false),
		&marketplace.ItemCanceled{Meta: meta(31, 0), Seller: alice, NftAddress: nftAddr, TokenId: "3"},
		listed(40, "3", false),
	)
	s.im = New(s.records)
}

func (s *marketplaceSuite) TestToCategoryId() {
	id, err := ToCategoryId("Art")
	s.Require().NoError(err)
	s.Equal(artId(), id)

	id, err = ToCategoryId(artId())
	s.Require().NoError(err)
	s.Equal(artId(), id)

	_, err = ToCategoryId("")
	s.ErrorIs(err, domain.ErrInvalidCategory)
	_, err = ToCategoryId("a category name that is far longer than thirty one bytes")
	s.ErrorIs(err, domain.ErrInvalidCategory)
}

func (s *marketplaceSuite) TestGetCategories() {
	res, err := s.im.GetCategories(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(res, 2)
	s.Equal("Art", res[0].Name)
	s.Equal("Music", res[1].Name)
}

func (s *marketplaceSuite) TestGetCategoryListings() {
	res, err := s.im.GetCategoryListings(s.ctx, "Art")
	s.Require().NoError(err)
	s.Len(res, 4)
	s.Equal(domain.TokenId("3"), res[0].TokenId)

	res, err = s.im.GetNFTsByCategory(s.ctx, "Music")
	s.Require().NoError(err)
	s.Empty(res)
}

func (s *marketplaceSuite) TestGetAllNFTs() {
	res, err := s.im.GetAllNFTs(s.ctx, 2, 1)
	s.Require().NoError(err)
	s.Require().Len(res, 2)
	s.Equal(domain.BlockNumber(30), res[0].BlockNumber)
	s.Equal(domain.BlockNumber(20), res[1].BlockNumber)

	_, err = s.im.GetAllNFTs(s.ctx, -1, 0)
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *marketplaceSuite) TestGetListing() {
	l, err := s.im.GetListing(s.ctx, nftAddr, "1")
	s.Require().NoError(err)
	s.True(l.Active)
	s.Equal("1500", l.HighestBid)
	s.Equal(bob, l.HighestBidder)

	l, err = s.im.GetListing(s.ctx, nftAddr, "2")
	s.Require().NoError(err)
	s.False(l.Active)
	s.Equal("0", l.HighestBid)
	s.Equal(domain.Address(""), l.HighestBidder)

	// relisted after a cancel
	l, err = s.im.GetListing(s.ctx, nftAddr, "3")
	s.Require().NoError(err)
	s.True(l.Active)
	s.Equal(domain.BlockNumber(40), l.BlockNumber)

	_, err = s.im.GetListing(s.ctx, nftAddr, "404")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *marketplaceSuite) TestGetListingAuctionEnded() {
	s.records.Store(s.ctx, &marketplace.AuctionEnded{Meta: meta(14, 0), Winner: bob, Seller: alice, NftAddress: nftAddr, TokenId: "1", Amount: "1500"})
	l, err := s.im.GetListing(s.ctx, nftAddr, "1")
	s.Require().NoError(err)
	s.False(l.Active)
}

func (s *marketplaceSuite) TestGetListingWithdrawOutbidBid() {
	// bob raises his own bid then pulls back the first one
	s.records.Store(s.ctx, listed(50, "5", true))
	s.records.Store(s.ctx, bid(51, "5", bob, "1500"))
	s.records.Store(s.ctx, bid(52, "5", bob, "3000"))
	s.records.Store(s.ctx, &marketplace.BidWithdrawn{Meta: meta(53, 0), Bidder: bob, NftAddress: nftAddr, TokenId: "5", Amount: "1500"})

	l, err := s.im.GetListing(s.ctx, nftAddr, "5")
	s.Require().NoError(err)
	s.Equal("3000", l.HighestBid)
	s.Equal(bob, l.HighestBidder)
}

func (s *marketplaceSuite) TestGetListingWithdrawCancelsOneBid() {
	s.records.Store(s.ctx, listed(60, "6", true))
	s.records.Store(s.ctx, bid(61, "6", carol, "2000"))
	s.records.Store(s.ctx, bid(62, "6", carol, "2000"))
	s.records.Store(s.ctx, &marketplace.BidWithdrawn{Meta: meta(63, 0), Bidder: carol, NftAddress: nftAddr, TokenId: "6", Amount: "2000"})

	l, err := s.im.GetListing(s.ctx, nftAddr, "6")
	s.Require().NoError(err)
	s.Equal("2000", l.HighestBid)
	s.Equal(carol, l.HighestBidder)

	s.records.Store(s.ctx, &marketplace.BidWithdrawn{Meta: meta(64, 0), Bidder: carol, NftAddress: nftAddr, TokenId: "6", Amount: "2000"})
	l, err = s.im.GetListing(s.ctx, nftAddr, "6")
	s.Require().NoError(err)
	s.Equal("0", l.HighestBid)
}

func (s *marketplaceSuite) TestGetActiveListings() {
	res, err := s.im.GetActiveListings(s.ctx, 10, 0)
	s.Require().NoError(err)
	s.Require().Len(res, 2)
	s.Equal(domain.TokenId("3"), res[0].TokenId)
	s.Equal(domain.TokenId("1"), res[1].TokenId)

	res, err = s.im.GetActiveListings(s.ctx, 10, 1)
	s.Require().NoError(err)
	s.Require().Len(res, 1)
	s.Equal(domain.TokenId("1"), res[0].TokenId)

	res, err = s.im.GetActiveListings(s.ctx, 0, 0)
	s.Require().NoError(err)
	s.Empty(res)
}

func (s *marketplaceSuite) TestGetBids() {
	res, err := s.im.GetBids(s.ctx, nftAddr, "1")
	s.Require().NoError(err)
	s.Require().Len(res, 2)
	s.Equal(carol, res[0].Bidder)
}

func (s *marketplaceSuite) TestGetSales() {
	s.records.Store(s.ctx, &marketplace.AuctionEnded{Meta: meta(22, 0), Winner: carol, Seller: bob, NftAddress: nftAddr, TokenId: "2", Amount: "3000"})

	res, err := s.im.GetSales(s.ctx, nftAddr, "2")
	s.Require().NoError(err)
	s.Require().Len(res, 2)
	s.Equal(marketplace.EventAuctionEnded, res[0].EventName)
	s.Equal(carol, res[0].Buyer)
	s.Equal("3000", res[0].Price)
	s.Equal(marketplace.EventItemBought, res[1].EventName)
	s.Equal(bob, res[1].Buyer)
}

func (s *marketplaceSuite) TestGetEvents() {
	out, err := s.im.GetEvents(s.ctx, marketplace.EventItemCanceled)
	s.Require().NoError(err)
	canceled, ok := out.(*[]marketplace.ItemCanceled)
	s.Require().True(ok)
	s.Len(*canceled, 1)

	_, err = s.im.GetEvents(s.ctx, "Nope")
	s.ErrorIs(err, domain.ErrUnknownEvent)
}
