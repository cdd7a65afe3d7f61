package usecase

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	baseabi "github.com/andy-marketplace/goapi/base/abi"
	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/form"
	"github.com/andy-marketplace/goapi/service/chain/contract/mocks"
)

var (
	marketAddr     = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	collectionAddr = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	alice          = common.HexToAddress("0x000000000000000000000000000000000000a11c")
	bob            = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
	oneEther       = big.NewInt(1e18)
)

func int64Ptr(v int64) *int64 { return &v }

func bigIs(v *big.Int) interface{} {
	return mock.MatchedBy(func(b *big.Int) bool { return b.Cmp(v) == 0 })
}

type formSuite struct {
	suite.Suite
	ctx        ctx.Ctx
	market     *mocks.MarketplaceContract
	collection *mocks.NFTCollectionContract
	im         form.UseCase
}

func TestFormUseCase(t *testing.T) {
	suite.Run(t, new(formSuite))
}

func (s *formSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.market = mocks.NewMarketplaceContract(s.T())
	s.collection = mocks.NewNFTCollectionContract(s.T())
	s.im = New(&Cfg{
		ChainId:           domain.ChainIdSepolia,
		CollectionAddress: domain.AddressFrom(collectionAddr),
		Marketplace:       s.market,
		Collection:        s.collection,
	})
}

// decode unpacks the call data of tx against method
func (s *formSuite) decode(tx *form.TxRequest, abiMethod string, isMarket bool) []interface{} {
	contractAbi := baseabi.NFTCollectionABI
	if isMarket {
		contractAbi = baseabi.MarketplaceABI
	}
	data, err := hexutil.Decode(tx.Data)
	s.Require().NoError(err)
	method, err := contractAbi.MethodById(data[:4])
	s.Require().NoError(err)
	s.Require().Equal(abiMethod, method.Name)
	args, err := method.Inputs.Unpack(data[4:])
	s.Require().NoError(err)
	return args
}

func (s *formSuite) listing(isAuction bool, price, highestBid *big.Int) *baseabi.MarketplaceListing {
	return &baseabi.MarketplaceListing{
		Seller:         alice,
		NftAddress:     collectionAddr,
		TokenId:        big.NewInt(1),
		Price:          price,
		IsAuction:      isAuction,
		AuctionEndTime: big.NewInt(0),
		HighestBid:     highestBid,
	}
}

func (s *formSuite) TestMintValidation() {
	tests := []struct {
		name string
		form *form.MintForm
		err  error
	}{
		{"empty uri", &form.MintForm{To: domain.AddressFrom(alice)}, domain.ErrEmptyTokenURI},
		{"bad to", &form.MintForm{To: "0x123", TokenURI: "ipfs://Qm1"}, domain.ErrInvalidAddress},
		{"negative fee", &form.MintForm{To: domain.AddressFrom(alice), TokenURI: "ipfs://Qm1", RoyaltyFee: int64Ptr(-1)}, domain.ErrInvalidRoyaltyFee},
		{"fee above max", &form.MintForm{To: domain.AddressFrom(alice), TokenURI: "ipfs://Qm1", RoyaltyFee: int64Ptr(10001)}, domain.ErrInvalidRoyaltyFee},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.im.Mint(s.ctx, tt.form)
			s.ErrorIs(err, tt.err)
		})
	}
}

func (s *formSuite) TestMint() {
	tx, err := s.im.Mint(s.ctx, &form.MintForm{To: domain.AddressFrom(alice), TokenURI: "ipfs://Qm1"})
	s.Require().NoError(err)
	s.Equal(domain.AddressFrom(collectionAddr), tx.To)
	s.Equal("0", tx.Value)

	args := s.decode(tx, "mint", false)
	s.Equal(alice, args[0])
	s.Equal("ipfs://Qm1", args[1])
	s.Equal(int64(250), args[2].(*big.Int).Int64())

	tx, err = s.im.Mint(s.ctx, &form.MintForm{To: domain.AddressFrom(alice), TokenURI: "ipfs://Qm1", RoyaltyFee: int64Ptr(10000)})
	s.Require().NoError(err)
	s.Equal(int64(10000), s.decode(tx, "mint", false)[2].(*big.Int).Int64())
}

func (s *formSuite) TestBatchMint() {
	_, err := s.im.BatchMint(s.ctx, &form.BatchMintForm{To: domain.AddressFrom(alice)})
	s.ErrorIs(err, domain.ErrEmptyTokenURI)
	_, err = s.im.BatchMint(s.ctx, &form.BatchMintForm{To: domain.AddressFrom(alice), TokenURIs: []string{"ipfs://1", ""}})
	s.ErrorIs(err, domain.ErrEmptyTokenURI)

	tx, err := s.im.BatchMint(s.ctx, &form.BatchMintForm{To: domain.AddressFrom(alice), TokenURIs: []string{"ipfs://1", "ipfs://2"}, RoyaltyFee: int64Ptr(0)})
	s.Require().NoError(err)
	args := s.decode(tx, "batchMint", false)
	s.Equal([]string{"ipfs://1", "ipfs://2"}, args[1])
	s.Equal(int64(0), args[2].(*big.Int).Int64())
}

func (s *formSuite) TestListValidationBeforeNetwork() {
	valid := form.ListForm{NftAddress: domain.AddressFrom(collectionAddr), TokenId: "1", Price: "0.5", Category: "Art"}
	tests := []struct {
		name   string
		mutate func(f *form.ListForm)
		err    error
	}{
		{"bad nft address", func(f *form.ListForm) { f.NftAddress = "nope" }, domain.ErrInvalidAddress},
		{"bad token id", func(f *form.ListForm) { f.TokenId = "-1" }, domain.ErrInvalidNumberFormat},
		{"zero price", func(f *form.ListForm) { f.Price = "0" }, domain.ErrInvalidPrice},
		{"not a number", func(f *form.ListForm) { f.Price = "abc" }, domain.ErrInvalidPrice},
		{"too many decimals", func(f *form.ListForm) { f.Price = "0.0000000000000000001" }, domain.ErrInvalidPrice},
		{"empty category", func(f *form.ListForm) { f.Category = "" }, domain.ErrInvalidCategory},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			f := valid
			tt.mutate(&f)
			_, err := s.im.List(s.ctx, domain.AddressFrom(alice), &f)
			s.ErrorIs(err, tt.err)
		})
	}
	// no contract call may happen for invalid forms
	s.market.AssertNotCalled(s.T(), "Address", mock.Anything)
	s.collection.AssertNotCalled(s.T(), "OwnerOf", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *formSuite) TestListNotOwner() {
	s.collection.On("OwnerOf", mock.Anything, domain.ChainIdSepolia, collectionAddr, bigIs(big.NewInt(1))).Return(bob, nil).Once()

	_, err := s.im.List(s.ctx, domain.AddressFrom(alice), &form.ListForm{NftAddress: domain.AddressFrom(collectionAddr), TokenId: "1", Price: "0.5", Category: "Art"})
	s.ErrorIs(err, domain.ErrNotTokenOwner)
}

func (s *formSuite) TestListNeedsApproval() {
	s.collection.On("OwnerOf", mock.Anything, domain.ChainIdSepolia, collectionAddr, bigIs(big.NewInt(1))).Return(alice, nil).Once()
	s.market.On("Address", domain.ChainIdSepolia).Return(marketAddr, nil).Once()
	s.collection.On("GetApproved", mock.Anything, domain.ChainIdSepolia, collectionAddr, bigIs(big.NewInt(1))).Return(common.Address{}, nil).Once()
	s.collection.On("IsApprovedForAll", mock.Anything, domain.ChainIdSepolia, collectionAddr, alice, marketAddr).Return(false, nil).Once()

	txs, err := s.im.List(s.ctx, domain.AddressFrom(alice), &form.ListForm{NftAddress: domain.AddressFrom(collectionAddr), TokenId: "1", Price: "0.5", IsAuction: true, Category: "Art"})
	s.Require().NoError(err)
	s.Require().Len(txs, 2)

	s.Equal(domain.AddressFrom(collectionAddr), txs[0].To)
	approve := s.decode(txs[0], "approve", false)
	s.Equal(marketAddr, approve[0])

	s.Equal(domain.AddressFrom(marketAddr), txs[1].To)
	list := s.decode(txs[1], "listItem", true)
	s.Equal(collectionAddr, list[0])
	s.Equal(int64(1), list[1].(*big.Int).Int64())
	s.Equal("500000000000000000", list[2].(*big.Int).String())
	s.Equal(true, list[3])
	art, _ := baseabi.FormatBytes32String("Art")
	s.Equal(art, list[4])
}

func (s *formSuite) TestListAlreadyApproved() {
	s.collection.On("OwnerOf", mock.Anything, domain.ChainIdSepolia, collectionAddr, bigIs(big.NewInt(1))).Return(alice, nil).Once()
	s.market.On("Address", domain.ChainIdSepolia).Return(marketAddr, nil).Once()
	s.collection.On("GetApproved", mock.Anything, domain.ChainIdSepolia, collectionAddr, bigIs(big.NewInt(1))).Return(marketAddr, nil).Once()

	txs, err := s.im.List(s.ctx, domain.AddressFrom(alice), &form.ListForm{NftAddress: domain.AddressFrom(collectionAddr), TokenId: "1", Price: "1", Category: "0x4172740000000000000000000000000000000000000000000000000000000000"})
	s.Require().NoError(err)
	s.Require().Len(txs, 1)
	s.decode(txs[0], "listItem", true)
}

func (s *formSuite) TestBidValidationBeforeNetwork() {
	_, err := s.im.Bid(s.ctx, &form.BidForm{NftAddress: domain.AddressFrom(collectionAddr), TokenId: "1"})
	s.ErrorIs(err, domain.ErrInvalidPrice)
	_, err = s.im.Bid(s.ctx, &form.BidForm{NftAddress: "0x1", TokenId: "1", Amount: "1"})
	s.ErrorIs(err, domain.ErrInvalidAddress)
}

func (s *formSuite) TestBid() {
	s.market.On("Address", domain.ChainIdSepolia).Return(marketAddr, nil)
	s.market.On("GetListing", mock.Anything, domain.ChainIdSepolia, collectionAddr, bigIs(big.NewInt(1))).
		Return(s.listing(true, oneEther, big.NewInt(2e18)), nil)
	s.market.On("MinBidIncrement", mock.Anything, domain.ChainIdSepolia).Return(big.NewInt(1e17), nil)

	bid := func(amount string) (*form.TxRequest, error) {
		return s.im.Bid(s.ctx, &form.BidForm{NftAddress: domain.AddressFrom(collectionAddr), TokenId: "1", Amount: amount})
	}

	_, err := bid("2")
	s.ErrorIs(err, domain.ErrBidTooLow)
	_, err = bid("2.05")
	s.ErrorIs(err, domain.ErrBidIncrementTooLow)

	tx, err := bid("2.1")
	s.Require().NoError(err)
	s.Equal("2100000000000000000", tx.Value)
	s.Equal(domain.AddressFrom(marketAddr), tx.To)
	args := s.decode(tx, "placeBid", true)
	s.Equal(collectionAddr, args[0])
}

func (s *formSuite) TestBidFirstBidStartsFromPrice() {
	s.market.On("Address", domain.ChainIdSepolia).Return(marketAddr, nil)
	s.market.On("GetListing", mock.Anything, domain.ChainIdSepolia, collectionAddr, bigIs(big.NewInt(1))).
		Return(s.listing(true, oneEther, big.NewInt(0)), nil)

	_, err := s.im.Bid(s.ctx, &form.BidForm{NftAddress: domain.AddressFrom(collectionAddr), TokenId: "1", Amount: "0.5"})
	s.ErrorIs(err, domain.ErrBidTooLow)
}

func (s *formSuite) TestBidNotAuction() {
	s.market.On("Address", domain.ChainIdSepolia).Return(marketAddr, nil)
	s.market.On("GetListing", mock.Anything, domain.ChainIdSepolia, collectionAddr, bigIs(big.NewInt(1))).
		Return(s.listing(false, oneEther, big.NewInt(0)), nil)

	_, err := s.im.Bid(s.ctx, &form.BidForm{NftAddress: domain.AddressFrom(collectionAddr), TokenId: "1", Amount: "5"})
	s.ErrorIs(err, domain.ErrNotAuction)
}

func (s *formSuite) TestBuy() {
	s.market.On("Address", domain.ChainIdSepolia).Return(marketAddr, nil)
	s.market.On("GetListing", mock.Anything, domain.ChainIdSepolia, collectionAddr, bigIs(big.NewInt(1))).
		Return(s.listing(false, oneEther, big.NewInt(0)), nil).Once()

	tx, err := s.im.Buy(s.ctx, &form.BuyForm{NftAddress: domain.AddressFrom(collectionAddr), TokenId: "1"})
	s.Require().NoError(err)
	s.Equal(oneEther.String(), tx.Value)
	s.decode(tx, "buyItem", true)
}

func (s *formSuite) TestBuyInactive() {
	s.market.On("Address", domain.ChainIdSepolia).Return(marketAddr, nil)
	s.market.On("GetListing", mock.Anything, domain.ChainIdSepolia, collectionAddr, bigIs(big.NewInt(1))).
		Return(&baseabi.MarketplaceListing{Price: big.NewInt(0)}, nil).Once()

	_, err := s.im.Buy(s.ctx, &form.BuyForm{NftAddress: domain.AddressFrom(collectionAddr), TokenId: "1"})
	s.ErrorIs(err, domain.ErrListingNotActive)
}

func (s *formSuite) TestBuyRpcError() {
	s.market.On("Address", domain.ChainIdSepolia).Return(marketAddr, nil)
	s.market.On("GetListing", mock.Anything, domain.ChainIdSepolia, collectionAddr, mock.Anything).
		Return(nil, errors.New("rpc down")).Once()

	_, err := s.im.Buy(s.ctx, &form.BuyForm{NftAddress: domain.AddressFrom(collectionAddr), TokenId: "1"})
	s.EqualError(err, "rpc down")
}

func (s *formSuite) TestListingActions() {
	s.market.On("Address", domain.ChainIdSepolia).Return(marketAddr, nil)
	f := &form.ListingActionForm{NftAddress: domain.AddressFrom(collectionAddr), TokenId: "1"}

	tx, err := s.im.CancelListing(s.ctx, f)
	s.Require().NoError(err)
	s.decode(tx, "cancelListing", true)

	tx, err = s.im.WithdrawBid(s.ctx, f)
	s.Require().NoError(err)
	s.decode(tx, "withdrawBid", true)

	tx, err = s.im.WithdrawEarnings(s.ctx)
	s.Require().NoError(err)
	s.decode(tx, "withdrawEarnings", true)

	s.market.On("GetListing", mock.Anything, domain.ChainIdSepolia, collectionAddr, mock.Anything).
		Return(s.listing(true, oneEther, big.NewInt(0)), nil).Once()
	tx, err = s.im.EndAuction(s.ctx, f)
	s.Require().NoError(err)
	s.decode(tx, "endAuction", true)
}
