package usecase

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/xerrors"

	baseabi "github.com/andy-marketplace/goapi/base/abi"
	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	pricefomatter "github.com/andy-marketplace/goapi/base/price_fomatter"
	"github.com/andy-marketplace/goapi/base/validator"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/form"
	"github.com/andy-marketplace/goapi/domain/marketplace"
	"github.com/andy-marketplace/goapi/domain/nftcollection"
	"github.com/andy-marketplace/goapi/service/chain/contract"
)

type Cfg struct {
	ChainId           domain.ChainId
	CollectionAddress domain.Address
	Marketplace       contract.MarketplaceContract
	Collection        contract.NFTCollectionContract
}

type impl struct {
	chainId           domain.ChainId
	collectionAddress domain.Address
	marketplace       contract.MarketplaceContract
	collection        contract.NFTCollectionContract
}

func New(cfg *Cfg) form.UseCase {
	return &impl{
		chainId:           cfg.ChainId,
		collectionAddress: cfg.CollectionAddress.ToLower(),
		marketplace:       cfg.Marketplace,
		collection:        cfg.Collection,
	}
}

func txRequest(description string, to common.Address, contractAbi ethabi.ABI, value *big.Int, method string, args ...interface{}) (*form.TxRequest, error) {
	data, err := contractAbi.Pack(method, args...)
	if err != nil {
		return nil, xerrors.Errorf("pack %s: %w", method, err)
	}
	if value == nil {
		value = big.NewInt(0)
	}
	return &form.TxRequest{
		Description: description,
		To:          domain.AddressFrom(to),
		Data:        hexutil.Encode(data),
		Value:       value.String(),
	}, nil
}

func royaltyFee(fee *int64) (*big.Int, error) {
	if fee == nil {
		return big.NewInt(nftcollection.DefaultRoyaltyFee), nil
	}
	if *fee < 0 || *fee > nftcollection.MaxRoyaltyFee {
		return nil, domain.ErrInvalidRoyaltyFee
	}
	return big.NewInt(*fee), nil
}

func tokenRef(nftAddress domain.Address, tokenId domain.TokenId) (common.Address, *big.Int, error) {
	if !validator.IsValidAddress(string(nftAddress)) {
		return common.Address{}, nil, domain.ErrInvalidAddress
	}
	id, err := tokenId.ToBigInt()
	if err != nil {
		return common.Address{}, nil, err
	}
	return nftAddress.ToCommon(), id, nil
}

func (im *impl) Mint(c ctx.Ctx, f *form.MintForm) (*form.TxRequest, error) {
	if len(f.TokenURI) == 0 {
		return nil, domain.ErrEmptyTokenURI
	}
	if !validator.IsValidAddress(string(f.To)) {
		return nil, domain.ErrInvalidAddress
	}
	fee, err := royaltyFee(f.RoyaltyFee)
	if err != nil {
		return nil, err
	}
	return txRequest("mint", im.collectionAddress.ToCommon(), baseabi.NFTCollectionABI, nil,
		"mint", f.To.ToCommon(), f.TokenURI, fee)
}

func (im *impl) BatchMint(c ctx.Ctx, f *form.BatchMintForm) (*form.TxRequest, error) {
	if len(f.TokenURIs) == 0 {
		return nil, domain.ErrEmptyTokenURI
	}
	for _, uri := range f.TokenURIs {
		if len(uri) == 0 {
			return nil, domain.ErrEmptyTokenURI
		}
	}
	if !validator.IsValidAddress(string(f.To)) {
		return nil, domain.ErrInvalidAddress
	}
	fee, err := royaltyFee(f.RoyaltyFee)
	if err != nil {
		return nil, err
	}
	return txRequest("batchMint", im.collectionAddress.ToCommon(), baseabi.NFTCollectionABI, nil,
		"batchMint", f.To.ToCommon(), f.TokenURIs, fee)
}

// approval returns an approve tx when the marketplace may not move the token yet
func (im *impl) approval(c ctx.Ctx, owner, nftAddress, market common.Address, tokenId *big.Int) (*form.TxRequest, error) {
	approved, err := im.collection.GetApproved(c, im.chainId, nftAddress, tokenId)
	if err != nil {
		c.WithField("err", err).Error("collection.GetApproved failed")
		return nil, err
	}
	if approved == market {
		return nil, nil
	}
	all, err := im.collection.IsApprovedForAll(c, im.chainId, nftAddress, owner, market)
	if err != nil {
		c.WithField("err", err).Error("collection.IsApprovedForAll failed")
		return nil, err
	}
	if all {
		return nil, nil
	}
	return txRequest("approve", nftAddress, baseabi.NFTCollectionABI, nil, "approve", market, tokenId)
}

func (im *impl) List(c ctx.Ctx, caller domain.Address, f *form.ListForm) ([]*form.TxRequest, error) {
	nftAddress, tokenId, err := tokenRef(f.NftAddress, f.TokenId)
	if err != nil {
		return nil, err
	}
	if !validator.IsPositiveEther(f.Price) {
		return nil, domain.ErrInvalidPrice
	}
	price, err := pricefomatter.ParseEther(f.Price)
	if err != nil {
		return nil, domain.ErrInvalidPrice
	}
	category, err := marketplace.ParseCategory(f.Category)
	if err != nil {
		return nil, err
	}
	if !validator.IsValidAddress(string(caller)) {
		return nil, domain.ErrInvalidAddress
	}

	c = ctx.WithLogField(ctx.WithLogField(c, "nftAddress", f.NftAddress), "tokenId", f.TokenId)
	owner, err := im.collection.OwnerOf(c, im.chainId, nftAddress, tokenId)
	if err != nil {
		c.WithField("err", err).Error("collection.OwnerOf failed")
		return nil, err
	}
	if owner != caller.ToCommon() {
		return nil, domain.ErrNotTokenOwner
	}
	market, err := im.marketplace.Address(im.chainId)
	if err != nil {
		return nil, err
	}

	res := []*form.TxRequest{}
	approve, err := im.approval(c, owner, nftAddress, market, tokenId)
	if err != nil {
		return nil, err
	}
	if approve != nil {
		res = append(res, approve)
	}
	list, err := txRequest("listItem", market, baseabi.MarketplaceABI, nil,
		"listItem", nftAddress, tokenId, price, f.IsAuction, category)
	if err != nil {
		return nil, err
	}
	c.WithFields(log.Fields{
		"price":     price.String(),
		"isAuction": f.IsAuction,
		"approve":   approve != nil,
	}).Info("list prepared")
	return append(res, list), nil
}

func isActive(l *baseabi.MarketplaceListing) bool {
	return l != nil && l.Seller != (common.Address{}) && l.Price != nil && l.Price.Sign() > 0
}

func (im *impl) activeListing(c ctx.Ctx, nftAddress common.Address, tokenId *big.Int) (*baseabi.MarketplaceListing, common.Address, error) {
	market, err := im.marketplace.Address(im.chainId)
	if err != nil {
		return nil, common.Address{}, err
	}
	l, err := im.marketplace.GetListing(c, im.chainId, nftAddress, tokenId)
	if err != nil {
		c.WithField("err", err).Error("marketplace.GetListing failed")
		return nil, common.Address{}, err
	}
	if !isActive(l) {
		return nil, common.Address{}, domain.ErrListingNotActive
	}
	return l, market, nil
}

func (im *impl) Bid(c ctx.Ctx, f *form.BidForm) (*form.TxRequest, error) {
	nftAddress, tokenId, err := tokenRef(f.NftAddress, f.TokenId)
	if err != nil {
		return nil, err
	}
	if !validator.IsPositiveEther(f.Amount) {
		return nil, domain.ErrInvalidPrice
	}
	amount, err := pricefomatter.ParseEther(f.Amount)
	if err != nil {
		return nil, domain.ErrInvalidPrice
	}

	l, market, err := im.activeListing(c, nftAddress, tokenId)
	if err != nil {
		return nil, err
	}
	if !l.IsAuction {
		return nil, domain.ErrNotAuction
	}

	// an auction without bids starts from its listing price
	current := l.Price
	if l.HighestBid != nil && l.HighestBid.Sign() > 0 {
		current = l.HighestBid
	}
	if amount.Cmp(current) <= 0 {
		return nil, domain.ErrBidTooLow
	}
	inc, err := im.marketplace.MinBidIncrement(c, im.chainId)
	if err != nil {
		c.WithField("err", err).Error("marketplace.MinBidIncrement failed")
		return nil, err
	}
	if amount.Cmp(new(big.Int).Add(current, inc)) < 0 {
		return nil, xerrors.Errorf("minimum bid increment is %s ETH: %w", pricefomatter.FormatEther(inc), domain.ErrBidIncrementTooLow)
	}
	return txRequest("placeBid", market, baseabi.MarketplaceABI, amount, "placeBid", nftAddress, tokenId)
}

func (im *impl) Buy(c ctx.Ctx, f *form.BuyForm) (*form.TxRequest, error) {
	nftAddress, tokenId, err := tokenRef(f.NftAddress, f.TokenId)
	if err != nil {
		return nil, err
	}
	l, market, err := im.activeListing(c, nftAddress, tokenId)
	if err != nil {
		return nil, err
	}
	if l.IsAuction {
		return nil, domain.ErrIsAuction
	}
	return txRequest("buyItem", market, baseabi.MarketplaceABI, l.Price, "buyItem", nftAddress, tokenId)
}

func (im *impl) listingAction(c ctx.Ctx, method string, f *form.ListingActionForm) (*form.TxRequest, error) {
	nftAddress, tokenId, err := tokenRef(f.NftAddress, f.TokenId)
	if err != nil {
		return nil, err
	}
	market, err := im.marketplace.Address(im.chainId)
	if err != nil {
		return nil, err
	}
	return txRequest(method, market, baseabi.MarketplaceABI, nil, method, nftAddress, tokenId)
}

func (im *impl) CancelListing(c ctx.Ctx, f *form.ListingActionForm) (*form.TxRequest, error) {
	return im.listingAction(c, "cancelListing", f)
}

func (im *impl) EndAuction(c ctx.Ctx, f *form.ListingActionForm) (*form.TxRequest, error) {
	nftAddress, tokenId, err := tokenRef(f.NftAddress, f.TokenId)
	if err != nil {
		return nil, err
	}
	l, _, err := im.activeListing(c, nftAddress, tokenId)
	if err != nil {
		return nil, err
	}
	if !l.IsAuction {
		return nil, domain.ErrNotAuction
	}
	return im.listingAction(c, "endAuction", f)
}

func (im *impl) WithdrawBid(c ctx.Ctx, f *form.ListingActionForm) (*form.TxRequest, error) {
	return im.listingAction(c, "withdrawBid", f)
}

func (im *impl) WithdrawEarnings(c ctx.Ctx) (*form.TxRequest, error) {
	market, err := im.marketplace.Address(im.chainId)
	if err != nil {
		return nil, err
	}
	return txRequest("withdrawEarnings", market, baseabi.MarketplaceABI, nil, "withdrawEarnings")
}
