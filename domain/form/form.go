package form

import (
	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
)

// TxRequest is an unsigned transaction for the caller's wallet. Value is in wei.
type TxRequest struct {
	Description string         `json:"description"`
	To          domain.Address `json:"to"`
	Data        string         `json:"data"`
	Value       string         `json:"value"`
}

type MintForm struct {
	To       domain.Address `json:"to" example:"0x8b3a6aa3a2bcdb86a1fc4ab5e1cefe7f2f5b0dd5"`
	TokenURI string         `json:"tokenURI" example:"ipfs://bafkrei..."`
	// RoyaltyFee in basis points, 250 when omitted
	RoyaltyFee *int64 `json:"royaltyFee,omitempty"`
}

type BatchMintForm struct {
	To         domain.Address `json:"to"`
	TokenURIs  []string       `json:"tokenURIs"`
	RoyaltyFee *int64         `json:"royaltyFee,omitempty"`
}

type ListForm struct {
	NftAddress domain.Address `json:"nftAddress"`
	TokenId    domain.TokenId `json:"tokenId"`
	// Price in ether, e.g. "0.5"
	Price     string `json:"price"`
	IsAuction bool   `json:"isAuction"`
	// Category is a 0x bytes32 id or a category name
	Category string `json:"category"`
}

type BidForm struct {
	NftAddress domain.Address `json:"nftAddress"`
	TokenId    domain.TokenId `json:"tokenId"`
	// Amount in ether
	Amount string `json:"amount"`
}

type BuyForm struct {
	NftAddress domain.Address `json:"nftAddress"`
	TokenId    domain.TokenId `json:"tokenId"`
}

// ListingActionForm addresses cancelListing, endAuction and withdrawBid
type ListingActionForm struct {
	NftAddress domain.Address `json:"nftAddress"`
	TokenId    domain.TokenId `json:"tokenId"`
}

// UseCase validates forms before any network call and returns the transactions to sign
type UseCase interface {
	Mint(c ctx.Ctx, f *MintForm) (*TxRequest, error)
	BatchMint(c ctx.Ctx, f *BatchMintForm) (*TxRequest, error)
	// List may return an approval tx ahead of listItem
	List(c ctx.Ctx, caller domain.Address, f *ListForm) ([]*TxRequest, error)
	Bid(c ctx.Ctx, f *BidForm) (*TxRequest, error)
	Buy(c ctx.Ctx, f *BuyForm) (*TxRequest, error)
	CancelListing(c ctx.Ctx, f *ListingActionForm) (*TxRequest, error)
	EndAuction(c ctx.Ctx, f *ListingActionForm) (*TxRequest, error)
	WithdrawBid(c ctx.Ctx, f *ListingActionForm) (*TxRequest, error)
	WithdrawEarnings(c ctx.Ctx) (*TxRequest, error)
}
