package nft

import (
	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/marketplace"
	"github.com/andy-marketplace/goapi/domain/nftcollection"
)

// Attribute is an ERC-721 metadata trait
type Attribute struct {
	TraitType   string      `json:"trait_type"`
	Value       interface{} `json:"value"`
	DisplayType string      `json:"display_type,omitempty"`
}

// Metadata is the JSON document a tokenURI points to
type Metadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Attributes  []Attribute `json:"attributes"`
}

// NFT is an on-chain listing joined with its metadata. Price is in ether.
type NFT struct {
	NftAddress  domain.Address `json:"nftAddress"`
	TokenId     domain.TokenId `json:"tokenId"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	ImageUrl    string         `json:"imageUrl"`
	Price       string         `json:"price"`
	Seller      domain.Address `json:"seller"`
	IsAuction   bool           `json:"isAuction"`
	Category    string         `json:"category"`
	SellerEns   string         `json:"sellerEns,omitempty"`
}

type Details struct {
	NftAddress domain.Address             `json:"nftAddress"`
	TokenId    domain.TokenId             `json:"tokenId"`
	TokenURI   string                     `json:"tokenURI"`
	Owner      domain.Address             `json:"owner"`
	Metadata   *Metadata                  `json:"metadata"`
	Listing    *marketplace.Listing       `json:"listing,omitempty"`
	Mint       *nftcollection.TokenMinted `json:"mint,omitempty"`
	// SellerEns is the reverse resolved name of the listing seller
	SellerEns      string `json:"sellerEns,omitempty"`
	AuctionEndTime string `json:"auctionEndTime,omitempty"`
}

type UseCase interface {
	GetOnchainNFTs(c ctx.Ctx) ([]NFT, error)
	GetDetails(c ctx.Ctx, nftAddress domain.Address, tokenId domain.TokenId) (*Details, error)
	GetMetadata(c ctx.Ctx, tokenURI string) (*Metadata, error)
}
