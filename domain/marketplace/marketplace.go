package marketplace

import (
	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/record"
)

// NFTsByCategoryLimit caps the category page the web client renders
const NFTsByCategoryLimit = 100

// Listing is the latest ItemListed of a token with its bidding state
type Listing struct {
	ItemListed    `bson:",inline"`
	Active        bool           `json:"active"`
	HighestBid    string         `json:"highestBid"`
	HighestBidder domain.Address `json:"highestBidder"`
}

// Sale is an ItemBought or the settlement of an auction
type Sale struct {
	EventName  string         `json:"eventName"`
	Buyer      domain.Address `json:"buyer"`
	Seller     domain.Address `json:"seller"`
	NftAddress domain.Address `json:"nftAddress"`
	TokenId    domain.TokenId `json:"tokenId"`
	Price      string         `json:"price"`
	Timestamp  string         `json:"timestamp"`
	TxHash     domain.TxHash  `json:"transactionHash"`
}

type UseCase interface {
	GetCategories(c ctx.Ctx) ([]CategoryAdded, error)
	// GetCategoryListings accepts a 0x bytes32 id or the category name
	GetCategoryListings(c ctx.Ctx, category string) ([]ItemListed, error)
	GetNFTsByCategory(c ctx.Ctx, category string) ([]ItemListed, error)
	GetAllNFTs(c ctx.Ctx, first, skip int32) ([]ItemListed, error)
	GetListing(c ctx.Ctx, nftAddress domain.Address, tokenId domain.TokenId) (*Listing, error)
	GetActiveListings(c ctx.Ctx, first, skip int32) ([]Listing, error)
	GetBids(c ctx.Ctx, nftAddress domain.Address, tokenId domain.TokenId) ([]BidPlaced, error)
	GetSales(c ctx.Ctx, nftAddress domain.Address, tokenId domain.TokenId) ([]Sale, error)
	// GetEvents returns a pointer to a slice of the named record type
	GetEvents(c ctx.Ctx, event string, opts ...record.FindOptions) (interface{}, error)
}
