package marketplace

import (
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/record"
)

const (
	EventAuctionEnded         = "AuctionEnded"
	EventBidPlaced            = "BidPlaced"
	EventBidWithdrawn         = "BidWithdrawn"
	EventCategoryAdded        = "CategoryAdded"
	EventEarningsWithdrawn    = "EarningsWithdrawn"
	EventItemBought           = "ItemBought"
	EventItemCanceled         = "ItemCanceled"
	EventItemListed           = "ItemListed"
	EventOwnershipTransferred = "OwnershipTransferred"
	EventPaused               = "Paused"
	EventUnpaused             = "Unpaused"
)

type AuctionEnded struct {
	record.Meta `bson:",inline"`
	Winner      domain.Address `json:"winner" bson:"winner"`
	NftAddress  domain.Address `json:"nftAddress" bson:"nftAddress"`
	TokenId     domain.TokenId `json:"tokenId" bson:"tokenId"`
	Amount      string         `json:"amount" bson:"amount"`
	Seller      domain.Address `json:"seller" bson:"seller"`
	Timestamp   string         `json:"timestamp" bson:"timestamp"`
}

func (AuctionEnded) Table() domain.Table { return domain.TableAuctionEndeds }
func (AuctionEnded) EventName() string   { return EventAuctionEnded }

type BidPlaced struct {
	record.Meta `bson:",inline"`
	Bidder      domain.Address `json:"bidder" bson:"bidder"`
	NftAddress  domain.Address `json:"nftAddress" bson:"nftAddress"`
	TokenId     domain.TokenId `json:"tokenId" bson:"tokenId"`
	Amount      string         `json:"amount" bson:"amount"`
	Timestamp   string         `json:"timestamp" bson:"timestamp"`
}

func (BidPlaced) Table() domain.Table { return domain.TableBidPlaceds }
func (BidPlaced) EventName() string   { return EventBidPlaced }

type BidWithdrawn struct {
	record.Meta `bson:",inline"`
	Bidder      domain.Address `json:"bidder" bson:"bidder"`
	NftAddress  domain.Address `json:"nftAddress" bson:"nftAddress"`
	TokenId     domain.TokenId `json:"tokenId" bson:"tokenId"`
	Amount      string         `json:"amount" bson:"amount"`
	Timestamp   string         `json:"timestamp" bson:"timestamp"`
}

func (BidWithdrawn) Table() domain.Table { return domain.TableBidWithdrawns }
func (BidWithdrawn) EventName() string   { return EventBidWithdrawn }

type CategoryAdded struct {
	record.Meta `bson:",inline"`
	// Category is the 0x hex bytes32 id
	Category  string `json:"category" bson:"category"`
	Name      string `json:"name" bson:"name"`
	Timestamp string `json:"timestamp" bson:"timestamp"`
}

func (CategoryAdded) Table() domain.Table { return domain.TableCategoryAddeds }
func (CategoryAdded) EventName() string   { return EventCategoryAdded }

type EarningsWithdrawn struct {
	record.Meta `bson:",inline"`
	Seller      domain.Address `json:"seller" bson:"seller"`
	Amount      string         `json:"amount" bson:"amount"`
	Timestamp   string         `json:"timestamp" bson:"timestamp"`
}

func (EarningsWithdrawn) Table() domain.Table { return domain.TableEarningsWithdrawns }
func (EarningsWithdrawn) EventName() string   { return EventEarningsWithdrawn }

type ItemBought struct {
	record.Meta     `bson:",inline"`
	Buyer           domain.Address `json:"buyer" bson:"buyer"`
	NftAddress      domain.Address `json:"nftAddress" bson:"nftAddress"`
	TokenId         domain.TokenId `json:"tokenId" bson:"tokenId"`
	Price           string         `json:"price" bson:"price"`
	Seller          domain.Address `json:"seller" bson:"seller"`
	Timestamp       string         `json:"timestamp" bson:"timestamp"`
	RoyaltyAmount   string         `json:"royaltyAmount" bson:"royaltyAmount"`
	RoyaltyReceiver domain.Address `json:"royaltyReceiver" bson:"royaltyReceiver"`
}

func (ItemBought) Table() domain.Table { return domain.TableItemBoughts }
func (ItemBought) EventName() string   { return EventItemBought }

type ItemCanceled struct {
	record.Meta `bson:",inline"`
	Seller      domain.Address `json:"seller" bson:"seller"`
	NftAddress  domain.Address `json:"nftAddress" bson:"nftAddress"`
	TokenId     domain.TokenId `json:"tokenId" bson:"tokenId"`
	Timestamp   string         `json:"timestamp" bson:"timestamp"`
}

func (ItemCanceled) Table() domain.Table { return domain.TableItemCanceleds }
func (ItemCanceled) EventName() string   { return EventItemCanceled }

type ItemListed struct {
	record.Meta    `bson:",inline"`
	Seller         domain.Address `json:"seller" bson:"seller"`
	NftAddress     domain.Address `json:"nftAddress" bson:"nftAddress"`
	TokenId        domain.TokenId `json:"tokenId" bson:"tokenId"`
	Price          string         `json:"price" bson:"price"`
	IsAuction      bool           `json:"isAuction" bson:"isAuction"`
	Category       string         `json:"category" bson:"category"`
	Timestamp      string         `json:"timestamp" bson:"timestamp"`
	CollectionName string         `json:"collectionName" bson:"collectionName"`
	Creator        domain.Address `json:"creator" bson:"creator"`
}

func (ItemListed) Table() domain.Table { return domain.TableItemListeds }
func (ItemListed) EventName() string   { return EventItemListed }

type OwnershipTransferred struct {
	record.Meta   `bson:",inline"`
	PreviousOwner domain.Address `json:"previousOwner" bson:"previousOwner"`
	NewOwner      domain.Address `json:"newOwner" bson:"newOwner"`
}

func (OwnershipTransferred) Table() domain.Table {
	return domain.TableMarketplaceOwnershipTransferred
}
func (OwnershipTransferred) EventName() string { return EventOwnershipTransferred }

type Paused struct {
	record.Meta `bson:",inline"`
	Account     domain.Address `json:"account" bson:"account"`
}

func (Paused) Table() domain.Table { return domain.TablePauseds }
func (Paused) EventName() string   { return EventPaused }

type Unpaused struct {
	record.Meta `bson:",inline"`
	Account     domain.Address `json:"account" bson:"account"`
}

func (Unpaused) Table() domain.Table { return domain.TableUnpauseds }
func (Unpaused) EventName() string   { return EventUnpaused }

// Kinds lists every marketplace record for event feeds and exports
var Kinds = record.NewKinds(
	record.Kind{Name: EventAuctionEnded, Table: domain.TableAuctionEndeds, NewSlice: func() interface{} { return &[]AuctionEnded{} }},
	record.Kind{Name: EventBidPlaced, Table: domain.TableBidPlaceds, NewSlice: func() interface{} { return &[]BidPlaced{} }},
	record.Kind{Name: EventBidWithdrawn, Table: domain.TableBidWithdrawns, NewSlice: func() interface{} { return &[]BidWithdrawn{} }},
	record.Kind{Name: EventCategoryAdded, Table: domain.TableCategoryAddeds, NewSlice: func() interface{} { return &[]CategoryAdded{} }},
	record.Kind{Name: EventEarningsWithdrawn, Table: domain.TableEarningsWithdrawns, NewSlice: func() interface{} { return &[]EarningsWithdrawn{} }},
	record.Kind{Name: EventItemBought, Table: domain.TableItemBoughts, NewSlice: func() interface{} { return &[]ItemBought{} }},
	record.Kind{Name: EventItemCanceled, Table: domain.TableItemCanceleds, NewSlice: func() interface{} { return &[]ItemCanceled{} }},
	record.Kind{Name: EventItemListed, Table: domain.TableItemListeds, NewSlice: func() interface{} { return &[]ItemListed{} }},
	record.Kind{Name: EventOwnershipTransferred, Table: domain.TableMarketplaceOwnershipTransferred, NewSlice: func() interface{} { return &[]OwnershipTransferred{} }},
	record.Kind{Name: EventPaused, Table: domain.TablePauseds, NewSlice: func() interface{} { return &[]Paused{} }},
	record.Kind{Name: EventUnpaused, Table: domain.TableUnpauseds, NewSlice: func() interface{} { return &[]Unpaused{} }},
)
