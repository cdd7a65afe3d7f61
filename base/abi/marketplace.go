package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var MarketplaceABI abi.ABI

var marketplaceABIJson = `[{"type":"event","anonymous":false,"name":"AuctionEnded","inputs":[{"type":"address","name":"winner","indexed":true},{"type":"address","name":"nftAddress","indexed":true},{"type":"uint256","name":"tokenId","indexed":true},{"type":"uint256","name":"amount","indexed":false},{"type":"address","name":"seller","indexed":false},{"type":"uint256","name":"timestamp","indexed":false}]},{"type":"event","anonymous":false,"name":"BidPlaced","inputs":[{"type":"address","name":"bidder","indexed":true},{"type":"address","name":"nftAddress","indexed":true},{"type":"uint256","name":"tokenId","indexed":true},{"type":"uint256","name":"amount","indexed":false},{"type":"uint256","name":"timestamp","indexed":false}]},{"type":"event","anonymous":false,"name":"BidWithdrawn","inputs":[{"type":"address","name":"bidder","indexed":true},{"type":"address","name":"nftAddress","indexed":true},{"type":"uint256","name":"tokenId","indexed":true},{"type":"uint256","name":"amount","indexed":false},{"type":"uint256","name":"timestamp","indexed":false}]},{"type":"event","anonymous":false,"name":"CategoryAdded","inputs":[{"type":"bytes32","name":"category","indexed":true},{"type":"string","name":"name","indexed":false},{"type":"uint256","name":"timestamp","indexed":false}]},{"type":"event","anonymous":false,"name":"EarningsWithdrawn","inputs":[{"type":"address","name":"seller","indexed":true},{"type":"uint256","name":"amount","indexed":false},{"type":"uint256","name":"timestamp","indexed":false}]},{"type":"event","anonymous":false,"name":"ItemBought","inputs":[{"type":"address","name":"buyer","indexed":true},{"type":"address","name":"nftAddress","indexed":true},{"type":"uint256","name":"tokenId","indexed":true},{"type":"uint256","name":"price","indexed":false},{"type":"address","name":"seller","indexed":false},{"type":"uint256","name":"timestamp","indexed":false},{"type":"uint256","name":"royaltyAmount","indexed":false},{"type":"address","name":"royaltyReceiver","indexed":false}]},{"type":"event","anonymous":false,"name":"ItemCanceled","inputs":[{"type":"address","name":"seller","indexed":true},{"type":"address","name":"nftAddress","indexed":true},{"type":"uint256","name":"tokenId","indexed":true},{"type":"uint256","name":"timestamp","indexed":false}]},{"type":"event","anonymous":false,"name":"ItemListed","inputs":[{"type":"address","name":"seller","indexed":true},{"type":"address","name":"nftAddress","indexed":true},{"type":"uint256","name":"tokenId","indexed":true},{"type":"uint256","name":"price","indexed":false},{"type":"bool","name":"isAuction","indexed":false},{"type":"bytes32","name":"category","indexed":false},{"type":"uint256","name":"timestamp","indexed":false},{"type":"string","name":"collectionName","indexed":false},{"type":"address","name":"creator","indexed":false}]},{"type":"event","anonymous":false,"name":"OwnershipTransferred","inputs":[{"type":"address","name":"previousOwner","indexed":true},{"type":"address","name":"newOwner","indexed":true}]},{"type":"event","anonymous":false,"name":"Paused","inputs":[{"type":"address","name":"account","indexed":false}]},{"type":"event","anonymous":false,"name":"Unpaused","inputs":[{"type":"address","name":"account","indexed":false}]},{"type":"function","name":"getListings","stateMutability":"view","inputs":[],"outputs":[{"type":"tuple[]","name":"","internalType":"struct NFTMarketplace.Listing[]","components":[{"type":"address","name":"seller"},{"type":"address","name":"nftAddress"},{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"price"},{"type":"bool","name":"isAuction"},{"type":"bytes32","name":"category"},{"type":"string","name":"collectionName"},{"type":"address","name":"creator"},{"type":"uint256","name":"auctionEndTime"},{"type":"address","name":"highestBidder"},{"type":"uint256","name":"highestBid"}]}]},{"type":"function","name":"getListing","stateMutability":"view","inputs":[{"type":"address","name":"nftAddress"},{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"tuple","name":"","internalType":"struct NFTMarketplace.Listing","components":[{"type":"address","name":"seller"},{"type":"address","name":"nftAddress"},{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"price"},{"type":"bool","name":"isAuction"},{"type":"bytes32","name":"category"},{"type":"string","name":"collectionName"},{"type":"address","name":"creator"},{"type":"uint256","name":"auctionEndTime"},{"type":"address","name":"highestBidder"},{"type":"uint256","name":"highestBid"}]}]},{"type":"function","name":"getCategories","stateMutability":"view","inputs":[],"outputs":[{"type":"bytes32[]","name":""}]},{"type":"function","name":"minBidIncrement","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256","name":""}]},{"type":"function","name":"listItem","stateMutability":"nonpayable","inputs":[{"type":"address","name":"nftAddress"},{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"price"},{"type":"bool","name":"isAuction"},{"type":"bytes32","name":"category"}],"outputs":[]},{"type":"function","name":"buyItem","stateMutability":"payable","inputs":[{"type":"address","name":"nftAddress"},{"type":"uint256","name":"tokenId"}],"outputs":[]},{"type":"function","name":"placeBid","stateMutability":"payable","inputs":[{"type":"address","name":"nftAddress"},{"type":"uint256","name":"tokenId"}],"outputs":[]},{"type":"function","name":"withdrawBid","stateMutability":"nonpayable","inputs":[{"type":"address","name":"nftAddress"},{"type":"uint256","name":"tokenId"}],"outputs":[]},{"type":"function","name":"endAuction","stateMutability":"nonpayable","inputs":[{"type":"address","name":"nftAddress"},{"type":"uint256","name":"tokenId"}],"outputs":[]},{"type":"function","name":"cancelListing","stateMutability":"nonpayable","inputs":[{"type":"address","name":"nftAddress"},{"type":"uint256","name":"tokenId"}],"outputs":[]},{"type":"function","name":"withdrawEarnings","stateMutability":"nonpayable","inputs":[],"outputs":[]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(marketplaceABIJson))
	if err != nil {
		panic("Failed to parse marketplace abi")
	}
	MarketplaceABI = _abi
}

// MarketplaceListing mirrors the Listing struct returned by getListing and getListings
type MarketplaceListing struct {
	Seller         common.Address
	NftAddress     common.Address
	TokenId        *big.Int
	Price          *big.Int
	IsAuction      bool
	Category       [32]byte
	CollectionName string
	Creator        common.Address
	AuctionEndTime *big.Int
	HighestBidder  common.Address
	HighestBid     *big.Int
}

type AuctionEndedLog struct {
	Winner     common.Address // indexed
	NftAddress common.Address // indexed
	TokenId    *big.Int       // indexed
	Amount     *big.Int
	Seller     common.Address
	Timestamp  *big.Int
}

type BidPlacedLog struct {
	Bidder     common.Address // indexed
	NftAddress common.Address // indexed
	TokenId    *big.Int       // indexed
	Amount     *big.Int
	Timestamp  *big.Int
}

type BidWithdrawnLog struct {
	Bidder     common.Address // indexed
	NftAddress common.Address // indexed
	TokenId    *big.Int       // indexed
	Amount     *big.Int
	Timestamp  *big.Int
}

type CategoryAddedLog struct {
	Category  [32]byte // indexed
	Name      string
	Timestamp *big.Int
}

type EarningsWithdrawnLog struct {
	Seller    common.Address // indexed
	Amount    *big.Int
	Timestamp *big.Int
}

type ItemBoughtLog struct {
	Buyer           common.Address // indexed
	NftAddress      common.Address // indexed
	TokenId         *big.Int       // indexed
	Price           *big.Int
	Seller          common.Address
	Timestamp       *big.Int
	RoyaltyAmount   *big.Int
	RoyaltyReceiver common.Address
}

type ItemCanceledLog struct {
	Seller     common.Address // indexed
	NftAddress common.Address // indexed
	TokenId    *big.Int       // indexed
	Timestamp  *big.Int
}

type ItemListedLog struct {
	Seller         common.Address // indexed
	NftAddress     common.Address // indexed
	TokenId        *big.Int       // indexed
	Price          *big.Int
	IsAuction      bool
	Category       [32]byte
	Timestamp      *big.Int
	CollectionName string
	Creator        common.Address
}

type OwnershipTransferredLog struct {
	PreviousOwner common.Address // indexed
	NewOwner      common.Address // indexed
}

type PausedLog struct {
	Account common.Address
}

type UnpausedLog struct {
	Account common.Address
}

func ToAuctionEndedLog(log *types.Log) (*AuctionEndedLog, error) {
	var l AuctionEndedLog
	if err := unpackLog(MarketplaceABI, &l, "AuctionEnded", log, 3); err != nil {
		return nil, err
	}
	l.Winner = topicAddress(log, 1)
	l.NftAddress = topicAddress(log, 2)
	l.TokenId = topicBig(log, 3)
	return &l, nil
}

func ToBidPlacedLog(log *types.Log) (*BidPlacedLog, error) {
	var l BidPlacedLog
	if err := unpackLog(MarketplaceABI, &l, "BidPlaced", log, 3); err != nil {
		return nil, err
	}
	l.Bidder = topicAddress(log, 1)
	l.NftAddress = topicAddress(log, 2)
	l.TokenId = topicBig(log, 3)
	return &l, nil
}

func ToBidWithdrawnLog(log *types.Log) (*BidWithdrawnLog, error) {
	var l BidWithdrawnLog
	if err := unpackLog(MarketplaceABI, &l, "BidWithdrawn", log, 3); err != nil {
		return nil, err
	}
	l.Bidder = topicAddress(log, 1)
	l.NftAddress = topicAddress(log, 2)
	l.TokenId = topicBig(log, 3)
	return &l, nil
}

func ToCategoryAddedLog(log *types.Log) (*CategoryAddedLog, error) {
	var l CategoryAddedLog
	if err := unpackLog(MarketplaceABI, &l, "CategoryAdded", log, 1); err != nil {
		return nil, err
	}
	l.Category = log.Topics[1]
	return &l, nil
}

func ToEarningsWithdrawnLog(log *types.Log) (*EarningsWithdrawnLog, error) {
	var l EarningsWithdrawnLog
	if err := unpackLog(MarketplaceABI, &l, "EarningsWithdrawn", log, 1); err != nil {
		return nil, err
	}
	l.Seller = topicAddress(log, 1)
	return &l, nil
}

func ToItemBoughtLog(log *types.Log) (*ItemBoughtLog, error) {
	var l ItemBoughtLog
	if err := unpackLog(MarketplaceABI, &l, "ItemBought", log, 3); err != nil {
		return nil, err
	}
	l.Buyer = topicAddress(log, 1)
	l.NftAddress = topicAddress(log, 2)
	l.TokenId = topicBig(log, 3)
	return &l, nil
}

func ToItemCanceledLog(log *types.Log) (*ItemCanceledLog, error) {
	var l ItemCanceledLog
	if err := unpackLog(MarketplaceABI, &l, "ItemCanceled", log, 3); err != nil {
		return nil, err
	}
	l.Seller = topicAddress(log, 1)
	l.NftAddress = topicAddress(log, 2)
	l.TokenId = topicBig(log, 3)
	return &l, nil
}

func ToItemListedLog(log *types.Log) (*ItemListedLog, error) {
	var l ItemListedLog
	if err := unpackLog(MarketplaceABI, &l, "ItemListed", log, 3); err != nil {
		return nil, err
	}
	l.Seller = topicAddress(log, 1)
	l.NftAddress = topicAddress(log, 2)
	l.TokenId = topicBig(log, 3)
	return &l, nil
}

// ToOwnershipTransferredLog decodes the Ownable event of either contract
func ToOwnershipTransferredLog(log *types.Log) (*OwnershipTransferredLog, error) {
	if err := checkTopics(log, 2); err != nil {
		return nil, err
	}
	return &OwnershipTransferredLog{
		PreviousOwner: topicAddress(log, 1),
		NewOwner:      topicAddress(log, 2),
	}, nil
}

func ToPausedLog(log *types.Log) (*PausedLog, error) {
	var l PausedLog
	if err := unpackLog(MarketplaceABI, &l, "Paused", log, 0); err != nil {
		return nil, err
	}
	return &l, nil
}

func ToUnpausedLog(log *types.Log) (*UnpausedLog, error) {
	var l UnpausedLog
	if err := unpackLog(MarketplaceABI, &l, "Unpaused", log, 0); err != nil {
		return nil, err
	}
	return &l, nil
}
