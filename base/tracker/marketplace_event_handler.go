package tracker

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/andy-marketplace/goapi/base/abi"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/marketplace"
	"github.com/andy-marketplace/goapi/domain/record"
)

var (
	auctionEndedSig      = abi.MarketplaceABI.Events["AuctionEnded"].ID
	bidPlacedSig         = abi.MarketplaceABI.Events["BidPlaced"].ID
	bidWithdrawnSig      = abi.MarketplaceABI.Events["BidWithdrawn"].ID
	categoryAddedSig     = abi.MarketplaceABI.Events["CategoryAdded"].ID
	earningsWithdrawnSig = abi.MarketplaceABI.Events["EarningsWithdrawn"].ID
	itemBoughtSig        = abi.MarketplaceABI.Events["ItemBought"].ID
	itemCanceledSig      = abi.MarketplaceABI.Events["ItemCanceled"].ID
	itemListedSig        = abi.MarketplaceABI.Events["ItemListed"].ID
	ownershipSig         = abi.MarketplaceABI.Events["OwnershipTransferred"].ID
	pausedSig            = abi.MarketplaceABI.Events["Paused"].ID
	unpausedSig          = abi.MarketplaceABI.Events["Unpaused"].ID
)

func NewMarketplaceEventHandler(cfg *RecordEventHandlerCfg) EventHandler {
	return &recordEventHandler{
		name: "marketplace",
		decoders: map[common.Hash]recordDecoder{
			auctionEndedSig:      toAuctionEnded,
			bidPlacedSig:         toBidPlaced,
			bidWithdrawnSig:      toBidWithdrawn,
			categoryAddedSig:     toCategoryAdded,
			earningsWithdrawnSig: toEarningsWithdrawn,
			itemBoughtSig:        toItemBought,
			itemCanceledSig:      toItemCanceled,
			itemListedSig:        toItemListed,
			ownershipSig:         toMarketplaceOwnershipTransferred,
			pausedSig:            toPaused,
			unpausedSig:          toUnpaused,
		},
		recordUC: cfg.RecordUseCase,
		sinks:    cfg.Sinks,
	}
}

func toTokenId(v *big.Int) domain.TokenId {
	return domain.TokenId(record.Uint(v))
}

func toAuctionEnded(l *logWithBlockTime) (record.Record, error) {
	e, err := abi.ToAuctionEndedLog(&l.Log)
	if err != nil {
		return nil, err
	}
	return &marketplace.AuctionEnded{
		Meta:       l.meta(),
		Winner:     toDomainAddress(e.Winner),
		NftAddress: toDomainAddress(e.NftAddress),
		TokenId:    toTokenId(e.TokenId),
		Amount:     record.Uint(e.Amount),
		Seller:     toDomainAddress(e.Seller),
		Timestamp:  record.Uint(e.Timestamp),
	}, nil
}

func toBidPlaced(l *logWithBlockTime) (record.Record, error) {
	e, err := abi.ToBidPlacedLog(&l.Log)
	if err != nil {
		return nil, err
	}
	return &marketplace.BidPlaced{
		Meta:       l.meta(),
		Bidder:     toDomainAddress(e.Bidder),
		NftAddress: toDomainAddress(e.NftAddress),
		TokenId:    toTokenId(e.TokenId),
		Amount:     record.Uint(e.Amount),
		Timestamp:  record.Uint(e.Timestamp),
	}, nil
}

func toBidWithdrawn(l *logWithBlockTime) (record.Record, error) {
	e, err := abi.ToBidWithdrawnLog(&l.Log)
	if err != nil {
		return nil, err
	}
	return &marketplace.BidWithdrawn{
		Meta:       l.meta(),
		Bidder:     toDomainAddress(e.Bidder),
		NftAddress: toDomainAddress(e.NftAddress),
		TokenId:    toTokenId(e.TokenId),
		Amount:     record.Uint(e.Amount),
		Timestamp:  record.Uint(e.Timestamp),
	}, nil
}

func toCategoryAdded(l *logWithBlockTime) (record.Record, error) {
	e, err := abi.ToCategoryAddedLog(&l.Log)
	if err != nil {
		return nil, err
	}
	return &marketplace.CategoryAdded{
		Meta:      l.meta(),
		Category:  record.Bytes32(e.Category),
		Name:      e.Name,
		Timestamp: record.Uint(e.Timestamp),
	}, nil
}

func toEarningsWithdrawn(l *logWithBlockTime) (record.Record, error) {
	e, err := abi.ToEarningsWithdrawnLog(&l.Log)
	if err != nil {
		return nil, err
	}
	return &marketplace.EarningsWithdrawn{
		Meta:      l.meta(),
		Seller:    toDomainAddress(e.Seller),
		Amount:    record.Uint(e.Amount),
		Timestamp: record.Uint(e.Timestamp),
	}, nil
}

func toItemBought(l *logWithBlockTime) (record.Record, error) {
	e, err := abi.ToItemBoughtLog(&l.Log)
	if err != nil {
		return nil, err
	}
	return &marketplace.ItemBought{
		Meta:            l.meta(),
		Buyer:           toDomainAddress(e.Buyer),
		NftAddress:      toDomainAddress(e.NftAddress),
		TokenId:         toTokenId(e.TokenId),
		Price:           record.Uint(e.Price),
		Seller:          toDomainAddress(e.Seller),
		Timestamp:       record.Uint(e.Timestamp),
		RoyaltyAmount:   record.Uint(e.RoyaltyAmount),
		RoyaltyReceiver: toDomainAddress(e.RoyaltyReceiver),
	}, nil
}

func toItemCanceled(l *logWithBlockTime) (record.Record, error) {
	e, err := abi.ToItemCanceledLog(&l.Log)
	if err != nil {
		return nil, err
	}
	return &marketplace.ItemCanceled{
		Meta:       l.meta(),
		Seller:     toDomainAddress(e.Seller),
		NftAddress: toDomainAddress(e.NftAddress),
		TokenId:    toTokenId(e.TokenId),
		Timestamp:  record.Uint(e.Timestamp),
	}, nil
}

func toItemListed(l *logWithBlockTime) (record.Record, error) {
	e, err := abi.ToItemListedLog(&l.Log)
	if err != nil {
		return nil, err
	}
	return &marketplace.ItemListed{
		Meta:           l.meta(),
		Seller:         toDomainAddress(e.Seller),
		NftAddress:     toDomainAddress(e.NftAddress),
		TokenId:        toTokenId(e.TokenId),
		Price:          record.Uint(e.Price),
		IsAuction:      e.IsAuction,
		Category:       record.Bytes32(e.Category),
		Timestamp:      record.Uint(e.Timestamp),
		CollectionName: e.CollectionName,
		Creator:        toDomainAddress(e.Creator),
	}, nil
}

func toMarketplaceOwnershipTransferred(l *logWithBlockTime) (record.Record, error) {
	e, err := abi.ToOwnershipTransferredLog(&l.Log)
	if err != nil {
		return nil, err
	}
	return &marketplace.OwnershipTransferred{
		Meta:          l.meta(),
		PreviousOwner: toDomainAddress(e.PreviousOwner),
		NewOwner:      toDomainAddress(e.NewOwner),
	}, nil
}

func toPaused(l *logWithBlockTime) (record.Record, error) {
	e, err := abi.ToPausedLog(&l.Log)
	if err != nil {
		return nil, err
	}
	return &marketplace.Paused{
		Meta:    l.meta(),
		Account: toDomainAddress(e.Account),
	}, nil
}

func toUnpaused(l *logWithBlockTime) (record.Record, error) {
	e, err := abi.ToUnpausedLog(&l.Log)
	if err != nil {
		return nil, err
	}
	return &marketplace.Unpaused{
		Meta:    l.meta(),
		Account: toDomainAddress(e.Account),
	}, nil
}
