package usecase

import (
	"math/big"
	"sort"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/marketplace"
	"github.com/andy-marketplace/goapi/domain/record"
)

const (
	maxPage = 1000
	// activeScanPages bounds how many pages of listings GetActiveListings walks
	activeScanPages = 10
)

type impl struct {
	records record.UseCase
}

func New(records record.UseCase) marketplace.UseCase {
	return &impl{records: records}
}

// ToCategoryId renders a category name or id as the stored 0x hex id
func ToCategoryId(category string) (string, error) {
	b, err := marketplace.ParseCategory(category)
	if err != nil {
		return "", err
	}
	return record.Bytes32(b), nil
}

func (im *impl) GetCategories(c ctx.Ctx) ([]marketplace.CategoryAdded, error) {
	res := []marketplace.CategoryAdded{}
	if err := im.records.FindAll(c, domain.TableCategoryAddeds, &res,
		record.WithSort("blockNumber", domain.SortDirAsc),
		record.WithPagination(0, maxPage),
	); err != nil {
		c.WithField("err", err).Error("records.FindAll failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) listingsByCategory(c ctx.Ctx, category string, first int32) ([]marketplace.ItemListed, error) {
	id, err := ToCategoryId(category)
	if err != nil {
		return nil, err
	}
	res := []marketplace.ItemListed{}
	if err := im.records.FindAll(c, domain.TableItemListeds, &res,
		record.WithCategory(id),
		record.WithPagination(0, first),
	); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"category": category,
		}).Error("records.FindAll failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) GetCategoryListings(c ctx.Ctx, category string) ([]marketplace.ItemListed, error) {
	return im.listingsByCategory(c, category, maxPage)
}

func (im *impl) GetNFTsByCategory(c ctx.Ctx, category string) ([]marketplace.ItemListed, error) {
	return im.listingsByCategory(c, category, marketplace.NFTsByCategoryLimit)
}

func (im *impl) GetAllNFTs(c ctx.Ctx, first, skip int32) ([]marketplace.ItemListed, error) {
	res := []marketplace.ItemListed{}
	if err := im.records.FindAll(c, domain.TableItemListeds, &res,
		record.WithSort("blockTimestamp", domain.SortDirDesc),
		record.WithPagination(skip, first),
	); err != nil {
		c.WithField("err", err).Error("records.FindAll failed")
		return nil, err
	}
	return res, nil
}

func tokenOpts(nftAddress domain.Address, tokenId domain.TokenId) []record.FindOptions {
	return []record.FindOptions{
		record.WithNftAddress(nftAddress),
		record.WithTokenId(tokenId),
	}
}

// isClosed reports whether a sale, cancel or auction settlement follows the listing
func (im *impl) isClosed(c ctx.Ctx, l *marketplace.ItemListed) (bool, error) {
	opts := append(tokenOpts(l.NftAddress, l.TokenId), record.WithAfter(&l.Meta))
	for _, table := range []domain.Table{domain.TableItemBoughts, domain.TableItemCanceleds, domain.TableAuctionEndeds} {
		n, err := im.records.Count(c, table, opts...)
		if err != nil {
			c.WithFields(log.Fields{
				"err":   err,
				"table": table,
			}).Error("records.Count failed")
			return false, err
		}
		if n > 0 {
			return true, nil
		}
	}
	return false, nil
}

// highestBid returns the largest bid placed after the listing and still standing.
// A withdrawal cancels one earlier bid of the same bidder and amount.
func (im *impl) highestBid(c ctx.Ctx, l *marketplace.ItemListed) (*big.Int, domain.Address, error) {
	opts := append(tokenOpts(l.NftAddress, l.TokenId), record.WithAfter(&l.Meta), record.WithPagination(0, maxPage))
	bids := []marketplace.BidPlaced{}
	if err := im.records.FindAll(c, domain.TableBidPlaceds, &bids, opts...); err != nil {
		c.WithField("err", err).Error("records.FindAll bids failed")
		return nil, "", err
	}
	withdrawals := []marketplace.BidWithdrawn{}
	if err := im.records.FindAll(c, domain.TableBidWithdrawns, &withdrawals, opts...); err != nil {
		c.WithField("err", err).Error("records.FindAll withdrawals failed")
		return nil, "", err
	}
	sort.Slice(bids, func(i, j int) bool { return bids[i].Meta.Before(&bids[j].Meta) })
	sort.Slice(withdrawals, func(i, j int) bool { return withdrawals[i].Meta.Before(&withdrawals[j].Meta) })

	cancelled := make([]bool, len(bids))
	for j := range withdrawals {
		w := &withdrawals[j]
		// latest matching bid before the withdrawal
		for i := len(bids) - 1; i >= 0; i-- {
			b := &bids[i]
			if cancelled[i] || !b.Meta.Before(&w.Meta) {
				continue
			}
			if b.Bidder.ToLower() == w.Bidder.ToLower() && sameAmount(b.Amount, w.Amount) {
				cancelled[i] = true
				break
			}
		}
	}

	best := big.NewInt(0)
	var bidder domain.Address
	for i := range bids {
		if cancelled[i] {
			continue
		}
		amount, ok := new(big.Int).SetString(bids[i].Amount, 10)
		if !ok {
			continue
		}
		if amount.Cmp(best) > 0 {
			best = amount
			bidder = bids[i].Bidder
		}
	}
	return best, bidder, nil
}

func sameAmount(a, b string) bool {
	x, okX := new(big.Int).SetString(a, 10)
	y, okY := new(big.Int).SetString(b, 10)
	if !okX || !okY {
		return a == b
	}
	return x.Cmp(y) == 0
}

func (im *impl) toListing(c ctx.Ctx, l *marketplace.ItemListed) (*marketplace.Listing, error) {
	closed, err := im.isClosed(c, l)
	if err != nil {
		return nil, err
	}
	bid, bidder, err := im.highestBid(c, l)
	if err != nil {
		return nil, err
	}
	return &marketplace.Listing{
		ItemListed:    *l,
		Active:        !closed,
		HighestBid:    bid.String(),
		HighestBidder: bidder,
	}, nil
}

func (im *impl) GetListing(c ctx.Ctx, nftAddress domain.Address, tokenId domain.TokenId) (*marketplace.Listing, error) {
	l := &marketplace.ItemListed{}
	if err := im.records.FindOne(c, domain.TableItemListeds, l, tokenOpts(nftAddress, tokenId)...); err != nil {
		return nil, err
	}
	return im.toListing(c, l)
}

func (im *impl) GetActiveListings(c ctx.Ctx, first, skip int32) ([]marketplace.Listing, error) {
	if first <= 0 {
		return []marketplace.Listing{}, nil
	}
	res := []marketplace.Listing{}
	seen := map[string]bool{}
	skipped := int32(0)
	for page := int32(0); page < activeScanPages; page++ {
		listed := []marketplace.ItemListed{}
		if err := im.records.FindAll(c, domain.TableItemListeds, &listed, record.WithPagination(page*maxPage, maxPage)); err != nil {
			c.WithField("err", err).Error("records.FindAll failed")
			return nil, err
		}
		for i := range listed {
			l := &listed[i]
			key := string(l.NftAddress) + "/" + string(l.TokenId)
			// newest first, older listings of a token are superseded
			if seen[key] {
				continue
			}
			seen[key] = true
			listing, err := im.toListing(c, l)
			if err != nil {
				return nil, err
			}
			if !listing.Active {
				continue
			}
			if skipped < skip {
				skipped++
				continue
			}
			res = append(res, *listing)
			if int32(len(res)) >= first {
				return res, nil
			}
		}
		if len(listed) < maxPage {
			break
		}
	}
	return res, nil
}

func (im *impl) GetBids(c ctx.Ctx, nftAddress domain.Address, tokenId domain.TokenId) ([]marketplace.BidPlaced, error) {
	res := []marketplace.BidPlaced{}
	opts := append(tokenOpts(nftAddress, tokenId), record.WithPagination(0, maxPage))
	if err := im.records.FindAll(c, domain.TableBidPlaceds, &res, opts...); err != nil {
		c.WithField("err", err).Error("records.FindAll failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) GetSales(c ctx.Ctx, nftAddress domain.Address, tokenId domain.TokenId) ([]marketplace.Sale, error) {
	opts := append(tokenOpts(nftAddress, tokenId), record.WithPagination(0, maxPage))
	bought := []marketplace.ItemBought{}
	if err := im.records.FindAll(c, domain.TableItemBoughts, &bought, opts...); err != nil {
		c.WithField("err", err).Error("records.FindAll failed")
		return nil, err
	}
	ended := []marketplace.AuctionEnded{}
	if err := im.records.FindAll(c, domain.TableAuctionEndeds, &ended, opts...); err != nil {
		c.WithField("err", err).Error("records.FindAll failed")
		return nil, err
	}

	type sale struct {
		meta record.Meta
		marketplace.Sale
	}
	sales := make([]sale, 0, len(bought)+len(ended))
	for _, b := range bought {
		sales = append(sales, sale{b.Meta, marketplace.Sale{
			EventName:  marketplace.EventItemBought,
			Buyer:      b.Buyer,
			Seller:     b.Seller,
			NftAddress: b.NftAddress,
			TokenId:    b.TokenId,
			Price:      b.Price,
			Timestamp:  b.Timestamp,
			TxHash:     b.TransactionHash,
		}})
	}
	for _, e := range ended {
		sales = append(sales, sale{e.Meta, marketplace.Sale{
			EventName:  marketplace.EventAuctionEnded,
			Buyer:      e.Winner,
			Seller:     e.Seller,
			NftAddress: e.NftAddress,
			TokenId:    e.TokenId,
			Price:      e.Amount,
			Timestamp:  e.Timestamp,
			TxHash:     e.TransactionHash,
		}})
	}
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[j].meta.Before(&sales[i].meta)
	})

	res := make([]marketplace.Sale, len(sales))
	for i, s := range sales {
		res[i] = s.Sale
	}
	return res, nil
}

func (im *impl) GetEvents(c ctx.Ctx, event string, opts ...record.FindOptions) (interface{}, error) {
	kind, err := marketplace.Kinds.Get(event)
	if err != nil {
		return nil, err
	}
	out := kind.NewSlice()
	if err := im.records.FindAll(c, kind.Table, out, opts...); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"event": event,
		}).Error("records.FindAll failed")
		return nil, err
	}
	return out, nil
}
