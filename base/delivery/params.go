package delivery

import (
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/record"
)

const defaultFirst = 100

// PageParams follows graphql first/skip
type PageParams struct {
	First int32 `query:"first"`
	Skip  int32 `query:"skip"`
}

func NewPageParams() *PageParams {
	return &PageParams{First: defaultFirst}
}

// EventParams filters a raw event feed
type EventParams struct {
	PageParams
	ChainId    *domain.ChainId     `query:"chainId"`
	Contract   *domain.Address     `query:"contract"`
	NftAddress *domain.Address     `query:"nftAddress"`
	TokenId    *domain.TokenId     `query:"tokenId"`
	Seller     *domain.Address     `query:"seller"`
	Bidder     *domain.Address     `query:"bidder"`
	Account    *domain.Address     `query:"account"`
	FromBlock  *domain.BlockNumber `query:"fromBlock"`
}

func NewEventParams() *EventParams {
	return &EventParams{PageParams: *NewPageParams()}
}

// Options turns the params into record find options
func (p *EventParams) Options() []record.FindOptions {
	opts := []record.FindOptions{record.WithPagination(p.Skip, p.First)}
	if p.ChainId != nil {
		opts = append(opts, record.WithChainId(*p.ChainId))
	}
	if p.Contract != nil {
		opts = append(opts, record.WithContract(*p.Contract))
	}
	if p.NftAddress != nil {
		opts = append(opts, record.WithNftAddress(*p.NftAddress))
	}
	if p.TokenId != nil {
		opts = append(opts, record.WithTokenId(*p.TokenId))
	}
	if p.Seller != nil {
		opts = append(opts, record.WithSeller(*p.Seller))
	}
	if p.Bidder != nil {
		opts = append(opts, record.WithBidder(*p.Bidder))
	}
	if p.Account != nil {
		opts = append(opts, record.WithAccount(*p.Account))
	}
	if p.FromBlock != nil {
		opts = append(opts, record.WithFromBlock(*p.FromBlock))
	}
	return opts
}
