package nftcollection

import (
	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/record"
)

// Royalty fee is expressed in basis points
const (
	DefaultRoyaltyFee = 250
	MaxRoyaltyFee     = 10000
)

type UseCase interface {
	// GetMints lists single mints and expanded batch mints, newest first. An empty to matches all.
	GetMints(c ctx.Ctx, to domain.Address, first, skip int32) ([]TokenMinted, error)
	GetMint(c ctx.Ctx, tokenId domain.TokenId) (*TokenMinted, error)
	GetTransfers(c ctx.Ctx, tokenId domain.TokenId) ([]Transfer, error)
	GetEvents(c ctx.Ctx, event string, opts ...record.FindOptions) (interface{}, error)
}
