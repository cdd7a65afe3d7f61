package chain

import (
	"fmt"
	"time"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
)

// Block caches the timestamp of a block so records can carry it
type Block struct {
	ChainId domain.ChainId     `bson:"chainId" json:"chainId"`
	Hash    domain.BlockHash   `bson:"hash" json:"hash"`
	Number  domain.BlockNumber `bson:"number" json:"number"`
	Time    time.Time          `bson:"time" json:"time"`
}

func (b *Block) ToId() *BlockId {
	return &BlockId{ChainId: b.ChainId, Number: b.Number}
}

type BlockId struct {
	ChainId domain.ChainId     `bson:"chainId"`
	Number  domain.BlockNumber `bson:"number"`
}

func (id *BlockId) String() string {
	return fmt.Sprintf("%d:%d", id.ChainId, id.Number)
}

type BlockRepo interface {
	Upsert(ctx.Ctx, *Block) error
	FindOne(ctx.Ctx, *BlockId) (*Block, error)
}

type BlockUseCase interface {
	Upsert(ctx.Ctx, *Block) error
	// FindOne returns query.ErrNotFound for a block never stored
	FindOne(ctx.Ctx, *BlockId) (*Block, error)
}
