package domain

import (
	"github.com/andy-marketplace/goapi/base/ctx"
)

const DefaultTag = "default"

// TrackerState is the indexing checkpoint of one contract
type TrackerState struct {
	ChainId               ChainId `bson:"chainId"`
	ContractAddress       Address `bson:"contractAddress"`
	Tag                   string  `bson:"tag"`
	Version               uint64  `bson:"version"`
	LastBlockProcessed    uint64  `bson:"lastBlockProcessed"`
	LastLogIndexProcessed int64   `bson:"lastLogIndexProcessed"`
}

func (s *TrackerState) ToId() *TrackerStateId {
	return &TrackerStateId{
		ChainId:         s.ChainId,
		ContractAddress: s.ContractAddress,
		Tag:             s.Tag,
	}
}

// IsProcessed reports whether the log at (blk, logIndex) is at or before the checkpoint
func (s *TrackerState) IsProcessed(blk uint64, logIndex uint) bool {
	if blk != s.LastBlockProcessed {
		return blk < s.LastBlockProcessed
	}
	return int64(logIndex) <= s.LastLogIndexProcessed
}

type TrackerStateId struct {
	ChainId         ChainId `bson:"chainId"`
	ContractAddress Address `bson:"contractAddress"`
	Tag             string  `bson:"tag"`
}

type TrackerStateRepo interface {
	Get(ctx.Ctx, *TrackerStateId) (*TrackerState, error)
	FindAll(ctx.Ctx, ChainId) ([]*TrackerState, error)
	Update(ctx.Ctx, *TrackerState) error
	Store(ctx.Ctx, *TrackerState) error
}

type TrackerStateUseCase interface {
	Get(ctx.Ctx, *TrackerStateId) (*TrackerState, error)
	FindAll(ctx.Ctx, ChainId) ([]*TrackerState, error)
	Update(ctx.Ctx, *TrackerState) error
	Store(ctx.Ctx, *TrackerState) error
	// Rewind moves the checkpoint back so blocks after blk are scanned again
	Rewind(ctx.Ctx, *TrackerStateId, uint64) error
}
