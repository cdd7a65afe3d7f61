package tracker

import (
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	bCtx "github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/domain"
)

var errNoCode = errors.New("no contract code at address")

// initCheckpoint loads the stored checkpoint, or starts one at the configured
// or deploy block. Trackers skipping missed blocks start after the head.
func (f *EventTracker) initCheckpoint(ctx bCtx.Ctx) error {
	if f.skipMissingBlock {
		head, err := f.heads.BlockNumber(ctx)
		if err != nil {
			return err
		}
		f.trackerState = f.newCheckpoint(head + 1)
		return nil
	}
	state, err := f.loadCheckpoint(ctx)
	if err != nil {
		return err
	}
	f.trackerState = state
	return nil
}

func (f *EventTracker) newCheckpoint(blk uint64) *domain.TrackerState {
	return &domain.TrackerState{
		ChainId:               f.chainId,
		ContractAddress:       toDomainAddress(f.contractAddress),
		Tag:                   f.trackerTag,
		Version:               Version,
		LastBlockProcessed:    blk,
		LastLogIndexProcessed: -1,
	}
}

func (f *EventTracker) loadCheckpoint(ctx bCtx.Ctx) (*domain.TrackerState, error) {
	fresh := f.newCheckpoint(f.startBlock)
	state, err := f.trackerStateUseCase.Get(ctx, fresh.ToId())
	switch {
	case err == nil && state.Version != Version:
		return nil, fmt.Errorf("cannot migrate tracker state from %d to %d", state.Version, Version)
	case err == nil:
		return state, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	if fresh.LastBlockProcessed == 0 {
		deployed, err := findDeployBlock(ctx, f.clientWithArchive, f.contractAddress)
		if err != nil {
			ctx.WithField("err", err).Error("findDeployBlock failed")
			return nil, err
		}
		ctx.WithField("deployedBlock", deployed).Info("starting at deploy block")
		fresh.LastBlockProcessed = deployed
	}
	if err := f.trackerStateUseCase.Store(ctx, fresh); err != nil {
		ctx.WithField("err", err).Error("trackerStateUseCase.Store failed")
		return nil, err
	}
	return fresh, nil
}

// unprocessed drops removed logs and the ones at or before the checkpoint
func (f *EventTracker) unprocessed(logs []types.Log) []types.Log {
	res := make([]types.Log, 0, len(logs))
	for _, l := range logs {
		if l.Removed || f.trackerState.IsProcessed(l.BlockNumber, l.Index) {
			continue
		}
		res = append(res, l)
	}
	return res
}

// commit hands batch to the handler and moves the checkpoint to (blk, logIndex)
// in one transaction. The in-memory checkpoint only moves when it succeeds.
func (f *EventTracker) commit(ctx bCtx.Ctx, batch []logWithBlockTime, blk uint64, logIndex int64) error {
	next := *f.trackerState
	next.LastBlockProcessed = blk
	next.LastLogIndexProcessed = logIndex

	err := f.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		if len(batch) > 0 {
			if err := f.eventHandler.ProcessEvents(c, batch); err != nil {
				return xerrors.Errorf("failed to process events: %w", err)
			}
		}
		if f.skipMissingBlock {
			return nil
		}
		if err := f.trackerStateUseCase.Update(c, &next); err != nil {
			return xerrors.Errorf("failed to store tracker state: %w", err)
		}
		return nil
	})
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "block": blk, "logIndex": logIndex}).Error("commit failed")
		return err
	}
	f.trackerState = &next
	return nil
}

// findDeployBlock binary searches the first block where addr has code
func findDeployBlock(ctx bCtx.Ctx, c domain.EthClientRepo, addr common.Address) (uint64, error) {
	head, err := c.BlockNumber(ctx)
	if err != nil {
		return 0, err
	}
	var searchErr error
	blk := sort.Search(int(head)+1, func(i int) bool {
		if searchErr != nil {
			return true
		}
		code, err := c.CodeAt(ctx, addr, big.NewInt(int64(i)))
		if err != nil {
			searchErr = err
			return true
		}
		return len(code) > 0
	})
	if searchErr != nil {
		return 0, searchErr
	}
	if uint64(blk) > head {
		return 0, errNoCode
	}
	return uint64(blk), nil
}
