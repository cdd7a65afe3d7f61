package tracker

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	"github.com/andy-marketplace/goapi/base/backoff"
	bCtx "github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/chain"
)

const headerAttempts = 20

// fetchSpan processes the logs of s in order, halving the span whenever the
// node rejects the query. A failing single block is returned as an error.
func (f *EventTracker) fetchSpan(ctx bCtx.Ctx, s blockSpan) error {
	todo := []blockSpan{s}
	for len(todo) > 0 {
		cur := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		logs, err := f.filterLogs(ctx, cur)
		if err != nil {
			if cur.single() {
				ctx.WithFields(log.Fields{"err": err, "span": cur.String()}).Error("failed to get logs within one block")
				return err
			}
			first, second := cur.halves()
			// second below first so first is processed next
			todo = append(todo, second, first)
			ctx.WithFields(log.Fields{
				"err":    err,
				"span":   cur.String(),
				"first":  first.String(),
				"second": second.String(),
			}).Info("splitting block span")
			continue
		}
		if err := f.handleSpan(ctx, cur, logs); err != nil {
			return err
		}
	}
	return nil
}

func (f *EventTracker) filterLogs(ctx bCtx.Ctx, s blockSpan) ([]types.Log, error) {
	defer f.met.BumpTime("filterLogs.time", "tag", f.trackerTag).End()
	tCtx, cancel := bCtx.WithTimeout(ctx, TooManyLogsTimeout)
	defer cancel()
	return f.rpcClient.FilterLogs(tCtx, s.query(f.filter))
}

// handleSpan commits the new logs of s in batches, then moves the checkpoint past s
func (f *EventTracker) handleSpan(ctx bCtx.Ctx, s blockSpan, logs []types.Log) error {
	fresh := f.unprocessed(logs)
	ctx.WithFields(log.Fields{"span": s.String(), "logs": len(logs), "new": len(fresh)}).Info("received logs")

	stamped, err := f.stampBlockTime(ctx, fresh)
	if err != nil {
		return xerrors.Errorf("failed to inject block time: %w", err)
	}
	for len(stamped) > 0 {
		n := BatchSize
		if n > len(stamped) {
			n = len(stamped)
		}
		batch := stamped[:n]
		stamped = stamped[n:]
		last := batch[n-1]
		if err := f.commit(ctx, batch, last.BlockNumber, int64(last.Index)); err != nil {
			return err
		}
	}
	return f.commit(ctx, nil, s.to+1, -1)
}

func (f *EventTracker) stampBlockTime(ctx bCtx.Ctx, logs []types.Log) ([]logWithBlockTime, error) {
	res := make([]logWithBlockTime, len(logs))
	var (
		blk uint64
		t   time.Time
	)
	for i, l := range logs {
		if i == 0 || l.BlockNumber != blk {
			var err error
			if t, err = f.blockTime(ctx, l.BlockNumber); err != nil {
				return nil, err
			}
			blk = l.BlockNumber
		}
		res[i] = logWithBlockTime{Log: l, chainId: f.chainId, blockTime: t}
	}
	return res, nil
}

// blockTime reads the stored block, falling back to the header on chain
func (f *EventTracker) blockTime(ctx bCtx.Ctx, number uint64) (time.Time, error) {
	id := &chain.BlockId{ChainId: f.chainId, Number: domain.BlockNumber(number)}
	if blk, err := f.blockUseCase.FindOne(ctx, id); err == nil {
		return blk.Time, nil
	}

	var h *types.Header
	err := backoff.Retry(ctx, backoff.NewExponential(time.Second, time.Minute), headerAttempts, func() error {
		var err error
		if h, err = f.rpcClient.HeaderByNumber(ctx, new(big.Int).SetUint64(number)); err != nil {
			ctx.WithFields(log.Fields{"err": err, "block": number}).Warn("rpcClient.HeaderByNumber failed")
		}
		return err
	})
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "block": number}).Error("failed to get header")
		return time.Time{}, err
	}

	t := time.Unix(int64(h.Time), 0)
	if err := f.blockUseCase.Upsert(ctx, &chain.Block{
		ChainId: f.chainId,
		Number:  domain.BlockNumber(number),
		Hash:    domain.BlockHash(lowerHex(h.Hash())),
		Time:    t,
	}); err != nil {
		return time.Time{}, err
	}
	return t, nil
}
