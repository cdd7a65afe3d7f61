package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	bCtx "github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/goroutine"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/base/metrics"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/chain"
)

var errTrackerPanic = errors.New("tracker panicked")

type EventHandler interface {
	GetFilterTopics() [][]common.Hash
	ProcessEvents(bCtx.Ctx, []logWithBlockTime) error
}

// Transactor runs fn inside a database transaction, implemented by query.Mongo
type Transactor interface {
	RunWithTransaction(bCtx.Ctx, func(bCtx.Ctx) error) error
}

const (
	// Version of the checkpoint layout, a stored checkpoint of another version is refused
	Version = 1
	// CaughtUpBlock is how close to the confirmed head catching up stops
	CaughtUpBlock      = 5
	TooManyLogsTimeout = 30 * time.Second
	BatchSize          = 50
	PollInterval       = 10 * time.Second
)

type EventTrackerCfg struct {
	ChainId             domain.ChainId
	Heads               HeadProvider
	Mongo               Transactor
	WsClient            domain.EthClientRepo
	RpcClient           domain.EthClientRepo
	ClientWithArchive   domain.EthClientRepo
	TrackerStateUseCase domain.TrackerStateUseCase
	BlockUseCase        chain.BlockUseCase

	// the zero address tracks every contract and needs SkipMissingBlock
	ContractAddress common.Address
	// StartBlock skips the deploy block search when set
	StartBlock uint64

	EventHandl EventHandler
	ErrorCh    chan<- error
	// SkipMissingBlock starts at the head and never stores a checkpoint
	SkipMissingBlock bool
	TrackerTag       string
	FollowDistance   uint64
	// Polling drops the log subscription for rpc endpoints without websocket support
	Polling bool
}

// EventTracker feeds the logs of one contract to its handler in chain order,
// checkpointing (block, logIndex) in the same transaction as the handler writes.
type EventTracker struct {
	chainId             domain.ChainId
	heads               HeadProvider
	q                   Transactor
	wsClient            domain.EthClientRepo
	rpcClient           domain.EthClientRepo
	clientWithArchive   domain.EthClientRepo
	trackerStateUseCase domain.TrackerStateUseCase
	blockUseCase        chain.BlockUseCase
	contractAddress     common.Address
	startBlock          uint64
	eventHandler        EventHandler
	errorCh             chan<- error
	skipMissingBlock    bool
	filter              ethereum.FilterQuery
	trackerState        *domain.TrackerState
	trackerTag          string
	followDistance      uint64
	polling             bool
	met                 metrics.Service
	stoppedCh           chan interface{}
}

func NewEventTracker(cfg *EventTrackerCfg) (*EventTracker, error) {
	filter := ethereum.FilterQuery{Topics: cfg.EventHandl.GetFilterTopics()}
	if cfg.ContractAddress == (common.Address{}) {
		if !cfg.SkipMissingBlock {
			return nil, errors.New("config error: SkipMissingBlock must be true when tracking all addresses")
		}
	} else {
		filter.Addresses = []common.Address{cfg.ContractAddress}
	}
	return &EventTracker{
		chainId:             cfg.ChainId,
		heads:               cfg.Heads,
		q:                   cfg.Mongo,
		wsClient:            cfg.WsClient,
		rpcClient:           cfg.RpcClient,
		clientWithArchive:   cfg.ClientWithArchive,
		trackerStateUseCase: cfg.TrackerStateUseCase,
		blockUseCase:        cfg.BlockUseCase,
		contractAddress:     cfg.ContractAddress,
		startBlock:          cfg.StartBlock,
		eventHandler:        cfg.EventHandl,
		errorCh:             cfg.ErrorCh,
		skipMissingBlock:    cfg.SkipMissingBlock,
		trackerTag:          cfg.TrackerTag,
		followDistance:      cfg.FollowDistance,
		polling:             cfg.Polling,
		filter:              filter,
		met:                 metrics.New("tracker"),
		stoppedCh:           make(chan interface{}),
	}, nil
}

// Start runs the tracking loop in the background. Loop errors and handler panics are sent to ErrorCh.
func (f *EventTracker) Start(ctx bCtx.Ctx) {
	goroutine.RecoverableGo(
		func() {
			if err := f.run(ctx); err != nil {
				f.errorCh <- err
			}
		},
		goroutine.WithName("tracker:"+f.trackerTag),
		goroutine.WithAfterEnded(func() { close(f.stoppedCh) }),
		goroutine.WithAfterRecovered(func(p interface{}, _ []byte) {
			f.errorCh <- fmt.Errorf("%w: %v", errTrackerPanic, p)
		}),
	)
}

func (f *EventTracker) Wait() {
	<-f.stoppedCh
}

func (f *EventTracker) run(ctx bCtx.Ctx) error {
	ctx = bCtx.WithLogField(bCtx.WithLogField(ctx, "contract", f.contractAddress), "tag", f.trackerTag)
	if err := f.initCheckpoint(ctx); err != nil {
		ctx.WithField("err", err).Error("initCheckpoint failed")
		return err
	}
	if err := f.catchUp(ctx); err != nil {
		// the live loop picks the span up again from the checkpoint
		ctx.WithField("err", err).Error("catchUp failed")
	}

	logs := make(chan types.Log, 1024)
	var subErr <-chan error
	if !f.polling {
		// a subscription takes no block bounds
		sub, err := f.wsClient.SubscribeFilterLogs(ctx, ethereum.FilterQuery{
			Addresses: f.filter.Addresses,
			Topics:    f.filter.Topics,
		}, logs)
		if err != nil {
			ctx.WithField("err", err).Error("client.SubscribeFilterLogs failed")
			return err
		}
		defer sub.Unsubscribe()
		subErr = sub.Err()
		ctx.Info("subscribed")
	}

	// blocks between the checkpoint and the head are due as well
	head, err := f.heads.BlockNumber(ctx)
	if err != nil {
		return err
	}
	f.reportHead(head)
	var due dueBlocks
	due.add(head)

	ticker := time.NewTicker(PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-subErr:
			ctx.WithField("err", err).Error("sub.Err()")
			return err
		case l := <-logs:
			if l.BlockNumber < f.trackerState.LastBlockProcessed {
				ctx.WithFields(log.Fields{
					"logBlock":   l.BlockNumber,
					"checkpoint": f.trackerState.LastBlockProcessed,
				}).Warn("received old log")
				continue
			}
			due.add(l.BlockNumber)
		case <-ticker.C:
			f.tick(ctx, &due)
		}
	}
}

// tick processes the due span up to the confirmed block. A failed span
// leaves the checkpoint and due where they were so the next tick retries it.
func (f *EventTracker) tick(ctx bCtx.Ctx, due *dueBlocks) {
	confirmed, err := f.confirmedBlock(ctx)
	if err != nil {
		ctx.WithField("err", err).Warn("confirmedBlock failed")
		return
	}
	if f.polling {
		// without a subscription every confirmed block is a candidate
		due.add(confirmed)
	}
	from := f.trackerState.LastBlockProcessed
	if !due.ready(confirmed) || confirmed < from {
		return
	}
	if err := f.fetchSpan(ctx, blockSpan{from, confirmed}); err != nil {
		ctx.WithFields(log.Fields{
			"err":        err,
			"from":       from,
			"to":         confirmed,
			"checkpoint": f.trackerState.LastBlockProcessed,
		}).Error("fetchSpan failed, retry on next tick")
		f.met.BumpSum("tracker.fetchSpan.err", 1, "chainId", fmt.Sprint(f.chainId), "tag", f.trackerTag)
		return
	}
	due.done(confirmed)
	ctx.WithFields(log.Fields{
		"from":       from,
		"to":         confirmed,
		"checkpoint": f.trackerState.LastBlockProcessed,
	}).Info("processed block span")
	f.met.BumpAvg("tracker.lastBlock", float64(f.trackerState.LastBlockProcessed), "chainId", fmt.Sprint(f.chainId), "tag", f.trackerTag)
}

// catchUp walks confirmed blocks until the checkpoint is within CaughtUpBlock of them
func (f *EventTracker) catchUp(ctx bCtx.Ctx) error {
	for {
		confirmed, err := f.confirmedBlock(ctx)
		if err != nil {
			return err
		}
		from := f.trackerState.LastBlockProcessed
		if from+CaughtUpBlock >= confirmed {
			return nil
		}
		ctx.WithFields(log.Fields{"from": from, "to": confirmed}).Info("catching up")
		if err := f.fetchSpan(ctx, blockSpan{from, confirmed}); err != nil {
			return err
		}
	}
}

// confirmedBlock is the head minus the follow distance
func (f *EventTracker) confirmedBlock(ctx bCtx.Ctx) (uint64, error) {
	head, err := f.heads.BlockNumber(ctx)
	if err != nil {
		return 0, err
	}
	f.reportHead(head)
	if head < f.followDistance {
		return 0, nil
	}
	return head - f.followDistance, nil
}

func (f *EventTracker) reportHead(head uint64) {
	f.met.BumpAvg("blockchain.lastBlock", float64(head), "chainId", fmt.Sprint(f.chainId))
}
