package tracker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/andy-marketplace/goapi/base/backoff"
	bCtx "github.com/andy-marketplace/goapi/base/ctx"
)

// resubscribes in a row before the watcher gives up
const maxResubscribes = 5

// HeadProvider returns the latest known block number
type HeadProvider interface {
	BlockNumber(context.Context) (uint64, error)
}

// HeadSubscriber is implemented by *ethclient.Client over websocket
type HeadSubscriber interface {
	HeadProvider
	SubscribeNewHead(context.Context, chan<- *types.Header) (ethereum.Subscription, error)
}

// HeadWatcher serves the chain head from a newHeads subscription so trackers
// sharing it do not poll the node.
type HeadWatcher struct {
	client HeadSubscriber
	head   atomic.Uint64
	errCh  chan<- error
	done   chan struct{}
}

func NewHeadWatcher(client HeadSubscriber, errCh chan<- error) *HeadWatcher {
	return &HeadWatcher{client: client, errCh: errCh, done: make(chan struct{})}
}

func (w *HeadWatcher) BlockNumber(context.Context) (uint64, error) {
	return w.head.Load(), nil
}

// observe keeps the highest head seen, reorgs never move it back
func (w *HeadWatcher) observe(n uint64) {
	for {
		cur := w.head.Load()
		if n <= cur || w.head.CompareAndSwap(cur, n) {
			return
		}
	}
}

// Start reads the head once, then follows new heads until ctx ends
func (w *HeadWatcher) Start(ctx bCtx.Ctx) error {
	n, err := w.client.BlockNumber(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.BlockNumber failed")
		return err
	}
	w.observe(n)
	go w.watch(ctx)
	return nil
}

func (w *HeadWatcher) Wait() {
	<-w.done
}

func (w *HeadWatcher) watch(ctx bCtx.Ctx) {
	defer close(w.done)
	b := backoff.NewExponential(time.Second, 30*time.Second)
	for {
		err := w.follow(ctx, b)
		if ctx.Err() != nil {
			return
		}
		if b.Waits() >= maxResubscribes {
			w.errCh <- err
			return
		}
		ctx.WithField("err", err).Warn("newHeads subscription dropped")
		if b.Wait(ctx) != nil {
			return
		}
	}
}

func (w *HeadWatcher) follow(ctx bCtx.Ctx, b *backoff.Backoff) error {
	headers := make(chan *types.Header)
	sub, err := w.client.SubscribeNewHead(ctx, headers)
	if err != nil {
		ctx.WithField("err", err).Error("client.SubscribeNewHead failed")
		return err
	}
	defer sub.Unsubscribe()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-sub.Err():
			return err
		case h := <-headers:
			b.Reset()
			w.observe(h.Number.Uint64())
		}
	}
}
