package ethereum

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andy-marketplace/goapi/domain/mocks"
)

func TestThrottledClientBoundsInFlight(t *testing.T) {
	req := require.New(t)
	inner := mocks.NewEthClientRepo(t)

	release := make(chan struct{})
	entered := make(chan struct{}, 2)
	inner.On("HeaderByNumber", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			entered <- struct{}{}
			<-release
		}).
		Return(&types.Header{Number: big.NewInt(1)}, nil).Twice()

	c := NewThrottledClient(inner, 1)

	done := make(chan struct{})
	for i := 0; i < 2; i++ {
		go func() {
			_, err := c.HeaderByNumber(context.Background(), nil)
			req.NoError(err)
			done <- struct{}{}
		}()
	}

	<-entered
	select {
	case <-entered:
		t.Fatal("second request passed the throttle")
	case <-time.After(50 * time.Millisecond):
	}
	req.Equal(1, c.InFlight())

	release <- struct{}{}
	<-entered
	release <- struct{}{}
	<-done
	<-done
	req.Equal(0, c.InFlight())
}

func TestThrottledClientCanceled(t *testing.T) {
	req := require.New(t)
	inner := mocks.NewEthClientRepo(t)
	c := NewThrottledClient(inner, 1)

	// hold the only token
	req.NoError(c.acquire(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.BlockNumber(ctx)
	req.ErrorIs(err, context.Canceled)
	inner.AssertNotCalled(t, "BlockNumber", mock.Anything)

	c.release()
}
