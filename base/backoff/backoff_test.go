package backoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExponentialCapped(t *testing.T) {
	req := require.New(t)
	b := NewExponential(time.Millisecond, 4*time.Millisecond)

	var got []time.Duration
	for i := 0; i < 4; i++ {
		got = append(got, b.Next())
		req.NoError(b.Wait(context.Background()))
	}
	req.Equal([]time.Duration{time.Millisecond, 2 * time.Millisecond, 4 * time.Millisecond, 4 * time.Millisecond}, got)
	req.Equal(4, b.Waits())

	b.Reset()
	req.Zero(b.Waits())
	req.Equal(time.Millisecond, b.Next())
}

func TestExponentialNoOverflow(t *testing.T) {
	b := NewExponential(time.Hour, 0)
	b.n = 200
	require.Positive(t, b.Next())
}

func TestLinear(t *testing.T) {
	req := require.New(t)
	b := NewLinear(time.Millisecond, 0)
	req.Equal(time.Millisecond, b.Next())
	req.NoError(b.Wait(context.Background()))
	req.Equal(2*time.Millisecond, b.Next())
}

func TestWaitCanceled(t *testing.T) {
	req := require.New(t)
	b := NewExponential(time.Hour, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req.ErrorIs(b.Wait(ctx), context.Canceled)
	req.Zero(b.Waits())
}

func TestRetry(t *testing.T) {
	req := require.New(t)
	errFlaky := errors.New("flaky")

	calls := 0
	err := Retry(context.Background(), NewExponential(time.Millisecond, 0), 5, func() error {
		if calls++; calls < 3 {
			return errFlaky
		}
		return nil
	})
	req.NoError(err)
	req.Equal(3, calls)

	calls = 0
	err = Retry(context.Background(), NewLinear(time.Millisecond, 0), 2, func() error {
		calls++
		return errFlaky
	})
	req.ErrorIs(err, errFlaky)
	req.Equal(2, calls)
}
