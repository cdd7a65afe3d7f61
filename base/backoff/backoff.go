// Package backoff spaces out retries of rpc and database calls.
package backoff

import (
	"context"
	"math"
	"time"
)

// Backoff yields growing waits until Reset. It is not safe for concurrent use.
type Backoff struct {
	step  func(n int, start time.Duration) time.Duration
	start time.Duration
	limit time.Duration
	n     int
}

// NewExponential waits start, 2*start, 4*start... capped at limit, 0 meaning no cap
func NewExponential(start, limit time.Duration) *Backoff {
	return &Backoff{
		step: func(n int, start time.Duration) time.Duration {
			d := start
			for i := 0; i < n && d <= math.MaxInt64/2; i++ {
				d *= 2
			}
			return d
		},
		start: start,
		limit: limit,
	}
}

// NewLinear waits start, 2*start, 3*start... capped at limit
func NewLinear(start, limit time.Duration) *Backoff {
	return &Backoff{
		step:  func(n int, start time.Duration) time.Duration { return time.Duration(n+1) * start },
		start: start,
		limit: limit,
	}
}

// Next is the duration the following Wait sleeps
func (b *Backoff) Next() time.Duration {
	d := b.step(b.n, b.start)
	if b.limit > 0 && d > b.limit {
		return b.limit
	}
	return d
}

// Waits is the number of completed waits since the last Reset
func (b *Backoff) Waits() int {
	return b.n
}

func (b *Backoff) Reset() {
	b.n = 0
}

// Wait sleeps Next, returning early with the context error
func (b *Backoff) Wait(ctx context.Context) error {
	t := time.NewTimer(b.Next())
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		b.n++
		return nil
	}
}

// Retry calls fn at most attempts times and returns its last error
func Retry(ctx context.Context, b *Backoff, attempts int, fn func() error) error {
	err := fn()
	for i := 1; i < attempts && err != nil; i++ {
		if werr := b.Wait(ctx); werr != nil {
			return werr
		}
		err = fn()
	}
	return err
}
