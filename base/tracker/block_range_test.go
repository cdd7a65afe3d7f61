package tracker

import (
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/stretchr/testify/require"
)

func TestBlockSpanHalves(t *testing.T) {
	for _, tt := range []struct {
		span, first, second blockSpan
	}{
		{blockSpan{1, 100}, blockSpan{1, 50}, blockSpan{51, 100}},
		{blockSpan{1, 101}, blockSpan{1, 51}, blockSpan{52, 101}},
		{blockSpan{3, 4}, blockSpan{3, 3}, blockSpan{4, 4}},
		{blockSpan{2, 3}, blockSpan{2, 2}, blockSpan{3, 3}},
	} {
		t.Run(tt.span.String(), func(t *testing.T) {
			first, second := tt.span.halves()
			require.Equal(t, tt.first, first)
			require.Equal(t, tt.second, second)
			require.False(t, tt.span.single())
		})
	}
	require.True(t, blockSpan{7, 7}.single())
}

func TestBlockSpanQuery(t *testing.T) {
	req := require.New(t)
	base := ethereum.FilterQuery{}
	q := blockSpan{5, 9}.query(base)
	req.Equal(uint64(5), q.FromBlock.Uint64())
	req.Equal(uint64(9), q.ToBlock.Uint64())
	req.Nil(base.FromBlock)
}

func TestDueBlocks(t *testing.T) {
	req := require.New(t)
	var d dueBlocks
	req.False(d.ready(100))

	d.add(20)
	d.add(15)
	d.add(30)
	req.False(d.ready(14))
	req.True(d.ready(15))

	d.done(25)
	req.False(d.ready(25))
	req.True(d.ready(26))

	d.done(30)
	req.False(d.ready(1000))
}
