package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	req := require.New(t)
	req.Equal([]string{"event:ItemListed", "contract:0xabc"}, parseTag([]string{"event", "ItemListed", "contract", "0xabc"}))
	req.Equal([]string{}, parseTag(nil))
	req.Panics(func() { parseTag([]string{"dangling"}) })
}

func TestLogClientFallback(t *testing.T) {
	req := require.New(t)
	met := New("tracker")
	req.NotPanics(func() {
		met.BumpSum("records", 3, "event", "Transfer")
		met.BumpAvg("lag", 12)
		met.BumpTime("processEvents").End()
	})
	_, ok := nextClient().(*LogClient)
	req.True(ok)
}

func TestBadTagsDoNotPanic(t *testing.T) {
	met := New("api")
	require.NotPanics(t, func() {
		met.BumpSum("odd", 1, "only-key")
	})
}
