package log

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithFieldDoesNotShare(t *testing.T) {
	req := require.New(t)
	parent := Log().WithField("a", 1)
	left := parent.WithField("b", 2)
	right := parent.WithField("c", 3)

	req.Equal([]interface{}{"a", 1}, parent.fields)
	req.Equal([]interface{}{"a", 1, "b", 2}, left.fields)
	req.Equal([]interface{}{"a", 1, "c", 3}, right.fields)
}

func TestWithFieldsSorted(t *testing.T) {
	l := Log().WithFields(Fields{"to": 20, "from": 10, "err": "boom"})
	require.Equal(t, []interface{}{"err", "boom", "from", 10, "to", 20}, l.fields)
}

func TestSetup(t *testing.T) {
	req := require.New(t)
	req.NoError(Setup("debug", true))
	req.NoError(Setup("", false))
	req.Error(Setup("loud", false))

	// zero value loggers fall back to the root logger
	var l Logger
	l.WithField("k", "v").Info("zero value logger")
}
