// Package ctx pairs a context.Context with the logger of the request or job it belongs to.
package ctx

import (
	"context"
	"time"

	"github.com/andy-marketplace/goapi/base/log"
)

type Ctx struct {
	context.Context
	log.Logger
}

func Background() Ctx {
	return From(context.Background())
}

// From wraps a plain context, e.g. the one handed over by cobra or an http.Request
func From(parent context.Context) Ctx {
	if c, ok := parent.(Ctx); ok {
		return c
	}
	return Ctx{Context: parent, Logger: log.Log()}
}

// WithValue stores val under key and logs it as a field from now on
func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent.Context, key, val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

func WithValues(parent Ctx, kvs log.Fields) Ctx {
	for k, v := range kvs {
		parent = WithValue(parent, k, v)
	}
	return parent
}

// WithLogField only touches the logger
func WithLogField(parent Ctx, key string, val interface{}) Ctx {
	parent.Logger = parent.Logger.WithField(key, val)
	return parent
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	c, cancel := context.WithCancel(parent.Context)
	parent.Context = c
	return parent, cancel
}

func WithTimeout(parent Ctx, d time.Duration) (Ctx, context.CancelFunc) {
	c, cancel := context.WithTimeout(parent.Context, d)
	parent.Context = c
	return parent, cancel
}
