// Package log is a field carrying facade over a sugared zap logger.
package log

import (
	"sort"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Fields map[string]interface{}

// Logger is immutable, With* return a copy
type Logger struct {
	base   *zap.SugaredLogger
	fields []interface{}
}

var root atomic.Pointer[zap.SugaredLogger]

func init() {
	z, _ := zap.NewProduction(zap.AddCallerSkip(1))
	root.Store(z.Sugar())
}

// Setup replaces the process logger, an empty level means info.
// development switches to the console encoder.
func Setup(level string, development bool) error {
	lvl := zapcore.InfoLevel
	if len(level) > 0 {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return err
		}
	}
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	root.Store(z.Sugar())
	return nil
}

func Sync() {
	_ = root.Load().Sync()
}

func Log() Logger {
	return Logger{base: root.Load()}
}

// Named tags every entry with the component name
func Named(name string) Logger {
	return Logger{base: root.Load().Named(name)}
}

func (l Logger) WithField(key string, value interface{}) Logger {
	fields := make([]interface{}, 0, len(l.fields)+2)
	l.fields = append(append(fields, l.fields...), key, value)
	return l
}

// WithFields adds kvs in key order
func (l Logger) WithFields(kvs Fields) Logger {
	keys := make([]string, 0, len(kvs))
	for k := range kvs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fields := make([]interface{}, 0, len(l.fields)+2*len(kvs))
	fields = append(fields, l.fields...)
	for _, k := range keys {
		fields = append(fields, k, kvs[k])
	}
	l.fields = fields
	return l
}

func (l Logger) entry() *zap.SugaredLogger {
	if l.base == nil {
		l.base = root.Load()
	}
	return l.base.With(l.fields...)
}

func (l Logger) Debug(args ...interface{}) { l.entry().Debug(args...) }
func (l Logger) Info(args ...interface{})  { l.entry().Info(args...) }
func (l Logger) Warn(args ...interface{})  { l.entry().Warn(args...) }
func (l Logger) Error(args ...interface{}) { l.entry().Error(args...) }
func (l Logger) Panic(args ...interface{}) { l.entry().Panic(args...) }
