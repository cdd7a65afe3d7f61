package sink

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain/record"
)

// Line is one JSONL row
type Line struct {
	Event  string        `json:"event"`
	Table  string        `json:"table"`
	Record record.Record `json:"record"`
}

type jsonlSink struct {
	mu sync.Mutex
	w  *bufio.Writer
	c  io.Closer
}

// NewJSONLSink writes one record per line to w. w is closed by Close when it is an io.Closer.
func NewJSONLSink(w io.Writer) record.Sink {
	s := &jsonlSink{w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		s.c = c
	}
	return s
}

// OpenJSONLFile appends to path, creating it when missing
func OpenJSONLFile(path string) (record.Sink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return NewJSONLSink(f), nil
}

func (s *jsonlSink) Put(c ctx.Ctx, records []record.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	enc := json.NewEncoder(s.w)
	for _, r := range records {
		if err := enc.Encode(Line{Event: r.EventName(), Table: r.Table(), Record: r}); err != nil {
			c.WithField("err", err).Error("enc.Encode failed")
			return err
		}
	}
	return s.w.Flush()
}

func (s *jsonlSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.w.Flush(); err != nil {
		return err
	}
	if s.c != nil {
		return s.c.Close()
	}
	return nil
}
