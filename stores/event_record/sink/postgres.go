package sink

import (
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/domain/record"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS event_records (
	id              TEXT PRIMARY KEY,
	event           TEXT NOT NULL,
	chain_id        INTEGER NOT NULL,
	contract        TEXT NOT NULL,
	block_number    BIGINT NOT NULL,
	log_index       INTEGER NOT NULL,
	tx_hash         TEXT NOT NULL,
	block_timestamp TIMESTAMPTZ NOT NULL,
	payload         JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS event_records_event_block ON event_records (event, block_number, log_index);
`

const insertSQL = `
INSERT INTO event_records (
	id, event, chain_id, contract, block_number, log_index, tx_hash, block_timestamp, payload
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO NOTHING
`

// batchSender is the part of pgxpool.Pool the sink uses
type batchSender interface {
	SendBatch(c ctx.Ctx, b *pgx.Batch) pgx.BatchResults
}

type poolSender struct {
	pool *pgxpool.Pool
}

func (p poolSender) SendBatch(c ctx.Ctx, b *pgx.Batch) pgx.BatchResults {
	return p.pool.SendBatch(c, b)
}

type postgresSink struct {
	sender batchSender
	close  func()
}

// NewPostgresSink mirrors records into the event_records table, creating it when missing
func NewPostgresSink(c ctx.Ctx, dsn string) (record.Sink, error) {
	pool, err := pgxpool.New(c, dsn)
	if err != nil {
		return nil, err
	}
	if _, err := pool.Exec(c, createTableSQL); err != nil {
		c.WithField("err", err).Error("create event_records failed")
		pool.Close()
		return nil, err
	}
	return &postgresSink{sender: poolSender{pool}, close: pool.Close}, nil
}

func toRow(r record.Record) ([]interface{}, error) {
	payload, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	m := r.GetMeta()
	return []interface{}{
		m.Id,
		r.EventName(),
		int32(m.ChainId),
		string(m.Contract),
		int64(m.BlockNumber),
		int32(m.LogIndex),
		string(m.TransactionHash),
		time.Unix(m.BlockTimestamp, 0).UTC(),
		payload,
	}, nil
}

func (s *postgresSink) Put(c ctx.Ctx, records []record.Record) error {
	if len(records) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, r := range records {
		row, err := toRow(r)
		if err != nil {
			c.WithField("err", err).Error("toRow failed")
			return err
		}
		batch.Queue(insertSQL, row...)
	}

	br := s.sender.SendBatch(c, batch)
	defer br.Close()

	for _, r := range records {
		if _, err := br.Exec(); err != nil {
			c.WithFields(log.Fields{
				"err": err,
				"id":  r.GetMeta().Id,
			}).Error("br.Exec failed")
			return err
		}
	}
	return nil
}

func (s *postgresSink) Close() error {
	if s.close != nil {
		s.close()
	}
	return nil
}
