package tracker

import (
	"sort"

	"github.com/ethereum/go-ethereum/common"

	bCtx "github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/domain/record"
)

type recordDecoder func(l *logWithBlockTime) (record.Record, error)

type RecordEventHandlerCfg struct {
	RecordUseCase record.UseCase
	// Sinks receive every stored batch, e.g. a postgres mirror
	Sinks []record.Sink
}

// recordEventHandler stores one immutable record per decoded log
type recordEventHandler struct {
	name     string
	decoders map[common.Hash]recordDecoder
	recordUC record.UseCase
	sinks    []record.Sink
}

func (h *recordEventHandler) GetFilterTopics() [][]common.Hash {
	topics := make([]common.Hash, 0, len(h.decoders))
	for topic := range h.decoders {
		topics = append(topics, topic)
	}
	sort.Slice(topics, func(i, j int) bool {
		return topics[i].Big().Cmp(topics[j].Big()) < 0
	})
	return [][]common.Hash{topics}
}

func (h *recordEventHandler) ProcessEvents(ctx bCtx.Ctx, logs []logWithBlockTime) error {
	records := make([]record.Record, 0, len(logs))
	for i := range logs {
		l := &logs[i]
		if len(l.Topics) == 0 {
			continue
		}
		decode, ok := h.decoders[l.Topics[0]]
		if !ok {
			ctx.WithFields(log.Fields{
				"handler": h.name,
				"topic":   l.Topics[0],
			}).Warn("unknown topic, skipping")
			continue
		}
		r, err := decode(l)
		if err != nil {
			ctx.WithFields(log.Fields{
				"handler": h.name,
				"txHash":  l.TxHash,
				"index":   l.Index,
				"err":     err,
			}).Error("failed to decode log")
			return err
		}
		if err := h.recordUC.Store(ctx, r); err != nil {
			ctx.WithFields(log.Fields{
				"event": r.EventName(),
				"id":    r.GetMeta().Id,
				"err":   err,
			}).Error("recordUC.Store failed")
			return err
		}
		records = append(records, r)
	}

	if len(records) == 0 {
		return nil
	}
	for _, sink := range h.sinks {
		if err := sink.Put(ctx, records); err != nil {
			ctx.WithField("err", err).Error("sink.Put failed")
			return err
		}
	}
	return nil
}
