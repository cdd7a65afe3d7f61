package tracker

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/record"
)

// lowerHex renders addresses and hashes the way they are stored
func lowerHex(h interface{ Hex() string }) string {
	return strings.ToLower(h.Hex())
}

func toDomainAddress(a common.Address) domain.Address {
	return domain.Address(lowerHex(a))
}

type logWithBlockTime struct {
	types.Log
	chainId   domain.ChainId
	blockTime time.Time
}

func (l *logWithBlockTime) meta() record.Meta {
	return record.NewMeta(l.chainId, &l.Log, l.blockTime)
}
