package record

import (
	"encoding/binary"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
)

// Meta is carried by every event record. Id is the transaction hash followed by the
// log index as a little-endian int32, hex encoded.
type Meta struct {
	Id              string             `json:"id" bson:"_id"`
	ChainId         domain.ChainId     `json:"chainId" bson:"chainId"`
	Contract        domain.Address     `json:"contract" bson:"contract"`
	BlockNumber     domain.BlockNumber `json:"blockNumber" bson:"blockNumber"`
	BlockTimestamp  int64              `json:"blockTimestamp" bson:"blockTimestamp"`
	TransactionHash domain.TxHash      `json:"transactionHash" bson:"transactionHash"`
	LogIndex        uint               `json:"logIndex" bson:"logIndex"`
}

// Record is an immutable event record
type Record interface {
	GetMeta() *Meta
	Table() domain.Table
	EventName() string
}

func (m *Meta) GetMeta() *Meta {
	return m
}

// Before orders records by chain position
func (m *Meta) Before(o *Meta) bool {
	if m.BlockNumber != o.BlockNumber {
		return m.BlockNumber < o.BlockNumber
	}
	return m.LogIndex < o.LogIndex
}

func MakeId(txHash common.Hash, logIndex uint) string {
	b := make([]byte, common.HashLength+4)
	copy(b, txHash.Bytes())
	binary.LittleEndian.PutUint32(b[common.HashLength:], uint32(int32(logIndex)))
	return hexutil.Encode(b)
}

func NewMeta(chainId domain.ChainId, l *types.Log, blockTime time.Time) Meta {
	return Meta{
		Id:              MakeId(l.TxHash, l.Index),
		ChainId:         chainId,
		Contract:        domain.AddressFrom(l.Address),
		BlockNumber:     domain.BlockNumber(l.BlockNumber),
		BlockTimestamp:  blockTime.Unix(),
		TransactionHash: domain.TxHash(strings.ToLower(l.TxHash.Hex())),
		LogIndex:        l.Index,
	}
}

// Uint renders a uint256 event value as a base-10 string
func Uint(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func Uints(vs []*big.Int) []string {
	res := make([]string, len(vs))
	for i, v := range vs {
		res[i] = Uint(v)
	}
	return res
}

// Bytes32 renders a fixed 32 byte value as 0x hex
func Bytes32(v [32]byte) string {
	return hexutil.Encode(v[:])
}

// Kind describes one event record type for generic reads
type Kind struct {
	Name  string
	Table domain.Table
	// NewSlice returns a pointer to an empty slice of the record type
	NewSlice func() interface{}
}

type Kinds map[string]Kind

func NewKinds(kinds ...Kind) Kinds {
	res := Kinds{}
	for _, k := range kinds {
		res[k.Name] = k
	}
	return res
}

func (ks Kinds) Get(name string) (Kind, error) {
	k, ok := ks[name]
	if !ok {
		return Kind{}, domain.ErrUnknownEvent
	}
	return k, nil
}

type Repo interface {
	// Store inserts r; storing an id that already exists is a no-op
	Store(c ctx.Ctx, r Record) error
	FindAll(c ctx.Ctx, table domain.Table, out interface{}, opts ...FindOptions) error
	FindOne(c ctx.Ctx, table domain.Table, out interface{}, opts ...FindOptions) error
	Count(c ctx.Ctx, table domain.Table, opts ...FindOptions) (int, error)
}

type UseCase interface {
	Store(c ctx.Ctx, r Record) error
	FindAll(c ctx.Ctx, table domain.Table, out interface{}, opts ...FindOptions) error
	FindOne(c ctx.Ctx, table domain.Table, out interface{}, opts ...FindOptions) error
	Count(c ctx.Ctx, table domain.Table, opts ...FindOptions) (int, error)
}

// Sink receives copies of records outside mongo, e.g. a JSONL export or a Postgres mirror
type Sink interface {
	Put(c ctx.Ctx, records []Record) error
	Close() error
}
