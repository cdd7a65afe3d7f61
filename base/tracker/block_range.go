package tracker

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
)

// blockSpan is an inclusive range of block numbers
type blockSpan struct {
	from, to uint64
}

func (s blockSpan) single() bool {
	return s.from == s.to
}

// halves splits s at its midpoint, the first half keeps the odd block
func (s blockSpan) halves() (blockSpan, blockSpan) {
	mid := s.from + (s.to-s.from)/2
	return blockSpan{s.from, mid}, blockSpan{mid + 1, s.to}
}

// query bounds base to s
func (s blockSpan) query(base ethereum.FilterQuery) ethereum.FilterQuery {
	base.FromBlock = new(big.Int).SetUint64(s.from)
	base.ToBlock = new(big.Int).SetUint64(s.to)
	return base
}

func (s blockSpan) String() string {
	return fmt.Sprintf("[%d,%d]", s.from, s.to)
}

// dueBlocks remembers which seen log blocks still wait for confirmation
type dueBlocks struct {
	low, high uint64
	any       bool
}

func (d *dueBlocks) add(blk uint64) {
	if !d.any {
		d.low, d.high, d.any = blk, blk, true
		return
	}
	if blk < d.low {
		d.low = blk
	}
	if blk > d.high {
		d.high = blk
	}
}

// ready reports whether a seen block is at or below confirmed
func (d *dueBlocks) ready(confirmed uint64) bool {
	return d.any && d.low <= confirmed
}

// done drops everything up to processed
func (d *dueBlocks) done(processed uint64) {
	if !d.any {
		return
	}
	if d.high <= processed {
		*d = dueBlocks{}
		return
	}
	if d.low <= processed {
		d.low = processed + 1
	}
}
