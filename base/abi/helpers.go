package abi

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"
)

var (
	ErrTopicCount       = fmt.Errorf("unexpected topic count")
	ErrBytes32TooLong   = fmt.Errorf("bytes32 string must be less than 32 bytes")
	ErrBytes32NoNullEnd = fmt.Errorf("invalid bytes32 string - no null terminator")
)

func checkTopics(log *types.Log, indexed int) error {
	if len(log.Topics) != indexed+1 {
		return xerrors.Errorf("want %d got %d: %w", indexed+1, len(log.Topics), ErrTopicCount)
	}
	return nil
}

// unpackLog decodes the non-indexed part of log into out after checking the topic layout
func unpackLog(contract abi.ABI, out interface{}, event string, log *types.Log, indexed int) error {
	if err := checkTopics(log, indexed); err != nil {
		return err
	}
	if err := contract.UnpackIntoInterface(out, event, log.Data); err != nil {
		return xerrors.Errorf("failed to unpack %s: %w", event, err)
	}
	return nil
}

func topicAddress(log *types.Log, idx int) common.Address {
	return common.BytesToAddress(log.Topics[idx].Bytes())
}

func topicBig(log *types.Log, idx int) *big.Int {
	return new(big.Int).SetBytes(log.Topics[idx].Bytes())
}

// FormatBytes32String encodes text as a null padded bytes32, at most 31 bytes long
func FormatBytes32String(text string) ([32]byte, error) {
	var out [32]byte
	if len(text) > 31 {
		return out, ErrBytes32TooLong
	}
	copy(out[:], text)
	return out, nil
}

// ParseBytes32String reads back a string written by FormatBytes32String
func ParseBytes32String(b [32]byte) (string, error) {
	if b[31] != 0 {
		return "", ErrBytes32NoNullEnd
	}
	return string(bytes.TrimRight(b[:], "\x00")), nil
}

// Bytes32StringOrHex falls back to the hex form for values not written as strings
func Bytes32StringOrHex(b [32]byte) string {
	s, err := ParseBytes32String(b)
	if err != nil {
		return common.Hash(b).Hex()
	}
	return s
}
