package domain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// EthClientRepo is what the trackers and contract reads need from *ethclient.Client
type EthClientRepo interface {
	BlockNumber(context.Context) (uint64, error)
	ethereum.LogFilterer
	ethereum.ContractCaller
	HeaderByNumber(context.Context, *big.Int) (*types.Header, error)
	CodeAt(context.Context, common.Address, *big.Int) ([]byte, error)
}
