package domain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

type SortDir int8

const (
	SortDirAsc  SortDir = 1
	SortDirDesc SortDir = -1
)

type ChainId int32

const (
	ChainIdMainnet ChainId = 1
	ChainIdSepolia ChainId = 11155111
	ChainIdAnvil   ChainId = 31337
)

var chainNames = map[ChainId]string{
	ChainIdMainnet: "ethereum",
	ChainIdSepolia: "sepolia",
	ChainIdAnvil:   "anvil",
}

// Name returns the network name used in config keys and explorer links
func (c ChainId) Name() string {
	if name, ok := chainNames[c]; ok {
		return name
	}
	return "unknown"
}

// Address is a hex encoded account, stored lowercase
type Address string

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) ToCommon() common.Address {
	return common.HexToAddress(string(a))
}

func AddressFrom(a common.Address) Address {
	return Address(strings.ToLower(a.Hex()))
}

// TokenId is the base-10 representation of a uint256 token id
type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToBigInt() (*big.Int, error) {
	id, ok := new(big.Int).SetString(string(i), 10)
	if !ok || id.Sign() < 0 {
		return nil, ErrInvalidNumberFormat
	}
	return id, nil
}

func TokenIdFrom(i *big.Int) TokenId {
	return TokenId(i.String())
}

type BlockNumber uint64

type TxHash string

type BlockHash string

// ToBigInt parses base-10 strings
func ToBigInt(nums []string) ([]*big.Int, error) {
	bns := make([]*big.Int, 0, len(nums))
	for _, n := range nums {
		bn, ok := new(big.Int).SetString(n, 10)
		if !ok {
			return nil, ErrInvalidNumberFormat
		}
		bns = append(bns, bn)
	}
	return bns, nil
}
