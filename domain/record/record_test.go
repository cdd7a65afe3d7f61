package record

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	"github.com/andy-marketplace/goapi/domain"
)

func TestMakeId(t *testing.T) {
	req := require.New(t)
	txHash := common.HexToHash("0x5ad1a1e7c4a05f1d4f2b0a5a0c2f2fd0b5d1e9c2c88b2a1f4a7b3e6d0c9f8e7d")

	req.Equal("0x5ad1a1e7c4a05f1d4f2b0a5a0c2f2fd0b5d1e9c2c88b2a1f4a7b3e6d0c9f8e7d01000000", MakeId(txHash, 1))
	req.Equal("0x5ad1a1e7c4a05f1d4f2b0a5a0c2f2fd0b5d1e9c2c88b2a1f4a7b3e6d0c9f8e7d00010000", MakeId(txHash, 256))
	req.NotEqual(MakeId(txHash, 1), MakeId(txHash, 2))
}

func TestNewMeta(t *testing.T) {
	req := require.New(t)
	l := &types.Log{
		Address:     common.HexToAddress("0xAbCdEf0123456789aBcDeF0123456789AbCdEf01"),
		BlockNumber: 123,
		TxHash:      common.HexToHash("0x01"),
		Index:       7,
	}
	m := NewMeta(domain.ChainIdSepolia, l, time.Unix(1700000000, 0))

	req.Equal(MakeId(l.TxHash, 7), m.Id)
	req.Equal(domain.Address("0xabcdef0123456789abcdef0123456789abcdef01"), m.Contract)
	req.Equal(domain.BlockNumber(123), m.BlockNumber)
	req.Equal(int64(1700000000), m.BlockTimestamp)
	req.Equal(domain.TxHash("0x0000000000000000000000000000000000000000000000000000000000000001"), m.TransactionHash)
	req.Equal(uint(7), m.LogIndex)
}

func TestMetaBefore(t *testing.T) {
	req := require.New(t)
	a := &Meta{BlockNumber: 10, LogIndex: 5}
	b := &Meta{BlockNumber: 10, LogIndex: 6}
	c := &Meta{BlockNumber: 11, LogIndex: 0}
	req.True(a.Before(b))
	req.True(b.Before(c))
	req.False(c.Before(a))
	req.False(a.Before(a))
}

func TestValueRendering(t *testing.T) {
	req := require.New(t)
	big1e18, _ := new(big.Int).SetString("1000000000000000000", 10)
	req.Equal("1000000000000000000", Uint(big1e18))
	req.Equal("0", Uint(nil))
	req.Equal([]string{"1", "2"}, Uints([]*big.Int{big.NewInt(1), big.NewInt(2)}))

	var cat [32]byte
	copy(cat[:], "Art")
	req.Equal("0x4172740000000000000000000000000000000000000000000000000000000000", Bytes32(cat))
}

func TestKinds(t *testing.T) {
	req := require.New(t)
	ks := NewKinds(Kind{Name: "Transfer", Table: domain.TableTransfers})
	k, err := ks.Get("Transfer")
	req.NoError(err)
	req.Equal(domain.TableTransfers, k.Table)
	_, err = ks.Get("Nope")
	req.ErrorIs(err, domain.ErrUnknownEvent)
}

func TestFindOptions(t *testing.T) {
	req := require.New(t)
	opts, err := GetFindOptions(
		WithNftAddress("0xABC"),
		WithTokenId("42"),
		WithPagination(10, 20),
	)
	req.NoError(err)
	req.Equal(domain.Address("0xabc"), *opts.NftAddress)
	req.Equal(domain.TokenId("42"), *opts.TokenId)
	req.Equal(int32(10), *opts.Skip)
	req.Equal(int32(20), *opts.First)

	_, err = GetFindOptions(WithTokenId("-1"))
	req.Error(err)
	_, err = GetFindOptions(WithPagination(-1, 10))
	req.ErrorIs(err, domain.ErrBadParamInput)
}
