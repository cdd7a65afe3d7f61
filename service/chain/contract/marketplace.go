package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/andy-marketplace/goapi/base/abi"
	bCtx "github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/service/chain"
)

type MarketplaceContract interface {
	Address(chainId domain.ChainId) (common.Address, error)
	GetListings(ctx bCtx.Ctx, chainId domain.ChainId) ([]baseabi.MarketplaceListing, error)
	GetListing(ctx bCtx.Ctx, chainId domain.ChainId, nftAddress common.Address, tokenId *big.Int) (*baseabi.MarketplaceListing, error)
	GetCategories(ctx bCtx.Ctx, chainId domain.ChainId) ([][32]byte, error)
	MinBidIncrement(ctx bCtx.Ctx, chainId domain.ChainId) (*big.Int, error)
}

type Marketplace struct {
	chainService chain.Client
	abi          ethabi.ABI
	addresses    map[domain.ChainId]domain.Address
}

func NewMarketplace(chainService chain.Client, addresses map[domain.ChainId]domain.Address) *Marketplace {
	return &Marketplace{
		chainService: chainService,
		abi:          baseabi.MarketplaceABI,
		addresses:    addresses,
	}
}

func (m *Marketplace) Address(chainId domain.ChainId) (common.Address, error) {
	addr, ok := m.addresses[chainId]
	if !ok {
		return common.Address{}, chain.ErrUnsupportedChain
	}
	return addr.ToCommon(), nil
}

func (m *Marketplace) call(ctx bCtx.Ctx, chainId domain.ChainId, method string, params ...interface{}) ([]interface{}, error) {
	addr, err := m.Address(chainId)
	if err != nil {
		return nil, err
	}
	return m.chainService.Call(ctx, chainId, addr, nil, m.abi, method, params...)
}

func (m *Marketplace) GetListings(ctx bCtx.Ctx, chainId domain.ChainId) ([]baseabi.MarketplaceListing, error) {
	unpacked, err := m.call(ctx, chainId, "getListings")
	if err != nil {
		return nil, err
	}
	listings := *ethabi.ConvertType(unpacked[0], new([]baseabi.MarketplaceListing)).(*[]baseabi.MarketplaceListing)
	return listings, nil
}

func (m *Marketplace) GetListing(ctx bCtx.Ctx, chainId domain.ChainId, nftAddress common.Address, tokenId *big.Int) (*baseabi.MarketplaceListing, error) {
	unpacked, err := m.call(ctx, chainId, "getListing", nftAddress, tokenId)
	if err != nil {
		return nil, err
	}
	listing := ethabi.ConvertType(unpacked[0], new(baseabi.MarketplaceListing)).(*baseabi.MarketplaceListing)
	return listing, nil
}

func (m *Marketplace) GetCategories(ctx bCtx.Ctx, chainId domain.ChainId) ([][32]byte, error) {
	unpacked, err := m.call(ctx, chainId, "getCategories")
	if err != nil {
		return nil, err
	}
	return unpacked[0].([][32]byte), nil
}

func (m *Marketplace) MinBidIncrement(ctx bCtx.Ctx, chainId domain.ChainId) (*big.Int, error) {
	unpacked, err := m.call(ctx, chainId, "minBidIncrement")
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}
