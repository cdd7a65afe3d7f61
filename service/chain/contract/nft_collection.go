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

type NFTCollectionContract interface {
	Name(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address) (string, error)
	TokenURI(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, tokenId *big.Int) (string, error)
	OwnerOf(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, tokenId *big.Int) (common.Address, error)
	GetApproved(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, tokenId *big.Int) (common.Address, error)
	IsApprovedForAll(ctx bCtx.Ctx, chainId domain.ChainId, addr, owner, operator common.Address) (bool, error)
	RoyaltyInfo(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, tokenId, salePrice *big.Int) (common.Address, *big.Int, error)
}

type NFTCollection struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewNFTCollection(chainService chain.Client) *NFTCollection {
	return &NFTCollection{
		chainService: chainService,
		abi:          baseabi.NFTCollectionABI,
	}
}

func (n *NFTCollection) Name(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address) (string, error) {
	unpacked, err := n.chainService.Call(ctx, chainId, addr, nil, n.abi, "name")
	if err != nil {
		return "", err
	}
	return unpacked[0].(string), nil
}

func (n *NFTCollection) TokenURI(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, tokenId *big.Int) (string, error) {
	unpacked, err := n.chainService.Call(ctx, chainId, addr, nil, n.abi, "tokenURI", tokenId)
	if err != nil {
		return "", err
	}
	return unpacked[0].(string), nil
}

func (n *NFTCollection) OwnerOf(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, tokenId *big.Int) (common.Address, error) {
	unpacked, err := n.chainService.Call(ctx, chainId, addr, nil, n.abi, "ownerOf", tokenId)
	if err != nil {
		return common.Address{}, err
	}
	return unpacked[0].(common.Address), nil
}

func (n *NFTCollection) GetApproved(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, tokenId *big.Int) (common.Address, error) {
	unpacked, err := n.chainService.Call(ctx, chainId, addr, nil, n.abi, "getApproved", tokenId)
	if err != nil {
		return common.Address{}, err
	}
	return unpacked[0].(common.Address), nil
}

func (n *NFTCollection) IsApprovedForAll(ctx bCtx.Ctx, chainId domain.ChainId, addr, owner, operator common.Address) (bool, error) {
	unpacked, err := n.chainService.Call(ctx, chainId, addr, nil, n.abi, "isApprovedForAll", owner, operator)
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (n *NFTCollection) RoyaltyInfo(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, tokenId, salePrice *big.Int) (common.Address, *big.Int, error) {
	unpacked, err := n.chainService.Call(ctx, chainId, addr, nil, n.abi, "royaltyInfo", tokenId, salePrice)
	if err != nil {
		return common.Address{}, nil, err
	}
	return unpacked[0].(common.Address), unpacked[1].(*big.Int), nil
}
