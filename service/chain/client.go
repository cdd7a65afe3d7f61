// Package chain packs, sends and unpacks read-only contract calls per chain.
package chain

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/andy-marketplace/goapi/base/ctx"
	bEthereum "github.com/andy-marketplace/goapi/base/ethereum"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/base/metrics"
	"github.com/andy-marketplace/goapi/domain"
)

var (
	ErrUnsupportedChain = errors.New("unsupported chain")
	// ErrReverted wraps eth_call failures caused by the contract itself
	ErrReverted = errors.New("call reverted")
)

func isRevert(err error) bool {
	return strings.Contains(err.Error(), "execution reverted")
}

type Client interface {
	// Call invokes method at addr, blk nil meaning latest
	Call(c ctx.Ctx, chainId domain.ChainId, addr common.Address, blk *big.Int, contract abi.ABI, method string, params ...interface{}) ([]interface{}, error)
}

type ClientCfg struct {
	RpcUrls map[domain.ChainId]string
	// MaxInFlight bounds concurrent requests per endpoint, 0 means 16
	MaxInFlight int
}

type clientImpl struct {
	callers map[domain.ChainId]ethereum.ContractCaller
	met     metrics.Service
}

// NewClient dials every endpoint. Chains that fail to dial are left out and
// the last dial error is returned along with a usable client.
func NewClient(c ctx.Ctx, cfg *ClientCfg) (Client, error) {
	n := cfg.MaxInFlight
	if n <= 0 {
		n = 16
	}
	var lastErr error
	callers := map[domain.ChainId]ethereum.ContractCaller{}
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(c, url)
		if err != nil {
			c.WithFields(log.Fields{"err": err, "chainId": chainId}).Warn("ethclient.DialContext failed")
			lastErr = err
			continue
		}
		callers[chainId] = bEthereum.NewThrottledClient(client, n)
	}
	return NewClientWithCallers(callers), lastErr
}

func NewClientWithCallers(callers map[domain.ChainId]ethereum.ContractCaller) Client {
	return &clientImpl{callers: callers, met: metrics.New("chain")}
}

func (im *clientImpl) Call(c ctx.Ctx, chainId domain.ChainId, addr common.Address, blk *big.Int, contract abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	caller, ok := im.callers[chainId]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChain, chainId)
	}
	c = ctx.WithLogField(ctx.WithLogField(c, "method", method), "to", addr.Hex())

	input, err := contract.Pack(method, params...)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "params": params}).Error("abi.Pack failed")
		return nil, err
	}

	defer im.met.BumpTime("call", "method", method).End()
	output, err := caller.CallContract(c, ethereum.CallMsg{To: &addr, Data: input}, blk)
	if err != nil && isRevert(err) {
		// reverts are expected for burnt or unminted tokens
		c.WithField("err", err).Warn("CallContract reverted")
		return nil, fmt.Errorf("%w: %v", ErrReverted, err)
	} else if err != nil {
		c.WithField("err", err).Error("CallContract failed")
		return nil, err
	}
	res, err := contract.Unpack(method, output)
	if err != nil {
		c.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return res, nil
}
