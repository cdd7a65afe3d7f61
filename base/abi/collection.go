package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var NFTCollectionABI abi.ABI

var nftCollectionABIJson = `[{"type":"event","anonymous":false,"name":"Approval","inputs":[{"type":"address","name":"owner","indexed":true},{"type":"address","name":"approved","indexed":true},{"type":"uint256","name":"tokenId","indexed":true}]},{"type":"event","anonymous":false,"name":"ApprovalForAll","inputs":[{"type":"address","name":"owner","indexed":true},{"type":"address","name":"operator","indexed":true},{"type":"bool","name":"approved","indexed":false}]},{"type":"event","anonymous":false,"name":"BaseURILocked","inputs":[]},{"type":"event","anonymous":false,"name":"BaseURIUpdated","inputs":[{"type":"string","name":"newBaseURI","indexed":false}]},{"type":"event","anonymous":false,"name":"BatchMetadataUpdate","inputs":[{"type":"uint256","name":"_fromTokenId","indexed":false},{"type":"uint256","name":"_toTokenId","indexed":false}]},{"type":"event","anonymous":false,"name":"BatchTokensMinted","inputs":[{"type":"address","name":"to","indexed":true},{"type":"uint256[]","name":"tokenIds","indexed":false},{"type":"string[]","name":"tokenURIs","indexed":false},{"type":"uint256","name":"royaltyFee","indexed":false}]},{"type":"event","anonymous":false,"name":"MetadataUpdate","inputs":[{"type":"uint256","name":"_tokenId","indexed":false}]},{"type":"event","anonymous":false,"name":"MetadataUpdated","inputs":[{"type":"uint256","name":"tokenId","indexed":true},{"type":"string","name":"name","indexed":false},{"type":"string","name":"description","indexed":false}]},{"type":"event","anonymous":false,"name":"OwnershipTransferred","inputs":[{"type":"address","name":"previousOwner","indexed":true},{"type":"address","name":"newOwner","indexed":true}]},{"type":"event","anonymous":false,"name":"TokenBurned","inputs":[{"type":"uint256","name":"tokenId","indexed":true}]},{"type":"event","anonymous":false,"name":"TokenMinted","inputs":[{"type":"address","name":"to","indexed":true},{"type":"uint256","name":"tokenId","indexed":true},{"type":"string","name":"tokenURI","indexed":false},{"type":"uint256","name":"royaltyFee","indexed":false}]},{"type":"event","anonymous":false,"name":"TokenURILocked","inputs":[{"type":"uint256","name":"tokenId","indexed":true}]},{"type":"event","anonymous":false,"name":"Transfer","inputs":[{"type":"address","name":"from","indexed":true},{"type":"address","name":"to","indexed":true},{"type":"uint256","name":"tokenId","indexed":true}]},{"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"type":"string","name":""}]},{"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"type":"string","name":""}]},{"type":"function","name":"tokenURI","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"string","name":""}]},{"type":"function","name":"ownerOf","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"address","name":""}]},{"type":"function","name":"getApproved","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"address","name":""}]},{"type":"function","name":"isApprovedForAll","stateMutability":"view","inputs":[{"type":"address","name":"owner"},{"type":"address","name":"operator"}],"outputs":[{"type":"bool","name":""}]},{"type":"function","name":"royaltyInfo","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"salePrice"}],"outputs":[{"type":"address","name":"receiver"},{"type":"uint256","name":"royaltyAmount"}]},{"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"type":"address","name":"to"},{"type":"string","name":"tokenURI"},{"type":"uint256","name":"royaltyFee"}],"outputs":[{"type":"uint256","name":""}]},{"type":"function","name":"batchMint","stateMutability":"nonpayable","inputs":[{"type":"address","name":"to"},{"type":"string[]","name":"tokenURIs"},{"type":"uint256","name":"royaltyFee"}],"outputs":[{"type":"uint256[]","name":""}]},{"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[{"type":"address","name":"to"},{"type":"uint256","name":"tokenId"}],"outputs":[]},{"type":"function","name":"setApprovalForAll","stateMutability":"nonpayable","inputs":[{"type":"address","name":"operator"},{"type":"bool","name":"approved"}],"outputs":[]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(nftCollectionABIJson))
	if err != nil {
		panic("Failed to parse nft collection abi")
	}
	NFTCollectionABI = _abi
}

type ApprovalLog struct {
	Owner    common.Address // indexed
	Approved common.Address // indexed
	TokenId  *big.Int       // indexed
}

type ApprovalForAllLog struct {
	Owner    common.Address // indexed
	Operator common.Address // indexed
	Approved bool
}

type BaseURILockedLog struct{}

type BaseURIUpdatedLog struct {
	NewBaseURI string
}

type BatchMetadataUpdateLog struct {
	FromTokenId *big.Int
	ToTokenId   *big.Int
}

type BatchTokensMintedLog struct {
	To         common.Address // indexed
	TokenIds   []*big.Int
	TokenURIs  []string
	RoyaltyFee *big.Int
}

type MetadataUpdateLog struct {
	TokenId *big.Int
}

type MetadataUpdatedLog struct {
	TokenId     *big.Int // indexed
	Name        string
	Description string
}

type TokenBurnedLog struct {
	TokenId *big.Int // indexed
}

type TokenMintedLog struct {
	To         common.Address // indexed
	TokenId    *big.Int       // indexed
	TokenURI   string
	RoyaltyFee *big.Int
}

type TokenURILockedLog struct {
	TokenId *big.Int // indexed
}

type TransferLog struct {
	From    common.Address // indexed
	To      common.Address // indexed
	TokenId *big.Int       // indexed
}

func ToApprovalLog(log *types.Log) (*ApprovalLog, error) {
	if err := checkTopics(log, 3); err != nil {
		return nil, err
	}
	return &ApprovalLog{
		Owner:    topicAddress(log, 1),
		Approved: topicAddress(log, 2),
		TokenId:  topicBig(log, 3),
	}, nil
}

func ToApprovalForAllLog(log *types.Log) (*ApprovalForAllLog, error) {
	var l ApprovalForAllLog
	if err := unpackLog(NFTCollectionABI, &l, "ApprovalForAll", log, 2); err != nil {
		return nil, err
	}
	l.Owner = topicAddress(log, 1)
	l.Operator = topicAddress(log, 2)
	return &l, nil
}

func ToBaseURILockedLog(log *types.Log) (*BaseURILockedLog, error) {
	if err := checkTopics(log, 0); err != nil {
		return nil, err
	}
	return &BaseURILockedLog{}, nil
}

func ToBaseURIUpdatedLog(log *types.Log) (*BaseURIUpdatedLog, error) {
	var l BaseURIUpdatedLog
	if err := unpackLog(NFTCollectionABI, &l, "BaseURIUpdated", log, 0); err != nil {
		return nil, err
	}
	return &l, nil
}

func ToBatchMetadataUpdateLog(log *types.Log) (*BatchMetadataUpdateLog, error) {
	var l BatchMetadataUpdateLog
	if err := unpackLog(NFTCollectionABI, &l, "BatchMetadataUpdate", log, 0); err != nil {
		return nil, err
	}
	return &l, nil
}

func ToBatchTokensMintedLog(log *types.Log) (*BatchTokensMintedLog, error) {
	var l BatchTokensMintedLog
	if err := unpackLog(NFTCollectionABI, &l, "BatchTokensMinted", log, 1); err != nil {
		return nil, err
	}
	l.To = topicAddress(log, 1)
	return &l, nil
}

func ToMetadataUpdateLog(log *types.Log) (*MetadataUpdateLog, error) {
	var l MetadataUpdateLog
	if err := unpackLog(NFTCollectionABI, &l, "MetadataUpdate", log, 0); err != nil {
		return nil, err
	}
	return &l, nil
}

func ToMetadataUpdatedLog(log *types.Log) (*MetadataUpdatedLog, error) {
	var l MetadataUpdatedLog
	if err := unpackLog(NFTCollectionABI, &l, "MetadataUpdated", log, 1); err != nil {
		return nil, err
	}
	l.TokenId = topicBig(log, 1)
	return &l, nil
}

func ToTokenBurnedLog(log *types.Log) (*TokenBurnedLog, error) {
	if err := checkTopics(log, 1); err != nil {
		return nil, err
	}
	return &TokenBurnedLog{TokenId: topicBig(log, 1)}, nil
}

func ToTokenMintedLog(log *types.Log) (*TokenMintedLog, error) {
	var l TokenMintedLog
	if err := unpackLog(NFTCollectionABI, &l, "TokenMinted", log, 2); err != nil {
		return nil, err
	}
	l.To = topicAddress(log, 1)
	l.TokenId = topicBig(log, 2)
	return &l, nil
}

func ToTokenURILockedLog(log *types.Log) (*TokenURILockedLog, error) {
	if err := checkTopics(log, 1); err != nil {
		return nil, err
	}
	return &TokenURILockedLog{TokenId: topicBig(log, 1)}, nil
}

func ToTransferLog(log *types.Log) (*TransferLog, error) {
	if err := checkTopics(log, 3); err != nil {
		return nil, err
	}
	return &TransferLog{
		From:    topicAddress(log, 1),
		To:      topicAddress(log, 2),
		TokenId: topicBig(log, 3),
	}, nil
}
