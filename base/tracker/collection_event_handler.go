package tracker

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/andy-marketplace/goapi/base/abi"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/nftcollection"
	"github.com/andy-marketplace/goapi/domain/record"
)

var (
	approvalSig            = abi.NFTCollectionABI.Events["Approval"].ID
	approvalForAllSig      = abi.NFTCollectionABI.Events["ApprovalForAll"].ID
	baseURILockedSig       = abi.NFTCollectionABI.Events["BaseURILocked"].ID
	baseURIUpdatedSig      = abi.NFTCollectionABI.Events["BaseURIUpdated"].ID
	batchMetadataUpdateSig = abi.NFTCollectionABI.Events["BatchMetadataUpdate"].ID
	batchTokensMintedSig   = abi.NFTCollectionABI.Events["BatchTokensMinted"].ID
	metadataUpdateSig      = abi.NFTCollectionABI.Events["MetadataUpdate"].ID
	metadataUpdatedSig     = abi.NFTCollectionABI.Events["MetadataUpdated"].ID
	tokenBurnedSig         = abi.NFTCollectionABI.Events["TokenBurned"].ID
	tokenMintedSig         = abi.NFTCollectionABI.Events["TokenMinted"].ID
	tokenURILockedSig      = abi.NFTCollectionABI.Events["TokenURILocked"].ID
	transferSig            = abi.NFTCollectionABI.Events["Transfer"].ID
)

func NewCollectionEventHandler(cfg *RecordEventHandlerCfg) EventHandler {
	return &recordEventHandler{
		name: "collection",
		decoders: map[common.Hash]recordDecoder{
			approvalSig:            toApproval,
			approvalForAllSig:      toApprovalForAll,
			baseURILockedSig:       toBaseURILocked,
			baseURIUpdatedSig:      toBaseURIUpdated,
			batchMetadataUpdateSig: toBatchMetadataUpdate,
			batchTokensMintedSig:   toBatchTokensMinted,
			metadataUpdateSig:      toMetadataUpdate,
			metadataUpdatedSig:     toMetadataUpdated,
			ownershipSig:           toCollectionOwnershipTransferred,
			tokenBurnedSig:         toTokenBurned,
			tokenMintedSig:         toTokenMinted,
			tokenURILockedSig:      toTokenURILocked,
			transferSig:            toTransfer,
		},
		recordUC: cfg.RecordUseCase,
		sinks:    cfg.Sinks,
	}
}

func toApproval(l *logWithBlockTime) (record.Record, error) {
	e, err := abi.ToApprovalLog(&l.Log)
	if err != nil {
		return nil, err
	}
	return &nftcollection.Approval{
		Meta:     l.meta(),
		Owner:    toDomainAddress(e.Owner),
		Approved: toDomainAddress(e.Approved),
		TokenId:  toTokenId(e.TokenId),
	}, nil
}

func toApprovalForAll(l *logWithBlockTime) (record.Record, error) {
	e, err := abi.ToApprovalForAllLog(&l.Log)
	if err != nil {
		return nil, err
	}
	return &nftcollection.ApprovalForAll{
		Meta:     l.meta(),
		Owner:    toDomainAddress(e.Owner),
		Operator: toDomainAddress(e.Operator),
		Approved: e.Approved,
	}, nil
}

func toBaseURILocked(l *logWithBlockTime) (record.Record, error) {
	if _, err := abi.ToBaseURILockedLog(&l.Log); err != nil {
		return nil, err
	}
	return &nftcollection.BaseURILocked{Meta: l.meta()}, nil
}

func toBaseURIUpdated(l *logWithBlockTime) (record.Record, error) {
	e, err := abi.ToBaseURIUpdatedLog(&l.Log)
	if err != nil {
		return nil, err
	}
	return &nftcollection.BaseURIUpdated{
		Meta:       l.meta(),
		NewBaseURI: e.NewBaseURI,
	}, nil
}

func toBatchMetadataUpdate(l *logWithBlockTime) (record.Record, error) {
	e, err := abi.ToBatchMetadataUpdateLog(&l.Log)
	if err != nil {
		return nil, err
	}
	return &nftcollection.BatchMetadataUpdate{
		Meta:        l.meta(),
		FromTokenId: toTokenId(e.FromTokenId),
		ToTokenId:   toTokenId(e.ToTokenId),
	}, nil
}

func toBatchTokensMinted(l *logWithBlockTime) (record.Record, error) {
	e, err := abi.ToBatchTokensMintedLog(&l.Log)
	if err != nil {
		return nil, err
	}
	tokenIds := make([]domain.TokenId, len(e.TokenIds))
	for i, id := range e.TokenIds {
		tokenIds[i] = toTokenId(id)
	}
	return &nftcollection.BatchTokensMinted{
		Meta:       l.meta(),
		To:         toDomainAddress(e.To),
		TokenIds:   tokenIds,
		TokenURIs:  e.TokenURIs,
		RoyaltyFee: record.Uint(e.RoyaltyFee),
	}, nil
}

func toMetadataUpdate(l *logWithBlockTime) (record.Record, error) {
	e, err := abi.ToMetadataUpdateLog(&l.Log)
	if err != nil {
		return nil, err
	}
	return &nftcollection.MetadataUpdate{
		Meta:    l.meta(),
		TokenId: toTokenId(e.TokenId),
	}, nil
}

func toMetadataUpdated(l *logWithBlockTime) (record.Record, error) {
	e, err := abi.ToMetadataUpdatedLog(&l.Log)
	if err != nil {
		return nil, err
	}
	return &nftcollection.MetadataUpdated{
		Meta:        l.meta(),
		TokenId:     toTokenId(e.TokenId),
		Name:        e.Name,
		Description: e.Description,
	}, nil
}

func toCollectionOwnershipTransferred(l *logWithBlockTime) (record.Record, error) {
	e, err := abi.ToOwnershipTransferredLog(&l.Log)
	if err != nil {
		return nil, err
	}
	return &nftcollection.OwnershipTransferred{
		Meta:          l.meta(),
		PreviousOwner: toDomainAddress(e.PreviousOwner),
		NewOwner:      toDomainAddress(e.NewOwner),
	}, nil
}

func toTokenBurned(l *logWithBlockTime) (record.Record, error) {
	e, err := abi.ToTokenBurnedLog(&l.Log)
	if err != nil {
		return nil, err
	}
	return &nftcollection.TokenBurned{
		Meta:    l.meta(),
		TokenId: toTokenId(e.TokenId),
	}, nil
}

func toTokenMinted(l *logWithBlockTime) (record.Record, error) {
	e, err := abi.ToTokenMintedLog(&l.Log)
	if err != nil {
		return nil, err
	}
	return &nftcollection.TokenMinted{
		Meta:       l.meta(),
		To:         toDomainAddress(e.To),
		TokenId:    toTokenId(e.TokenId),
		TokenURI:   e.TokenURI,
		RoyaltyFee: record.Uint(e.RoyaltyFee),
	}, nil
}

func toTokenURILocked(l *logWithBlockTime) (record.Record, error) {
	e, err := abi.ToTokenURILockedLog(&l.Log)
	if err != nil {
		return nil, err
	}
	return &nftcollection.TokenURILocked{
		Meta:    l.meta(),
		TokenId: toTokenId(e.TokenId),
	}, nil
}

func toTransfer(l *logWithBlockTime) (record.Record, error) {
	e, err := abi.ToTransferLog(&l.Log)
	if err != nil {
		return nil, err
	}
	return &nftcollection.Transfer{
		Meta:    l.meta(),
		From:    toDomainAddress(e.From),
		To:      toDomainAddress(e.To),
		TokenId: toTokenId(e.TokenId),
	}, nil
}
