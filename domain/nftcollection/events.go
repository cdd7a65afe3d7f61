package nftcollection

import (
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/record"
)

const (
	EventApproval             = "Approval"
	EventApprovalForAll       = "ApprovalForAll"
	EventBaseURILocked        = "BaseURILocked"
	EventBaseURIUpdated       = "BaseURIUpdated"
	EventBatchMetadataUpdate  = "BatchMetadataUpdate"
	EventBatchTokensMinted    = "BatchTokensMinted"
	EventMetadataUpdate       = "MetadataUpdate"
	EventMetadataUpdated      = "MetadataUpdated"
	EventOwnershipTransferred = "OwnershipTransferred"
	EventTokenBurned          = "TokenBurned"
	EventTokenMinted          = "TokenMinted"
	EventTokenURILocked       = "TokenURILocked"
	EventTransfer             = "Transfer"
)

type Approval struct {
	record.Meta `bson:",inline"`
	Owner       domain.Address `json:"owner" bson:"owner"`
	Approved    domain.Address `json:"approved" bson:"approved"`
	TokenId     domain.TokenId `json:"tokenId" bson:"tokenId"`
}

func (Approval) Table() domain.Table { return domain.TableApprovals }
func (Approval) EventName() string   { return EventApproval }

type ApprovalForAll struct {
	record.Meta `bson:",inline"`
	Owner       domain.Address `json:"owner" bson:"owner"`
	Operator    domain.Address `json:"operator" bson:"operator"`
	Approved    bool           `json:"approved" bson:"approved"`
}

func (ApprovalForAll) Table() domain.Table { return domain.TableApprovalForAlls }
func (ApprovalForAll) EventName() string   { return EventApprovalForAll }

type BaseURILocked struct {
	record.Meta `bson:",inline"`
}

func (BaseURILocked) Table() domain.Table { return domain.TableBaseURILockeds }
func (BaseURILocked) EventName() string   { return EventBaseURILocked }

type BaseURIUpdated struct {
	record.Meta `bson:",inline"`
	NewBaseURI  string `json:"newBaseURI" bson:"newBaseURI"`
}

func (BaseURIUpdated) Table() domain.Table { return domain.TableBaseURIUpdateds }
func (BaseURIUpdated) EventName() string   { return EventBaseURIUpdated }

// BatchMetadataUpdate and MetadataUpdate keep the ERC-4906 parameter names as emitted
type BatchMetadataUpdate struct {
	record.Meta `bson:",inline"`
	FromTokenId domain.TokenId `json:"_fromTokenId" bson:"_fromTokenId"`
	ToTokenId   domain.TokenId `json:"_toTokenId" bson:"_toTokenId"`
}

func (BatchMetadataUpdate) Table() domain.Table { return domain.TableBatchMetadataUpdates }
func (BatchMetadataUpdate) EventName() string   { return EventBatchMetadataUpdate }

type BatchTokensMinted struct {
	record.Meta `bson:",inline"`
	To          domain.Address   `json:"to" bson:"to"`
	TokenIds    []domain.TokenId `json:"tokenIds" bson:"tokenIds"`
	TokenURIs   []string         `json:"tokenURIs" bson:"tokenURIs"`
	RoyaltyFee  string           `json:"royaltyFee" bson:"royaltyFee"`
}

func (BatchTokensMinted) Table() domain.Table { return domain.TableBatchTokensMinteds }
func (BatchTokensMinted) EventName() string   { return EventBatchTokensMinted }

// Expand splits a batch into one TokenMinted view per token
func (b *BatchTokensMinted) Expand() []TokenMinted {
	res := make([]TokenMinted, 0, len(b.TokenIds))
	for i, id := range b.TokenIds {
		m := TokenMinted{
			Meta:       b.Meta,
			To:         b.To,
			TokenId:    id,
			RoyaltyFee: b.RoyaltyFee,
		}
		if i < len(b.TokenURIs) {
			m.TokenURI = b.TokenURIs[i]
		}
		res = append(res, m)
	}
	return res
}

type MetadataUpdate struct {
	record.Meta `bson:",inline"`
	TokenId     domain.TokenId `json:"_tokenId" bson:"_tokenId"`
}

func (MetadataUpdate) Table() domain.Table { return domain.TableMetadataUpdates }
func (MetadataUpdate) EventName() string   { return EventMetadataUpdate }

type MetadataUpdated struct {
	record.Meta `bson:",inline"`
	TokenId     domain.TokenId `json:"tokenId" bson:"tokenId"`
	Name        string         `json:"name" bson:"name"`
	Description string         `json:"description" bson:"description"`
}

func (MetadataUpdated) Table() domain.Table { return domain.TableMetadataUpdateds }
func (MetadataUpdated) EventName() string   { return EventMetadataUpdated }

type OwnershipTransferred struct {
	record.Meta   `bson:",inline"`
	PreviousOwner domain.Address `json:"previousOwner" bson:"previousOwner"`
	NewOwner      domain.Address `json:"newOwner" bson:"newOwner"`
}

func (OwnershipTransferred) Table() domain.Table {
	return domain.TableCollectionOwnershipTransferred
}
func (OwnershipTransferred) EventName() string { return EventOwnershipTransferred }

type TokenBurned struct {
	record.Meta `bson:",inline"`
	TokenId     domain.TokenId `json:"tokenId" bson:"tokenId"`
}

func (TokenBurned) Table() domain.Table { return domain.TableTokenBurneds }
func (TokenBurned) EventName() string   { return EventTokenBurned }

type TokenMinted struct {
	record.Meta `bson:",inline"`
	To          domain.Address `json:"to" bson:"to"`
	TokenId     domain.TokenId `json:"tokenId" bson:"tokenId"`
	TokenURI    string         `json:"tokenURI" bson:"tokenURI"`
	RoyaltyFee  string         `json:"royaltyFee" bson:"royaltyFee"`
}

func (TokenMinted) Table() domain.Table { return domain.TableTokenMinteds }
func (TokenMinted) EventName() string   { return EventTokenMinted }

type TokenURILocked struct {
	record.Meta `bson:",inline"`
	TokenId     domain.TokenId `json:"tokenId" bson:"tokenId"`
}

func (TokenURILocked) Table() domain.Table { return domain.TableTokenURILockeds }
func (TokenURILocked) EventName() string   { return EventTokenURILocked }

type Transfer struct {
	record.Meta `bson:",inline"`
	From        domain.Address `json:"from" bson:"from"`
	To          domain.Address `json:"to" bson:"to"`
	TokenId     domain.TokenId `json:"tokenId" bson:"tokenId"`
}

func (Transfer) Table() domain.Table { return domain.TableTransfers }
func (Transfer) EventName() string   { return EventTransfer }

var Kinds = record.NewKinds(
	record.Kind{Name: EventApproval, Table: domain.TableApprovals, NewSlice: func() interface{} { return &[]Approval{} }},
	record.Kind{Name: EventApprovalForAll, Table: domain.TableApprovalForAlls, NewSlice: func() interface{} { return &[]ApprovalForAll{} }},
	record.Kind{Name: EventBaseURILocked, Table: domain.TableBaseURILockeds, NewSlice: func() interface{} { return &[]BaseURILocked{} }},
	record.Kind{Name: EventBaseURIUpdated, Table: domain.TableBaseURIUpdateds, NewSlice: func() interface{} { return &[]BaseURIUpdated{} }},
	record.Kind{Name: EventBatchMetadataUpdate, Table: domain.TableBatchMetadataUpdates, NewSlice: func() interface{} { return &[]BatchMetadataUpdate{} }},
	record.Kind{Name: EventBatchTokensMinted, Table: domain.TableBatchTokensMinteds, NewSlice: func() interface{} { return &[]BatchTokensMinted{} }},
	record.Kind{Name: EventMetadataUpdate, Table: domain.TableMetadataUpdates, NewSlice: func() interface{} { return &[]MetadataUpdate{} }},
	record.Kind{Name: EventMetadataUpdated, Table: domain.TableMetadataUpdateds, NewSlice: func() interface{} { return &[]MetadataUpdated{} }},
	record.Kind{Name: EventOwnershipTransferred, Table: domain.TableCollectionOwnershipTransferred, NewSlice: func() interface{} { return &[]OwnershipTransferred{} }},
	record.Kind{Name: EventTokenBurned, Table: domain.TableTokenBurneds, NewSlice: func() interface{} { return &[]TokenBurned{} }},
	record.Kind{Name: EventTokenMinted, Table: domain.TableTokenMinteds, NewSlice: func() interface{} { return &[]TokenMinted{} }},
	record.Kind{Name: EventTokenURILocked, Table: domain.TableTokenURILockeds, NewSlice: func() interface{} { return &[]TokenURILocked{} }},
	record.Kind{Name: EventTransfer, Table: domain.TableTransfers, NewSlice: func() interface{} { return &[]Transfer{} }},
)
