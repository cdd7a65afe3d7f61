package domain

// Table is a mongo collection name
type Table = string

const (
	TableTrackerStates = Table("tracker_states")
	TableBlocks        = Table("blocks")
	TableAccounts      = Table("accounts")

	// marketplace records
	TableAuctionEndeds                   = Table("auction_endeds")
	TableBidPlaceds                      = Table("bid_placeds")
	TableBidWithdrawns                   = Table("bid_withdrawns")
	TableCategoryAddeds                  = Table("category_addeds")
	TableEarningsWithdrawns              = Table("earnings_withdrawns")
	TableItemBoughts                     = Table("item_boughts")
	TableItemCanceleds                   = Table("item_canceleds")
	TableItemListeds                     = Table("item_listeds")
	TableMarketplaceOwnershipTransferred = Table("marketplace_ownership_transferreds")
	TablePauseds                         = Table("pauseds")
	TableUnpauseds                       = Table("unpauseds")

	// collection records
	TableApprovals                      = Table("approvals")
	TableApprovalForAlls                = Table("approval_for_alls")
	TableBaseURILockeds                 = Table("base_uri_lockeds")
	TableBaseURIUpdateds                = Table("base_uri_updateds")
	TableBatchMetadataUpdates           = Table("batch_metadata_updates")
	TableBatchTokensMinteds             = Table("batch_tokens_minteds")
	TableMetadataUpdates                = Table("metadata_updates")
	TableMetadataUpdateds               = Table("metadata_updateds")
	TableCollectionOwnershipTransferred = Table("collection_ownership_transferreds")
	TableTokenBurneds                   = Table("token_burneds")
	TableTokenMinteds                   = Table("token_minteds")
	TableTokenURILockeds                = Table("token_uri_lockeds")
	TableTransfers                      = Table("transfers")
)
