package record

import (
	"github.com/andy-marketplace/goapi/domain"
)

type findOptions struct {
	SortBy     *string
	SortDir    *domain.SortDir
	Skip       *int32
	First      *int32
	ChainId    *domain.ChainId
	Contract   *domain.Address
	NftAddress *domain.Address
	TokenId    *domain.TokenId
	Category   *string
	Seller     *domain.Address
	Bidder     *domain.Address
	To         *domain.Address
	Account    *domain.Address
	FromBlock  *domain.BlockNumber
	After      *Meta
}

type FindOptions func(*findOptions) error

func GetFindOptions(opts ...FindOptions) (findOptions, error) {
	res := findOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithSort(sortby string, sortdir domain.SortDir) FindOptions {
	return func(options *findOptions) error {
		options.SortBy = &sortby
		options.SortDir = &sortdir
		return nil
	}
}

// WithPagination follows graphql first/skip semantics
func WithPagination(skip int32, first int32) FindOptions {
	return func(options *findOptions) error {
		if skip < 0 || first < 0 {
			return domain.ErrBadParamInput
		}
		options.Skip = &skip
		options.First = &first
		return nil
	}
}

func WithChainId(chainId domain.ChainId) FindOptions {
	return func(options *findOptions) error {
		options.ChainId = &chainId
		return nil
	}
}

func WithContract(address domain.Address) FindOptions {
	return func(options *findOptions) error {
		address = address.ToLower()
		options.Contract = &address
		return nil
	}
}

func WithNftAddress(address domain.Address) FindOptions {
	return func(options *findOptions) error {
		address = address.ToLower()
		options.NftAddress = &address
		return nil
	}
}

func WithTokenId(tokenId domain.TokenId) FindOptions {
	return func(options *findOptions) error {
		if _, err := tokenId.ToBigInt(); err != nil {
			return err
		}
		options.TokenId = &tokenId
		return nil
	}
}

// WithCategory takes the 0x hex bytes32 category
func WithCategory(category string) FindOptions {
	return func(options *findOptions) error {
		options.Category = &category
		return nil
	}
}

func WithSeller(address domain.Address) FindOptions {
	return func(options *findOptions) error {
		address = address.ToLower()
		options.Seller = &address
		return nil
	}
}

func WithBidder(address domain.Address) FindOptions {
	return func(options *findOptions) error {
		address = address.ToLower()
		options.Bidder = &address
		return nil
	}
}

func WithTo(address domain.Address) FindOptions {
	return func(options *findOptions) error {
		address = address.ToLower()
		options.To = &address
		return nil
	}
}

// WithAccount matches records where the address appears in any participant field
func WithAccount(address domain.Address) FindOptions {
	return func(options *findOptions) error {
		address = address.ToLower()
		options.Account = &address
		return nil
	}
}

func WithFromBlock(blk domain.BlockNumber) FindOptions {
	return func(options *findOptions) error {
		options.FromBlock = &blk
		return nil
	}
}

// WithAfter keeps records strictly after m in chain order
func WithAfter(m *Meta) FindOptions {
	return func(options *findOptions) error {
		options.After = m
		return nil
	}
}
