package usecase

import (
	"encoding/json"
	"errors"

	"github.com/viney-shih/goroutines"

	baseabi "github.com/andy-marketplace/goapi/base/abi"
	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/base/metadata_parser"
	"github.com/andy-marketplace/goapi/base/price_fomatter"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/keys"
	"github.com/andy-marketplace/goapi/domain/marketplace"
	"github.com/andy-marketplace/goapi/domain/nft"
	"github.com/andy-marketplace/goapi/domain/nftcollection"
	"github.com/andy-marketplace/goapi/service/cache"
	"github.com/andy-marketplace/goapi/service/chain"
	"github.com/andy-marketplace/goapi/service/chain/contract"
	"github.com/andy-marketplace/goapi/service/ens"
)

const defaultWorkers = 8

type NFTUseCaseCfg struct {
	ChainId     domain.ChainId
	Marketplace contract.MarketplaceContract
	Collection  contract.NFTCollectionContract
	WebResource domain.WebResourceUseCase
	// MetadataCache memoizes token uri documents, usually a compound local + redis cache
	MetadataCache cache.Service
	Listings      marketplace.UseCase
	Mints         nftcollection.UseCase
	// ENS is optional
	ENS ens.ENS
	// Workers bounds concurrent metadata fetches
	Workers int
}

type impl struct {
	chainId     domain.ChainId
	marketplace contract.MarketplaceContract
	collection  contract.NFTCollectionContract
	webResource domain.WebResourceUseCase
	cache       cache.Service
	listings    marketplace.UseCase
	mints       nftcollection.UseCase
	ens         ens.ENS
	parser      metadata_parser.MetadataParser
	workers     int
}

func NewNFTUseCase(cfg *NFTUseCaseCfg) nft.UseCase {
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &impl{
		chainId:     cfg.ChainId,
		marketplace: cfg.Marketplace,
		collection:  cfg.Collection,
		webResource: cfg.WebResource,
		cache:       cfg.MetadataCache,
		listings:    cfg.Listings,
		mints:       cfg.Mints,
		ens:         cfg.ENS,
		parser:      metadata_parser.NewDefaultParser(),
		workers:     workers,
	}
}

func (im *impl) GetMetadata(c ctx.Ctx, tokenURI string) (*nft.Metadata, error) {
	res := nft.Metadata{}
	err := im.cache.GetByFunc(c, keys.RedisKey(keys.PfxMetadata, keys.MD5(tokenURI)), &res, func() (interface{}, error) {
		data, err := im.webResource.GetJson(c, tokenURI)
		if err != nil {
			return nil, err
		}
		md := &nft.Metadata{}
		if err := json.Unmarshal(data, md); err != nil {
			c.WithFields(log.Fields{
				"err":      err,
				"tokenURI": tokenURI,
			}).Error("json.Unmarshal failed")
			return nil, domain.ErrInvalidJsonFormat
		}
		attrs, err := im.parser.Parse(c, data)
		if err != nil {
			attrs = []nft.Attribute{}
		}
		md.Attributes = attrs
		return md, nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// toNFT joins a listing with its metadata; metadata failures leave the text fields empty
func (im *impl) toNFT(c ctx.Ctx, l *baseabi.MarketplaceListing) *nft.NFT {
	res := &nft.NFT{
		NftAddress: domain.AddressFrom(l.NftAddress),
		TokenId:    domain.TokenIdFrom(l.TokenId),
		Price:      pricefomatter.FormatEther(l.Price),
		Seller:     domain.AddressFrom(l.Seller),
		IsAuction:  l.IsAuction,
		Category:   baseabi.Bytes32StringOrHex(l.Category),
	}

	c = ctx.WithLogField(ctx.WithLogField(c, "nftAddress", res.NftAddress), "tokenId", res.TokenId)
	res.SellerEns = im.sellerEns(c, res.Seller)
	uri, err := im.collection.TokenURI(c, im.chainId, l.NftAddress, l.TokenId)
	if err != nil {
		c.WithField("err", err).Warn("collection.TokenURI failed")
		return res
	}
	md, err := im.GetMetadata(c, uri)
	if err != nil {
		c.WithField("err", err).Warn("GetMetadata failed")
		return res
	}
	res.Name = md.Name
	res.Description = md.Description
	res.ImageUrl = im.webResource.HttpUrl(md.Image)
	return res
}

// sellerEns is empty without an ens service or on lookup failure
func (im *impl) sellerEns(c ctx.Ctx, seller domain.Address) string {
	if im.ens == nil {
		return ""
	}
	name, err := im.ens.ReverseResolve(c, seller)
	if err != nil {
		c.WithField("err", err).Warn("ens.ReverseResolve failed")
		return ""
	}
	return name
}

type indexedNFT struct {
	idx int
	nft *nft.NFT
}

func (im *impl) GetOnchainNFTs(c ctx.Ctx) ([]nft.NFT, error) {
	listings, err := im.marketplace.GetListings(c, im.chainId)
	if err != nil {
		c.WithField("err", err).Error("marketplace.GetListings failed")
		return nil, err
	}
	if len(listings) == 0 {
		return []nft.NFT{}, nil
	}

	b := goroutines.NewBatch(im.workers, goroutines.WithBatchSize(len(listings)))
	defer b.Close()
	for i := range listings {
		idx := i
		b.Queue(func() (interface{}, error) {
			return &indexedNFT{idx, im.toNFT(c, &listings[idx])}, nil
		})
	}
	b.QueueComplete()

	res := make([]nft.NFT, len(listings))
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Error("nft batch result failed")
			continue
		}
		v := ret.Value().(*indexedNFT)
		res[v.idx] = *v.nft
	}
	return res, nil
}

func (im *impl) GetDetails(c ctx.Ctx, nftAddress domain.Address, tokenId domain.TokenId) (*nft.Details, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return nil, err
	}
	addr := nftAddress.ToCommon()

	owner, err := im.collection.OwnerOf(c, im.chainId, addr, id)
	if errors.Is(err, chain.ErrReverted) {
		// unminted or burnt
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"nftAddress": nftAddress,
			"tokenId":    tokenId,
		}).Error("collection.OwnerOf failed")
		return nil, err
	}

	res := &nft.Details{
		NftAddress: nftAddress.ToLower(),
		TokenId:    tokenId,
		Owner:      domain.AddressFrom(owner),
	}

	if uri, err := im.collection.TokenURI(c, im.chainId, addr, id); err != nil {
		c.WithField("err", err).Warn("collection.TokenURI failed")
	} else {
		res.TokenURI = uri
		if md, err := im.GetMetadata(c, uri); err != nil {
			c.WithField("err", err).Warn("GetMetadata failed")
		} else {
			md.Image = im.webResource.HttpUrl(md.Image)
			res.Metadata = md
		}
	}

	listing, err := im.listings.GetListing(c, res.NftAddress, tokenId)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		c.WithField("err", err).Error("listings.GetListing failed")
		return nil, err
	}
	res.Listing = listing

	mint, err := im.mints.GetMint(c, tokenId)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		c.WithField("err", err).Error("mints.GetMint failed")
		return nil, err
	}
	res.Mint = mint

	if listing == nil {
		return res, nil
	}

	res.SellerEns = im.sellerEns(c, listing.Seller)

	if listing.IsAuction && listing.Active {
		onchain, err := im.marketplace.GetListing(c, im.chainId, addr, id)
		if err != nil {
			c.WithField("err", err).Warn("marketplace.GetListing failed")
		} else if onchain.AuctionEndTime != nil {
			res.AuctionEndTime = onchain.AuctionEndTime.String()
		}
	}
	return res, nil
}
