package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/delivery"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/nft"
	"github.com/andy-marketplace/goapi/middleware"
)

type handler struct {
	nft nft.UseCase
}

func New(e *echo.Echo, nft nft.UseCase) {
	h := &handler{nft}

	g := e.Group("/nfts")
	g.GET("/onchain", h.getOnchainNFTs, middleware.CacheHttp(30*time.Second))
	g.GET("/:nftAddress/:tokenId", h.getDetails, middleware.IsValidAddress("nftAddress"), middleware.CacheHttp(10*time.Second))

	e.GET("/metadata", h.getMetadata)
}

// getOnchainNFTs
//
//	@Summary		List marketplace listings read from the contract
//	@Description	Each listing is joined with the metadata its tokenURI points to
//	@Tags			nft
//	@Produce		json
//	@Success		200	{object}	object{data=[]nft.NFT}
//	@Router			/nfts/onchain [get]
func (h *handler) getOnchainNFTs(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.nft.GetOnchainNFTs(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getDetails
//
//	@Summary	Get a token with owner, metadata, listing and mint
//	@Tags		nft
//	@Produce	json
//	@Param		nftAddress	path		string	true	"collection address"
//	@Param		tokenId		path		string	true	"token id"
//	@Success	200			{object}	object{data=nft.Details}
//	@Failure	400
//	@Failure	404
//	@Router		/nfts/{nftAddress}/{tokenId} [get]
func (h *handler) getDetails(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.nft.GetDetails(ctx, domain.Address(c.Param("nftAddress")), domain.TokenId(c.Param("tokenId")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getMetadata
//
//	@Summary	Fetch the metadata document of a token uri
//	@Tags		nft
//	@Produce	json
//	@Param		uri	query		string	true	"https, ipfs or data uri"
//	@Success	200	{object}	object{data=nft.Metadata}
//	@Failure	400
//	@Router		/metadata [get]
func (h *handler) getMetadata(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	uri := c.QueryParam("uri")
	if uri == "" {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	res, err := h.nft.GetMetadata(ctx, uri)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
