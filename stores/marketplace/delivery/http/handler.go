package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/delivery"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/marketplace"
	"github.com/andy-marketplace/goapi/middleware"
)

type handler struct {
	marketplace marketplace.UseCase
}

func New(e *echo.Echo, marketplace marketplace.UseCase) {
	h := &handler{marketplace}

	e.GET("/categories", h.getCategories, middleware.CacheHttp(time.Minute))
	e.GET("/categories/:category/listings", h.getCategoryListings, middleware.CacheHttp(10*time.Second))
	e.GET("/categories/:category/nfts", h.getNFTsByCategory, middleware.CacheHttp(10*time.Second))

	e.GET("/nfts", h.getAllNFTs, middleware.CacheHttp(10*time.Second))

	g := e.Group("/listings")
	g.GET("/active", h.getActiveListings, middleware.CacheHttp(10*time.Second))
	g.GET("/:nftAddress/:tokenId", h.getListing, middleware.IsValidAddress("nftAddress"))
	g.GET("/:nftAddress/:tokenId/bids", h.getBids, middleware.IsValidAddress("nftAddress"))
	g.GET("/:nftAddress/:tokenId/sales", h.getSales, middleware.IsValidAddress("nftAddress"))

	e.GET("/marketplace/events/:event", h.getEvents)
}

// getCategories
//
//	@Summary	List categories
//	@Tags		marketplace
//	@Produce	json
//	@Success	200	{object}	object{data=[]marketplace.CategoryAdded}
//	@Router		/categories [get]
func (h *handler) getCategories(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.marketplace.GetCategories(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getCategoryListings
//
//	@Summary	List every listing of a category
//	@Tags		marketplace
//	@Produce	json
//	@Param		category	path		string	true	"category name or 0x bytes32 id"
//	@Success	200			{object}	object{data=[]marketplace.ItemListed}
//	@Failure	400
//	@Router		/categories/{category}/listings [get]
func (h *handler) getCategoryListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.marketplace.GetCategoryListings(ctx, c.Param("category"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getNFTsByCategory
//
//	@Summary	List the latest listings of a category
//	@Tags		marketplace
//	@Produce	json
//	@Param		category	path		string	true	"category name or 0x bytes32 id"
//	@Success	200			{object}	object{data=[]marketplace.ItemListed}
//	@Failure	400
//	@Router		/categories/{category}/nfts [get]
func (h *handler) getNFTsByCategory(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.marketplace.GetNFTsByCategory(ctx, c.Param("category"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getAllNFTs
//
//	@Summary	List listings, newest first
//	@Tags		marketplace
//	@Produce	json
//	@Param		first	query		int	false	"page size"
//	@Param		skip	query		int	false	"offset"
//	@Success	200		{object}	object{data=[]marketplace.ItemListed}
//	@Router		/nfts [get]
func (h *handler) getAllNFTs(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := delivery.NewPageParams()
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.marketplace.GetAllNFTs(ctx, p.First, p.Skip)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getActiveListings
//
//	@Summary	List listings that are neither sold, canceled nor settled
//	@Tags		marketplace
//	@Produce	json
//	@Param		first	query		int	false	"page size"
//	@Param		skip	query		int	false	"offset"
//	@Success	200		{object}	object{data=[]marketplace.Listing}
//	@Router		/listings/active [get]
func (h *handler) getActiveListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := delivery.NewPageParams()
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.marketplace.GetActiveListings(ctx, p.First, p.Skip)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func tokenParams(c echo.Context) (domain.Address, domain.TokenId) {
	return domain.Address(c.Param("nftAddress")).ToLower(), domain.TokenId(c.Param("tokenId"))
}

// getListing
//
//	@Summary	Get the latest listing of a token
//	@Tags		marketplace
//	@Produce	json
//	@Param		nftAddress	path		string	true	"collection address"
//	@Param		tokenId		path		string	true	"token id"
//	@Success	200			{object}	object{data=marketplace.Listing}
//	@Failure	404
//	@Router		/listings/{nftAddress}/{tokenId} [get]
func (h *handler) getListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	nftAddress, tokenId := tokenParams(c)
	res, err := h.marketplace.GetListing(ctx, nftAddress, tokenId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getBids
//
//	@Summary	List bids of a token
//	@Tags		marketplace
//	@Produce	json
//	@Param		nftAddress	path		string	true	"collection address"
//	@Param		tokenId		path		string	true	"token id"
//	@Success	200			{object}	object{data=[]marketplace.BidPlaced}
//	@Router		/listings/{nftAddress}/{tokenId}/bids [get]
func (h *handler) getBids(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	nftAddress, tokenId := tokenParams(c)
	res, err := h.marketplace.GetBids(ctx, nftAddress, tokenId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getSales
//
//	@Summary	List sales and settled auctions of a token
//	@Tags		marketplace
//	@Produce	json
//	@Param		nftAddress	path		string	true	"collection address"
//	@Param		tokenId		path		string	true	"token id"
//	@Success	200			{object}	object{data=[]marketplace.Sale}
//	@Router		/listings/{nftAddress}/{tokenId}/sales [get]
func (h *handler) getSales(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	nftAddress, tokenId := tokenParams(c)
	res, err := h.marketplace.GetSales(ctx, nftAddress, tokenId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getEvents
//
//	@Summary	List raw marketplace event records
//	@Tags		marketplace
//	@Produce	json
//	@Param		event		path		string	true	"event name, e.g. ItemListed"
//	@Param		first		query		int		false	"page size"
//	@Param		skip		query		int		false	"offset"
//	@Param		chainId		query		int		false	"chain id"
//	@Param		nftAddress	query		string	false	"collection address"
//	@Param		tokenId		query		string	false	"token id"
//	@Param		account		query		string	false	"any participant"
//	@Param		fromBlock	query		int		false	"lowest block"
//	@Success	200			{object}	object{data=[]object}
//	@Failure	400
//	@Router		/marketplace/events/{event} [get]
func (h *handler) getEvents(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := delivery.NewEventParams()
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.marketplace.GetEvents(ctx, c.Param("event"), p.Options()...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
