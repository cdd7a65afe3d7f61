package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/delivery"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/nftcollection"
	"github.com/andy-marketplace/goapi/middleware"
)

type handler struct {
	collection nftcollection.UseCase
}

type mintsParams struct {
	delivery.PageParams
	To domain.Address `query:"to"`
}

func New(e *echo.Echo, collection nftcollection.UseCase) {
	h := &handler{collection}

	g := e.Group("/collection")
	g.GET("/mints", h.getMints, middleware.CacheHttp(10*time.Second))
	g.GET("/mints/:tokenId", h.getMint)
	g.GET("/tokens/:tokenId/transfers", h.getTransfers)
	g.GET("/events/:event", h.getEvents)
}

// getMints
//
//	@Summary	List minted tokens, newest first
//	@Tags		collection
//	@Produce	json
//	@Param		to		query		string	false	"minter"
//	@Param		first	query		int		false	"page size"
//	@Param		skip	query		int		false	"offset"
//	@Success	200		{object}	object{data=[]nftcollection.TokenMinted}
//	@Router		/collection/mints [get]
func (h *handler) getMints(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &mintsParams{PageParams: *delivery.NewPageParams()}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.collection.GetMints(ctx, p.To.ToLower(), p.First, p.Skip)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getMint
//
//	@Summary	Get the mint of a token
//	@Tags		collection
//	@Produce	json
//	@Param		tokenId	path		string	true	"token id"
//	@Success	200		{object}	object{data=nftcollection.TokenMinted}
//	@Failure	404
//	@Router		/collection/mints/{tokenId} [get]
func (h *handler) getMint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.collection.GetMint(ctx, domain.TokenId(c.Param("tokenId")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getTransfers
//
//	@Summary	List transfers of a token, newest first
//	@Tags		collection
//	@Produce	json
//	@Param		tokenId	path		string	true	"token id"
//	@Success	200		{object}	object{data=[]nftcollection.Transfer}
//	@Router		/collection/tokens/{tokenId}/transfers [get]
func (h *handler) getTransfers(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.collection.GetTransfers(ctx, domain.TokenId(c.Param("tokenId")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getEvents
//
//	@Summary	List raw collection event records
//	@Tags		collection
//	@Produce	json
//	@Param		event		path		string	true	"event name, e.g. Transfer"
//	@Param		first		query		int		false	"page size"
//	@Param		skip		query		int		false	"offset"
//	@Param		account		query		string	false	"any participant"
//	@Param		fromBlock	query		int		false	"lowest block"
//	@Success	200			{object}	object{data=[]object}
//	@Failure	400
//	@Router		/collection/events/{event} [get]
func (h *handler) getEvents(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := delivery.NewEventParams()
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.collection.GetEvents(ctx, c.Param("event"), p.Options()...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
