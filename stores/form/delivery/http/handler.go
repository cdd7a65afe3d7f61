package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/delivery"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/form"
	authMiddleware "github.com/andy-marketplace/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	form form.UseCase
}

func New(e *echo.Echo, fu form.UseCase, am *authMiddleware.AuthMiddleware) {
	h := &handler{form: fu}

	g := e.Group("/tx")
	g.POST("/mint", h.mint)
	g.POST("/batch-mint", h.batchMint)
	g.POST("/list", h.list, am.Auth(), am.RequireWallet())
	g.POST("/bid", h.bid)
	g.POST("/buy", h.buy)
	g.POST("/cancel", h.cancel)
	g.POST("/end-auction", h.endAuction)
	g.POST("/withdraw-bid", h.withdrawBid)
	g.POST("/withdraw-earnings", h.withdrawEarnings)
}

func respond(c echo.Context, tx interface{}, err error) error {
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, tx)
}

// mint
//
//	@Summary	Prepare a mint transaction
//	@Tags		tx
//	@Accept		json
//	@Produce	json
//	@Param		body	body		form.MintForm	true	"royaltyFee in basis points"
//	@Success	200		{object}	object{data=form.TxRequest}
//	@Failure	400
//	@Router		/tx/mint [post]
func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	f := &form.MintForm{}
	if err := c.Bind(f); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	f.To = f.To.ToLower()
	tx, err := h.form.Mint(ctx, f)
	return respond(c, tx, err)
}

// batchMint
//
//	@Summary	Prepare a batch mint transaction
//	@Tags		tx
//	@Accept		json
//	@Produce	json
//	@Param		body	body		form.BatchMintForm	true	"one token per uri"
//	@Success	200		{object}	object{data=form.TxRequest}
//	@Failure	400
//	@Router		/tx/batch-mint [post]
func (h *handler) batchMint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	f := &form.BatchMintForm{}
	if err := c.Bind(f); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	f.To = f.To.ToLower()
	tx, err := h.form.BatchMint(ctx, f)
	return respond(c, tx, err)
}

// list
//
//	@Summary		Prepare listing transactions
//	@Description	Returns an approve transaction first when the marketplace is not yet approved for the token
//	@Tags			tx
//	@Security		ApiKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		form.ListForm	true	"price in ether"
//	@Success		200		{object}	object{data=[]form.TxRequest}
//	@Failure		400
//	@Failure		401
//	@Router			/tx/list [post]
func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get(authMiddleware.KeyAddress).(domain.Address)

	f := &form.ListForm{}
	if err := c.Bind(f); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	f.NftAddress = f.NftAddress.ToLower()
	txs, err := h.form.List(ctx, caller.ToLower(), f)
	return respond(c, txs, err)
}

// bid
//
//	@Summary	Prepare a bid transaction
//	@Tags		tx
//	@Accept		json
//	@Produce	json
//	@Param		body	body		form.BidForm	true	"amount in ether"
//	@Success	200		{object}	object{data=form.TxRequest}
//	@Failure	400
//	@Router		/tx/bid [post]
func (h *handler) bid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	f := &form.BidForm{}
	if err := c.Bind(f); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	f.NftAddress = f.NftAddress.ToLower()
	tx, err := h.form.Bid(ctx, f)
	return respond(c, tx, err)
}

// buy
//
//	@Summary	Prepare a buy transaction
//	@Tags		tx
//	@Accept		json
//	@Produce	json
//	@Param		body	body		form.BuyForm	true	"fixed price listing"
//	@Success	200		{object}	object{data=form.TxRequest}
//	@Failure	400
//	@Router		/tx/buy [post]
func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	f := &form.BuyForm{}
	if err := c.Bind(f); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	f.NftAddress = f.NftAddress.ToLower()
	tx, err := h.form.Buy(ctx, f)
	return respond(c, tx, err)
}

func (h *handler) bindAction(c echo.Context) (*form.ListingActionForm, error) {
	f := &form.ListingActionForm{}
	if err := c.Bind(f); err != nil {
		return nil, err
	}
	f.NftAddress = f.NftAddress.ToLower()
	return f, nil
}

// cancel
//
//	@Summary	Prepare a cancelListing transaction
//	@Tags		tx
//	@Accept		json
//	@Produce	json
//	@Param		body	body		form.ListingActionForm	true	"listing"
//	@Success	200		{object}	object{data=form.TxRequest}
//	@Router		/tx/cancel [post]
func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	f, err := h.bindAction(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	tx, err := h.form.CancelListing(ctx, f)
	return respond(c, tx, err)
}

// endAuction
//
//	@Summary	Prepare an endAuction transaction
//	@Tags		tx
//	@Accept		json
//	@Produce	json
//	@Param		body	body		form.ListingActionForm	true	"auction listing"
//	@Success	200		{object}	object{data=form.TxRequest}
//	@Router		/tx/end-auction [post]
func (h *handler) endAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	f, err := h.bindAction(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	tx, err := h.form.EndAuction(ctx, f)
	return respond(c, tx, err)
}

// withdrawBid
//
//	@Summary	Prepare a withdrawBid transaction
//	@Tags		tx
//	@Accept		json
//	@Produce	json
//	@Param		body	body		form.ListingActionForm	true	"auction listing"
//	@Success	200		{object}	object{data=form.TxRequest}
//	@Router		/tx/withdraw-bid [post]
func (h *handler) withdrawBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	f, err := h.bindAction(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	tx, err := h.form.WithdrawBid(ctx, f)
	return respond(c, tx, err)
}

// withdrawEarnings
//
//	@Summary	Prepare a withdrawEarnings transaction
//	@Tags		tx
//	@Produce	json
//	@Success	200	{object}	object{data=form.TxRequest}
//	@Router		/tx/withdraw-earnings [post]
func (h *handler) withdrawEarnings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	tx, err := h.form.WithdrawEarnings(ctx)
	return respond(c, tx, err)
}
