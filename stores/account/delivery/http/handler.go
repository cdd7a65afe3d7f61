package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/delivery"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/account"
	authMiddleware "github.com/andy-marketplace/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	au account.Usecase
}

func New(e *echo.Echo, au account.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		au: au,
	}
	g := e.Group("/account")
	g.POST("/sign-up", h.signUp)
	g.POST("/sign-in", h.signIn)

	// self
	g.GET("/me", h.me, authMiddleware.Auth())
	g.GET("/nonce", h.generateNonce, authMiddleware.Auth())
	g.POST("/wallet", h.linkWallet, authMiddleware.Auth())
}

func accountErrorStatus(err error) int {
	switch err {
	case domain.ErrInvalidCredentials:
		return http.StatusUnauthorized
	case account.ErrInvalidNonce, account.ErrInvalidSignature:
		return http.StatusForbidden
	case domain.ErrConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// signUp
//
//	@Summary		Create account
//	@Description	Validates the form, creates an account and returns a session token
//	@Tags			account
//	@Accept			json
//	@Produce		json
//	@Param			form	body		account.SignUpForm	true	"sign up form"
//	@Success		201		{object}	object{data=account.Session}
//	@Failure		400
//	@Failure		409
//	@Router			/account/sign-up [post]
func (h *handler) signUp(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	form := &account.SignUpForm{}
	if err := c.Bind(form); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	session, err := h.au.SignUp(ctx, form)
	if err != nil {
		return delivery.MakeJsonResp(c, accountErrorStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, session)
}

// signIn
//
//	@Summary		Sign in
//	@Tags			account
//	@Accept			json
//	@Produce		json
//	@Param			form	body		account.SignInForm	true	"sign in form"
//	@Success		200		{object}	object{data=account.Session}
//	@Failure		401
//	@Router			/account/sign-in [post]
func (h *handler) signIn(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	form := &account.SignInForm{}
	if err := c.Bind(form); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	session, err := h.au.SignIn(ctx, form)
	if err != nil {
		return delivery.MakeJsonResp(c, accountErrorStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, session)
}

// me
//
//	@Summary	Get current account
//	@Tags		account
//	@Security	ApiKeyAuth
//	@Produce	json
//	@Success	200	{object}	object{data=account.Info}
//	@Router		/account/me [get]
func (h *handler) me(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id := c.Get(authMiddleware.KeyAccountId).(string)

	info, err := h.au.Get(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, info)
}

// generateNonce
//
//	@Summary		Get nonce for wallet linking
//	@Description	Fill the nonce into /auth/signingMsgTemplate and sign the result with the wallet
//	@Tags			account
//	@Security		ApiKeyAuth
//	@Produce		json
//	@Success		200	{object}	object{data=int32}
//	@Router			/account/nonce [get]
func (h *handler) generateNonce(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id := c.Get(authMiddleware.KeyAccountId).(string)

	nonce, err := h.au.GenerateNonce(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nonce)
}

// linkWallet
//
//	@Summary		Link wallet
//	@Description	Links the signer address to the account and returns a session carrying it
//	@Tags			account
//	@Security		ApiKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.linkWallet.payload	true	"wallet and signature"
//	@Success		200		{object}	object{data=account.Session}
//	@Failure		403
//	@Router			/account/wallet [post]
func (h *handler) linkWallet(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id := c.Get(authMiddleware.KeyAccountId).(string)

	type payload struct {
		Address   domain.Address `json:"address" example:"0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d"`
		Signature string         `json:"signature"`
	}
	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Address.IsEmpty() || p.Signature == "" {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if _, err := h.au.LinkWallet(ctx, id, p.Address, p.Signature); err != nil {
		return delivery.MakeJsonResp(c, accountErrorStatus(err), err)
	}
	session, err := h.au.Refresh(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, session)
}
