package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/delivery"
	"github.com/andy-marketplace/goapi/domain/account"
	authMiddleware "github.com/andy-marketplace/goapi/stores/auth/delivery/http/middleware"
)

type authHandler struct {
	account            account.Usecase
	signingMsgTemplate string
}

func New(e *echo.Echo, au account.Usecase, am *authMiddleware.AuthMiddleware, template string) {
	handler := &authHandler{
		account:            au,
		signingMsgTemplate: template,
	}
	g := e.Group("/auth")
	g.POST("/refresh", handler.refresh, am.Auth())
	g.GET("/signingMsgTemplate", handler.getSigningMsgTemplate)
}

// refresh
//
//	@Summary		Refresh access token
//	@Description	Issue a new token carrying the account's current wallet
//	@Tags			auth
//	@Security		ApiKeyAuth
//	@Produce		json
//	@Success		201	{object}	object{data=account.Session}
//	@Failure		401
//	@Router			/auth/refresh [post]
func (h *authHandler) refresh(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id := c.Get(authMiddleware.KeyAccountId).(string)

	session, err := h.account.Refresh(ctx, id)
	if err != nil {
		ctx.WithField("err", err).Error("account.Refresh failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, session)
}

// getSigningMsgTemplate
//
//	@Summary		Get signature template
//	@Description	Replace %d with nonce fetched from /account/nonce to build signing message
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	object{template=string}	"signing message template"
//	@Router			/auth/signingMsgTemplate [get]
func (h *authHandler) getSigningMsgTemplate(c echo.Context) error {
	res := struct {
		Msg string `json:"template"`
	}{
		Msg: h.signingMsgTemplate,
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
