package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/delivery"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/middleware"
	"github.com/andy-marketplace/goapi/service/ens"
)

type handler struct {
	ens ens.ENS
}

func New(e *echo.Echo, ens ens.ENS) {
	h := &handler{ens}

	g := e.Group("/ens")
	g.GET("/resolve/:name", h.resolve)
	g.GET("/reverse-resolve/:address", h.reverseResolve, middleware.IsValidAddress("address"))
}

// resolve
//
//	@Summary	Resolve an ENS name
//	@Tags		ens
//	@Produce	json
//	@Param		name	path		string	true	"e.g. vitalik.eth"
//	@Success	200		{object}	object{data=domain.Address}	"empty when unregistered"
//	@Router		/ens/resolve/{name} [get]
func (h *handler) resolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	name := c.Param("name")
	if len(name) == 0 {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	address, err := h.ens.Resolve(ctx, name)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, address)
}

// reverseResolve
//
//	@Summary	Primary ENS name of an address
//	@Tags		ens
//	@Produce	json
//	@Param		address	path		string	true	"wallet address"
//	@Success	200		{object}	object{data=string}	"empty without a reverse record"
//	@Failure	400
//	@Router		/ens/reverse-resolve/{address} [get]
func (h *handler) reverseResolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := domain.Address(c.Param("address")).ToLower()
	name, err := h.ens.ReverseResolve(ctx, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, name)
}
