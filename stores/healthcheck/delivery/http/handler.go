package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/delivery"
	hcdomain "github.com/andy-marketplace/goapi/domain/healthcheck"
)

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	handler := &healthCheckHandler{
		healthCheck: us,
	}
	e.GET("/health", handler.check)
}

// check
//
//	@Summary	Storage ping and tracker checkpoints
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	object{data=healthcheck.Status}
//	@Failure	503	{object}	object{data=healthcheck.Status}
//	@Failure	500
//	@Router		/health [get]
func (h *healthCheckHandler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	status, err := h.healthCheck.Check(context)
	if errors.Is(err, hcdomain.ErrUnhealthy) {
		return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, status)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, status)
}
