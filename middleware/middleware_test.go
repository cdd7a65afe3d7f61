package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/andy-marketplace/goapi/base/ctx"
)

func TestIsValidAddress(t *testing.T) {
	req := require.New(t)
	e := echo.New()
	ok := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	for addr, code := range map[string]int{
		"0x00000000000000000000000000000000000000aa": http.StatusNoContent,
		"0xabc":       http.StatusBadRequest,
		"not-an-addr": http.StatusBadRequest,
	} {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		c.SetParamNames("nftAddress")
		c.SetParamValues(addr)
		req.NoError(IsValidAddress("nftAddress")(ok)(c))
		req.Equal(code, rec.Code, addr)
	}
}

func TestAddContextAndResponseLogger(t *testing.T) {
	req := require.New(t)
	m := InitMiddleware("test")
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/nfts", nil), rec)
	c.Response().Header().Set(echo.HeaderXRequestID, "req-1")

	var seen ctx.Ctx
	h := func(c echo.Context) error {
		seen, _ = c.Get("ctx").(ctx.Ctx)
		return echo.NewHTTPError(http.StatusTeapot, errors.New("short and stout"))
	}
	req.NoError(m.ResponseLogger()(m.AddContext()(h))(c))
	req.NotNil(seen)
	req.Equal("req-1", seen.Value("requestID"))
	req.Equal(http.StatusTeapot, rec.Code)
}
