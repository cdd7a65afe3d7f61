package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/service/ens/mocks"
)

func newContext(path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), rec)
	c.Set("ctx", ctx.Background())
	return c, rec
}

func TestReverseResolve(t *testing.T) {
	req := require.New(t)
	m := mocks.NewENS(t)
	h := &handler{m}

	m.On("ReverseResolve", mock.Anything, domain.Address("0xd8da6bf26964af9d7eed9e03e53415d37aa96045")).Return("vitalik.eth", nil).Once()

	c, rec := newContext("/")
	c.SetParamNames("address")
	c.SetParamValues("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	req.NoError(h.reverseResolve(c))
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `"vitalik.eth"`)
}

func TestResolve(t *testing.T) {
	req := require.New(t)
	m := mocks.NewENS(t)
	h := &handler{m}

	m.On("Resolve", mock.Anything, "broken.eth").Return(domain.Address(""), errors.New("rpc down")).Once()

	c, rec := newContext("/")
	c.SetParamNames("name")
	c.SetParamValues("broken.eth")
	req.NoError(h.resolve(c))
	req.Equal(http.StatusInternalServerError, rec.Code)
}
