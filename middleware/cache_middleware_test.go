package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/suite"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/service/cache/provider/primitive"
)

type cacheMiddlewareSuite struct {
	suite.Suite
	e *echo.Echo
}

func TestCacheMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(cacheMiddlewareSuite))
}

func (s *cacheMiddlewareSuite) SetupTest() {
	useHttpCache(primitive.New("http-test", 8))
	s.e = echo.New()
}

func (s *cacheMiddlewareSuite) serve(mw echo.MiddlewareFunc, target string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("ctx", ctx.Background())
	s.Require().NoError(mw(h)(c))
	return rec
}

func text(body string, status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.String(status, body)
	}
}

func (s *cacheMiddlewareSuite) TestHitAfterMiss() {
	mw := CacheHttp(30 * time.Second)

	first := s.serve(mw, "/nfts?b=2&a=1", text("first", http.StatusOK))
	s.Equal(http.StatusOK, first.Code)
	s.Equal("first", first.Body.String())
	s.Equal("MISS", first.Header().Get(HeaderXCache))

	// same query in another order hits the cached body
	second := s.serve(mw, "/nfts?a=1&b=2", text("second", http.StatusOK))
	s.Equal(http.StatusOK, second.Code)
	s.Equal("first", second.Body.String())
	s.Equal("HIT", second.Header().Get(HeaderXCache))
	s.Contains(second.Header().Get(echo.HeaderContentType), "text/plain")
}

func (s *cacheMiddlewareSuite) TestDifferentPaths() {
	mw := CacheHttp(30 * time.Second)
	s.serve(mw, "/categories", text("categories", http.StatusOK))
	rec := s.serve(mw, "/nfts", text("nfts", http.StatusOK))
	s.Equal("nfts", rec.Body.String())
}

func (s *cacheMiddlewareSuite) TestErrorsNotCached() {
	mw := CacheHttp(30 * time.Second)

	rec := s.serve(mw, "/listings/active", text("down", http.StatusBadGateway))
	s.Equal(http.StatusBadGateway, rec.Code)

	rec = s.serve(mw, "/listings/active", text("up", http.StatusOK))
	s.Equal("up", rec.Body.String())
	s.Equal("MISS", rec.Header().Get(HeaderXCache))
}

func (s *cacheMiddlewareSuite) TestCacheKey() {
	a, _ := http.NewRequest(http.MethodGet, "/x?tag=b&tag=a&k=1", nil)
	b, _ := http.NewRequest(http.MethodGet, "/x?k=1&tag=a&tag=b", nil)
	c, _ := http.NewRequest(http.MethodGet, "/y?k=1&tag=a&tag=b", nil)
	s.Equal(cacheKey(a.URL), cacheKey(b.URL))
	s.NotEqual(cacheKey(a.URL), cacheKey(c.URL))
}

func (s *cacheMiddlewareSuite) TestBehindGzip() {
	e := echo.New()
	e.Use(echoMiddleware.GzipWithConfig(echoMiddleware.GzipConfig{}))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	e.GET("/categories", text("hello", http.StatusOK), CacheHttp(30*time.Second))

	get := func(acceptGzip bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		if acceptGzip {
			req.Header.Set(echo.HeaderAcceptEncoding, "gzip")
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	first := get(true)
	s.Equal("MISS", first.Header().Get(HeaderXCache))
	s.Equal("gzip", first.Header().Get(echo.HeaderContentEncoding))
	zr, err := gzip.NewReader(first.Body)
	s.Require().NoError(err)
	body, err := io.ReadAll(zr)
	s.Require().NoError(err)
	s.Equal("hello", string(body))

	plain := get(false)
	s.Equal("HIT", plain.Header().Get(HeaderXCache))
	s.Empty(plain.Header().Get(echo.HeaderContentEncoding))
	s.Equal("hello", plain.Body.String())

	zipped := get(true)
	s.Equal("HIT", zipped.Header().Get(HeaderXCache))
	s.Equal("gzip", zipped.Header().Get(echo.HeaderContentEncoding))
	zr, err = gzip.NewReader(zipped.Body)
	s.Require().NoError(err)
	body, err = io.ReadAll(zr)
	s.Require().NoError(err)
	s.Equal("hello", string(body))
}
