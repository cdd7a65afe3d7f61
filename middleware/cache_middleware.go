package middleware

import (
	"bufio"
	"bytes"
	"hash/fnv"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/service/cache"
	"github.com/andy-marketplace/goapi/service/cache/provider"
	"github.com/andy-marketplace/goapi/service/cache/provider/compound"
	"github.com/andy-marketplace/goapi/service/cache/provider/primitive"
	redisCache "github.com/andy-marketplace/goapi/service/cache/provider/redis"
	"github.com/andy-marketplace/goapi/service/redis"
)

const (
	httpCachePfx = "httpCache"
	// HeaderXCache reports HIT or MISS on cached routes
	HeaderXCache = "X-Cache"
	localHttpTtl = 10 * time.Second
)

var httpCache provider.Provider

// perRequestHeaders are set again on every request, the encoding ones by the gzip middleware.
// The stored body is always the uncompressed one.
var perRequestHeaders = []string{
	HeaderXCache,
	echo.HeaderXRequestID,
	echo.HeaderContentEncoding,
	echo.HeaderContentLength,
	echo.HeaderVary,
}

// SetupCache backs CacheHttp with a small in-process layer in front of redis.
// Responses too large for the local layer are only kept in redis.
func SetupCache(r redis.Service) {
	useHttpCache(compound.New(
		compound.Layer{Provider: primitive.New(httpCachePfx, 256), MaxTtl: localHttpTtl},
		compound.Layer{Provider: redisCache.New(r)},
	))
}

func useHttpCache(p provider.Provider) {
	httpCache = p
}

// Response is what CacheHttp stores per url
type Response struct {
	Status int         `json:"status"`
	Header http.Header `json:"header"`
	Body   []byte      `json:"body"`
}

// teeWriter copies the body into buf while it goes out to the client
type teeWriter struct {
	http.ResponseWriter
	buf    *bytes.Buffer
	status int
}

func (w *teeWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *teeWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *teeWriter) Flush() {
	w.ResponseWriter.(http.Flusher).Flush()
}

func (w *teeWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return w.ResponseWriter.(http.Hijacker).Hijack()
}

// cacheKey hashes path and query with every value list sorted
func cacheKey(u *url.URL) string {
	params := u.Query()
	for _, vals := range params {
		sort.Strings(vals)
	}
	h := fnv.New64a()
	h.Write([]byte(u.Path))
	h.Write([]byte{'?'})
	// Encode sorts by key
	h.Write([]byte(params.Encode()))
	return strconv.FormatUint(h.Sum64(), 36)
}

// CacheHttp serves successful GET responses from the http cache for ttl
func CacheHttp(ttl time.Duration) echo.MiddlewareFunc {
	if httpCache == nil {
		panic("need SetupCache before using CacheHttp")
	}
	svc := cache.New(cache.ServiceConfig{
		Ttl:   ttl,
		Pfx:   httpCachePfx,
		Cache: httpCache,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cctx := c.Get("ctx").(ctx.Ctx)
			key := cacheKey(c.Request().URL)

			hit := Response{}
			err := svc.Get(cctx, key, &hit)
			if err == nil {
				for k, v := range hit.Header {
					c.Response().Header()[k] = v
				}
				c.Response().Header().Set(HeaderXCache, "HIT")
				c.Response().WriteHeader(hit.Status)
				_, err := c.Response().Write(hit.Body)
				return err
			} else if err != cache.ErrNotFound {
				cctx.WithField("err", err).Warn("http cache read failed")
			}

			c.Response().Header().Set(HeaderXCache, "MISS")
			w := &teeWriter{ResponseWriter: c.Response().Writer, buf: new(bytes.Buffer)}
			c.Response().Writer = w
			if err := next(c); err != nil {
				c.Error(err)
			}

			status := w.status
			if status == 0 {
				status = http.StatusOK
			}
			if status >= http.StatusBadRequest {
				return nil
			}
			header := w.Header().Clone()
			for _, h := range perRequestHeaders {
				header.Del(h)
			}
			if err := svc.Set(cctx, key, Response{Status: status, Header: header, Body: w.buf.Bytes()}); err != nil {
				cctx.WithFields(log.Fields{
					"err": err,
					"url": c.Request().URL.String(),
				}).Warn("http cache write failed")
			}
			return nil
		}
	}
}
