package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/delivery"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/base/metrics"
	"github.com/andy-marketplace/goapi/base/validator"
)

// GoMiddleware holds the request middlewares shared by the binaries
type GoMiddleware struct {
	met metrics.Service
}

// InitMiddleware reports request metrics under service
func InitMiddleware(service string) *GoMiddleware {
	return &GoMiddleware{met: metrics.New(service + ".http")}
}

// AddContext puts a ctx.Ctx tagged with the request id under "ctx"
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqId := c.Response().Header().Get(echo.HeaderXRequestID)
			c.Set("ctx", ctx.WithValue(ctx.Background(), "requestID", reqId))
			return next(c)
		}
	}
}

// ResponseLogger logs one line per request; 4xx and 5xx include the handler error
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req, res := c.Request(), c.Response()
			ms := time.Since(start).Seconds() * 1000
			m.met.BumpHistogram("request.ms", ms, "method", req.Method, "path", c.Path(), "status", strconv.Itoa(res.Status))

			fields := log.Fields{
				"ms":         ms,
				"httpStatus": res.Status,
				"httpMethod": req.Method,
				"uri":        req.URL.RequestURI(),
				"route":      c.Path(),
				"size":       res.Size,
				"remoteIP":   c.RealIP(),
				"userAgent":  req.UserAgent(),
				"referer":    req.Referer(),
			}
			if res.Status >= http.StatusBadRequest {
				fields["nextErr"] = err
			}

			l, ok := c.Get("ctx").(ctx.Ctx)
			if !ok {
				l = ctx.Background()
			}
			l.WithFields(fields).Info("response")
			return nil
		}
	}
}

// IsValidAddress rejects requests whose path param is not a hex address
func IsValidAddress(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !validator.IsValidAddress(c.Param(param)) {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid address")
			}
			return next(c)
		}
	}
}
