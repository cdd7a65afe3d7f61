package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/delivery"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/account"
)

const (
	KeyAccountId = "accountId"
	KeyAddress   = "address"
)

type AuthMiddleware struct {
	auth domain.AuthUsecase
}

func New(auth domain.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

// Auth requires a bearer token and stores accountId and address on the echo context
func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

// RequireWallet rejects accounts without a linked wallet. Use after Auth.
func (m *AuthMiddleware) RequireWallet() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if address, _ := c.Get(KeyAddress).(domain.Address); address.IsEmpty() {
				return delivery.MakeJsonResp(c, http.StatusForbidden, account.ErrNoWallet)
			}
			return next(c)
		}
	}
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	claims, err := m.auth.ParseToken(ctx, key)
	if err != nil {
		ctx.WithField("err", err).Warn("auth.ParseToken failed")
		return false, nil
	}
	c.Set(KeyAccountId, claims.AccountId)
	c.Set(KeyAddress, claims.Address)
	return true, nil
}
