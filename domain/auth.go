package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/andy-marketplace/goapi/base/ctx"
)

type JwtCustomClaims struct {
	AccountId string  `json:"sub_id"`
	Address   Address `json:"data"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	SignToken(ctx ctx.Ctx, accountId string, address Address) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (*JwtCustomClaims, error)
}
