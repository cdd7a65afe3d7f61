package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/xerrors"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
)

const defaultTokenTtl = 24 * time.Hour

var ErrInvalidToken = xerrors.New("invalid token")

type impl struct {
	jwtSecret []byte
	ttl       time.Duration
	now       func() time.Time
}

func New(jwtSecret string, ttl time.Duration) domain.AuthUsecase {
	if ttl <= 0 {
		ttl = defaultTokenTtl
	}
	return &impl{
		jwtSecret: []byte(jwtSecret),
		ttl:       ttl,
		now:       time.Now,
	}
}

func (im *impl) SignToken(ctx ctx.Ctx, accountId string, address domain.Address) (string, error) {
	now := im.now()
	claims := domain.JwtCustomClaims{
		AccountId: accountId,
		Address:   address.ToLower(),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(im.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (*domain.JwtCustomClaims, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return nil, xerrors.Errorf("%v: %w", err, ErrInvalidToken)
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid && len(claims.AccountId) > 0 {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
