package usecase

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
)

func TestSignAndParseToken(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	u := New("jwt-secret", time.Hour)
	tkn, err := u.SignToken(c, "account-id", "0xABC")
	req.NoError(err)
	req.NotEmpty(tkn)

	claims, err := u.ParseToken(c, tkn)
	req.NoError(err)
	req.Equal("account-id", claims.AccountId)
	req.Equal(domain.Address("0xabc"), claims.Address)
}

func TestParseTokenWrongSecret(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	tkn, err := New("one", time.Hour).SignToken(c, "account-id", "")
	req.NoError(err)

	_, err = New("two", time.Hour).ParseToken(c, tkn)
	req.ErrorIs(err, ErrInvalidToken)
}

func TestParseTokenExpired(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	u := New("jwt-secret", time.Hour).(*impl)
	u.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tkn, err := u.SignToken(c, "account-id", "")
	req.NoError(err)

	_, err = u.ParseToken(c, tkn)
	req.ErrorIs(err, ErrInvalidToken)
}

func TestParseTokenWithoutAccount(t *testing.T) {
	req := require.New(t)
	tkn, err := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.JwtCustomClaims{}).SignedString([]byte("jwt-secret"))
	req.NoError(err)

	_, err = New("jwt-secret", time.Hour).ParseToken(ctx.Background(), tkn)
	req.ErrorIs(err, ErrInvalidToken)
}
