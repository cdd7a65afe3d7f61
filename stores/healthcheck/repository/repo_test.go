package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/service/redis/mocks"
)

func TestPingRedis(t *testing.T) {
	req := require.New(t)
	r := mocks.NewService(t)
	im := &impl{redis: r}

	var written []byte
	r.On("Name").Return("cache")
	r.On("Set", mock.Anything, "healthcheck:cache", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { written = args.Get(2).([]byte) }).
		Return(nil).Once()
	r.On("Get", mock.Anything, "healthcheck:cache").
		Return(func(ctx.Ctx, string) []byte { return written }, nil).Once()

	req.NoError(im.pingRedis(ctx.Background()))
	req.NotEmpty(written)
}

func TestPingRedisSetFails(t *testing.T) {
	r := mocks.NewService(t)
	im := &impl{redis: r}

	r.On("Name").Return("cache")
	r.On("Set", mock.Anything, "healthcheck:cache", mock.Anything, mock.Anything).
		Return(errors.New("connection refused")).Once()

	require.EqualError(t, im.pingRedis(ctx.Background()), "connection refused")
}
