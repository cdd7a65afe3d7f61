package ens

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/service/cache"
	"github.com/andy-marketplace/goapi/service/cache/provider/primitive"
)

type fakeResolver struct {
	names    map[string]string
	reverse  map[domain.Address]string
	calls    int
	failWith error
}

func (f *fakeResolver) Resolve(name string) (string, error) {
	f.calls++
	if f.failWith != nil {
		return "", f.failWith
	}
	addr, ok := f.names[name]
	if !ok {
		return "", errors.New("unregistered name")
	}
	return addr, nil
}

func (f *fakeResolver) ReverseResolve(address domain.Address) (string, error) {
	f.calls++
	if f.failWith != nil {
		return "", f.failWith
	}
	name, ok := f.reverse[address.ToLower()]
	if !ok {
		return "", errors.New("not a resolver")
	}
	return name, nil
}

type ensSuite struct {
	suite.Suite
	resolver *fakeResolver
	im       *impl
}

func TestENS(t *testing.T) {
	suite.Run(t, new(ensSuite))
}

func (s *ensSuite) SetupTest() {
	s.resolver = &fakeResolver{
		names:   map[string]string{"andy.eth": "0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872"},
		reverse: map[domain.Address]string{"0x020ca66c30bec2c4fe3861a94e4db4a498a35872": "andy.eth"},
	}
	s.im = &impl{
		resolver: s.resolver,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   "ens-test",
			Cache: primitive.New("ens-test", 4),
		}),
	}
}

func (s *ensSuite) TestResolve() {
	res, err := s.im.Resolve(ctx.Background(), "andy.eth")
	s.Require().NoError(err)
	s.Equal(domain.Address("0x020ca66c30bec2c4fe3861a94e4db4a498a35872"), res)

	// served from cache
	_, err = s.im.Resolve(ctx.Background(), "andy.eth")
	s.Require().NoError(err)
	s.Equal(1, s.resolver.calls)
}

func (s *ensSuite) TestResolveUnregistered() {
	res, err := s.im.Resolve(ctx.Background(), "nobody.eth")
	s.Require().NoError(err)
	s.Empty(res)
}

func (s *ensSuite) TestReverseResolve() {
	name, err := s.im.ReverseResolve(ctx.Background(), "0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872")
	s.Require().NoError(err)
	s.Equal("andy.eth", name)

	name, err = s.im.ReverseResolve(ctx.Background(), "0x0000000000000000000000000000000000000001")
	s.Require().NoError(err)
	s.Empty(name)
}

func (s *ensSuite) TestRpcError() {
	s.resolver.failWith = errors.New("connection refused")
	_, err := s.im.ReverseResolve(ctx.Background(), "0x0000000000000000000000000000000000000002")
	s.Error(err)
}
