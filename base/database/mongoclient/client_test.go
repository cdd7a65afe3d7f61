package mongoclient

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolSize(t *testing.T) {
	req := require.New(t)
	cpu := runtime.NumCPU()

	req.Equal(uint64(2*cpu), Config{PoolMultiplier: 2}.poolSize(1))
	// split across hosts, rounded up
	req.Equal(uint64((2*cpu+2)/3), Config{PoolMultiplier: 2}.poolSize(3))
	// never below one connection per host
	req.Equal(uint64(1), Config{}.poolSize(0))
	req.Equal(uint64(1), Config{}.poolSize(4))
}

func TestClientOptions(t *testing.T) {
	req := require.New(t)

	opts, cs, err := Config{
		URI:            "mongodb://user:pw@h1:27017,h2:27017/market",
		AuthDBName:     "admin",
		PoolMultiplier: 1,
		Majority:       true,
	}.clientOptions()
	req.NoError(err)
	req.Len(cs.Hosts, 2)
	req.Equal("admin", opts.Auth.AuthSource)
	req.Equal("user", opts.Auth.Username)
	req.NotNil(opts.WriteConcern)
	req.True(*opts.RetryWrites)

	opts, _, err = Config{URI: "mongodb://user:pw@h1/market?authSource=other"}.clientOptions()
	req.NoError(err)
	req.Equal("other", opts.Auth.AuthSource)

	_, _, err = Config{URI: "http://nope"}.clientOptions()
	req.Error(err)
}
