package repository

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/andy-marketplace/goapi/base/ctx"
)

func newResourceServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ipfs/QmMeta/1.json", "/metadata.json":
			if r.Header.Get("X-Api-Key") == "secret" {
				w.Header().Set("X-Seen-Key", "1")
			}
			_, _ = w.Write([]byte(`{"name":"Cat","image":"ipfs://QmImage"}`))
		case "/large":
			_, _ = w.Write([]byte(strings.Repeat("a", 64)))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func Test_httpReaderRepo_Get(t *testing.T) {
	req := require.New(t)
	srv := newResourceServer()
	defer srv.Close()

	ctx := bCtx.Background()
	r := NewHttpReaderRepo(&HttpReaderCfg{
		Client:  srv.Client(),
		Timeout: 5 * time.Second,
		Headers: map[string]string{"X-Api-Key": "secret"},
	})

	b, err := r.Get(ctx, srv.URL+"/metadata.json")
	req.NoError(err)
	req.JSONEq(`{"name":"Cat","image":"ipfs://QmImage"}`, string(b))

	_, err = r.Get(ctx, srv.URL+"/missing")
	var statusErr *StatusError
	req.True(errors.As(err, &statusErr))
	req.Equal(http.StatusNotFound, statusErr.StatusCode)
}

func Test_httpReaderRepo_MaxBytes(t *testing.T) {
	req := require.New(t)
	srv := newResourceServer()
	defer srv.Close()

	r := NewHttpReaderRepo(&HttpReaderCfg{Client: srv.Client(), MaxBytes: 32})
	_, err := r.Get(bCtx.Background(), srv.URL+"/large")
	req.ErrorIs(err, ErrResourceTooLarge)

	r = NewHttpReaderRepo(&HttpReaderCfg{Client: srv.Client(), MaxBytes: 64})
	b, err := r.Get(bCtx.Background(), srv.URL+"/large")
	req.NoError(err)
	req.Len(b, 64)
}

func Test_ipfsGatewayReaderRepo_Get(t *testing.T) {
	req := require.New(t)
	srv := newResourceServer()
	defer srv.Close()

	r := NewIpfsGatewayReaderRepo(&HttpReaderCfg{Client: srv.Client(), Timeout: time.Second}, srv.URL+"/ipfs/")
	b, err := r.Get(bCtx.Background(), "QmMeta/1.json")
	req.NoError(err)
	req.Contains(string(b), `"Cat"`)

	_, err = r.Get(bCtx.Background(), "QmMissing")
	req.Error(err)
}
