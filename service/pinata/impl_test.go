package pinata

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/andy-marketplace/goapi/base/ctx"
)

type pinataSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	last    *http.Request
	body    []byte
	form    map[string]string
}

func TestPinata(t *testing.T) {
	suite.Run(t, new(pinataSuite))
}

func (s *pinataSuite) SetupTest() {
	s.last, s.body, s.form = nil, nil, map[string]string{}
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"IpfsHash":"QmHash","PinSize":10}`))
	}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.last = r
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			s.Require().NoError(r.ParseMultipartForm(1 << 20))
			for k, v := range r.MultipartForm.Value {
				s.form[k] = v[0]
			}
			if files := r.MultipartForm.File["file"]; len(files) > 0 {
				f, err := files[0].Open()
				s.Require().NoError(err)
				content, _ := io.ReadAll(f)
				s.form["file"] = string(content)
				s.form["filename"] = files[0].Filename
			}
		} else {
			s.body, _ = io.ReadAll(r.Body)
		}
		s.handler(w, r)
	}))
}

func (s *pinataSuite) TearDownTest() {
	s.server.Close()
}

func (s *pinataSuite) service(cfg Config) Service {
	cfg.Endpoint = s.server.URL
	return New(cfg)
}

func (s *pinataSuite) TestPinFile() {
	svc := s.service(Config{Jwt: "token"})

	hash, err := svc.Pin(
		ctx.Background(),
		strings.NewReader("image-bytes"),
		"cat.png",
		WithMetadata(PinataMetadata{Name: "cat.png"}),
		WithOptions(PinataOptions{CidVersion: CidVersion_0}),
	)
	s.Require().NoError(err)
	s.Equal("QmHash", hash)

	s.Equal(pinPath, s.last.URL.Path)
	s.Equal("Bearer token", s.last.Header.Get("Authorization"))
	s.Equal("image-bytes", s.form["file"])
	s.Equal("cat.png", s.form["filename"])
	s.JSONEq(`{"name":"cat.png"}`, s.form["pinataMetadata"])
	s.JSONEq(`{"cidVersion":0}`, s.form["pinataOptions"])
}

func (s *pinataSuite) TestPinJson() {
	svc := s.service(Config{ApiKey: "key", ApiSecret: "secret"})

	hash, err := svc.PinJson(
		ctx.Background(),
		map[string]interface{}{"name": "Cat"},
		WithMetadata(PinataMetadata{Name: "Cat Metadata"}),
		WithOptions(PinataOptions{CidVersion: CidVersion_1}),
	)
	s.Require().NoError(err)
	s.Equal("QmHash", hash)

	s.Equal(pinJsonPath, s.last.URL.Path)
	s.Equal("key", s.last.Header.Get("pinata_api_key"))
	s.Equal("secret", s.last.Header.Get("pinata_secret_api_key"))
	s.Empty(s.last.Header.Get("Authorization"))

	payload := map[string]interface{}{}
	s.Require().NoError(json.Unmarshal(s.body, &payload))
	s.Equal(map[string]interface{}{"name": "Cat"}, payload["pinataContent"])
	s.Equal(map[string]interface{}{"name": "Cat Metadata"}, payload["pinataMetadata"])
	s.Equal(map[string]interface{}{"cidVersion": float64(1)}, payload["pinataOptions"])
}

func (s *pinataSuite) TestUpstreamError() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid key"}`))
	}
	svc := s.service(Config{Jwt: "bad"})

	_, err := svc.PinJson(ctx.Background(), map[string]string{"name": "x"})
	s.Require().Error(err)
	s.ErrorIs(err, ErrRequestFailed)

	var reqErr *RequestError
	s.Require().True(errors.As(err, &reqErr))
	s.Equal(http.StatusUnauthorized, reqErr.StatusCode)
	s.Contains(reqErr.Body, "invalid key")
}

func (s *pinataSuite) TestNoCredentials() {
	svc := s.service(Config{})
	_, err := svc.PinJson(ctx.Background(), map[string]string{"name": "x"})
	s.ErrorIs(err, ErrNoCredentials)
	s.Nil(s.last)
}

func (s *pinataSuite) TestGatewayUrl() {
	s.Equal("https://gateway.pinata.cloud/ipfs/QmHash", New(Config{}).GatewayUrl("QmHash"))
	s.Equal("https://my.gateway/ipfs/QmHash", New(Config{GatewayUrl: "https://my.gateway/ipfs"}).GatewayUrl("QmHash"))
}
