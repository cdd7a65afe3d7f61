package repository

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/domain"
)

// DefaultMaxBytes bounds a single fetched resource
const DefaultMaxBytes = 10 << 20

var ErrResourceTooLarge = xerrors.New("resource exceeds size limit")

// StatusError is returned when a resource server answers with a non 200 status
type StatusError struct {
	Url        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s responded %d", e.Url, e.StatusCode)
}

type HttpReaderCfg struct {
	Client   *http.Client
	Timeout  time.Duration
	Headers  map[string]string
	MaxBytes int64
}

type httpReaderRepo struct {
	client     *http.Client
	ctxTimeout time.Duration
	headers    map[string]string
	maxBytes   int64
}

func NewHttpReaderRepo(cfg *HttpReaderCfg) domain.WebResourceReaderRepository {
	return newHttpReader(cfg)
}

func newHttpReader(cfg *HttpReaderCfg) *httpReaderRepo {
	client := cfg.Client
	if client == nil {
		client = http.DefaultClient
	}
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &httpReaderRepo{
		client:     client,
		ctxTimeout: cfg.Timeout,
		headers:    cfg.Headers,
		maxBytes:   maxBytes,
	}
}

func (r *httpReaderRepo) Get(c bCtx.Ctx, url string) ([]byte, error) {
	ctx := c
	if r.ctxTimeout > 0 {
		var cancel func()
		ctx, cancel = bCtx.WithTimeout(c, r.ctxTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Warn("failed with request")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, &StatusError{Url: url, StatusCode: resp.StatusCode}
	}

	body, err := readAtMost(resp.Body, r.maxBytes)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return body, nil
}

// readAtMost fails with ErrResourceTooLarge instead of truncating
func readAtMost(r io.Reader, max int64) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > max {
		return nil, ErrResourceTooLarge
	}
	return body, nil
}

type ipfsGatewayReaderRepo struct {
	*httpReaderRepo
	gateway string
}

// NewIpfsGatewayReaderRepo reads "<cid>[/path]" through an http gateway such as https://ipfs.io/ipfs
func NewIpfsGatewayReaderRepo(cfg *HttpReaderCfg, gateway string) domain.WebResourceReaderRepository {
	return &ipfsGatewayReaderRepo{
		httpReaderRepo: newHttpReader(cfg),
		gateway:        strings.TrimRight(gateway, "/"),
	}
}

func (r *ipfsGatewayReaderRepo) Get(c bCtx.Ctx, cid string) ([]byte, error) {
	return r.httpReaderRepo.Get(c, fmt.Sprintf("%s/%s", r.gateway, strings.TrimLeft(cid, "/")))
}
