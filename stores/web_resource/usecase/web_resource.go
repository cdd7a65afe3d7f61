package usecase

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	bCtx "github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/domain"
)

const (
	ipfsPrefix         = "ipfs://"
	defaultHttpGateway = "https://gateway.pinata.cloud/ipfs/"
)

var (
	gatewayPrefixes = []string{
		"https://gateway.pinata.cloud/ipfs/",
		"https://ipfs.io/ipfs/",
		"https://cloudflare-ipfs.com/ipfs/",
		"https://dweb.link/ipfs/",
	}
	dedicatedPinataRegex = regexp.MustCompile(`^https://[^/]+\.mypinata\.cloud/ipfs/`)
)

type WebResourceUseCaseCfg struct {
	HttpReader    domain.WebResourceReaderRepository
	IpfsReader    domain.WebResourceReaderRepository
	DataUriReader domain.WebResourceReaderRepository
	// StorageWriter is optional; Store fails with ErrNotFound without it
	StorageWriter domain.WebResourceWriterRepository
	// HttpGateway prefixes cids in HttpUrl
	HttpGateway string
}

type webResourceUseCase struct {
	readers       map[string]domain.WebResourceReaderRepository
	storageWriter domain.WebResourceWriterRepository
	httpGateway   string
}

func NewWebResourceUseCase(cfg *WebResourceUseCaseCfg) domain.WebResourceUseCase {
	gateway := cfg.HttpGateway
	if len(gateway) == 0 {
		gateway = defaultHttpGateway
	}
	return &webResourceUseCase{
		readers: map[string]domain.WebResourceReaderRepository{
			"https": cfg.HttpReader,
			"http":  cfg.HttpReader,
			"ipfs":  cfg.IpfsReader,
			"data":  cfg.DataUriReader,
		},
		storageWriter: cfg.StorageWriter,
		httpGateway:   strings.TrimRight(gateway, "/") + "/",
	}
}

func (u *webResourceUseCase) Get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	return u.get(c, rawUrl, true)
}

func (u *webResourceUseCase) GetJson(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	data, err := u.get(c, rawUrl, true)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		c.WithFields(log.Fields{
			"url": rawUrl,
		}).Error("invalid json")
		return nil, domain.ErrInvalidJsonFormat
	}
	return data, nil
}

func (u *webResourceUseCase) get(c bCtx.Ctx, rawUrl string, fallback bool) ([]byte, error) {
	pUrl, err := url.Parse(rawUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Error("url.Parse failed")
		return nil, err
	}

	reader, ok := u.readers[pUrl.Scheme]
	if !ok || reader == nil {
		return nil, domain.ErrUnsupportedSchema
	}

	target := rawUrl
	if pUrl.Scheme == "ipfs" {
		target = cidPath(rawUrl)
	}

	data, err := reader.Get(c, target)
	if err == nil {
		return data, nil
	}

	// a flaky public gateway is retried through our own ipfs reader
	if fallback && pUrl.Scheme == "https" {
		if ipfsUrl := toIpfsUrl(rawUrl); len(ipfsUrl) > 0 {
			c.WithFields(log.Fields{
				"url":     rawUrl,
				"ipfsUrl": ipfsUrl,
			}).Info("falling back to ipfs")
			return u.get(c, ipfsUrl, false)
		}
	}

	c.WithFields(log.Fields{
		"schema": pUrl.Scheme,
		"url":    rawUrl,
		"err":    err,
	}).Error("failed to fetch")
	return nil, err
}

func (u *webResourceUseCase) Store(c bCtx.Ctx, path string, data []byte, contentType string) (string, error) {
	if u.storageWriter == nil {
		return "", domain.ErrNotFound
	}
	url, err := u.storageWriter.Store(c, path, data, contentType)
	if err != nil {
		c.WithFields(log.Fields{
			"path": path,
			"err":  err,
		}).Error("storageWriter.Store failed")
		return "", err
	}
	return url, nil
}

func (u *webResourceUseCase) HttpUrl(rawUrl string) string {
	if strings.HasPrefix(rawUrl, ipfsPrefix) {
		return u.httpGateway + cidPath(rawUrl)
	}
	return rawUrl
}

// cidPath strips the ipfs scheme, including the ipfs://ipfs/ form some minters emit
func cidPath(rawUrl string) string {
	p := strings.TrimPrefix(rawUrl, ipfsPrefix)
	return strings.TrimPrefix(p, "ipfs/")
}

// toIpfsUrl maps a known public gateway url back to ipfs://
func toIpfsUrl(rawUrl string) string {
	for _, p := range gatewayPrefixes {
		if strings.HasPrefix(rawUrl, p) {
			return ipfsPrefix + strings.TrimPrefix(rawUrl, p)
		}
	}
	if dedicatedPinataRegex.MatchString(rawUrl) {
		return dedicatedPinataRegex.ReplaceAllLiteralString(rawUrl, ipfsPrefix)
	}
	return ""
}
