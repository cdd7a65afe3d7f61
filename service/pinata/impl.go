package pinata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
)

const (
	pinPath     = "/pinning/pinFileToIPFS"
	pinJsonPath = "/pinning/pinJSONToIPFS"
)

type Config struct {
	Endpoint   string
	GatewayUrl string
	// Jwt takes precedence over the api key pair
	Jwt       string
	ApiKey    string
	ApiSecret string
	Timeout   time.Duration
}

type pinataImpl struct {
	cfg    Config
	client *http.Client
}

func New(cfg Config) Service {
	if len(cfg.Endpoint) == 0 {
		cfg.Endpoint = DefaultEndpoint
	}
	if len(cfg.GatewayUrl) == 0 {
		cfg.GatewayUrl = DefaultGatewayUrl
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = time.Minute
	}
	return &pinataImpl{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (im *pinataImpl) GatewayUrl(hash string) string {
	return strings.TrimRight(im.cfg.GatewayUrl, "/") + "/" + hash
}

func (im *pinataImpl) Pin(c ctx.Ctx, file io.Reader, filename string, optFns ...Options) (string, error) {
	opts, err := GetPinOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("GetPinOptions failed")
		return "", err
	}

	var b bytes.Buffer

	w := multipart.NewWriter(&b)
	if fw, err := w.CreateFormFile("file", filename); err != nil {
		c.WithField("err", err).Error("w.CreateFormFile failed")
		return "", err
	} else if _, err := io.Copy(fw, file); err != nil {
		c.WithField("err", err).Error("io.Copy failed")
		return "", err
	}

	if opts.Metadata != nil {
		if err := writeJsonField(w, "pinataMetadata", opts.Metadata); err != nil {
			c.WithField("err", err).Error("writeJsonField failed")
			return "", err
		}
	}

	if opts.Options != nil {
		if err := writeJsonField(w, "pinataOptions", opts.Options); err != nil {
			c.WithField("err", err).Error("writeJsonField failed")
			return "", err
		}
	}

	if err := w.Close(); err != nil {
		c.WithField("err", err).Error("w.Close failed")
		return "", err
	}

	return im.post(c, pinPath, w.FormDataContentType(), &b)
}

func (im *pinataImpl) PinJson(c ctx.Ctx, value interface{}, optFns ...Options) (string, error) {
	opts, err := GetPinOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("GetPinOptions failed")
		return "", err
	}

	opts.PinataContent = value

	body, err := json.Marshal(opts)
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return "", err
	}

	return im.post(c, pinJsonPath, "application/json", bytes.NewBuffer(body))
}

func writeJsonField(w *multipart.Writer, field string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return w.WriteField(field, string(b))
}

func (im *pinataImpl) setAuth(req *http.Request) error {
	if len(im.cfg.Jwt) > 0 {
		req.Header.Set("Authorization", "Bearer "+im.cfg.Jwt)
		return nil
	}
	if len(im.cfg.ApiKey) == 0 || len(im.cfg.ApiSecret) == 0 {
		return ErrNoCredentials
	}
	req.Header.Set("pinata_api_key", im.cfg.ApiKey)
	req.Header.Set("pinata_secret_api_key", im.cfg.ApiSecret)
	return nil
}

func (im *pinataImpl) post(c ctx.Ctx, path, contentType string, body io.Reader) (string, error) {
	url := fmt.Sprintf("%s%s", im.cfg.Endpoint, path)

	req, err := http.NewRequestWithContext(c, http.MethodPost, url, body)
	if err != nil {
		c.WithField("err", err).Error("http.NewRequest failed")
		return "", err
	}

	req.Header.Set("Content-Type", contentType)
	if err := im.setAuth(req); err != nil {
		c.WithField("err", err).Error("setAuth failed")
		return "", err
	}

	resp, err := im.client.Do(req)
	if err != nil {
		c.WithField("err", err).Error("client.Do failed")
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errorBody, _ := io.ReadAll(resp.Body)
		c.WithFields(log.Fields{
			"status":    resp.StatusCode,
			"errorBody": string(errorBody),
		}).Error("Request failed")
		return "", &RequestError{StatusCode: resp.StatusCode, Body: string(errorBody)}
	}

	type payload struct {
		IpfsHash string `json:"IpfsHash"`
	}

	p := &payload{}

	if err := json.NewDecoder(resp.Body).Decode(p); err != nil {
		c.WithField("err", err).Error("json.NewDecoder.Decode failed")
		return "", err
	}

	return p.IpfsHash, nil
}
