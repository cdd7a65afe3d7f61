package pinata

import (
	"errors"
	"fmt"
	"io"

	"github.com/andy-marketplace/goapi/base/ctx"
)

const (
	DefaultEndpoint   = "https://api.pinata.cloud"
	DefaultGatewayUrl = "https://gateway.pinata.cloud/ipfs/"
)

var (
	ErrRequestFailed = errors.New("request failed")
	ErrNoCredentials = errors.New("pinata credentials not configured")
)

// RequestError carries the status of a non 2xx pinata response
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("pinata responded %d: %s", e.StatusCode, e.Body)
}

func (e *RequestError) Unwrap() error {
	return ErrRequestFailed
}

type PinataMetadata struct {
	Name string `json:"name,omitempty"`
	// can only store string, bool, int
	KeyValues map[string]interface{} `json:"keyvalues,omitempty"`
}

type PinataOptions struct {
	CidVersion CidVersion `json:"cidVersion"`
}

type CidVersion uint8

const (
	CidVersion_0 CidVersion = 0
	CidVersion_1 CidVersion = 1
)

type PinOptions struct {
	PinataContent interface{}     `json:"pinataContent,omitempty"`
	Metadata      *PinataMetadata `json:"pinataMetadata,omitempty"`
	Options       *PinataOptions  `json:"pinataOptions,omitempty"`
}

type Options func(*PinOptions) error

func GetPinOptions(opts ...Options) (*PinOptions, error) {
	res := &PinOptions{}

	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func WithMetadata(metadata PinataMetadata) Options {
	return func(options *PinOptions) error {
		options.Metadata = &metadata
		return nil
	}
}

func WithOptions(pinataOptions PinataOptions) Options {
	return func(options *PinOptions) error {
		options.Options = &pinataOptions
		return nil
	}
}

type Service interface {
	// Pin uploads file as multipart form data and returns its IpfsHash
	Pin(c ctx.Ctx, file io.Reader, filename string, opts ...Options) (string, error)
	// PinJson wraps value as pinataContent and returns its IpfsHash
	PinJson(c ctx.Ctx, value interface{}, opts ...Options) (string, error)
	// GatewayUrl is the public retrieval url of a pinned hash
	GatewayUrl(hash string) string
}

// Status is the upstream http status, passed through to api clients
func (e *RequestError) Status() int {
	return e.StatusCode
}
