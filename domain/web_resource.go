package domain

import (
	"github.com/andy-marketplace/goapi/base/ctx"
)

type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}

type WebResourceWriterRepository interface {
	// Store writes body under path with the content type and returns the public url
	Store(ctx.Ctx, string, []byte, string) (string, error)
}

// WebResourceUseCase fetches token uris and images from http, ipfs and data uris
type WebResourceUseCase interface {
	Get(ctx.Ctx, string) ([]byte, error)
	GetJson(ctx.Ctx, string) ([]byte, error)
	Store(ctx.Ctx, string, []byte, string) (string, error)
	// HttpUrl rewrites ipfs uris to the configured gateway so a browser can load them
	HttpUrl(string) string
}
