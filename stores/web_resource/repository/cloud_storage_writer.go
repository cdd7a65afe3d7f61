package repository

import (
	"net/url"
	"time"

	"cloud.google.com/go/storage"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/domain"
)

// pinned content never changes under its path
const immutableCacheControl = "public, max-age=31536000, immutable"

type CloudStorageWriterRepoCfg struct {
	Timeout    time.Duration
	Client     *storage.Client
	BucketName string
	// Url is the public base object paths resolve against
	Url string
}

type gcsWriter struct {
	bucket  *storage.BucketHandle
	timeout time.Duration
	base    *url.URL
}

func NewCloudStorageWriterRepo(cfg *CloudStorageWriterRepoCfg) (domain.WebResourceWriterRepository, error) {
	base, err := url.Parse(cfg.Url)
	if err != nil {
		return nil, err
	}
	return &gcsWriter{
		bucket:  cfg.Client.Bucket(cfg.BucketName),
		timeout: cfg.Timeout,
		base:    base,
	}, nil
}

// Store uploads body to path and returns its public url
func (r *gcsWriter) Store(c ctx.Ctx, path string, body []byte, contentType string) (string, error) {
	ref, err := url.Parse(path)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "path": path}).Error("url.Parse failed")
		return "", err
	}
	tc, cancel := ctx.WithTimeout(c, r.timeout)
	defer cancel()

	w := r.bucket.Object(path).NewWriter(tc)
	w.ContentType = contentType
	w.CacheControl = immutableCacheControl
	if _, err := w.Write(body); err != nil {
		// Close reports the same failure
		_ = w.Close()
		c.WithFields(log.Fields{"err": err, "path": path}).Error("w.Write failed")
		return "", err
	}
	if err := w.Close(); err != nil {
		c.WithFields(log.Fields{"err": err, "path": path}).Error("w.Close failed")
		return "", err
	}
	return r.base.ResolveReference(ref).String(), nil
}
