package repository

import (
	"encoding/base64"
	"net/url"
	"strings"

	"golang.org/x/xerrors"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
)

const dataUriSchema = "data:"

var (
	ErrInvalidDataUri = xerrors.New("invalid data uri")
	ErrEmptyDataUri   = xerrors.New("no data part provided")
)

type dataUriReaderRepo struct{}

func NewDataUriReaderRepo() domain.WebResourceReaderRepository {
	return &dataUriReaderRepo{}
}

// Get decodes data:[<mediatype>][;base64],<data>
func (r *dataUriReaderRepo) Get(_ ctx.Ctx, uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, dataUriSchema) {
		return nil, ErrInvalidDataUri
	}

	header, data, found := strings.Cut(strings.TrimPrefix(uri, dataUriSchema), ",")
	if !found || len(data) == 0 {
		return nil, ErrEmptyDataUri
	}

	if strings.HasSuffix(header, ";base64") {
		decoded, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, xerrors.Errorf("base64 decode: %w", err)
		}
		return decoded, nil
	}

	// percent encoded payloads are common for svg; plain json passes through unchanged
	if unescaped, err := url.PathUnescape(data); err == nil {
		return []byte(unescaped), nil
	}
	return []byte(data), nil
}
