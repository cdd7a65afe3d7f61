package usecase

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/xerrors"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/file"
	"github.com/andy-marketplace/goapi/domain/nft"
	"github.com/andy-marketplace/goapi/service/pinata"
)

const (
	imgDataHeaderPrefix    = "data:image/"
	imgDataHeaderSuffix    = ";base64,"
	imgDataHeaderMaxLength = 50

	backupFolder = "pins"
)

type Cfg struct {
	Pinata pinata.Service
	// WebResource is optional; pinned files are copied to its storage bucket when set
	WebResource domain.WebResourceUseCase
}

type impl struct {
	pinata      pinata.Service
	webResource domain.WebResourceUseCase
}

func New(cfg *Cfg) file.Usecase {
	return &impl{
		pinata:      cfg.Pinata,
		webResource: cfg.WebResource,
	}
}

func (im *impl) UploadFile(c ctx.Ctx, filename string, data []byte) (*file.UploadResult, error) {
	if len(data) == 0 {
		return nil, domain.ErrNoFileProvided
	}

	mtype := mimetype.Detect(data)
	filename = path.Base(filename)
	if filename == "." || filename == "/" {
		filename = ""
	}
	if len(path.Ext(filename)) == 0 {
		filename = strings.TrimSuffix(filename, ".") + mtype.Extension()
	}
	if len(filename) == 0 || strings.HasPrefix(filename, ".") {
		filename = "file" + filename
	}

	hash, err := im.pinata.Pin(
		c,
		bytes.NewReader(data),
		filename,
		pinata.WithMetadata(pinata.PinataMetadata{Name: filename}),
		pinata.WithOptions(pinata.PinataOptions{CidVersion: pinata.CidVersion_0}),
	)
	if err != nil {
		c.WithField("err", err).Error("pinata.Pin failed")
		return nil, xerrors.Errorf("pin file: %w", err)
	}
	c.WithFields(log.Fields{
		"hash":     hash,
		"mimetype": mtype.String(),
	}).Info("pinata.Pin success")

	res := &file.UploadResult{IpfsHash: hash, Url: im.pinata.GatewayUrl(hash)}
	res.BackupUrl = im.backup(c, hash, data, mtype.String())
	return res, nil
}

func (im *impl) UploadImageData(c ctx.Ctx, imgData string) (*file.UploadResult, error) {
	data, extension, err := parseImgData(imgData)
	if err != nil {
		c.WithField("err", err).Warn("parseImgData failed")
		return nil, err
	}
	return im.UploadFile(c, "image."+extension, data)
}

func (im *impl) UploadMetadata(c ctx.Ctx, metadata *nft.Metadata) (*file.UploadResult, error) {
	if metadata == nil || len(metadata.Name) == 0 || len(metadata.Description) == 0 || len(metadata.Image) == 0 {
		return nil, domain.ErrMissingMetadataFields
	}

	content := *metadata
	if content.Attributes == nil {
		content.Attributes = []nft.Attribute{}
	}

	hash, err := im.pinata.PinJson(
		c,
		content,
		pinata.WithMetadata(pinata.PinataMetadata{Name: fmt.Sprintf("%s Metadata", content.Name)}),
		pinata.WithOptions(pinata.PinataOptions{CidVersion: pinata.CidVersion_1}),
	)
	if err != nil {
		c.WithField("err", err).Error("pinata.PinJson failed")
		return nil, xerrors.Errorf("pin metadata: %w", err)
	}
	c.WithField("hash", hash).Info("pinata.PinJson success")

	return &file.UploadResult{IpfsHash: hash, Url: im.pinata.GatewayUrl(hash)}, nil
}

// backup copies pinned bytes to the storage bucket; failures only cost the copy
func (im *impl) backup(c ctx.Ctx, hash string, data []byte, contentType string) string {
	if im.webResource == nil {
		return ""
	}
	url, err := im.webResource.Store(c, path.Join(backupFolder, hash), data, contentType)
	if err != nil {
		c.WithFields(log.Fields{
			"hash": hash,
			"err":  err,
		}).Warn("webResource.Store failed")
		return ""
	}
	return url
}

func parseImgData(data string) ([]byte, string, error) {
	if !strings.HasPrefix(data, imgDataHeaderPrefix) {
		return nil, "", xerrors.Errorf("image data has wrong prefix: %w", domain.ErrBadParamInput)
	}
	// search header suffix in a limited range
	searchLength := imgDataHeaderMaxLength
	if len(data) < searchLength {
		searchLength = len(data)
	}
	headerSuffixIdx := strings.Index(data[:searchLength], imgDataHeaderSuffix)
	if headerSuffixIdx == -1 {
		return nil, "", xerrors.Errorf("can't find image data header suffix: %w", domain.ErrBadParamInput)
	}

	extension := data[len(imgDataHeaderPrefix):headerSuffixIdx]
	if i := strings.Index(extension, "+"); i > 0 {
		// svg+xml
		extension = extension[:i]
	}
	decoded, err := base64.StdEncoding.DecodeString(data[headerSuffixIdx+len(imgDataHeaderSuffix):])
	if err != nil {
		return nil, "", xerrors.Errorf("decode image data: %w", domain.ErrBadParamInput)
	}
	if len(decoded) == 0 {
		return nil, "", domain.ErrNoFileProvided
	}
	return decoded, extension, nil
}
