package file

import (
	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain/nft"
)

// UploadResult is the pinned content identifier and where to fetch it
type UploadResult struct {
	IpfsHash string `json:"ipfsHash"`
	Url      string `json:"url"`
	// BackupUrl is set when a storage bucket copy was written
	BackupUrl string `json:"backupUrl,omitempty"`
}

type Usecase interface {
	// UploadFile pins data under filename; the extension is sniffed when filename has none
	UploadFile(c ctx.Ctx, filename string, data []byte) (*UploadResult, error)
	// UploadImageData pins a data:image/<type>;base64 payload
	UploadImageData(c ctx.Ctx, imgData string) (*UploadResult, error)
	// UploadMetadata requires name, description and image
	UploadMetadata(c ctx.Ctx, metadata *nft.Metadata) (*UploadResult, error)
}
