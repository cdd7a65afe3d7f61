package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/delivery"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/file"
	"github.com/andy-marketplace/goapi/domain/nft"
)

// maxUploadSize caps a single pinned file
const maxUploadSize = 32 << 20

type handler struct {
	file file.Usecase
}

type imageDataBody struct {
	ImgData string `json:"imgData"`
}

func New(e *echo.Echo, file file.Usecase) {
	h := &handler{file}

	g := e.Group("/upload")
	g.POST("", h.upload)
	g.POST("/image-data", h.uploadImageData)
	g.POST("/metadata", h.uploadMetadata)
}

// upload
//
//	@Summary	Pin a file to IPFS
//	@Tags		upload
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		file	formData	file	true	"file to pin"
//	@Success	200		{object}	object{data=file.UploadResult}
//	@Failure	400
//	@Router		/upload [post]
func (h *handler) upload(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	fh, err := c.FormFile("file")
	if err != nil {
		ctx.WithField("err", err).Warn("c.FormFile failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrNoFileProvided)
	}
	if fh.Size > maxUploadSize {
		return delivery.MakeJsonResp(c, http.StatusRequestEntityTooLarge, "file too large")
	}
	f, err := fh.Open()
	if err != nil {
		ctx.WithField("err", err).Error("fh.Open failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadSize))
	if err != nil {
		ctx.WithField("err", err).Error("io.ReadAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res, err := h.file.UploadFile(ctx, fh.Filename, data)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// uploadImageData
//
//	@Summary	Pin a base64 data:image payload
//	@Tags		upload
//	@Accept		json
//	@Produce	json
//	@Param		body	body		imageDataBody	true	"data:image/<type>;base64,..."
//	@Success	200		{object}	object{data=file.UploadResult}
//	@Failure	400
//	@Router		/upload/image-data [post]
func (h *handler) uploadImageData(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	body := &imageDataBody{}
	if err := c.Bind(body); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.file.UploadImageData(ctx, body.ImgData)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// uploadMetadata
//
//	@Summary	Pin token metadata JSON
//	@Tags		upload
//	@Accept		json
//	@Produce	json
//	@Param		metadata	body		nft.Metadata	true	"name, description and image are required"
//	@Success	200			{object}	object{data=file.UploadResult}
//	@Failure	400
//	@Router		/upload/metadata [post]
func (h *handler) uploadMetadata(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	metadata := &nft.Metadata{}
	if err := c.Bind(metadata); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.file.UploadMetadata(ctx, metadata)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
