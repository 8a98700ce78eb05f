package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"lifeplanner/pkg/response"
)

// Uploads are capped well below gin's default body limit; attachments
// are documents and photos, not media files.
const maxUploadBytes = 10 << 20

var errFileRequired = errors.New("file is required")

type uploadResp struct {
	URL string `json:"url"`
}

// Upload godoc
// @Summary     Upload an attachment
// @Description Stores the uploaded file and returns its download URL. The URL is carried on tasks as an opaque string.
// @Tags        Attachment
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Attachment file"
// @Success     200 {object} uploadResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/attachments [POST]
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, errFileRequired)
		return
	}
	if fh.Size > maxUploadBytes {
		response.Error(c, errors.New("file too large"))
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.l.Errorf(ctx, "http.Upload Open: %v", err)
		response.InternalError(c)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		h.l.Errorf(ctx, "http.Upload ReadAll: %v", err)
		response.InternalError(c)
		return
	}

	ref, err := h.store.Upload(ctx, fh.Filename, data)
	if err != nil {
		h.l.Errorf(ctx, "http.Upload store.Upload: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, uploadResp{URL: h.store.URLFor(ref)})
}
