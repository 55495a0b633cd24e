package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

// uploadField is the fixed multipart field name the endpoint accepts.
const uploadField = "file"

// UploadHandler accepts a single file per request and returns the public
// path it was stored under.
type UploadHandler struct {
	service ports.UploadService
}

func NewUploadHandler(service ports.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload handles POST /api/upload.
//
// @Summary      Upload a file
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "File to store"
// @Success      200   {object}  uploadResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		return domain.ErrNoFile
	}

	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	url, err := h.service.Store(c.Request().Context(), fh.Filename, src)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, uploadResponse{URL: url})
}
