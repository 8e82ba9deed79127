package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lulu77Donc/reggie-take-out/pkg/resp"
	"github.com/Lulu77Donc/reggie-take-out/services"
)

// CommonController handles image upload and download.
type CommonController struct{ Svc *services.FileService }

func NewCommonController(s *services.FileService) *CommonController {
	return &CommonController{Svc: s}
}

// POST /common/upload (multipart field "file")
func (h *CommonController) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "file is required")
		return
	}
	src, err := fh.Open()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	defer src.Close()

	name, err := h.Svc.Upload(c.Request.Context(), fh.Filename, src, fh.Size)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, name)
}

// GET /common/download?name=
func (h *CommonController) Download(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		resp.BadRequest(c, "name is required")
		return
	}
	rc, contentType, err := h.Svc.Download(c.Request.Context(), name)
	if err != nil {
		fail(c, err)
		return
	}
	defer rc.Close()

	c.Status(http.StatusOK)
	c.Header("Content-Type", contentType)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		// headers are already sent; record the failure for the access log
		_ = c.Error(err)
	}
}
