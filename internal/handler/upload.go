package handler

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/singhalaadi/taskly-capstone-project/internal/apperr"
	"github.com/singhalaadi/taskly-capstone-project/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxUploadSize caps avatar uploads at 5MB.
const maxUploadSize = 5 << 20

// UploadHandler stores avatar images and hands back a public URL.
type UploadHandler struct {
	Dir       string
	PublicURL string
}

func NewUploadHandler(dir, publicURL string) *UploadHandler {
	return &UploadHandler{Dir: dir, PublicURL: publicURL}
}

// AddImage accepts a multipart "image" field, validates size and mime type,
// and writes it under the uploads dir with a uuid filename.
func (h *UploadHandler) AddImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		_ = c.Error(apperr.BadRequest("No image file provided"))
		return
	}

	if file.Size > maxUploadSize {
		_ = c.Error(apperr.BadRequest("Image must be smaller than 5MB"))
		return
	}

	mimetype := file.Header.Get("Content-Type")
	if !strings.HasPrefix(mimetype, "image/") {
		_ = c.Error(apperr.BadRequest("File must be an image"))
		return
	}

	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = ".png"
	}
	name := uuid.New().String() + ext
	dst := filepath.Join(h.Dir, name)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		_ = c.Error(apperr.Internal(fmt.Errorf("save upload: %w", err)))
		return
	}

	util.OK(c, util.Response{
		"status":   "success",
		"imageUrl": h.PublicURL + "/uploads/" + name,
		"message":  "Image uploaded successfully",
	})
}
