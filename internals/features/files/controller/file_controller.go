// file: internals/features/files/controller/file_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	helper "sekolahku_backend/internals/helpers"
	helperOSS "sekolahku_backend/internals/helpers/oss"
)

type FileController struct {
	Blob *helperOSS.OSSBlobService
}

func NewFileController(blob *helperOSS.OSSBlobService) *FileController {
	return &FileController{Blob: blob}
}

// POST /api/files/images — upload gambar (re-encode WebP + thumbnail)
func (ctl *FileController) UploadImage(c *fiber.Ctx) error {
	// Tanpa env OSS, SetupRoutes meng-inject Blob nil; tolak eksplisit.
	if ctl.Blob == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "blob store belum dikonfigurasi")
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "field file wajib diisi")
	}
	dir := strings.TrimSpace(c.FormValue("dir", "uploads/images"))

	url, thumbURL, err := ctl.Blob.UploadImage(c.UserContext(), dir, fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}
	return helper.JsonCreated(c, "Gambar terunggah", fiber.Map{
		"url":       url,
		"thumb_url": thumbURL,
	})
}

// POST /api/files — upload dokumen apa adanya
func (ctl *FileController) UploadRaw(c *fiber.Ctx) error {
	if ctl.Blob == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "blob store belum dikonfigurasi")
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "field file wajib diisi")
	}
	dir := strings.TrimSpace(c.FormValue("dir", "uploads/docs"))

	url, key, err := ctl.Blob.UploadRawToDir(c.UserContext(), dir, fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}
	return helper.JsonCreated(c, "File terunggah", fiber.Map{
		"url": url,
		"key": key,
	})
}

// GET /api/files/signed-url?url=&ttl_minutes=
func (ctl *FileController) SignedURL(c *fiber.Ctx) error {
	if ctl.Blob == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "blob store belum dikonfigurasi")
	}
	publicURL := strings.TrimSpace(c.Query("url"))
	if publicURL == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "query url wajib diisi")
	}
	ttl := time.Duration(c.QueryInt("ttl_minutes", 15)) * time.Minute
	if ttl <= 0 || ttl > 24*time.Hour {
		ttl = 15 * time.Minute
	}

	signed, err := ctl.Blob.SignedURLByPublicURL(publicURL, ttl)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonOK(c, "", fiber.Map{"signed_url": signed, "expires_in": int(ttl.Seconds())})
}
