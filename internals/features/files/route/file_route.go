package route

import (
	"github.com/gofiber/fiber/v2"

	fileController "sekolahku_backend/internals/features/files/controller"
	helperOSS "sekolahku_backend/internals/helpers/oss"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// FileRoutes: upload & signed URL, untuk staff.
func FileRoutes(api fiber.Router, blob *helperOSS.OSSBlobService) {
	ctl := fileController.NewFileController(blob)

	files := api.Group("/files")
	files.Post("/", authMiddleware.OnlyStaff("upload file"), ctl.UploadRaw)
	files.Post("/images", authMiddleware.OnlyStaff("upload gambar"), ctl.UploadImage)
	files.Get("/signed-url", authMiddleware.OnlyStaff("signed url"), ctl.SignedURL)
}
