package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeController "sekolahku_backend/internals/features/finance/fees/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// FeeRoutes: master fee dikelola admin; staff boleh lihat.
func FeeRoutes(api fiber.Router, db *gorm.DB) {
	ctl := feeController.NewFeeController(db)

	fees := api.Group("/fees")
	fees.Post("/", authMiddleware.OnlyAdmin("buat fee"), ctl.Create)
	fees.Get("/", authMiddleware.OnlyStaff("daftar fee"), ctl.List)
	fees.Get("/:id", authMiddleware.OnlyStaff("detail fee"), ctl.GetByID)
	fees.Put("/:id", authMiddleware.OnlyAdmin("ubah fee"), ctl.Update)
	fees.Delete("/:id", authMiddleware.OnlyAdmin("hapus fee"), ctl.Delete)
	fees.Post("/:id/assign", authMiddleware.OnlyAdmin("tetapkan fee"), ctl.Assign)
}
