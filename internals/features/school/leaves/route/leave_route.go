package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	leaveController "sekolahku_backend/internals/features/school/leaves/controller"
	"sekolahku_backend/internals/helpers/mailer"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// LeaveRoutes: pengajuan oleh staff, keputusan (approve/reject/hapus) oleh admin.
func LeaveRoutes(api fiber.Router, db *gorm.DB, mail mailer.Mailer) {
	ctl := leaveController.NewLeaveController(db, mail)

	leaves := api.Group("/leaves")
	leaves.Post("/", authMiddleware.OnlyStaff("pengajuan cuti"), ctl.Create)
	leaves.Get("/", authMiddleware.OnlyStaff("daftar cuti"), ctl.List)
	leaves.Get("/:id", authMiddleware.OnlyStaff("detail cuti"), ctl.GetByID)
	leaves.Patch("/:id", authMiddleware.OnlyAdmin("keputusan cuti"), ctl.UpdateStatus)
	leaves.Delete("/:id", authMiddleware.OnlyAdmin("hapus cuti"), ctl.Delete)
}
