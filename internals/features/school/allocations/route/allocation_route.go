package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	allocationController "sekolahku_backend/internals/features/school/allocations/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// AllocationRoutes: resource berkapasitas (bus, kamar & mess asrama, ekskul).
// :kind ∈ {bus, hostel_room, hostel_mess, extracurricular}.
func AllocationRoutes(api fiber.Router, db *gorm.DB) {
	ctl := allocationController.NewAllocationController(db)

	alloc := api.Group("/allocations")
	alloc.Get("/:kind", authMiddleware.OnlyStaff("daftar resource"), ctl.List)
	alloc.Get("/:kind/:id", authMiddleware.OnlyStaff("detail resource"), ctl.GetByID)
	alloc.Post("/:kind", authMiddleware.OnlyAdmin("buat resource"), ctl.Create)
	alloc.Patch("/:kind/:id/grant", authMiddleware.OnlyAdmin("grant slot"), ctl.Grant)
	alloc.Delete("/:kind/:id", authMiddleware.OnlyAdmin("hapus resource"), ctl.Delete)
}
