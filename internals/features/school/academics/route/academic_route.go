package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicController "sekolahku_backend/internals/features/school/academics/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// AcademicRoutes: kelas & ujian dikelola admin, absensi oleh staff (guru).
func AcademicRoutes(api fiber.Router, db *gorm.DB) {
	classCtl := academicController.NewClassController(db)
	examCtl := academicController.NewExamController(db)
	attCtl := academicController.NewAttendanceController(db)

	classes := api.Group("/classes")
	classes.Post("/", authMiddleware.OnlyAdmin("buat kelas"), classCtl.Create)
	classes.Get("/", authMiddleware.OnlyStaff("daftar kelas"), classCtl.List)
	classes.Get("/:id", authMiddleware.OnlyStaff("detail kelas"), classCtl.GetByID)
	classes.Put("/:id", authMiddleware.OnlyAdmin("ubah kelas"), classCtl.Update)
	classes.Delete("/:id", authMiddleware.OnlyAdmin("hapus kelas"), classCtl.Delete)

	exams := api.Group("/exams")
	exams.Post("/", authMiddleware.OnlyStaff("buat ujian"), examCtl.Create)
	exams.Get("/", authMiddleware.OnlyStaff("daftar ujian"), examCtl.List)
	exams.Get("/:id", authMiddleware.OnlyStaff("detail ujian"), examCtl.GetByID)
	exams.Put("/:id", authMiddleware.OnlyStaff("ubah ujian"), examCtl.Update)
	exams.Delete("/:id", authMiddleware.OnlyAdmin("hapus ujian"), examCtl.Delete)

	attendances := api.Group("/attendances")
	attendances.Post("/", authMiddleware.OnlyStaff("isi absensi"), attCtl.Upsert)
	attendances.Get("/", authMiddleware.OnlyStaff("daftar absensi"), attCtl.List)
	attendances.Get("/:id", authMiddleware.OnlyStaff("detail absensi"), attCtl.GetByID)
	attendances.Delete("/:id", authMiddleware.OnlyAdmin("hapus absensi"), attCtl.Delete)
}
