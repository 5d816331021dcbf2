package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	peopleController "sekolahku_backend/internals/features/school/people/controller"
	helperOSS "sekolahku_backend/internals/helpers/oss"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// PeopleRoutes: siswa (termasuk foto & export CSV), guru, admin.
func PeopleRoutes(api fiber.Router, db *gorm.DB, blob *helperOSS.OSSBlobService) {
	studentCtl := peopleController.NewStudentController(db, blob)
	teacherCtl := peopleController.NewTeacherController(db)
	adminCtl := peopleController.NewAdminController(db)

	students := api.Group("/students")
	students.Post("/", authMiddleware.OnlyAdmin("buat siswa"), studentCtl.Create)
	students.Get("/", authMiddleware.OnlyStaff("daftar siswa"), studentCtl.List)
	// /export harus didaftarkan sebelum /:id
	students.Get("/export", authMiddleware.OnlyStaff("export siswa"), studentCtl.ExportCSV)
	students.Get("/:id", authMiddleware.OnlyStaff("detail siswa"), studentCtl.GetByID)
	students.Put("/:id", authMiddleware.OnlyAdmin("ubah siswa"), studentCtl.Update)
	students.Patch("/:id/photo", authMiddleware.OnlyStaff("foto siswa"), studentCtl.UploadPhoto)
	students.Delete("/:id", authMiddleware.OnlyAdmin("hapus siswa"), studentCtl.Delete)

	teachers := api.Group("/teachers")
	teachers.Post("/", authMiddleware.OnlyAdmin("buat guru"), teacherCtl.Create)
	teachers.Get("/", authMiddleware.OnlyStaff("daftar guru"), teacherCtl.List)
	teachers.Get("/:id", authMiddleware.OnlyStaff("detail guru"), teacherCtl.GetByID)
	teachers.Put("/:id", authMiddleware.OnlyAdmin("ubah guru"), teacherCtl.Update)
	teachers.Delete("/:id", authMiddleware.OnlyAdmin("hapus guru"), teacherCtl.Delete)

	admins := api.Group("/admins")
	admins.Post("/", authMiddleware.OnlyAdmin("buat admin"), adminCtl.Create)
	admins.Get("/", authMiddleware.OnlyAdmin("daftar admin"), adminCtl.List)
	admins.Get("/:id", authMiddleware.OnlyAdmin("detail admin"), adminCtl.GetByID)
	admins.Put("/:id", authMiddleware.OnlyAdmin("ubah admin"), adminCtl.Update)
	admins.Delete("/:id", authMiddleware.OnlyAdmin("hapus admin"), adminCtl.Delete)
}
