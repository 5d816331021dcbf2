// file: internals/features/school/people/controller/student_controller.go
package controller

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/people/dto"
	studentModel "sekolahku_backend/internals/features/school/people/model"
	"sekolahku_backend/internals/features/school/people/service"
	helper "sekolahku_backend/internals/helpers"
	helperOSS "sekolahku_backend/internals/helpers/oss"
)

type StudentController struct {
	DB   *gorm.DB
	Blob *helperOSS.OSSBlobService
}

func NewStudentController(db *gorm.DB, blob *helperOSS.OSSBlobService) *StudentController {
	return &StudentController{DB: db, Blob: blob}
}

// POST /api/students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var body dto.CreateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	student := studentModel.StudentModel{
		StudentName:          body.StudentName,
		StudentEmail:         body.StudentEmail,
		StudentPhone:         body.StudentPhone,
		StudentClassID:       body.StudentClassID,
		StudentGuardianName:  body.StudentGuardianName,
		StudentGuardianPhone: body.StudentGuardianPhone,
		StudentAddress:       body.StudentAddress,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal membuat siswa")
	}
	return helper.JsonCreated(c, "Siswa dibuat", student)
}

// GET /api/students?class_id=&q=
func (ctl *StudentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&studentModel.StudentModel{})
	if v := strings.TrimSpace(c.Query("class_id")); v != "" {
		tx = tx.Where("student_class_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		tx = tx.Where("student_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghitung siswa")
	}
	var rows []studentModel.StudentModel
	if err := tx.Order("student_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memuat siswa")
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(p, total))
}

// GET /api/students/export?class_id= — unduh CSV daftar siswa
func (ctl *StudentController) ExportCSV(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.UserContext()).Model(&studentModel.StudentModel{})
	if v := strings.TrimSpace(c.Query("class_id")); v != "" {
		tx = tx.Where("student_class_id = ?", v)
	}

	var students []studentModel.StudentModel
	if err := tx.Order("student_name ASC").Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memuat siswa")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(service.StudentCSVHeader); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menulis CSV")
	}
	if err := w.WriteAll(service.StudentCSVRows(students)); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menulis CSV")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="students.csv"`)
	return c.Send(buf.Bytes())
}

// GET /api/students/:id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	student, err := ctl.findStudent(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", student)
}

// PUT /api/students/:id
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	student, err := ctl.findStudent(c)
	if err != nil {
		return err
	}

	var body dto.UpdateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.StudentName != nil {
		student.StudentName = *body.StudentName
	}
	if body.StudentEmail != nil {
		student.StudentEmail = *body.StudentEmail
	}
	if body.StudentPhone != nil {
		student.StudentPhone = body.StudentPhone
	}
	if body.StudentClassID != nil {
		student.StudentClassID = body.StudentClassID
	}
	if body.StudentGuardianName != nil {
		student.StudentGuardianName = body.StudentGuardianName
	}
	if body.StudentGuardianPhone != nil {
		student.StudentGuardianPhone = body.StudentGuardianPhone
	}
	if body.StudentAddress != nil {
		student.StudentAddress = body.StudentAddress
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memperbarui siswa")
	}
	return helper.JsonUpdated(c, "Siswa diperbarui", student)
}

// PATCH /api/students/:id/photo — upload foto (multipart field "photo").
// Foto lama dihapus best-effort setelah foto baru tersimpan.
func (ctl *StudentController) UploadPhoto(c *fiber.Ctx) error {
	if ctl.Blob == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "blob store belum dikonfigurasi")
	}
	student, err := ctl.findStudent(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "field photo wajib diisi")
	}

	photoURL, thumbURL, err := ctl.Blob.UploadImage(c.UserContext(), "students/photos", fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}

	oldPhoto, oldThumb := student.StudentPhotoURL, student.StudentPhotoThumbURL
	student.StudentPhotoURL = &photoURL
	if thumbURL != "" {
		student.StudentPhotoThumbURL = &thumbURL
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menyimpan foto siswa")
	}

	if oldPhoto != nil {
		_ = ctl.Blob.DeleteByPublicURL(c.UserContext(), *oldPhoto)
	}
	if oldThumb != nil {
		_ = ctl.Blob.DeleteByPublicURL(c.UserContext(), *oldThumb)
	}

	return helper.JsonUpdated(c, "Foto siswa diperbarui", student)
}

// DELETE /api/students/:id
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	student, err := ctl.findStudent(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghapus siswa")
	}
	return helper.JsonDeleted(c, "Siswa dihapus", student)
}

func (ctl *StudentController) findStudent(c *fiber.Ctx) (*studentModel.StudentModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
	}
	var student studentModel.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "gagal memuat siswa")
	}
	return &student, nil
}
