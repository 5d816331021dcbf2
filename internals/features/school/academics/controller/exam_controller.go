// file: internals/features/school/academics/controller/exam_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/academics/dto"
	academicModel "sekolahku_backend/internals/features/school/academics/model"
	helper "sekolahku_backend/internals/helpers"
)

type ExamController struct {
	DB *gorm.DB
}

func NewExamController(db *gorm.DB) *ExamController {
	return &ExamController{DB: db}
}

// POST /api/exams
func (ctl *ExamController) Create(c *fiber.Ctx) error {
	var body dto.CreateExamRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	examDate, err := helper.ParseDate(body.ExamDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var count int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&academicModel.ClassModel{}).
		Where("class_id = ?", body.ExamClassID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memeriksa kelas")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	exam := academicModel.ExamModel{
		ExamName:    body.ExamName,
		ExamSubject: body.ExamSubject,
		ExamDate:    examDate,
		ExamClassID: body.ExamClassID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&exam).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal membuat ujian")
	}
	return helper.JsonCreated(c, "Ujian dibuat", exam)
}

// GET /api/exams?class_id=
func (ctl *ExamController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&academicModel.ExamModel{})
	if v := strings.TrimSpace(c.Query("class_id")); v != "" {
		tx = tx.Where("exam_class_id = ?", v)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghitung ujian")
	}
	var rows []academicModel.ExamModel
	if err := tx.Order("exam_date DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memuat ujian")
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(p, total))
}

// GET /api/exams/:id
func (ctl *ExamController) GetByID(c *fiber.Ctx) error {
	exam, err := ctl.findExam(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", exam)
}

// PUT /api/exams/:id
func (ctl *ExamController) Update(c *fiber.Ctx) error {
	exam, err := ctl.findExam(c)
	if err != nil {
		return err
	}

	var body dto.UpdateExamRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.ExamName != nil {
		exam.ExamName = *body.ExamName
	}
	if body.ExamSubject != nil {
		exam.ExamSubject = body.ExamSubject
	}
	if body.ExamDate != nil {
		d, err := helper.ParseDate(*body.ExamDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		exam.ExamDate = d
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(exam).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memperbarui ujian")
	}
	return helper.JsonUpdated(c, "Ujian diperbarui", exam)
}

// DELETE /api/exams/:id
func (ctl *ExamController) Delete(c *fiber.Ctx) error {
	exam, err := ctl.findExam(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(exam).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghapus ujian")
	}
	return helper.JsonDeleted(c, "Ujian dihapus", exam)
}

func (ctl *ExamController) findExam(c *fiber.Ctx) (*academicModel.ExamModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "exam_id tidak valid")
	}
	var exam academicModel.ExamModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&exam, "exam_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Ujian tidak ditemukan")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "gagal memuat ujian")
	}
	return &exam, nil
}
