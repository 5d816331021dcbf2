// file: internals/features/school/people/controller/teacher_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/people/dto"
	teacherModel "sekolahku_backend/internals/features/school/people/model"
	helper "sekolahku_backend/internals/helpers"
)

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

// POST /api/teachers — saldo cuti mulai dari default (12/12/12)
func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var body dto.CreateTeacherRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	teacher := teacherModel.TeacherModel{
		TeacherName:        body.TeacherName,
		TeacherEmail:       body.TeacherEmail,
		TeacherPhone:       body.TeacherPhone,
		TeacherSubject:     body.TeacherSubject,
		TeacherCasualLeave: teacherModel.DefaultLeaveBalance,
		TeacherEarnedLeave: teacherModel.DefaultLeaveBalance,
		TeacherSickLeave:   teacherModel.DefaultLeaveBalance,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&teacher).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal membuat guru")
	}
	return helper.JsonCreated(c, "Guru dibuat", teacher)
}

// GET /api/teachers?q=
func (ctl *TeacherController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&teacherModel.TeacherModel{})
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		tx = tx.Where("teacher_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghitung guru")
	}
	var rows []teacherModel.TeacherModel
	if err := tx.Order("teacher_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memuat guru")
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(p, total))
}

// GET /api/teachers/:id
func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	teacher, err := ctl.findTeacher(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", teacher)
}

// PUT /api/teachers/:id — data identitas saja; saldo cuti hanya lewat workflow cuti
func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	teacher, err := ctl.findTeacher(c)
	if err != nil {
		return err
	}

	var body dto.UpdateTeacherRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.TeacherName != nil {
		teacher.TeacherName = *body.TeacherName
	}
	if body.TeacherEmail != nil {
		teacher.TeacherEmail = *body.TeacherEmail
	}
	if body.TeacherPhone != nil {
		teacher.TeacherPhone = body.TeacherPhone
	}
	if body.TeacherSubject != nil {
		teacher.TeacherSubject = body.TeacherSubject
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(teacher).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memperbarui guru")
	}
	return helper.JsonUpdated(c, "Guru diperbarui", teacher)
}

// DELETE /api/teachers/:id
func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	teacher, err := ctl.findTeacher(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(teacher).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghapus guru")
	}
	return helper.JsonDeleted(c, "Guru dihapus", teacher)
}

func (ctl *TeacherController) findTeacher(c *fiber.Ctx) (*teacherModel.TeacherModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
	}
	var teacher teacherModel.TeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&teacher, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "gagal memuat guru")
	}
	return &teacher, nil
}
