// file: internals/features/school/academics/controller/class_controller.go
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

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

// POST /api/classes
func (ctl *ClassController) Create(c *fiber.Ctx) error {
	var body dto.CreateClassRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	class := academicModel.ClassModel{
		ClassName:      body.ClassName,
		ClassSection:   body.ClassSection,
		ClassTeacherID: body.ClassTeacherID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&class).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal membuat kelas")
	}
	return helper.JsonCreated(c, "Kelas dibuat", class)
}

// GET /api/classes
func (ctl *ClassController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&academicModel.ClassModel{})
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		tx = tx.Where("class_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghitung kelas")
	}
	var rows []academicModel.ClassModel
	if err := tx.Order("class_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memuat kelas")
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(p, total))
}

// GET /api/classes/:id
func (ctl *ClassController) GetByID(c *fiber.Ctx) error {
	class, err := ctl.findClass(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", class)
}

// PUT /api/classes/:id
func (ctl *ClassController) Update(c *fiber.Ctx) error {
	class, err := ctl.findClass(c)
	if err != nil {
		return err
	}

	var body dto.UpdateClassRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.ClassName != nil {
		class.ClassName = *body.ClassName
	}
	if body.ClassSection != nil {
		class.ClassSection = body.ClassSection
	}
	if body.ClassTeacherID != nil {
		class.ClassTeacherID = body.ClassTeacherID
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(class).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memperbarui kelas")
	}
	return helper.JsonUpdated(c, "Kelas diperbarui", class)
}

// DELETE /api/classes/:id
func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	class, err := ctl.findClass(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(class).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghapus kelas")
	}
	return helper.JsonDeleted(c, "Kelas dihapus", class)
}

func (ctl *ClassController) findClass(c *fiber.Ctx) (*academicModel.ClassModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
	}
	var class academicModel.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&class, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "gagal memuat kelas")
	}
	return &class, nil
}
