// file: internals/features/school/people/controller/admin_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/people/dto"
	adminModel "sekolahku_backend/internals/features/school/people/model"
	helper "sekolahku_backend/internals/helpers"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// POST /api/admins
func (ctl *AdminController) Create(c *fiber.Ctx) error {
	var body dto.CreateAdminRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	admin := adminModel.AdminModel{
		AdminName:        body.AdminName,
		AdminEmail:       body.AdminEmail,
		AdminPhone:       body.AdminPhone,
		AdminCasualLeave: adminModel.DefaultLeaveBalance,
		AdminEarnedLeave: adminModel.DefaultLeaveBalance,
		AdminSickLeave:   adminModel.DefaultLeaveBalance,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&admin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal membuat admin")
	}
	return helper.JsonCreated(c, "Admin dibuat", admin)
}

// GET /api/admins
func (ctl *AdminController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&adminModel.AdminModel{})
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		tx = tx.Where("admin_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghitung admin")
	}
	var rows []adminModel.AdminModel
	if err := tx.Order("admin_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memuat admin")
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(p, total))
}

// GET /api/admins/:id
func (ctl *AdminController) GetByID(c *fiber.Ctx) error {
	admin, err := ctl.findAdmin(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", admin)
}

// PUT /api/admins/:id
func (ctl *AdminController) Update(c *fiber.Ctx) error {
	admin, err := ctl.findAdmin(c)
	if err != nil {
		return err
	}

	var body dto.UpdateAdminRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.AdminName != nil {
		admin.AdminName = *body.AdminName
	}
	if body.AdminEmail != nil {
		admin.AdminEmail = *body.AdminEmail
	}
	if body.AdminPhone != nil {
		admin.AdminPhone = body.AdminPhone
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(admin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memperbarui admin")
	}
	return helper.JsonUpdated(c, "Admin diperbarui", admin)
}

// DELETE /api/admins/:id
func (ctl *AdminController) Delete(c *fiber.Ctx) error {
	admin, err := ctl.findAdmin(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(admin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghapus admin")
	}
	return helper.JsonDeleted(c, "Admin dihapus", admin)
}

func (ctl *AdminController) findAdmin(c *fiber.Ctx) (*adminModel.AdminModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "admin_id tidak valid")
	}
	var admin adminModel.AdminModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&admin, "admin_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Admin tidak ditemukan")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "gagal memuat admin")
	}
	return &admin, nil
}
