// file: internals/features/school/academics/controller/attendance_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "sekolahku_backend/internals/features/school/academics/dto"
	academicModel "sekolahku_backend/internals/features/school/academics/model"
	helper "sekolahku_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// POST /api/attendances — upsert per (kelas, tanggal); kirim ulang menimpa daftar hadir
func (ctl *AttendanceController) Upsert(c *fiber.Ctx) error {
	var body dto.UpsertAttendanceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	date, err := helper.ParseDate(body.AttendanceDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var count int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&academicModel.ClassModel{}).
		Where("class_id = ?", body.AttendanceClassID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memeriksa kelas")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	present := make(pq.StringArray, 0, len(body.PresentStudentIDs))
	for _, sid := range body.PresentStudentIDs {
		present = append(present, sid.String())
	}

	attendance := academicModel.AttendanceModel{
		AttendanceClassID: body.AttendanceClassID,
		AttendanceDate:    date,
		AttendancePresent: present,
	}
	if err := ctl.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "attendance_class_id"}, {Name: "attendance_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"attendance_present", "attendance_updated_at"}),
		}).
		Create(&attendance).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menyimpan absensi")
	}
	return helper.JsonCreated(c, "Absensi disimpan", attendance)
}

// GET /api/attendances?class_id=&date=
func (ctl *AttendanceController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&academicModel.AttendanceModel{})
	if v := strings.TrimSpace(c.Query("class_id")); v != "" {
		tx = tx.Where("attendance_class_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("date")); v != "" {
		d, err := helper.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		tx = tx.Where("attendance_date = ?", d)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghitung absensi")
	}
	var rows []academicModel.AttendanceModel
	if err := tx.Order("attendance_date DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memuat absensi")
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(p, total))
}

// GET /api/attendances/:id
func (ctl *AttendanceController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "attendance_id tidak valid")
	}
	var attendance academicModel.AttendanceModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&attendance, "attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Absensi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memuat absensi")
	}
	return helper.JsonOK(c, "", attendance)
}

// DELETE /api/attendances/:id
func (ctl *AttendanceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "attendance_id tidak valid")
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&academicModel.AttendanceModel{}, "attendance_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghapus absensi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Absensi tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Absensi dihapus", fiber.Map{"attendance_id": id})
}
