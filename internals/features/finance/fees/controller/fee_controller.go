// file: internals/features/finance/fees/controller/fee_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/finance/fees/dto"
	feeModel "sekolahku_backend/internals/features/finance/fees/model"
	paymentModel "sekolahku_backend/internals/features/finance/payments/model"
	studentModel "sekolahku_backend/internals/features/school/people/model"
	helper "sekolahku_backend/internals/helpers"
)

type FeeController struct {
	DB *gorm.DB
}

func NewFeeController(db *gorm.DB) *FeeController {
	return &FeeController{DB: db}
}

// POST /api/fees
func (ctl *FeeController) Create(c *fiber.Ctx) error {
	var body dto.CreateFeeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	fee := feeModel.FeeModel{
		FeeName:        body.FeeName,
		FeeAmountIDR:   body.FeeAmountIDR,
		FeeDescription: body.FeeDescription,
		FeeDueInDays:   body.FeeDueInDays,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&fee).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal membuat fee")
	}
	return helper.JsonCreated(c, "Fee dibuat", dto.ToFeeResponse(&fee))
}

// GET /api/fees
func (ctl *FeeController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&feeModel.FeeModel{})
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		tx = tx.Where("fee_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghitung fee")
	}

	var rows []feeModel.FeeModel
	if err := tx.Order("fee_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memuat fee")
	}
	return helper.JsonList(c, "", dto.ToFeeResponses(rows), helper.BuildPagination(p, total))
}

// GET /api/fees/:id
func (ctl *FeeController) GetByID(c *fiber.Ctx) error {
	fee, err := ctl.findFee(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.ToFeeResponse(fee))
}

// PUT /api/fees/:id
func (ctl *FeeController) Update(c *fiber.Ctx) error {
	fee, err := ctl.findFee(c)
	if err != nil {
		return err
	}

	var body dto.UpdateFeeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.FeeName != nil {
		fee.FeeName = *body.FeeName
	}
	if body.FeeAmountIDR != nil {
		fee.FeeAmountIDR = *body.FeeAmountIDR
	}
	if body.FeeDescription != nil {
		fee.FeeDescription = body.FeeDescription
	}
	if body.FeeDueInDays != nil {
		fee.FeeDueInDays = *body.FeeDueInDays
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(fee).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memperbarui fee")
	}
	return helper.JsonUpdated(c, "Fee diperbarui", dto.ToFeeResponse(fee))
}

// DELETE /api/fees/:id — soft delete; payment yang sudah terbit tidak ikut terhapus
func (ctl *FeeController) Delete(c *fiber.Ctx) error {
	fee, err := ctl.findFee(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(fee).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghapus fee")
	}
	return helper.JsonDeleted(c, "Fee dihapus", dto.ToFeeResponse(fee))
}

// POST /api/fees/:id/assign — terbitkan Payment pending untuk tiap siswa.
// Satu transaksi: ada siswa yang tidak valid → semua batal.
func (ctl *FeeController) Assign(c *fiber.Ctx) error {
	fee, err := ctl.findFee(c)
	if err != nil {
		return err
	}

	var body dto.AssignFeeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var dueAt *time.Time
	if fee.FeeDueInDays > 0 {
		d := time.Now().AddDate(0, 0, fee.FeeDueInDays)
		dueAt = &d
	}
	desc := fmt.Sprintf("Fee: %s", fee.FeeName)

	payments := make([]paymentModel.Payment, 0, len(body.StudentIDs))
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&studentModel.StudentModel{}).
			Where("student_id IN ?", body.StudentIDs).
			Count(&count).Error; err != nil {
			return err
		}
		if int(count) != len(body.StudentIDs) {
			return gorm.ErrRecordNotFound
		}

		for _, sid := range body.StudentIDs {
			payments = append(payments, paymentModel.Payment{
				PaymentStudentID:   sid,
				PaymentAmountIDR:   fee.FeeAmountIDR,
				PaymentCurrency:    "IDR",
				PaymentStatus:      paymentModel.PaymentStatusPending,
				PaymentDueAt:       dueAt,
				PaymentDescription: &desc,
			})
		}
		return tx.Create(&payments).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ada siswa yang tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menetapkan fee")
	}

	return helper.JsonCreated(c,
		fmt.Sprintf("Fee ditetapkan ke %d siswa", len(payments)),
		fiber.Map{"fee": dto.ToFeeResponse(fee), "payments_created": len(payments)},
	)
}

func (ctl *FeeController) findFee(c *fiber.Ctx) (*feeModel.FeeModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "fee_id tidak valid")
	}
	var fee feeModel.FeeModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&fee, "fee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Fee tidak ditemukan")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "gagal memuat fee")
	}
	return &fee, nil
}
