// file: internals/features/school/allocations/controller/allocation_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/allocations/dto"
	allocModel "sekolahku_backend/internals/features/school/allocations/model"
	"sekolahku_backend/internals/features/school/allocations/service"
	helper "sekolahku_backend/internals/helpers"
)

type AllocationController struct {
	DB *gorm.DB
}

func NewAllocationController(db *gorm.DB) *AllocationController {
	return &AllocationController{DB: db}
}

func parseKind(c *fiber.Ctx) (allocModel.ResourceKind, error) {
	kind := allocModel.ResourceKind(strings.TrimSpace(c.Params("kind")))
	if !kind.Valid() {
		return "", fmt.Errorf("jenis resource tidak dikenal: %q", kind)
	}
	return kind, nil
}

// GET /api/allocations/:kind
func (ctl *AllocationController) List(c *fiber.Ctx) error {
	kind, err := parseKind(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.UserContext()).Table(kind.Table()).
		Where(kind.DeletedColumn() + " IS NULL")

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghitung resource")
	}

	rows, err := ctl.scanRows(tx, kind, p)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memuat resource")
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(p, total))
}

// satu scanner per kind supaya gorm tahu bentuk barisnya
func (ctl *AllocationController) scanRows(tx *gorm.DB, kind allocModel.ResourceKind, p helper.Paging) (any, error) {
	tx = tx.Offset(p.Offset).Limit(p.Limit)
	switch kind {
	case allocModel.KindBus:
		var rows []allocModel.BusModel
		return rows, tx.Find(&rows).Error
	case allocModel.KindHostelRoom:
		var rows []allocModel.HostelRoomModel
		return rows, tx.Find(&rows).Error
	case allocModel.KindHostelMess:
		var rows []allocModel.HostelMessModel
		return rows, tx.Find(&rows).Error
	default:
		var rows []allocModel.ExtracurricularModel
		return rows, tx.Find(&rows).Error
	}
}

// GET /api/allocations/:kind/:id
func (ctl *AllocationController) GetByID(c *fiber.Ctx) error {
	kind, err := parseKind(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	resource, err := service.GetResource(c.UserContext(), ctl.DB, kind, id)
	if err != nil {
		return ctl.mapServiceError(c, err)
	}
	return helper.JsonOK(c, "", resource)
}

// POST /api/allocations/:kind — create resource baru (available = capacity)
func (ctl *AllocationController) Create(c *fiber.Ctx) error {
	kind, err := parseKind(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m, err := ctl.buildCreateModel(c, kind)
	if err != nil {
		// buildCreateModel sudah menulis response error
		return err
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal membuat resource")
	}
	return helper.JsonCreated(c, "Resource dibuat", m)
}

func (ctl *AllocationController) buildCreateModel(c *fiber.Ctx, kind allocModel.ResourceKind) (any, error) {
	switch kind {
	case allocModel.KindBus:
		var body dto.CreateBusRequest
		if err := parseAndValidate(c, &body); err != nil {
			return nil, err
		}
		due, err := parseDuePtr(c, body.PaymentDue)
		if err != nil {
			return nil, err
		}
		return &allocModel.BusModel{
			BusNumber:         body.BusNumber,
			BusRoute:          body.BusRoute,
			BusDriver:         body.BusDriver,
			BusMaxSeats:       body.MaxSeats,
			BusAvailableSeats: body.MaxSeats,
			BusMembers:        []string{},
			BusFeeIDR:         body.FeeIDR,
			BusPaymentDue:     due,
		}, nil

	case allocModel.KindHostelRoom:
		var body dto.CreateHostelRoomRequest
		if err := parseAndValidate(c, &body); err != nil {
			return nil, err
		}
		due, err := parseDuePtr(c, body.PaymentDue)
		if err != nil {
			return nil, err
		}
		return &allocModel.HostelRoomModel{
			HostelRoomHostelName:    body.HostelName,
			HostelRoomNumber:        body.RoomNumber,
			HostelRoomFloor:         body.Floor,
			HostelRoomMaxBeds:       body.MaxBeds,
			HostelRoomAvailableBeds: body.MaxBeds,
			HostelRoomMembers:       []string{},
			HostelRoomFeeIDR:        body.FeeIDR,
			HostelRoomPaymentDue:    due,
		}, nil

	case allocModel.KindHostelMess:
		var body dto.CreateHostelMessRequest
		if err := parseAndValidate(c, &body); err != nil {
			return nil, err
		}
		due, err := parseDuePtr(c, body.PaymentDue)
		if err != nil {
			return nil, err
		}
		return &allocModel.HostelMessModel{
			HostelMessName:           body.MessName,
			HostelMessMealPlan:       body.MealPlan,
			HostelMessMaxSlots:       body.MaxSlots,
			HostelMessAvailableSlots: body.MaxSlots,
			HostelMessMembers:        []string{},
			HostelMessFeeIDR:         body.FeeIDR,
			HostelMessPaymentDue:     due,
		}, nil

	default:
		var body dto.CreateExtracurricularRequest
		if err := parseAndValidate(c, &body); err != nil {
			return nil, err
		}
		due, err := parseDuePtr(c, body.PaymentDue)
		if err != nil {
			return nil, err
		}
		return &allocModel.ExtracurricularModel{
			ExtracurricularName:           body.Name,
			ExtracurricularSchedule:       body.Schedule,
			ExtracurricularCoach:          body.Coach,
			ExtracurricularMaxSlots:       body.MaxSlots,
			ExtracurricularAvailableSlots: body.MaxSlots,
			ExtracurricularMembers:        []string{},
			ExtracurricularFeeIDR:         body.FeeIDR,
			ExtracurricularPaymentDue:     due,
		}, nil
	}
}

// PATCH /api/allocations/:kind/:id/grant — konsumsi satu slot + buat Payment
func (ctl *AllocationController) Grant(c *fiber.Ctx) error {
	kind, err := parseKind(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var body dto.GrantSlotRequest
	if err := parseAndValidate(c, &body); err != nil {
		return err
	}
	studentID, err := uuid.Parse(body.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
	}

	result, err := service.GrantSlot(c.UserContext(), ctl.DB, kind, id, studentID, body.FeeOverride)
	if errors.Is(err, service.ErrPaymentNotRecorded) && result != nil {
		// Partial failure: grant sudah commit, tagihan gagal tercatat.
		return helper.JsonCreatedWithWarning(c, "Slot diberikan", err.Error(),
			dto.GrantSlotResponse{Resource: result.Resource})
	}
	if err != nil {
		return ctl.mapServiceError(c, err)
	}

	return helper.JsonCreated(c, "Slot diberikan", dto.GrantSlotResponse{
		Resource: result.Resource,
		Payment:  result.Payment,
	})
}

// DELETE /api/allocations/:kind/:id — soft delete resource.
// Catatan: menghapus resource TIDAK mengembalikan slot ke member mana pun
// dan tidak menghapus Payment yang sudah dibuat (tidak ada operasi un-grant).
func (ctl *AllocationController) Delete(c *fiber.Ctx) error {
	kind, err := parseKind(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	res := ctl.DB.WithContext(c.UserContext()).Table(kind.Table()).
		Where(fmt.Sprintf("%s = ? AND %s IS NULL", kind.IDColumn(), kind.DeletedColumn()), id).
		Update(kind.DeletedColumn(), gorm.Expr("NOW()"))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghapus resource")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "resource tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Resource dihapus", fiber.Map{"id": id})
}

func (ctl *AllocationController) mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrResourceNotFound), errors.Is(err, service.ErrStudentNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrCapacityExceeded):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrAlreadyMember):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrUnknownKind):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "internal error")
	}
}

func parseAndValidate(c *fiber.Ctx, body any) error {
	if err := c.BodyParser(body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := helper.ValidateStruct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	return nil
}

func parseDuePtr(c *fiber.Ctx, s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := helper.ParseDate(*s)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return &t, nil
}
