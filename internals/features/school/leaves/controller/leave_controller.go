// file: internals/features/school/leaves/controller/leave_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/leaves/dto"
	leaveModel "sekolahku_backend/internals/features/school/leaves/model"
	"sekolahku_backend/internals/features/school/leaves/service"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/mailer"
)

type LeaveController struct {
	DB   *gorm.DB
	Mail mailer.Mailer
}

func NewLeaveController(db *gorm.DB, mail mailer.Mailer) *LeaveController {
	return &LeaveController{DB: db, Mail: mail}
}

// POST /api/leaves
func (ctl *LeaveController) Create(c *fiber.Ctx) error {
	var body dto.CreateLeaveRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	ownerID, err := uuid.Parse(body.OwnerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "owner_id tidak valid")
	}
	start, err := helper.ParseDate(body.StartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	end, err := helper.ParseDate(body.EndDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	leave, err := service.RequestLeave(c.UserContext(), ctl.DB, service.RequestLeaveInput{
		OwnerKind: leaveModel.OwnerKind(body.OwnerKind),
		OwnerID:   ownerID,
		Type:      leaveModel.LeaveType(body.LeaveType),
		StartDate: start,
		EndDate:   end,
		Reason:    body.Reason,
	})
	if err != nil {
		return ctl.mapServiceError(c, err)
	}

	return helper.JsonCreated(c, "Pengajuan cuti dibuat", dto.NewLeaveResponse(leave))
}

// GET /api/leaves?owner_kind=&owner_id=&status=&page=&per_page=
func (ctl *LeaveController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&leaveModel.LeaveModel{})
	if v := strings.TrimSpace(c.Query("owner_kind")); v != "" {
		tx = tx.Where("leave_owner_kind = ?", v)
	}
	if v := strings.TrimSpace(c.Query("owner_id")); v != "" {
		tx = tx.Where("leave_owner_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		tx = tx.Where("leave_status = ?", v)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghitung cuti")
	}

	var rows []leaveModel.LeaveModel
	if err := tx.Order("leave_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memuat cuti")
	}

	return helper.JsonList(c, "", dto.NewLeaveResponses(rows), helper.BuildPagination(p, total))
}

// GET /api/leaves/:id
func (ctl *LeaveController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "leave_id tidak valid")
	}
	leave, err := service.GetLeave(c.UserContext(), ctl.DB, id)
	if err != nil {
		return ctl.mapServiceError(c, err)
	}
	return helper.JsonOK(c, "", dto.NewLeaveResponse(leave))
}

// PATCH /api/leaves/:id — approve/reject
func (ctl *LeaveController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "leave_id tidak valid")
	}

	var body dto.UpdateLeaveStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	leave, err := service.SetLeaveStatus(c.UserContext(), ctl.DB, id, body.Status)
	if err != nil {
		return ctl.mapServiceError(c, err)
	}

	ctl.notifyDecision(leave)

	return helper.JsonUpdated(c, "Status cuti diperbarui", dto.NewLeaveResponse(leave))
}

// DELETE /api/leaves/:id
func (ctl *LeaveController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "leave_id tidak valid")
	}
	leave, err := service.DeleteLeave(c.UserContext(), ctl.DB, id)
	if err != nil {
		return ctl.mapServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Cuti dihapus", dto.NewLeaveResponse(leave))
}

// notifyDecision kirim email ke pemilik cuti. Best-effort: gagal kirim
// cuma kelihatan di log.
func (ctl *LeaveController) notifyDecision(leave *leaveModel.LeaveModel) {
	name, email := ctl.ownerContact(leave)
	if email == "" {
		return
	}
	subject := fmt.Sprintf("Pengajuan cuti %s", leave.LeaveStatus)
	body := fmt.Sprintf(
		"Halo %s,\n\nPengajuan cuti %s Anda (%s s/d %s, %d hari) berstatus: %s.\n",
		name, leave.LeaveType,
		helper.FormatDate(leave.LeaveStartDate), helper.FormatDate(leave.LeaveEndDate),
		leave.LeaveDays, leave.LeaveStatus,
	)
	ctl.Mail.Send(name, email, subject, body)
}

func (ctl *LeaveController) ownerContact(leave *leaveModel.LeaveModel) (name, email string) {
	kind := leave.LeaveOwnerKind
	row := struct {
		Name  string
		Email string
	}{}
	err := ctl.DB.Table(kind.Table()).
		Select(fmt.Sprintf("%s_name AS name, %s_email AS email", kind, kind)).
		Where(fmt.Sprintf("%s = ?", kind.IDColumn()), leave.LeaveOwnerID).
		Scan(&row).Error
	if err != nil {
		return "", ""
	}
	return row.Name, row.Email
}

func (ctl *LeaveController) mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrLeaveNotFound), errors.Is(err, service.ErrOwnerNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInsufficientBalance):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrInvalidTransition):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidRange):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "internal error")
	}
}
