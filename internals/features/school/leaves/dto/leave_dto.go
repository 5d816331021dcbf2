package dto

import (
	"time"

	leaveModel "sekolahku_backend/internals/features/school/leaves/model"
	helper "sekolahku_backend/internals/helpers"
)

type CreateLeaveRequest struct {
	OwnerKind string  `json:"owner_kind" validate:"required,oneof=teacher admin"`
	OwnerID   string  `json:"owner_id" validate:"required,uuid"`
	LeaveType string  `json:"leave_type" validate:"required,oneof=casual earned sick"`
	StartDate string  `json:"start_date" validate:"required"`
	EndDate   string  `json:"end_date" validate:"required"`
	Reason    *string `json:"reason" validate:"omitempty,max=500"`
}

type UpdateLeaveStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

type LeaveResponse struct {
	LeaveID   string  `json:"leave_id"`
	OwnerKind string  `json:"owner_kind"`
	OwnerID   string  `json:"owner_id"`
	LeaveType string  `json:"leave_type"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Days      int     `json:"days"`
	Status    string  `json:"status"`
	Reason    *string `json:"reason,omitempty"`
	Reversed  bool    `json:"reversed"`
	CreatedAt time.Time `json:"created_at"`
}

func NewLeaveResponse(l *leaveModel.LeaveModel) LeaveResponse {
	return LeaveResponse{
		LeaveID:   l.LeaveID.String(),
		OwnerKind: string(l.LeaveOwnerKind),
		OwnerID:   l.LeaveOwnerID.String(),
		LeaveType: string(l.LeaveType),
		StartDate: helper.FormatDate(l.LeaveStartDate),
		EndDate:   helper.FormatDate(l.LeaveEndDate),
		Days:      l.LeaveDays,
		Status:    l.LeaveStatus,
		Reason:    l.LeaveReason,
		Reversed:  l.LeaveReversed,
		CreatedAt: l.LeaveCreatedAt,
	}
}

func NewLeaveResponses(rows []leaveModel.LeaveModel) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewLeaveResponse(&rows[i]))
	}
	return out
}
