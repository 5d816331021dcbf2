package dto

import (
	"time"

	"github.com/google/uuid"

	feeModel "sekolahku_backend/internals/features/finance/fees/model"
)

/* ===================== Requests ===================== */

type CreateFeeRequest struct {
	FeeName        string  `json:"fee_name" validate:"required,max=120"`
	FeeAmountIDR   int     `json:"fee_amount_idr" validate:"required,gte=0"`
	FeeDescription *string `json:"fee_description,omitempty"`
	FeeDueInDays   int     `json:"fee_due_in_days" validate:"gte=0"`
}

type UpdateFeeRequest struct {
	FeeName        *string `json:"fee_name,omitempty" validate:"omitempty,max=120"`
	FeeAmountIDR   *int    `json:"fee_amount_idr,omitempty" validate:"omitempty,gte=0"`
	FeeDescription *string `json:"fee_description,omitempty"`
	FeeDueInDays   *int    `json:"fee_due_in_days,omitempty" validate:"omitempty,gte=0"`
}

// AssignFeeRequest: tetapkan fee ke sejumlah siswa sekaligus.
type AssignFeeRequest struct {
	StudentIDs []uuid.UUID `json:"student_ids" validate:"required,min=1,dive,required"`
}

/* ===================== Responses ===================== */

type FeeResponse struct {
	FeeID          uuid.UUID `json:"fee_id"`
	FeeName        string    `json:"fee_name"`
	FeeAmountIDR   int       `json:"fee_amount_idr"`
	FeeDescription *string   `json:"fee_description,omitempty"`
	FeeDueInDays   int       `json:"fee_due_in_days"`
	FeeCreatedAt   time.Time `json:"fee_created_at"`
}

func ToFeeResponse(f *feeModel.FeeModel) FeeResponse {
	return FeeResponse{
		FeeID:          f.FeeID,
		FeeName:        f.FeeName,
		FeeAmountIDR:   f.FeeAmountIDR,
		FeeDescription: f.FeeDescription,
		FeeDueInDays:   f.FeeDueInDays,
		FeeCreatedAt:   f.FeeCreatedAt,
	}
}

func ToFeeResponses(list []feeModel.FeeModel) []FeeResponse {
	out := make([]FeeResponse, 0, len(list))
	for i := range list {
		out = append(out, ToFeeResponse(&list[i]))
	}
	return out
}
