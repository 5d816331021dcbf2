// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	paymentModel "sekolahku_backend/internals/features/finance/payments/model"
)

/* ===================== Requests ===================== */

type CreatePaymentRequest struct {
	PaymentStudentID uuid.UUID  `json:"payment_student_id" validate:"required"`
	PaymentAmountIDR int        `json:"payment_amount_idr" validate:"required,gte=0"`
	PaymentDueAt     *time.Time `json:"payment_due_at,omitempty"`
	Description      *string    `json:"description,omitempty"`
}

/* ===================== Responses ===================== */

type PaymentResponse struct {
	PaymentID        uuid.UUID  `json:"payment_id"`
	PaymentStudentID uuid.UUID  `json:"payment_student_id"`
	PaymentAmountIDR int        `json:"payment_amount_idr"`
	PaymentCurrency  string     `json:"payment_currency"`
	PaymentStatus    string     `json:"payment_status"`
	PaymentDueAt     *time.Time `json:"payment_due_at,omitempty"`
	Description      *string    `json:"description,omitempty"`
	PaymentOrderID   *string    `json:"payment_order_id,omitempty"`
	PaymentSnapToken *string    `json:"payment_snap_token,omitempty"`
	PaymentPaidAt    *time.Time `json:"payment_paid_at,omitempty"`
	PaymentCreatedAt time.Time  `json:"payment_created_at"`
}

func ToPaymentResponse(p *paymentModel.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:        p.PaymentID,
		PaymentStudentID: p.PaymentStudentID,
		PaymentAmountIDR: p.PaymentAmountIDR,
		PaymentCurrency:  p.PaymentCurrency,
		PaymentStatus:    p.PaymentStatus,
		PaymentDueAt:     p.PaymentDueAt,
		Description:      p.PaymentDescription,
		PaymentOrderID:   p.PaymentOrderID,
		PaymentSnapToken: p.PaymentSnapToken,
		PaymentPaidAt:    p.PaymentPaidAt,
		PaymentCreatedAt: p.PaymentCreatedAt,
	}
}

func ToPaymentResponses(list []paymentModel.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for i := range list {
		out = append(out, ToPaymentResponse(&list[i]))
	}
	return out
}
