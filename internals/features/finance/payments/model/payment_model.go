package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */
/* Selaras dengan ENUM di PostgreSQL: payment_status */

const (
	PaymentStatusPending    = "pending"
	PaymentStatusSuccessful = "successful"
)

/* ===================== Model ===================== */

type Payment struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentStudentID uuid.UUID `gorm:"column:payment_student_id;type:uuid;not null;index" json:"payment_student_id"`

	// Nominal & mata uang
	PaymentAmountIDR int    `gorm:"column:payment_amount_idr;not null;check:payment_amount_idr >= 0" json:"payment_amount_idr"`
	PaymentCurrency  string `gorm:"column:payment_currency;type:varchar(8);not null;default:IDR" json:"payment_currency"`

	PaymentStatus string     `gorm:"column:payment_status;type:varchar(16);not null;default:'pending'" json:"payment_status"`
	PaymentDueAt  *time.Time `gorm:"column:payment_due_at" json:"payment_due_at,omitempty"`

	// Asal tagihan: grant kursi/kamar/mess/ekskul atau penetapan fee.
	PaymentDescription *string `gorm:"column:payment_description" json:"payment_description,omitempty"`

	// Info gateway
	PaymentOrderID   *string `gorm:"column:payment_order_id;uniqueIndex" json:"payment_order_id,omitempty"`
	PaymentSnapToken *string `gorm:"column:payment_snap_token" json:"payment_snap_token,omitempty"`

	PaymentPaidAt *time.Time        `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`
	PaymentMeta   datatypes.JSONMap `gorm:"column:payment_meta;type:jsonb" json:"payment_meta,omitempty"`

	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"-"`
}

func (Payment) TableName() string { return "payments" }
