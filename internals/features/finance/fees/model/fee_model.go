package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeeModel: jenis tagihan sekolah (SPP, seragam, kegiatan, dst).
// Penetapan ke siswa menghasilkan Payment pending.
type FeeModel struct {
	FeeID uuid.UUID `gorm:"column:fee_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_id"`

	FeeName        string  `gorm:"column:fee_name;type:varchar(120);not null" json:"fee_name"`
	FeeAmountIDR   int     `gorm:"column:fee_amount_idr;not null;check:fee_amount_idr >= 0" json:"fee_amount_idr"`
	FeeDescription *string `gorm:"column:fee_description;type:text" json:"fee_description,omitempty"`

	// Jatuh tempo default (hari sejak penetapan); 0 = tanpa due date
	FeeDueInDays int `gorm:"column:fee_due_in_days;not null;default:0;check:fee_due_in_days >= 0" json:"fee_due_in_days"`

	FeeCreatedAt time.Time      `gorm:"column:fee_created_at;autoCreateTime" json:"fee_created_at"`
	FeeUpdatedAt time.Time      `gorm:"column:fee_updated_at;autoUpdateTime" json:"fee_updated_at"`
	FeeDeletedAt gorm.DeletedAt `gorm:"column:fee_deleted_at;index" json:"-"`
}

func (FeeModel) TableName() string { return "fees" }
