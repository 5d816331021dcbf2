package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ExtracurricularModel struct {
	ExtracurricularID uuid.UUID `gorm:"column:extracurricular_id;type:uuid;default:gen_random_uuid();primaryKey" json:"extracurricular_id"`

	ExtracurricularName     string  `gorm:"column:extracurricular_name;type:varchar(120);not null;uniqueIndex" json:"extracurricular_name"`
	ExtracurricularSchedule *string `gorm:"column:extracurricular_schedule;type:varchar(200)" json:"extracurricular_schedule,omitempty"`
	ExtracurricularCoach    *string `gorm:"column:extracurricular_coach;type:varchar(120)" json:"extracurricular_coach,omitempty"`

	ExtracurricularMaxSlots       int            `gorm:"column:extracurricular_max_slots;not null;check:extracurricular_max_slots > 0" json:"extracurricular_max_slots"`
	ExtracurricularAvailableSlots int            `gorm:"column:extracurricular_available_slots;not null;check:extracurricular_available_slots >= 0" json:"extracurricular_available_slots"`
	ExtracurricularMembers        pq.StringArray `gorm:"column:extracurricular_members;type:uuid[];not null;default:'{}'" json:"extracurricular_members"`

	ExtracurricularFeeIDR     int        `gorm:"column:extracurricular_fee_idr;not null;check:extracurricular_fee_idr >= 0" json:"extracurricular_fee_idr"`
	ExtracurricularPaymentDue *time.Time `gorm:"column:extracurricular_payment_due" json:"extracurricular_payment_due,omitempty"`

	ExtracurricularCreatedAt time.Time      `gorm:"column:extracurricular_created_at;autoCreateTime" json:"extracurricular_created_at"`
	ExtracurricularUpdatedAt time.Time      `gorm:"column:extracurricular_updated_at;autoUpdateTime" json:"extracurricular_updated_at"`
	ExtracurricularDeletedAt gorm.DeletedAt `gorm:"column:extracurricular_deleted_at;index" json:"-"`
}

func (ExtracurricularModel) TableName() string { return "extracurriculars" }

func (m *ExtracurricularModel) GetID() uuid.UUID       { return m.ExtracurricularID }
func (m *ExtracurricularModel) Kind() ResourceKind     { return KindExtracurricular }
func (m *ExtracurricularModel) Capacity() int          { return m.ExtracurricularMaxSlots }
func (m *ExtracurricularModel) Available() int         { return m.ExtracurricularAvailableSlots }
func (m *ExtracurricularModel) Members() []string      { return m.ExtracurricularMembers }
func (m *ExtracurricularModel) FeeIDR() int            { return m.ExtracurricularFeeIDR }
func (m *ExtracurricularModel) PaymentDue() *time.Time { return m.ExtracurricularPaymentDue }

func (m *ExtracurricularModel) CheckInvariant() error {
	return checkInvariant(KindExtracurricular, m.ExtracurricularMaxSlots, m.ExtracurricularAvailableSlots, m.ExtracurricularMembers)
}
