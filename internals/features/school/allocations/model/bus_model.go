package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type BusModel struct {
	BusID uuid.UUID `gorm:"column:bus_id;type:uuid;default:gen_random_uuid();primaryKey" json:"bus_id"`

	BusNumber string  `gorm:"column:bus_number;type:varchar(20);not null;uniqueIndex" json:"bus_number"`
	BusRoute  string  `gorm:"column:bus_route;type:varchar(200);not null" json:"bus_route"`
	BusDriver *string `gorm:"column:bus_driver;type:varchar(120)" json:"bus_driver,omitempty"`

	BusMaxSeats       int            `gorm:"column:bus_max_seats;not null;check:bus_max_seats > 0" json:"bus_max_seats"`
	BusAvailableSeats int            `gorm:"column:bus_available_seats;not null;check:bus_available_seats >= 0" json:"bus_available_seats"`
	BusMembers        pq.StringArray `gorm:"column:bus_members;type:uuid[];not null;default:'{}'" json:"bus_members"`

	BusFeeIDR     int        `gorm:"column:bus_fee_idr;not null;check:bus_fee_idr >= 0" json:"bus_fee_idr"`
	BusPaymentDue *time.Time `gorm:"column:bus_payment_due" json:"bus_payment_due,omitempty"`

	BusCreatedAt time.Time      `gorm:"column:bus_created_at;autoCreateTime" json:"bus_created_at"`
	BusUpdatedAt time.Time      `gorm:"column:bus_updated_at;autoUpdateTime" json:"bus_updated_at"`
	BusDeletedAt gorm.DeletedAt `gorm:"column:bus_deleted_at;index" json:"-"`
}

func (BusModel) TableName() string { return "buses" }

func (m *BusModel) GetID() uuid.UUID       { return m.BusID }
func (m *BusModel) Kind() ResourceKind     { return KindBus }
func (m *BusModel) Capacity() int          { return m.BusMaxSeats }
func (m *BusModel) Available() int         { return m.BusAvailableSeats }
func (m *BusModel) Members() []string      { return m.BusMembers }
func (m *BusModel) FeeIDR() int            { return m.BusFeeIDR }
func (m *BusModel) PaymentDue() *time.Time { return m.BusPaymentDue }

func (m *BusModel) CheckInvariant() error {
	return checkInvariant(KindBus, m.BusMaxSeats, m.BusAvailableSeats, m.BusMembers)
}
