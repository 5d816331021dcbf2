package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type HostelRoomModel struct {
	HostelRoomID uuid.UUID `gorm:"column:hostel_room_id;type:uuid;default:gen_random_uuid();primaryKey" json:"hostel_room_id"`

	HostelRoomHostelName string `gorm:"column:hostel_room_hostel_name;type:varchar(120);not null" json:"hostel_room_hostel_name"`
	HostelRoomNumber     string `gorm:"column:hostel_room_number;type:varchar(20);not null" json:"hostel_room_number"`
	HostelRoomFloor      *int   `gorm:"column:hostel_room_floor" json:"hostel_room_floor,omitempty"`

	HostelRoomMaxBeds       int            `gorm:"column:hostel_room_max_beds;not null;check:hostel_room_max_beds > 0" json:"hostel_room_max_beds"`
	HostelRoomAvailableBeds int            `gorm:"column:hostel_room_available_beds;not null;check:hostel_room_available_beds >= 0" json:"hostel_room_available_beds"`
	HostelRoomMembers       pq.StringArray `gorm:"column:hostel_room_members;type:uuid[];not null;default:'{}'" json:"hostel_room_members"`

	HostelRoomFeeIDR     int        `gorm:"column:hostel_room_fee_idr;not null;check:hostel_room_fee_idr >= 0" json:"hostel_room_fee_idr"`
	HostelRoomPaymentDue *time.Time `gorm:"column:hostel_room_payment_due" json:"hostel_room_payment_due,omitempty"`

	HostelRoomCreatedAt time.Time      `gorm:"column:hostel_room_created_at;autoCreateTime" json:"hostel_room_created_at"`
	HostelRoomUpdatedAt time.Time      `gorm:"column:hostel_room_updated_at;autoUpdateTime" json:"hostel_room_updated_at"`
	HostelRoomDeletedAt gorm.DeletedAt `gorm:"column:hostel_room_deleted_at;index" json:"-"`
}

func (HostelRoomModel) TableName() string { return "hostel_rooms" }

func (m *HostelRoomModel) GetID() uuid.UUID       { return m.HostelRoomID }
func (m *HostelRoomModel) Kind() ResourceKind     { return KindHostelRoom }
func (m *HostelRoomModel) Capacity() int          { return m.HostelRoomMaxBeds }
func (m *HostelRoomModel) Available() int         { return m.HostelRoomAvailableBeds }
func (m *HostelRoomModel) Members() []string      { return m.HostelRoomMembers }
func (m *HostelRoomModel) FeeIDR() int            { return m.HostelRoomFeeIDR }
func (m *HostelRoomModel) PaymentDue() *time.Time { return m.HostelRoomPaymentDue }

func (m *HostelRoomModel) CheckInvariant() error {
	return checkInvariant(KindHostelRoom, m.HostelRoomMaxBeds, m.HostelRoomAvailableBeds, m.HostelRoomMembers)
}

type HostelMessModel struct {
	HostelMessID uuid.UUID `gorm:"column:hostel_mess_id;type:uuid;default:gen_random_uuid();primaryKey" json:"hostel_mess_id"`

	HostelMessName     string  `gorm:"column:hostel_mess_name;type:varchar(120);not null" json:"hostel_mess_name"`
	HostelMessMealPlan *string `gorm:"column:hostel_mess_meal_plan;type:varchar(120)" json:"hostel_mess_meal_plan,omitempty"`

	HostelMessMaxSlots       int            `gorm:"column:hostel_mess_max_slots;not null;check:hostel_mess_max_slots > 0" json:"hostel_mess_max_slots"`
	HostelMessAvailableSlots int            `gorm:"column:hostel_mess_available_slots;not null;check:hostel_mess_available_slots >= 0" json:"hostel_mess_available_slots"`
	HostelMessMembers        pq.StringArray `gorm:"column:hostel_mess_members;type:uuid[];not null;default:'{}'" json:"hostel_mess_members"`

	HostelMessFeeIDR     int        `gorm:"column:hostel_mess_fee_idr;not null;check:hostel_mess_fee_idr >= 0" json:"hostel_mess_fee_idr"`
	HostelMessPaymentDue *time.Time `gorm:"column:hostel_mess_payment_due" json:"hostel_mess_payment_due,omitempty"`

	HostelMessCreatedAt time.Time      `gorm:"column:hostel_mess_created_at;autoCreateTime" json:"hostel_mess_created_at"`
	HostelMessUpdatedAt time.Time      `gorm:"column:hostel_mess_updated_at;autoUpdateTime" json:"hostel_mess_updated_at"`
	HostelMessDeletedAt gorm.DeletedAt `gorm:"column:hostel_mess_deleted_at;index" json:"-"`
}

func (HostelMessModel) TableName() string { return "hostel_messes" }

func (m *HostelMessModel) GetID() uuid.UUID       { return m.HostelMessID }
func (m *HostelMessModel) Kind() ResourceKind     { return KindHostelMess }
func (m *HostelMessModel) Capacity() int          { return m.HostelMessMaxSlots }
func (m *HostelMessModel) Available() int         { return m.HostelMessAvailableSlots }
func (m *HostelMessModel) Members() []string      { return m.HostelMessMembers }
func (m *HostelMessModel) FeeIDR() int            { return m.HostelMessFeeIDR }
func (m *HostelMessModel) PaymentDue() *time.Time { return m.HostelMessPaymentDue }

func (m *HostelMessModel) CheckInvariant() error {
	return checkInvariant(KindHostelMess, m.HostelMessMaxSlots, m.HostelMessAvailableSlots, m.HostelMessMembers)
}
