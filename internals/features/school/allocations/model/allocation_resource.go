package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

/* ===================== ResourceKind ===================== */
/* Pengganti akses sub-record dinamis doc[doc.service]: enum + dispatch
   table eksplisit per jenis resource berkapasitas. */

type ResourceKind string

const (
	KindBus             ResourceKind = "bus"
	KindHostelRoom      ResourceKind = "hostel_room"
	KindHostelMess      ResourceKind = "hostel_mess"
	KindExtracurricular ResourceKind = "extracurricular"
)

// AllocationResource adalah kontrak bersama keempat resource berkapasitas.
// Invariant: 0 <= Available() <= Capacity() dan
// Available() + len(Members()) == Capacity().
type AllocationResource interface {
	GetID() uuid.UUID
	Kind() ResourceKind
	Capacity() int
	Available() int
	Members() []string
	FeeIDR() int
	PaymentDue() *time.Time
	CheckInvariant() error
}

type kindInfo struct {
	Table      string
	IDCol      string
	AvailCol   string
	MembersCol string
	DeletedCol string
	// New mengembalikan pointer model kosong untuk di-scan gorm.
	New func() AllocationResource
}

var kindInfos = map[ResourceKind]kindInfo{
	KindBus: {
		Table: "buses", IDCol: "bus_id",
		AvailCol: "bus_available_seats", MembersCol: "bus_members",
		DeletedCol: "bus_deleted_at",
		New:        func() AllocationResource { return &BusModel{} },
	},
	KindHostelRoom: {
		Table: "hostel_rooms", IDCol: "hostel_room_id",
		AvailCol: "hostel_room_available_beds", MembersCol: "hostel_room_members",
		DeletedCol: "hostel_room_deleted_at",
		New:        func() AllocationResource { return &HostelRoomModel{} },
	},
	KindHostelMess: {
		Table: "hostel_messes", IDCol: "hostel_mess_id",
		AvailCol: "hostel_mess_available_slots", MembersCol: "hostel_mess_members",
		DeletedCol: "hostel_mess_deleted_at",
		New:        func() AllocationResource { return &HostelMessModel{} },
	},
	KindExtracurricular: {
		Table: "extracurriculars", IDCol: "extracurricular_id",
		AvailCol: "extracurricular_available_slots", MembersCol: "extracurricular_members",
		DeletedCol: "extracurricular_deleted_at",
		New:        func() AllocationResource { return &ExtracurricularModel{} },
	},
}

func (k ResourceKind) Valid() bool { _, ok := kindInfos[k]; return ok }

func (k ResourceKind) Table() string         { return kindInfos[k].Table }
func (k ResourceKind) IDColumn() string      { return kindInfos[k].IDCol }
func (k ResourceKind) AvailColumn() string   { return kindInfos[k].AvailCol }
func (k ResourceKind) MembersColumn() string { return kindInfos[k].MembersCol }
func (k ResourceKind) DeletedColumn() string { return kindInfos[k].DeletedCol }

func (k ResourceKind) NewModel() (AllocationResource, error) {
	info, ok := kindInfos[k]
	if !ok {
		return nil, fmt.Errorf("resource kind tidak dikenal: %q", k)
	}
	return info.New(), nil
}

// AllKinds untuk validasi & listing.
func AllKinds() []ResourceKind {
	return []ResourceKind{KindBus, KindHostelRoom, KindHostelMess, KindExtracurricular}
}

func checkInvariant(kind ResourceKind, capacity, available int, members []string) error {
	if available < 0 {
		return fmt.Errorf("%s: available %d negatif", kind, available)
	}
	if available > capacity {
		return fmt.Errorf("%s: available %d melebihi capacity %d", kind, available, capacity)
	}
	if available+len(members) != capacity {
		return fmt.Errorf("%s: available(%d) + members(%d) != capacity(%d)",
			kind, available, len(members), capacity)
	}
	return nil
}
