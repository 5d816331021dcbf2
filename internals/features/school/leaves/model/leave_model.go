package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */
/* Selaras dengan ENUM di PostgreSQL: leave_owner_kind, leave_type, leave_status */

type OwnerKind string

const (
	OwnerTeacher OwnerKind = "teacher"
	OwnerAdmin   OwnerKind = "admin"
)

type LeaveType string

const (
	LeaveCasual LeaveType = "casual"
	LeaveEarned LeaveType = "earned"
	LeaveSick   LeaveType = "sick"
)

const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

/* ===================== Dispatch tables ===================== */
/* Pengganti akses field dinamis owner[leaveType]: pemetaan eksplisit
   enum → tabel/kolom, supaya typo ketahuan saat kompilasi. */

type ownerInfo struct {
	Table     string
	IDCol     string
	DeletedCol string
}

var ownerInfos = map[OwnerKind]ownerInfo{
	OwnerTeacher: {Table: "teachers", IDCol: "teacher_id", DeletedCol: "teacher_deleted_at"},
	OwnerAdmin:   {Table: "admins", IDCol: "admin_id", DeletedCol: "admin_deleted_at"},
}

var balanceCols = map[OwnerKind]map[LeaveType]string{
	OwnerTeacher: {
		LeaveCasual: "teacher_casual_leave",
		LeaveEarned: "teacher_earned_leave",
		LeaveSick:   "teacher_sick_leave",
	},
	OwnerAdmin: {
		LeaveCasual: "admin_casual_leave",
		LeaveEarned: "admin_earned_leave",
		LeaveSick:   "admin_sick_leave",
	},
}

func (k OwnerKind) Valid() bool { _, ok := ownerInfos[k]; return ok }

func (k OwnerKind) Table() string      { return ownerInfos[k].Table }
func (k OwnerKind) IDColumn() string   { return ownerInfos[k].IDCol }
func (k OwnerKind) DeletedColumn() string { return ownerInfos[k].DeletedCol }

func (t LeaveType) Valid() bool {
	return t == LeaveCasual || t == LeaveEarned || t == LeaveSick
}

// BalanceColumn memetakan (owner kind, jenis cuti) ke kolom saldo.
func BalanceColumn(kind OwnerKind, t LeaveType) (string, error) {
	cols, ok := balanceCols[kind]
	if !ok {
		return "", fmt.Errorf("owner kind tidak dikenal: %q", kind)
	}
	col, ok := cols[t]
	if !ok {
		return "", fmt.Errorf("jenis cuti tidak dikenal: %q", t)
	}
	return col, nil
}

/* ===================== Model ===================== */

type LeaveModel struct {
	LeaveID uuid.UUID `gorm:"column:leave_id;type:uuid;default:gen_random_uuid();primaryKey" json:"leave_id"`

	LeaveOwnerKind OwnerKind `gorm:"column:leave_owner_kind;type:varchar(12);not null;index:idx_leaves_owner" json:"leave_owner_kind"`
	LeaveOwnerID   uuid.UUID `gorm:"column:leave_owner_id;type:uuid;not null;index:idx_leaves_owner" json:"leave_owner_id"`

	LeaveType      LeaveType `gorm:"column:leave_type;type:varchar(12);not null" json:"leave_type"`
	LeaveStartDate time.Time `gorm:"column:leave_start_date;type:date;not null" json:"leave_start_date"`
	LeaveEndDate   time.Time `gorm:"column:leave_end_date;type:date;not null" json:"leave_end_date"`

	// Jumlah hari inklusif yang sudah didebit dari saldo saat pengajuan.
	LeaveDays int `gorm:"column:leave_days;not null;check:leave_days > 0" json:"leave_days"`

	LeaveStatus string  `gorm:"column:leave_status;type:varchar(12);not null;default:'pending'" json:"leave_status"`
	LeaveReason *string `gorm:"column:leave_reason;type:text" json:"leave_reason,omitempty"`

	// Guard satu kali untuk kredit balik saldo: reject dan delete lewat jalur
	// reversal yang sama, kredit hanya terjadi saat flag ini masih false.
	LeaveReversed bool `gorm:"column:leave_reversed;not null;default:false" json:"leave_reversed"`

	LeaveCreatedAt time.Time      `gorm:"column:leave_created_at;autoCreateTime" json:"leave_created_at"`
	LeaveUpdatedAt time.Time      `gorm:"column:leave_updated_at;autoUpdateTime" json:"leave_updated_at"`
	LeaveDeletedAt gorm.DeletedAt `gorm:"column:leave_deleted_at;index" json:"-"`
}

func (LeaveModel) TableName() string { return "leaves" }

/* ===================== Transition guards ===================== */

// CanTransitionTo memeriksa apakah perubahan status diizinkan.
// approved hanya dari pending; rejected dari pending atau approved,
// dan tidak boleh dua kali (kredit saldo hanya sekali).
func (l *LeaveModel) CanTransitionTo(newStatus string) error {
	switch newStatus {
	case LeaveStatusApproved:
		if l.LeaveStatus != LeaveStatusPending {
			return fmt.Errorf("hanya cuti pending yang bisa di-approve (status sekarang: %s)", l.LeaveStatus)
		}
	case LeaveStatusRejected:
		if l.LeaveStatus == LeaveStatusRejected {
			return fmt.Errorf("cuti sudah rejected")
		}
		if l.LeaveReversed {
			return fmt.Errorf("saldo cuti sudah dikembalikan")
		}
	default:
		return fmt.Errorf("status tujuan tidak dikenal: %q", newStatus)
	}
	return nil
}

// NeedsReversal true jika penghapusan/penolakan masih harus mengembalikan saldo.
func (l *LeaveModel) NeedsReversal() bool {
	return !l.LeaveReversed
}
