package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// AttendanceModel: absensi satu kelas per tanggal.
// Daftar hadir disimpan sebagai array uuid siswa (uuid[]).
type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`

	AttendanceClassID uuid.UUID `gorm:"column:attendance_class_id;type:uuid;not null;uniqueIndex:uq_attendance_class_date" json:"attendance_class_id"`
	AttendanceDate    time.Time `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_class_date" json:"attendance_date"`

	AttendancePresent pq.StringArray `gorm:"column:attendance_present;type:uuid[];not null;default:'{}'" json:"attendance_present"`

	AttendanceCreatedAt time.Time      `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time      `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
	AttendanceDeletedAt gorm.DeletedAt `gorm:"column:attendance_deleted_at;index" json:"-"`
}

func (AttendanceModel) TableName() string { return "attendances" }
