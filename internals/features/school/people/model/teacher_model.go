package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Jatah cuti awal per jenis, per tahun ajaran.
const DefaultLeaveBalance = 12

type TeacherModel struct {
	TeacherID uuid.UUID `gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_id"`

	TeacherName    string  `gorm:"column:teacher_name;type:varchar(120);not null" json:"teacher_name"`
	TeacherEmail   string  `gorm:"column:teacher_email;type:varchar(120);not null;uniqueIndex" json:"teacher_email"`
	TeacherPhone   *string `gorm:"column:teacher_phone;type:varchar(30)" json:"teacher_phone,omitempty"`
	TeacherSubject *string `gorm:"column:teacher_subject;type:varchar(80)" json:"teacher_subject,omitempty"`

	// Saldo cuti (hari). Debit saat pengajuan, kredit balik saat ditolak/dihapus.
	// CHECK >= 0 menjaga saldo tidak pernah negatif di level DB.
	TeacherCasualLeave int `gorm:"column:teacher_casual_leave;not null;default:12;check:teacher_casual_leave >= 0" json:"teacher_casual_leave"`
	TeacherEarnedLeave int `gorm:"column:teacher_earned_leave;not null;default:12;check:teacher_earned_leave >= 0" json:"teacher_earned_leave"`
	TeacherSickLeave   int `gorm:"column:teacher_sick_leave;not null;default:12;check:teacher_sick_leave >= 0" json:"teacher_sick_leave"`

	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"-"`
}

func (TeacherModel) TableName() string { return "teachers" }
