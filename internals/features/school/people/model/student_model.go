package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	StudentName  string `gorm:"column:student_name;type:varchar(120);not null" json:"student_name"`
	StudentEmail string `gorm:"column:student_email;type:varchar(120);not null;uniqueIndex" json:"student_email"`
	StudentPhone *string `gorm:"column:student_phone;type:varchar(30)" json:"student_phone,omitempty"`

	StudentClassID *uuid.UUID `gorm:"column:student_class_id;type:uuid;index" json:"student_class_id,omitempty"`

	StudentGuardianName  *string `gorm:"column:student_guardian_name;type:varchar(120)" json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string `gorm:"column:student_guardian_phone;type:varchar(30)" json:"student_guardian_phone,omitempty"`
	StudentAddress       *string `gorm:"column:student_address;type:text" json:"student_address,omitempty"`

	StudentPhotoURL      *string `gorm:"column:student_photo_url" json:"student_photo_url,omitempty"`
	StudentPhotoThumbURL *string `gorm:"column:student_photo_thumb_url" json:"student_photo_thumb_url,omitempty"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (StudentModel) TableName() string { return "students" }
