package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClassID uuid.UUID `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`

	ClassName    string  `gorm:"column:class_name;type:varchar(60);not null" json:"class_name"`
	ClassSection *string `gorm:"column:class_section;type:varchar(20)" json:"class_section,omitempty"`

	// Wali kelas (opsional)
	ClassTeacherID *uuid.UUID `gorm:"column:class_teacher_id;type:uuid;index" json:"class_teacher_id,omitempty"`

	ClassCreatedAt time.Time      `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"-"`
}

func (ClassModel) TableName() string { return "classes" }
