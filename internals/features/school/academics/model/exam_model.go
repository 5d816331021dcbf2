package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExamModel struct {
	ExamID uuid.UUID `gorm:"column:exam_id;type:uuid;default:gen_random_uuid();primaryKey" json:"exam_id"`

	ExamName    string    `gorm:"column:exam_name;type:varchar(120);not null" json:"exam_name"`
	ExamSubject *string   `gorm:"column:exam_subject;type:varchar(60)" json:"exam_subject,omitempty"`
	ExamDate    time.Time `gorm:"column:exam_date;type:date;not null" json:"exam_date"`

	ExamClassID uuid.UUID `gorm:"column:exam_class_id;type:uuid;not null;index" json:"exam_class_id"`

	ExamCreatedAt time.Time      `gorm:"column:exam_created_at;autoCreateTime" json:"exam_created_at"`
	ExamUpdatedAt time.Time      `gorm:"column:exam_updated_at;autoUpdateTime" json:"exam_updated_at"`
	ExamDeletedAt gorm.DeletedAt `gorm:"column:exam_deleted_at;index" json:"-"`
}

func (ExamModel) TableName() string { return "exams" }
