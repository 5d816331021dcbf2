package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminModel struct {
	AdminID uuid.UUID `gorm:"column:admin_id;type:uuid;default:gen_random_uuid();primaryKey" json:"admin_id"`

	AdminName  string  `gorm:"column:admin_name;type:varchar(120);not null" json:"admin_name"`
	AdminEmail string  `gorm:"column:admin_email;type:varchar(120);not null;uniqueIndex" json:"admin_email"`
	AdminPhone *string `gorm:"column:admin_phone;type:varchar(30)" json:"admin_phone,omitempty"`

	AdminCasualLeave int `gorm:"column:admin_casual_leave;not null;default:12;check:admin_casual_leave >= 0" json:"admin_casual_leave"`
	AdminEarnedLeave int `gorm:"column:admin_earned_leave;not null;default:12;check:admin_earned_leave >= 0" json:"admin_earned_leave"`
	AdminSickLeave   int `gorm:"column:admin_sick_leave;not null;default:12;check:admin_sick_leave >= 0" json:"admin_sick_leave"`

	AdminCreatedAt time.Time      `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
	AdminUpdatedAt time.Time      `gorm:"column:admin_updated_at;autoUpdateTime" json:"admin_updated_at"`
	AdminDeletedAt gorm.DeletedAt `gorm:"column:admin_deleted_at;index" json:"-"`
}

func (AdminModel) TableName() string { return "admins" }
