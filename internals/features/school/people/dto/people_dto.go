// file: internals/features/school/people/dto/people_dto.go
package dto

import (
	"github.com/google/uuid"
)

/* ===================== Student ===================== */

type CreateStudentRequest struct {
	StudentName          string     `json:"student_name" validate:"required,max=120"`
	StudentEmail         string     `json:"student_email" validate:"required,email,max=120"`
	StudentPhone         *string    `json:"student_phone,omitempty" validate:"omitempty,max=30"`
	StudentClassID       *uuid.UUID `json:"student_class_id,omitempty"`
	StudentGuardianName  *string    `json:"student_guardian_name,omitempty" validate:"omitempty,max=120"`
	StudentGuardianPhone *string    `json:"student_guardian_phone,omitempty" validate:"omitempty,max=30"`
	StudentAddress       *string    `json:"student_address,omitempty"`
}

type UpdateStudentRequest struct {
	StudentName          *string    `json:"student_name,omitempty" validate:"omitempty,max=120"`
	StudentEmail         *string    `json:"student_email,omitempty" validate:"omitempty,email,max=120"`
	StudentPhone         *string    `json:"student_phone,omitempty" validate:"omitempty,max=30"`
	StudentClassID       *uuid.UUID `json:"student_class_id,omitempty"`
	StudentGuardianName  *string    `json:"student_guardian_name,omitempty" validate:"omitempty,max=120"`
	StudentGuardianPhone *string    `json:"student_guardian_phone,omitempty" validate:"omitempty,max=30"`
	StudentAddress       *string    `json:"student_address,omitempty"`
}

/* ===================== Teacher ===================== */

type CreateTeacherRequest struct {
	TeacherName    string  `json:"teacher_name" validate:"required,max=120"`
	TeacherEmail   string  `json:"teacher_email" validate:"required,email,max=120"`
	TeacherPhone   *string `json:"teacher_phone,omitempty" validate:"omitempty,max=30"`
	TeacherSubject *string `json:"teacher_subject,omitempty" validate:"omitempty,max=80"`
}

type UpdateTeacherRequest struct {
	TeacherName    *string `json:"teacher_name,omitempty" validate:"omitempty,max=120"`
	TeacherEmail   *string `json:"teacher_email,omitempty" validate:"omitempty,email,max=120"`
	TeacherPhone   *string `json:"teacher_phone,omitempty" validate:"omitempty,max=30"`
	TeacherSubject *string `json:"teacher_subject,omitempty" validate:"omitempty,max=80"`
}

/* ===================== Admin ===================== */

type CreateAdminRequest struct {
	AdminName  string  `json:"admin_name" validate:"required,max=120"`
	AdminEmail string  `json:"admin_email" validate:"required,email,max=120"`
	AdminPhone *string `json:"admin_phone,omitempty" validate:"omitempty,max=30"`
}

type UpdateAdminRequest struct {
	AdminName  *string `json:"admin_name,omitempty" validate:"omitempty,max=120"`
	AdminEmail *string `json:"admin_email,omitempty" validate:"omitempty,email,max=120"`
	AdminPhone *string `json:"admin_phone,omitempty" validate:"omitempty,max=30"`
}
