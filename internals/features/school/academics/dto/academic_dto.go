// file: internals/features/school/academics/dto/academic_dto.go
package dto

import (
	"github.com/google/uuid"
)

/* ===================== Class ===================== */

type CreateClassRequest struct {
	ClassName      string     `json:"class_name" validate:"required,max=60"`
	ClassSection   *string    `json:"class_section,omitempty" validate:"omitempty,max=20"`
	ClassTeacherID *uuid.UUID `json:"class_teacher_id,omitempty"`
}

type UpdateClassRequest struct {
	ClassName      *string    `json:"class_name,omitempty" validate:"omitempty,max=60"`
	ClassSection   *string    `json:"class_section,omitempty" validate:"omitempty,max=20"`
	ClassTeacherID *uuid.UUID `json:"class_teacher_id,omitempty"`
}

/* ===================== Exam ===================== */

type CreateExamRequest struct {
	ExamName    string    `json:"exam_name" validate:"required,max=120"`
	ExamSubject *string   `json:"exam_subject,omitempty" validate:"omitempty,max=60"`
	ExamDate    string    `json:"exam_date" validate:"required"` // YYYY-MM-DD
	ExamClassID uuid.UUID `json:"exam_class_id" validate:"required"`
}

type UpdateExamRequest struct {
	ExamName    *string `json:"exam_name,omitempty" validate:"omitempty,max=120"`
	ExamSubject *string `json:"exam_subject,omitempty" validate:"omitempty,max=60"`
	ExamDate    *string `json:"exam_date,omitempty"`
}

/* ===================== Attendance ===================== */

// Upsert: satu record per (kelas, tanggal); kirim ulang = timpa daftar hadir.
type UpsertAttendanceRequest struct {
	AttendanceClassID uuid.UUID   `json:"attendance_class_id" validate:"required"`
	AttendanceDate    string      `json:"attendance_date" validate:"required"` // YYYY-MM-DD
	PresentStudentIDs []uuid.UUID `json:"present_student_ids" validate:"required"`
}
