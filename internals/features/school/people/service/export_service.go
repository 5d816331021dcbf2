// file: internals/features/school/people/service/export_service.go
package service

import (
	studentModel "sekolahku_backend/internals/features/school/people/model"
)

// StudentCSVHeader: urutan kolom export siswa.
var StudentCSVHeader = []string{
	"student_id", "student_name", "student_email", "student_phone",
	"student_class_id", "student_guardian_name", "student_guardian_phone",
}

// StudentCSVRows menyusun baris CSV (tanpa header) dari daftar siswa.
// Field nil ditulis sebagai string kosong.
func StudentCSVRows(students []studentModel.StudentModel) [][]string {
	rows := make([][]string, 0, len(students))
	for i := range students {
		s := &students[i]
		classID := ""
		if s.StudentClassID != nil {
			classID = s.StudentClassID.String()
		}
		rows = append(rows, []string{
			s.StudentID.String(),
			s.StudentName,
			s.StudentEmail,
			derefOrEmpty(s.StudentPhone),
			classID,
			derefOrEmpty(s.StudentGuardianName),
			derefOrEmpty(s.StudentGuardianPhone),
		})
	}
	return rows
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
