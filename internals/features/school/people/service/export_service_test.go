package service

import (
	"testing"

	"github.com/google/uuid"

	studentModel "sekolahku_backend/internals/features/school/people/model"
)

func strPtr(s string) *string { return &s }

func TestStudentCSVRows(t *testing.T) {
	sid := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	cid := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	students := []studentModel.StudentModel{
		{
			StudentID:            sid,
			StudentName:          "Budi Santoso",
			StudentEmail:         "budi@example.com",
			StudentPhone:         strPtr("0812000111"),
			StudentClassID:       &cid,
			StudentGuardianName:  strPtr("Siti Santoso"),
			StudentGuardianPhone: strPtr("0812000222"),
		},
		{
			StudentID:    sid,
			StudentName:  "Ani",
			StudentEmail: "ani@example.com",
			// field opsional kosong semua
		},
	}

	rows := StudentCSVRows(students)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	for i, row := range rows {
		if len(row) != len(StudentCSVHeader) {
			t.Errorf("row %d: %d kolom, want %d", i, len(row), len(StudentCSVHeader))
		}
	}

	if rows[0][1] != "Budi Santoso" || rows[0][3] != "0812000111" || rows[0][4] != cid.String() {
		t.Errorf("row 0 tidak sesuai: %v", rows[0])
	}
	if rows[1][3] != "" || rows[1][4] != "" || rows[1][5] != "" {
		t.Errorf("field nil harus jadi string kosong: %v", rows[1])
	}
}

func TestStudentCSVRowsEmpty(t *testing.T) {
	if rows := StudentCSVRows(nil); len(rows) != 0 {
		t.Errorf("nil input harus menghasilkan 0 baris, dapat %d", len(rows))
	}
}
