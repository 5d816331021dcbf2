package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	leaveModel "sekolahku_backend/internals/features/school/leaves/model"
)

// Klasifikasi debit yang gagal predikat: pemilik ada → saldo kurang,
// pemilik tidak ada → not found. Debit nol baris berarti saldo tidak
// berubah, jadi hanya dua hasil ini yang mungkin.
func TestClassifyDebitRefusal(t *testing.T) {
	if err := classifyDebitRefusal(true); !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("owner exists: got %v, want ErrInsufficientBalance", err)
	}
	if err := classifyDebitRefusal(false); !errors.Is(err, ErrOwnerNotFound) {
		t.Errorf("owner missing: got %v, want ErrOwnerNotFound", err)
	}
}

// Penolakan via validasi input terjadi sebelum transaksi dibuka: db nil
// tidak boleh tersentuh, satu-satunya efek adalah error yang tepat.
func TestRequestLeaveRefusesBeforeTouchingBalance(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		return d
	}

	tests := []struct {
		name    string
		in      RequestLeaveInput
		wantErr error
	}{
		{
			name: "owner kind tidak dikenal",
			in: RequestLeaveInput{
				OwnerKind: "student",
				OwnerID:   uuid.New(),
				Type:      leaveModel.LeaveCasual,
				StartDate: day("2026-03-02"),
				EndDate:   day("2026-03-04"),
			},
			wantErr: ErrOwnerNotFound,
		},
		{
			name: "leave type tidak dikenal",
			in: RequestLeaveInput{
				OwnerKind: leaveModel.OwnerTeacher,
				OwnerID:   uuid.New(),
				Type:      "maternity",
				StartDate: day("2026-03-02"),
				EndDate:   day("2026-03-04"),
			},
		},
		{
			name: "end sebelum start",
			in: RequestLeaveInput{
				OwnerKind: leaveModel.OwnerTeacher,
				OwnerID:   uuid.New(),
				Type:      leaveModel.LeaveCasual,
				StartDate: day("2026-03-04"),
				EndDate:   day("2026-03-02"),
			},
			wantErr: ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// db nil: kalau jalur refusal menyentuh database, test ini panic.
			leave, err := RequestLeave(context.Background(), nil, tt.in)
			if err == nil {
				t.Fatal("RequestLeave: expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("RequestLeave error = %v, want %v", err, tt.wantErr)
			}
			if leave != nil {
				t.Errorf("RequestLeave: expected nil leave on refusal, got %+v", leave)
			}
		})
	}
}
