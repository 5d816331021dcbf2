// file: internals/features/school/leaves/service/leave_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	leaveModel "sekolahku_backend/internals/features/school/leaves/model"
	helper "sekolahku_backend/internals/helpers"
)

var (
	ErrOwnerNotFound       = errors.New("pemilik cuti tidak ditemukan")
	ErrInsufficientBalance = errors.New("saldo cuti tidak mencukupi")
	ErrLeaveNotFound       = errors.New("cuti tidak ditemukan")
	ErrInvalidTransition   = errors.New("transisi status cuti tidak valid")
	ErrInvalidRange        = errors.New("rentang tanggal cuti tidak valid")
)

type RequestLeaveInput struct {
	OwnerKind leaveModel.OwnerKind
	OwnerID   uuid.UUID
	Type      leaveModel.LeaveType
	StartDate time.Time
	EndDate   time.Time
	Reason    *string
}

// RequestLeave mendebit saldo pemilik lalu membuat record cuti pending.
// Debit dilakukan sebagai satu UPDATE kondisional (saldo >= hari) sehingga
// dua request paralel tidak bisa men-double-spend saldo; pembuatan record
// cuti ikut dalam transaksi yang sama.
func RequestLeave(ctx context.Context, db *gorm.DB, in RequestLeaveInput) (*leaveModel.LeaveModel, error) {
	if !in.OwnerKind.Valid() {
		return nil, fmt.Errorf("%w: owner kind %q", ErrOwnerNotFound, in.OwnerKind)
	}
	col, err := leaveModel.BalanceColumn(in.OwnerKind, in.Type)
	if err != nil {
		return nil, err
	}

	days := helper.InclusiveDayCount(in.StartDate, in.EndDate)
	if days <= 0 {
		return nil, ErrInvalidRange
	}

	var leave leaveModel.LeaveModel
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Debit kondisional: hanya jalan kalau saldo masih cukup.
		res := tx.Table(in.OwnerKind.Table()).
			Where(fmt.Sprintf("%s = ? AND %s >= ? AND %s IS NULL",
				in.OwnerKind.IDColumn(), col, in.OwnerKind.DeletedColumn()),
				in.OwnerID, days).
			Update(col, gorm.Expr(col+" - ?", days))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Bedakan: pemilik tidak ada vs saldo kurang. Debit tidak
			// terjadi di cabang ini, saldo tidak tersentuh.
			var n int64
			if err := tx.Table(in.OwnerKind.Table()).
				Where(fmt.Sprintf("%s = ? AND %s IS NULL",
					in.OwnerKind.IDColumn(), in.OwnerKind.DeletedColumn()), in.OwnerID).
				Count(&n).Error; err != nil {
				return err
			}
			return classifyDebitRefusal(n > 0)
		}

		leave = leaveModel.LeaveModel{
			LeaveOwnerKind: in.OwnerKind,
			LeaveOwnerID:   in.OwnerID,
			LeaveType:      in.Type,
			LeaveStartDate: in.StartDate,
			LeaveEndDate:   in.EndDate,
			LeaveDays:      days,
			LeaveStatus:    leaveModel.LeaveStatusPending,
			LeaveReason:    in.Reason,
		}
		return tx.Create(&leave).Error
	})
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

// classifyDebitRefusal menerjemahkan debit yang gagal predikat (0 baris
// ter-update): pemilik ada berarti saldonya yang kurang.
func classifyDebitRefusal(ownerExists bool) error {
	if !ownerExists {
		return ErrOwnerNotFound
	}
	return ErrInsufficientBalance
}

// SetLeaveStatus menerapkan approve/reject. Approve tidak menyentuh saldo
// (hari tetap terdebit); reject mengembalikan saldo tepat satu kali lewat
// guard leave_reversed di dalam transaksi yang sama.
func SetLeaveStatus(ctx context.Context, db *gorm.DB, leaveID uuid.UUID, newStatus string) (*leaveModel.LeaveModel, error) {
	var leave leaveModel.LeaveModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("leave_id = ?", leaveID).
			First(&leave).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLeaveNotFound
			}
			return err
		}

		if err := leave.CanTransitionTo(newStatus); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}

		switch newStatus {
		case leaveModel.LeaveStatusApproved:
			leave.LeaveStatus = leaveModel.LeaveStatusApproved
			return tx.Model(&leave).Update("leave_status", leaveModel.LeaveStatusApproved).Error

		case leaveModel.LeaveStatusRejected:
			// Set status + flag reversal dalam satu UPDATE berpredikat:
			// kalau ada request paralel yang keburu membalik, kredit batal.
			res := tx.Model(&leaveModel.LeaveModel{}).
				Where("leave_id = ? AND leave_reversed = FALSE", leaveID).
				Updates(map[string]any{
					"leave_status":   leaveModel.LeaveStatusRejected,
					"leave_reversed": true,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrInvalidTransition
			}
			if err := creditBalance(tx, &leave); err != nil {
				return err
			}
			leave.LeaveStatus = leaveModel.LeaveStatusRejected
			leave.LeaveReversed = true
			return nil
		}
		return fmt.Errorf("%w: %q", ErrInvalidTransition, newStatus)
	})
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

// DeleteLeave soft-delete record cuti. Kredit balik saldo dilipat ke jalur
// reversal yang sama dengan reject: hanya terjadi kalau belum pernah dibalik,
// jadi reject lalu delete tetap mengkredit total satu kali.
func DeleteLeave(ctx context.Context, db *gorm.DB, leaveID uuid.UUID) (*leaveModel.LeaveModel, error) {
	var leave leaveModel.LeaveModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("leave_id = ?", leaveID).
			First(&leave).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLeaveNotFound
			}
			return err
		}

		if leave.NeedsReversal() {
			res := tx.Model(&leaveModel.LeaveModel{}).
				Where("leave_id = ? AND leave_reversed = FALSE", leaveID).
				Update("leave_reversed", true)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 1 {
				if err := creditBalance(tx, &leave); err != nil {
					return err
				}
				leave.LeaveReversed = true
			}
		}

		return tx.Delete(&leave).Error
	})
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

// creditBalance mengembalikan hari terdebit ke kolom saldo pemilik.
func creditBalance(tx *gorm.DB, leave *leaveModel.LeaveModel) error {
	col, err := leaveModel.BalanceColumn(leave.LeaveOwnerKind, leave.LeaveType)
	if err != nil {
		return err
	}
	res := tx.Table(leave.LeaveOwnerKind.Table()).
		Where(fmt.Sprintf("%s = ? AND %s IS NULL",
			leave.LeaveOwnerKind.IDColumn(), leave.LeaveOwnerKind.DeletedColumn()),
			leave.LeaveOwnerID).
		Update(col, gorm.Expr(col+" + ?", leave.LeaveDays))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOwnerNotFound
	}
	return nil
}

// GetLeave memuat satu record cuti.
func GetLeave(ctx context.Context, db *gorm.DB, leaveID uuid.UUID) (*leaveModel.LeaveModel, error) {
	var leave leaveModel.LeaveModel
	if err := db.WithContext(ctx).Where("leave_id = ?", leaveID).First(&leave).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeaveNotFound
		}
		return nil, err
	}
	return &leave, nil
}
