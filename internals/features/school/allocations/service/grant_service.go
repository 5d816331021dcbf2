// file: internals/features/school/allocations/service/grant_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	allocModel "sekolahku_backend/internals/features/school/allocations/model"
	studentModel "sekolahku_backend/internals/features/school/people/model"
	paymentModel "sekolahku_backend/internals/features/finance/payments/model"
)

var (
	ErrResourceNotFound  = errors.New("resource tidak ditemukan")
	ErrStudentNotFound   = errors.New("murid tidak ditemukan")
	ErrCapacityExceeded  = errors.New("kapasitas sudah penuh")
	ErrAlreadyMember     = errors.New("murid sudah terdaftar di resource ini")
	ErrUnknownKind       = errors.New("jenis resource tidak dikenal")
	// ErrPaymentNotRecorded: grant sudah commit tapi Payment dependen gagal
	// tersimpan. Caller dapat resource hasil grant plus error ini (partial
	// failure), sesuai perilaku lama yang tidak me-rollback grant.
	ErrPaymentNotRecorded = errors.New("grant berhasil tetapi payment gagal tersimpan")
)

type GrantResult struct {
	Resource allocModel.AllocationResource
	Payment  *paymentModel.Payment
}

// rollbackOnPaymentFail: kalau di-set, kegagalan simpan Payment ikut
// membatalkan grant (satu transaksi). Default off = perilaku sumber lama.
func rollbackOnPaymentFail() bool {
	switch os.Getenv("ALLOC_ROLLBACK_ON_PAYMENT_FAIL") {
	case "1", "true", "TRUE", "yes", "on":
		return true
	}
	return false
}

// rolledBackError melepas sentinel partial-failure dari jalur rollback:
// grant yang ikut batal adalah kegagalan penuh, bukan partial success,
// jadi caller tidak boleh melihat ErrPaymentNotRecorded di sini.
func rolledBackError(err error) error {
	if errors.Is(err, ErrPaymentNotRecorded) {
		return fmt.Errorf("grant dibatalkan: payment gagal tersimpan: %v", err)
	}
	return err
}

// GrantSlot mengkonsumsi satu slot resource untuk seorang murid lalu membuat
// Payment pending sebagai tagihan ikutan.
//
// Pengurangan slot + penambahan member dilakukan sebagai SATU UPDATE
// kondisional (available > 0, belum member) dalam satu round trip, sehingga
// N request paralel terhadap k slot tersisa menghasilkan tepat k yang sukses;
// tidak ada jendela read-check-write yang bisa overshoot kapasitas.
func GrantSlot(ctx context.Context, db *gorm.DB, kind allocModel.ResourceKind, resourceID, studentID uuid.UUID, feeOverride *int) (*GrantResult, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	// Murid harus ada sebelum menyentuh kapasitas.
	var n int64
	if err := db.WithContext(ctx).Model(&studentModel.StudentModel{}).
		Where("student_id = ?", studentID).
		Count(&n).Error; err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrStudentNotFound
	}

	if rollbackOnPaymentFail() {
		var out *GrantResult
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var txErr error
			out, txErr = grantOnce(ctx, tx, kind, resourceID, studentID, feeOverride)
			return txErr
		})
		if err != nil {
			return nil, rolledBackError(err)
		}
		return out, nil
	}

	// Jalur default: grant commit dulu, Payment menyusul; gagal simpan
	// Payment dilaporkan sebagai partial failure tanpa membatalkan grant.
	out, err := grantOnce(ctx, db, kind, resourceID, studentID, feeOverride)
	if err != nil && !errors.Is(err, ErrPaymentNotRecorded) {
		return nil, err
	}
	return out, err
}

func grantOnce(ctx context.Context, db *gorm.DB, kind allocModel.ResourceKind, resourceID, studentID uuid.UUID, feeOverride *int) (*GrantResult, error) {
	res := db.WithContext(ctx).Table(kind.Table()).
		Where(fmt.Sprintf("%s = ? AND %s > 0 AND NOT (? = ANY(%s)) AND %s IS NULL",
			kind.IDColumn(), kind.AvailColumn(), kind.MembersColumn(), kind.DeletedColumn()),
			resourceID, studentID.String()).
		Updates(map[string]any{
			kind.AvailColumn():   gorm.Expr(kind.AvailColumn() + " - 1"),
			kind.MembersColumn(): gorm.Expr(fmt.Sprintf("array_append(%s, ?)", kind.MembersColumn()), studentID.String()),
		})
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		// Predikat gagal: bedakan not found / sudah member / penuh,
		// tanpa mutasi apa pun.
		resource, err := loadResource(ctx, db, kind, resourceID)
		if err != nil {
			return nil, err
		}
		for _, m := range resource.Members() {
			if m == studentID.String() {
				return nil, ErrAlreadyMember
			}
		}
		return nil, ErrCapacityExceeded
	}

	resource, err := loadResource(ctx, db, kind, resourceID)
	if err != nil {
		return nil, err
	}

	amount := resource.FeeIDR()
	if feeOverride != nil {
		amount = *feeOverride
	}
	desc := fmt.Sprintf("Tagihan %s %s", kind, resourceID)
	payment := &paymentModel.Payment{
		PaymentStudentID:   studentID,
		PaymentAmountIDR:   amount,
		PaymentStatus:      paymentModel.PaymentStatusPending,
		PaymentDueAt:       resource.PaymentDue(),
		PaymentDescription: &desc,
	}
	if err := db.WithContext(ctx).Create(payment).Error; err != nil {
		return &GrantResult{Resource: resource}, fmt.Errorf("%w: %v", ErrPaymentNotRecorded, err)
	}

	return &GrantResult{Resource: resource, Payment: payment}, nil
}

func loadResource(ctx context.Context, db *gorm.DB, kind allocModel.ResourceKind, resourceID uuid.UUID) (allocModel.AllocationResource, error) {
	m, err := kind.NewModel()
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Table(kind.Table()).
		Where(fmt.Sprintf("%s = ? AND %s IS NULL", kind.IDColumn(), kind.DeletedColumn()), resourceID).
		First(m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	return m, nil
}

// GetResource memuat satu resource by kind+id (untuk endpoint detail).
func GetResource(ctx context.Context, db *gorm.DB, kind allocModel.ResourceKind, resourceID uuid.UUID) (allocModel.AllocationResource, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return loadResource(ctx, db, kind, resourceID)
}
