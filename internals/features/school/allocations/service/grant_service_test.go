package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestRollbackOnPaymentFail(t *testing.T) {
	cases := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"on", true},
	}
	for _, tc := range cases {
		t.Setenv("ALLOC_ROLLBACK_ON_PAYMENT_FAIL", tc.val)
		if got := rollbackOnPaymentFail(); got != tc.want {
			t.Errorf("ALLOC_ROLLBACK_ON_PAYMENT_FAIL=%q: got %v, want %v", tc.val, got, tc.want)
		}
	}
}

// Di mode rollback, error simpan-Payment membatalkan seluruh grant, jadi
// sentinel partial-failure tidak boleh bocor ke caller: controller memakai
// errors.Is(err, ErrPaymentNotRecorded) sebagai tanda "grant tetap commit",
// dan di jalur rollback itu tidak pernah benar.
func TestRolledBackErrorStripsPartialFailureSentinel(t *testing.T) {
	inner := fmt.Errorf("%w: duplicate key value", ErrPaymentNotRecorded)

	got := rolledBackError(inner)
	if got == nil {
		t.Fatal("rolledBackError: expected error, got nil")
	}
	if errors.Is(got, ErrPaymentNotRecorded) {
		t.Errorf("rolledBackError masih membawa ErrPaymentNotRecorded: %v", got)
	}
	if !strings.Contains(got.Error(), "payment gagal tersimpan") {
		t.Errorf("rolledBackError kehilangan konteks penyebab: %v", got)
	}
}

// Error lain (capacity, not found, dsb) lewat apa adanya supaya mapping
// status HTTP di controller tetap bekerja.
func TestRolledBackErrorPassesOtherErrors(t *testing.T) {
	for _, sentinel := range []error{ErrCapacityExceeded, ErrAlreadyMember, ErrResourceNotFound} {
		if got := rolledBackError(sentinel); !errors.Is(got, sentinel) {
			t.Errorf("rolledBackError mengubah %v menjadi %v", sentinel, got)
		}
	}
}
