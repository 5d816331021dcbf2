package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	paymentModel "sekolahku_backend/internals/features/finance/payments/model"
)

func signHex(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	body := []byte(`{"order_id":"PAY-123","transaction_status":"settlement","gross_amount":"150000.00"}`)
	secret := "rahasia-webhook"

	tests := []struct {
		name      string
		body      []byte
		signature string
		secret    string
		want      bool
	}{
		{"valid", body, signHex(body, secret), secret, true},
		{"wrong secret", body, signHex(body, "salah"), secret, false},
		{"tampered body", []byte(`{"order_id":"PAY-999"}`), signHex(body, secret), secret, false},
		{"empty signature", body, "", secret, false},
		{"non-hex signature", body, "zzzz-not-hex", secret, false},
		{"truncated signature", body, signHex(body, secret)[:16], secret, false},
		{"empty secret", body, signHex(body, ""), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyWebhookSignature(tt.body, tt.signature, tt.secret); got != tt.want {
				t.Errorf("VerifyWebhookSignature() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyWebhookStatus(t *testing.T) {
	now := time.Now()
	paid := now.Add(-time.Hour)

	tests := []struct {
		name        string
		before      paymentModel.Payment
		payload     WebhookPayload
		wantMutated bool
		wantSettled bool
		wantStatus  string
	}{
		{
			name:        "settlement pada pending",
			before:      paymentModel.Payment{PaymentStatus: paymentModel.PaymentStatusPending},
			payload:     WebhookPayload{OrderID: "PAY-1", TransactionStatus: "settlement"},
			wantMutated: true,
			wantSettled: true,
			wantStatus:  paymentModel.PaymentStatusSuccessful,
		},
		{
			name:        "settlement ulang pada payment yang sudah successful",
			before:      paymentModel.Payment{PaymentStatus: paymentModel.PaymentStatusSuccessful, PaymentPaidAt: &paid},
			payload:     WebhookPayload{OrderID: "PAY-1", TransactionStatus: "settlement"},
			wantMutated: false,
			wantSettled: false,
			wantStatus:  paymentModel.PaymentStatusSuccessful,
		},
		{
			name:        "expire hanya dicatat di meta",
			before:      paymentModel.Payment{PaymentStatus: paymentModel.PaymentStatusPending},
			payload:     WebhookPayload{OrderID: "PAY-2", TransactionStatus: "expire", TransactionID: "trx-9"},
			wantMutated: true,
			wantSettled: false,
			wantStatus:  paymentModel.PaymentStatusPending,
		},
		{
			name:        "status asing diabaikan",
			before:      paymentModel.Payment{PaymentStatus: paymentModel.PaymentStatusPending},
			payload:     WebhookPayload{OrderID: "PAY-3", TransactionStatus: "refund"},
			wantMutated: false,
			wantSettled: false,
			wantStatus:  paymentModel.PaymentStatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.before
			mutated, settled := applyWebhookStatus(&p, tt.payload, now)
			if mutated != tt.wantMutated || settled != tt.wantSettled {
				t.Errorf("applyWebhookStatus() = (%v, %v), want (%v, %v)",
					mutated, settled, tt.wantMutated, tt.wantSettled)
			}
			if p.PaymentStatus != tt.wantStatus {
				t.Errorf("PaymentStatus = %q, want %q", p.PaymentStatus, tt.wantStatus)
			}
			if settled && (p.PaymentPaidAt == nil || !p.PaymentPaidAt.Equal(now)) {
				t.Errorf("PaymentPaidAt = %v, want %v", p.PaymentPaidAt, now)
			}
			if !settled && tt.before.PaymentPaidAt != nil && !p.PaymentPaidAt.Equal(paid) {
				t.Errorf("PaymentPaidAt berubah pada notifikasi ulang: %v", p.PaymentPaidAt)
			}
		})
	}
}
