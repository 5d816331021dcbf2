// file: internals/features/finance/payments/service/webhook.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	paymentModel "sekolahku_backend/internals/features/finance/payments/model"
)

var (
	ErrOrderNotFound  = errors.New("payment dengan order_id tersebut tidak ditemukan")
	ErrInvalidPayload = errors.New("payload webhook tidak lengkap")
)

// VerifyWebhookSignature membandingkan HMAC-SHA256(raw body, secret) dengan
// signature hex dari header. Perbandingan constant-time; panjang salah
// langsung gagal.
func VerifyWebhookSignature(body []byte, signatureHex, secret string) bool {
	if secret == "" || signatureHex == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := mac.Sum(nil)

	got, err := hex.DecodeString(signatureHex)
	if err != nil {
		return false
	}
	return hmac.Equal(expected, got)
}

type WebhookPayload struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	GrossAmount       string `json:"gross_amount"`
	TransactionID     string `json:"transaction_id"`
}

// HandlePaymentWebhook memproses notifikasi status dari gateway.
// settlement/capture → Payment successful (idempoten: yang sudah successful
// dibiarkan); expire/cancel/deny hanya dicatat di meta, status tetap pending.
// settled hanya true ketika payment BARU berpindah ke successful — notifikasi
// ulang dari gateway mengembalikan false, jadi aman dipakai caller untuk
// memutuskan kirim email konfirmasi.
func HandlePaymentWebhook(db *gorm.DB, p WebhookPayload) (payment *paymentModel.Payment, settled bool, err error) {
	if p.OrderID == "" || p.TransactionStatus == "" {
		return nil, false, ErrInvalidPayload
	}

	var pm paymentModel.Payment
	if err := db.Where("payment_order_id = ?", p.OrderID).First(&pm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, fmt.Errorf("%w: %s", ErrOrderNotFound, p.OrderID)
		}
		return nil, false, err
	}

	mutated, settled := applyWebhookStatus(&pm, p, time.Now())
	if !mutated {
		return &pm, settled, nil
	}
	if err := db.Save(&pm).Error; err != nil {
		return nil, false, err
	}
	return &pm, settled, nil
}

// applyWebhookStatus menerapkan status gateway ke payment di memori.
// mutated = ada perubahan yang perlu disimpan; settled = payment baru
// saja berpindah ke successful pada panggilan ini.
func applyWebhookStatus(payment *paymentModel.Payment, p WebhookPayload, now time.Time) (mutated, settled bool) {
	switch p.TransactionStatus {
	case "capture", "settlement":
		if payment.PaymentStatus == paymentModel.PaymentStatusSuccessful {
			// notifikasi ulang dari gateway; tidak ada yang diubah
			return false, false
		}
		payment.PaymentStatus = paymentModel.PaymentStatusSuccessful
		payment.PaymentPaidAt = &now
		mergeMeta(payment, p)
		return true, true

	case "expire", "cancel", "deny":
		log.Printf("[INFO] webhook %s untuk order %s: status dicatat, payment tetap %s",
			p.TransactionStatus, p.OrderID, payment.PaymentStatus)
		mergeMeta(payment, p)
		return true, false

	default:
		log.Printf("[INFO] webhook status tidak diproses: %s (order %s)", p.TransactionStatus, p.OrderID)
		return false, false
	}
}

func mergeMeta(payment *paymentModel.Payment, p WebhookPayload) {
	if payment.PaymentMeta == nil {
		payment.PaymentMeta = datatypes.JSONMap{}
	}
	payment.PaymentMeta["last_transaction_status"] = p.TransactionStatus
	payment.PaymentMeta["last_transaction_id"] = p.TransactionID
	payment.PaymentMeta["last_gross_amount"] = p.GrossAmount
}
