// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	dto "sekolahku_backend/internals/features/finance/payments/dto"
	paymentModel "sekolahku_backend/internals/features/finance/payments/model"
	"sekolahku_backend/internals/features/finance/payments/service"
	studentModel "sekolahku_backend/internals/features/school/people/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/mailer"
)

type PaymentController struct {
	DB   *gorm.DB
	Mail mailer.Mailer
}

func NewPaymentController(db *gorm.DB, mail mailer.Mailer) *PaymentController {
	return &PaymentController{DB: db, Mail: mail}
}

// POST /api/payments — tagihan manual oleh admin (di luar grant/fee otomatis)
func (ctl *PaymentController) Create(c *fiber.Ctx) error {
	var body dto.CreatePaymentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&studentModel.StudentModel{}).
		Where("student_id = ?", body.PaymentStudentID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memeriksa siswa")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	payment := paymentModel.Payment{
		PaymentStudentID:   body.PaymentStudentID,
		PaymentAmountIDR:   body.PaymentAmountIDR,
		PaymentCurrency:    "IDR",
		PaymentStatus:      paymentModel.PaymentStatusPending,
		PaymentDueAt:       body.PaymentDueAt,
		PaymentDescription: body.Description,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal membuat payment")
	}
	return helper.JsonCreated(c, "Payment dibuat", dto.ToPaymentResponse(&payment))
}

// GET /api/payments?student_id=&status=&page=&per_page=
func (ctl *PaymentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&paymentModel.Payment{})
	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		tx = tx.Where("payment_student_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		tx = tx.Where("payment_status = ?", v)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghitung payment")
	}

	var rows []paymentModel.Payment
	if err := tx.Order("payment_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memuat payment")
	}

	return helper.JsonList(c, "", dto.ToPaymentResponses(rows), helper.BuildPagination(p, total))
}

// GET /api/payments/:id
func (ctl *PaymentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payment_id tidak valid")
	}
	var payment paymentModel.Payment
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&payment, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Payment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memuat payment")
	}
	return helper.JsonOK(c, "", dto.ToPaymentResponse(&payment))
}

// POST /api/payments/:id/order — buat transaksi Snap & simpan order_id + token.
// Idempoten: kalau token sudah ada, kembalikan yang lama.
func (ctl *PaymentController) CreateOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payment_id tidak valid")
	}

	var payment paymentModel.Payment
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&payment, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Payment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memuat payment")
	}
	if payment.PaymentStatus == paymentModel.PaymentStatusSuccessful {
		return helper.JsonError(c, fiber.StatusConflict, "Payment sudah lunas")
	}
	if payment.PaymentSnapToken != nil && payment.PaymentOrderID != nil {
		return helper.JsonOK(c, "Order sudah ada", dto.ToPaymentResponse(&payment))
	}

	var student studentModel.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&student, "student_id = ?", payment.PaymentStudentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa pemilik payment tidak ditemukan")
	}

	orderID := fmt.Sprintf("PAY-%s", payment.PaymentID)
	token, err := service.GenerateSnapToken(&payment, orderID, student.StudentName, student.StudentEmail)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "gagal membuat transaksi gateway")
	}

	payment.PaymentOrderID = &orderID
	payment.PaymentSnapToken = &token
	if err := ctl.DB.WithContext(c.UserContext()).Save(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menyimpan order")
	}

	return helper.JsonCreated(c, "Order pembayaran dibuat", dto.ToPaymentResponse(&payment))
}

// POST /api/payments/webhook — endpoint publik notifikasi gateway.
// Signature HMAC-SHA256 atas raw body, dibandingkan constant-time.
func (ctl *PaymentController) Webhook(c *fiber.Ctx) error {
	body := c.Body()
	signature := strings.TrimSpace(c.Get("X-Callback-Signature"))

	if !service.VerifyWebhookSignature(body, signature, configs.PaymentWebhookSecret) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "signature tidak valid")
	}

	var payload service.WebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}

	payment, settled, err := service.HandlePaymentWebhook(ctl.DB.WithContext(c.UserContext()), payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidPayload):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memproses webhook")
		}
	}

	// Email hanya saat transisi ke successful; retry notifikasi dari
	// gateway tidak boleh mengirim ulang.
	if settled {
		ctl.notifyPaid(payment)
	}

	return helper.JsonOK(c, "Webhook diproses", dto.ToPaymentResponse(payment))
}

// notifyPaid kirim email konfirmasi ke siswa. Best-effort.
func (ctl *PaymentController) notifyPaid(payment *paymentModel.Payment) {
	var student studentModel.StudentModel
	if err := ctl.DB.First(&student, "student_id = ?", payment.PaymentStudentID).Error; err != nil {
		return
	}
	desc := "tagihan sekolah"
	if payment.PaymentDescription != nil {
		desc = *payment.PaymentDescription
	}
	body := fmt.Sprintf(
		"Halo %s,\n\nPembayaran Anda sebesar Rp%d untuk %s telah kami terima.\n",
		student.StudentName, payment.PaymentAmountIDR, desc,
	)
	ctl.Mail.Send(student.StudentName, student.StudentEmail, "Pembayaran diterima", body)
}
