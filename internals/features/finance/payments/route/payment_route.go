package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "sekolahku_backend/internals/features/finance/payments/controller"
	"sekolahku_backend/internals/helpers/mailer"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// PaymentRoutes: daftar & detail untuk staff, buat tagihan/order oleh admin.
func PaymentRoutes(api fiber.Router, db *gorm.DB, mail mailer.Mailer) {
	ctl := paymentController.NewPaymentController(db, mail)

	payments := api.Group("/payments")
	payments.Post("/", authMiddleware.OnlyAdmin("buat payment"), ctl.Create)
	payments.Get("/", authMiddleware.OnlyStaff("daftar payment"), ctl.List)
	payments.Get("/:id", authMiddleware.OnlyStaff("detail payment"), ctl.GetByID)
	payments.Post("/:id/order", authMiddleware.OnlyAdmin("buat order pembayaran"), ctl.CreateOrder)
}

// PaymentWebhookRoute: endpoint publik notifikasi gateway.
// Verifikasi lewat signature HMAC, bukan JWT.
func PaymentWebhookRoute(api fiber.Router, db *gorm.DB, mail mailer.Mailer) {
	ctl := paymentController.NewPaymentController(db, mail)
	api.Post("/payments/webhook", ctl.Webhook)
}
