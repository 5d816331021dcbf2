// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeRoute "sekolahku_backend/internals/features/finance/fees/route"
	paymentRoute "sekolahku_backend/internals/features/finance/payments/route"
	fileRoute "sekolahku_backend/internals/features/files/route"
	academicRoute "sekolahku_backend/internals/features/school/academics/route"
	allocationRoute "sekolahku_backend/internals/features/school/allocations/route"
	leaveRoute "sekolahku_backend/internals/features/school/leaves/route"
	peopleRoute "sekolahku_backend/internals/features/school/people/route"
	authRoute "sekolahku_backend/internals/features/users/auth/route"
	"sekolahku_backend/internals/helpers/mailer"
	helperOSS "sekolahku_backend/internals/helpers/oss"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// Kolaborator dibuat SEKALI di sini lalu dioper ke tiap route,
	// bukan singleton per-file.
	blob, err := helperOSS.NewOSSBlobServiceFromEnv()
	if err != nil {
		// tanpa OSS, endpoint file/foto akan gagal saat dipanggil; fitur lain jalan terus
		log.Printf("[WARN] OSS tidak terkonfigurasi: %v", err)
	}
	mail := mailer.NewSendgridFromEnv()

	BaseRoutes(app)

	// ===================== PUBLIC =====================
	authRoute.PublicAuthRoutes(app, db)

	webhook := app.Group("/api")
	paymentRoute.PaymentWebhookRoute(webhook, db, mail)

	// ===================== PROTECTED =====================
	api := app.Group("/api", authMiddleware.AuthMiddleware())

	authRoute.ProtectedAuthRoutes(api, db)
	peopleRoute.PeopleRoutes(api, db, blob)
	academicRoute.AcademicRoutes(api, db)
	leaveRoute.LeaveRoutes(api, db, mail)
	allocationRoute.AllocationRoutes(api, db)
	feeRoute.FeeRoutes(api, db)
	paymentRoute.PaymentRoutes(api, db, mail)
	fileRoute.FileRoutes(api, blob)

	log.Println("[INFO] Semua route terpasang")
}
