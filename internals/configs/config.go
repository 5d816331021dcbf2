package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret            string
	JWTRefreshSecret     string
	PaymentWebhookSecret string
	MailFromAddress      string
	MailFromName         string
	SendgridAPIKey       string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	PaymentWebhookSecret = GetEnv("PAYMENT_WEBHOOK_SECRET")
	SendgridAPIKey = GetEnv("SENDGRID_API_KEY")
	MailFromAddress = GetEnv("MAIL_FROM_ADDRESS", "noreply@sekolahku.app")
	MailFromName = GetEnv("MAIL_FROM_NAME", "Sekolahku")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if PaymentWebhookSecret == "" {
		log.Println("❌ PAYMENT_WEBHOOK_SECRET belum diset!")
	} else {
		log.Println("✅ PAYMENT_WEBHOOK_SECRET berhasil dimuat.")
	}

	if SendgridAPIKey == "" {
		log.Println("⚠️ SENDGRID_API_KEY kosong, email notifikasi dinonaktifkan")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
