package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "sekolahku_backend/internals/features/users/auth/controller"
	"sekolahku_backend/internals/middlewares"
)

// PublicAuthRoutes: register & login, tanpa JWT, dengan rate limit ketat.
func PublicAuthRoutes(app fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := app.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}

// ProtectedAuthRoutes: info sesi berjalan (dipasang di belakang AuthMiddleware).
func ProtectedAuthRoutes(api fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)
	api.Get("/auth/me", ctl.Me)
}
