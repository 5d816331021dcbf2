// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	dto "sekolahku_backend/internals/features/users/auth/dto"
	userModel "sekolahku_backend/internals/features/users/auth/model"
	helper "sekolahku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /auth/register
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	role := body.Role
	if role == "" {
		role = constants.RoleStudent
	}

	var count int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&userModel.UserModel{}).
		Where("user_name = ? OR user_email = ?", body.UserName, strings.ToLower(body.Email)).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memeriksa user")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Username atau email sudah terdaftar")
	}

	user := userModel.UserModel{
		UserName:  body.UserName,
		UserEmail: strings.ToLower(body.Email),
		UserRole:  role,
	}
	if err := user.SetPassword(body.Password); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memproses password")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal membuat user")
	}
	return helper.JsonCreated(c, "Registrasi berhasil", dto.ToUserResponse(&user))
}

// POST /auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	ident := strings.TrimSpace(body.Identifier)
	var user userModel.UserModel
	err := ctl.DB.WithContext(c.UserContext()).
		Where("user_name = ? OR user_email = ?", ident, strings.ToLower(ident)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Username/email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memuat user")
	}
	if !user.CheckPassword(body.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username/email atau password salah")
	}

	token, err := ctl.signToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(&user),
	})
}

// GET /api/auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "tidak ada sesi")
	}
	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memuat user")
	}
	return helper.JsonOK(c, "", dto.ToUserResponse(&user))
}

// klaim disamakan dengan yang dibaca auth middleware: user_id, user_name, role
func (ctl *AuthController) signToken(user *userModel.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
