package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "sekolahku_backend/internals/features/users/auth/model"
)

/* ===================== Requests ===================== */

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=60"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=student teacher admin"`
}

type LoginRequest struct {
	// boleh username atau email
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

/* ===================== Responses ===================== */

type UserResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	UserRole      string    `json:"user_role"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func ToUserResponse(u *userModel.UserModel) UserResponse {
	return UserResponse{
		UserID:        u.UserID,
		UserName:      u.UserName,
		UserEmail:     u.UserEmail,
		UserRole:      u.UserRole,
		UserCreatedAt: u.UserCreatedAt,
	}
}
