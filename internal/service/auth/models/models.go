package models

import (
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

// Request модели

// SignupRequest запрос на регистрацию клиента
type SignupRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Password string  `json:"password"`
}

// LoginRequest запрос на вход клиента
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLoginRequest запрос на вход администратора
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response модели

// UserResponse профиль клиента
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse ответ с токеном и профилем
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// AdminAuthResponse ответ на вход администратора
type AdminAuthResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// FromDomainUser конвертирует domain модель в response
func FromDomainUser(u *domain.CustomerUser) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}
