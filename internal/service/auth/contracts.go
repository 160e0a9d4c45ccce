package auth

import (
	"context"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

// UserRepository интерфейс репозитория клиентов
type UserRepository interface {
	Create(ctx context.Context, u *domain.CustomerUser) (*domain.CustomerUser, error)
	GetByEmail(ctx context.Context, email string) (*domain.CustomerUser, error)
	GetByID(ctx context.Context, id int64) (*domain.CustomerUser, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
