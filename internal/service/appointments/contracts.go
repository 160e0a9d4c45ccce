package appointments

import (
	"context"
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context) ([]*domain.Appointment, error)
	ListInRange(ctx context.Context, rangeStart, rangeEnd time.Time) ([]*domain.Appointment, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
