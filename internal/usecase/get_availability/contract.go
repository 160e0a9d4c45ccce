package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

// WindowRepository интерфейс репозитория окон доступности
type WindowRepository interface {
	// ListByWeekday получает окна на день недели, отсортированные по началу
	ListByWeekday(ctx context.Context, weekday int) ([]*domain.AvailabilityWindow, error)
}

// BlockRepository интерфейс репозитория блокировок расписания
type BlockRepository interface {
	// ListOverlapping получает блокировки, пересекающиеся с диапазоном
	ListOverlapping(ctx context.Context, rangeStart, rangeEnd time.Time) ([]*domain.AvailabilityBlock, error)
}

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	// ListInRange получает бронирования, начинающиеся в диапазоне [rangeStart, rangeEnd)
	ListInRange(ctx context.Context, rangeStart, rangeEnd time.Time) ([]*domain.Appointment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
