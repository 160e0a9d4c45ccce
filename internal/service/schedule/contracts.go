package schedule

import (
	"context"
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

// WindowRepository интерфейс репозитория окон доступности
type WindowRepository interface {
	Create(ctx context.Context, w *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error)
	List(ctx context.Context) ([]*domain.AvailabilityWindow, error)
	ListByWeekday(ctx context.Context, weekday int) ([]*domain.AvailabilityWindow, error)
	Delete(ctx context.Context, id int64) error
}

// BlockRepository интерфейс репозитория блокировок расписания
type BlockRepository interface {
	Create(ctx context.Context, b *domain.AvailabilityBlock) (*domain.AvailabilityBlock, error)
	List(ctx context.Context) ([]*domain.AvailabilityBlock, error)
	ListOverlapping(ctx context.Context, rangeStart, rangeEnd time.Time) ([]*domain.AvailabilityBlock, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
