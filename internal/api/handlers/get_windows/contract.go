package get_windows

import (
	"context"

	"github.com/m04kA/BarberBookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListWindows(ctx context.Context) (*models.WindowListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
