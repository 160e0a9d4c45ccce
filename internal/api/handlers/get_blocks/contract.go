package get_blocks

import (
	"context"

	"github.com/m04kA/BarberBookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListBlocks(ctx context.Context) (*models.BlockListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
