package get_user_appointments

import (
	"context"

	"github.com/m04kA/BarberBookingService/internal/service/appointments/models"
)

type AppointmentsService interface {
	ListByCustomer(ctx context.Context, customerID int64) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
