package create_appointment

import (
	"encoding/json"
	"time"

	createAppointment "github.com/m04kA/BarberBookingService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceID string          `json:"serviceId"`
	StartTime string          `json:"startTime"` // RFC 3339, например "2026-09-07T14:30:00-04:00"
	Name      string          `json:"name"`
	Email     *string         `json:"email,omitempty"`
	Phone     *string         `json:"phone,omitempty"`
	Notes     *string         `json:"notes,omitempty"`
	Intake    json.RawMessage `json:"intake,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// customerID берется из токена, а не из тела запроса
func (r *CreateAppointmentRequest) ToUseCaseRequest(customerID *int64) (*createAppointment.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ServiceID:  r.ServiceID,
		StartTime:  startTime,
		CustomerID: customerID,
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Notes:      r.Notes,
		Intake:     r.Intake,
	}, nil
}
