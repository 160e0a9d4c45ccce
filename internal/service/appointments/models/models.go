package models

import (
	"encoding/json"
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

// AppointmentResponse бронирование
type AppointmentResponse struct {
	ID                int64           `json:"id"`
	ServiceID         string          `json:"serviceId"`
	ServiceLabel      string          `json:"serviceLabel"`
	ServicePriceCents int             `json:"servicePriceCents"`
	StartTime         time.Time       `json:"startTime"`
	EndTime           time.Time       `json:"endTime"`
	DurationMinutes   int             `json:"durationMinutes"`
	CustomerID        *int64          `json:"customerId,omitempty"`
	Name              string          `json:"name"`
	Email             *string         `json:"email,omitempty"`
	Phone             *string         `json:"phone,omitempty"`
	Notes             *string         `json:"notes,omitempty"`
	Intake            json.RawMessage `json:"intake,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// AppointmentListResponse список бронирований
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                a.ID,
		ServiceID:         a.ServiceID,
		ServiceLabel:      a.ServiceLabel,
		ServicePriceCents: a.ServicePriceCents,
		StartTime:         a.StartTime,
		EndTime:           a.EndTime(),
		DurationMinutes:   a.DurationMinutes,
		CustomerID:        a.CustomerID,
		Name:              a.Name,
		Email:             a.Email,
		Phone:             a.Phone,
		Notes:             a.Notes,
		Intake:            a.Intake,
		CreatedAt:         a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в response
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	out := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, *FromDomainAppointment(a))
	}
	return &AppointmentListResponse{Appointments: out}
}
