package models

import "github.com/m04kA/BarberBookingService/internal/domain"

// ServiceResponse услуга барбершопа
type ServiceResponse struct {
	ID              string `json:"id"`
	Label           string `json:"label"`
	DurationMinutes int    `json:"durationMinutes"`
	PriceCents      int    `json:"priceCents"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainService конвертирует domain модель в response
func FromDomainService(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Label:           s.Label,
		DurationMinutes: s.DurationMinutes,
		PriceCents:      s.PriceCents,
	}
}

// FromDomainServiceList конвертирует список domain моделей в response
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromDomainService(s))
	}
	return &ServiceListResponse{Services: out}
}
