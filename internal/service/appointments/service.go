package appointments

import (
	"context"
	"errors"
	"fmt"

	apptRepo "github.com/m04kA/BarberBookingService/internal/infra/storage/appointment"
	"github.com/m04kA/BarberBookingService/internal/service/appointments/models"
)

// Service сервис просмотра и администрирования бронирований
type Service struct {
	apptRepo AppointmentRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(apptRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		apptRepo: apptRepo,
		logger:   logger,
	}
}

// List получает все бронирования, новые первыми (административная операция)
func (s *Service) List(ctx context.Context) (*models.AppointmentListResponse, error) {
	appointments, err := s.apptRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(appointments), nil
}

// GetByID получает бронирование по ID (административная операция)
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// ListByCustomer получает историю бронирований клиента, новые первыми
func (s *Service) ListByCustomer(ctx context.Context, customerID int64) (*models.AppointmentListResponse, error) {
	appointments, err := s.apptRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error("ListByCustomer: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: ListByCustomer - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(appointments), nil
}

// Delete удаляет бронирование, освобождая его слот (административная операция)
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.apptRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted appointment id=%d", id)
	return nil
}
