package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
	apptRepo "github.com/m04kA/BarberBookingService/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/BarberBookingService/internal/infra/storage/service"
	"github.com/m04kA/BarberBookingService/internal/integrations/sendgrid"
)

// notifyTimeout ограничивает отправку уведомления, чтобы не держать горутину вечно
const notifyTimeout = 10 * time.Second

// UseCase use case для создания бронирования
//
// Оптимистичная схема: предварительная проверка доступности слота не выполняется,
// арбитром гонки служит уникальное ограничение на start_time в БД
type UseCase struct {
	serviceRepo  ServiceRepository
	apptRepo     AppointmentRepository
	notifier     NotificationClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// notifier может быть nil, если уведомления выключены
func NewUseCase(
	serviceRepo ServiceRepository,
	apptRepo AppointmentRepository,
	notifier NotificationClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:  serviceRepo,
		apptRepo:     apptRepo,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: service=%s, start=%s", req.ServiceID, req.StartTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Прошедшее время отклоняем сразу
	now := uc.timeProvider.Now()
	if req.StartTime.Before(now) {
		uc.logger.Warn("CreateAppointment: start=%s is in the past", req.StartTime.Format(time.RFC3339))
		return nil, ErrStartTimeInPast
	}

	// 3. Повторно проверяем услугу: каталог мог измениться с момента показа слотов
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.HasValidDuration() {
		uc.logger.Error("CreateAppointment: service id=%s has invalid duration=%d", service.ID, service.DurationMinutes)
		return nil, fmt.Errorf("%w: service has invalid duration", ErrInternal)
	}

	// 4. Снимок данных услуги фиксируется на бронировании:
	// последующие правки каталога не меняют уже занятые интервалы
	appt := &domain.Appointment{
		ServiceID:         service.ID,
		StartTime:         req.StartTime,
		DurationMinutes:   service.DurationMinutes,
		CustomerID:        req.CustomerID,
		Name:              strings.TrimSpace(req.Name),
		Email:             req.Email,
		Phone:             req.Phone,
		Notes:             req.Notes,
		Intake:            req.Intake,
		ServiceLabel:      service.Label,
		ServicePriceCents: service.PriceCents,
	}

	// 5. Вставка - арбитр конкурентных бронирований
	created, err := uc.apptRepo.Create(ctx, appt)
	if err != nil {
		if errors.Is(err, apptRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateAppointment: slot %s lost to concurrent booking", req.StartTime.Format(time.RFC3339))
			return nil, ErrSlotConflict
		}
		uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d", created.ID)

	// 6. Уведомление владельца best-effort: его сбой не влияет на бронирование
	uc.notifyOwner(created)

	return &Response{
		ID:                created.ID,
		ServiceID:         created.ServiceID,
		ServiceLabel:      created.ServiceLabel,
		ServicePriceCents: created.ServicePriceCents,
		StartTime:         created.StartTime,
		EndTime:           created.EndTime(),
		DurationMinutes:   created.DurationMinutes,
		Name:              created.Name,
		Email:             created.Email,
		Phone:             created.Phone,
		Notes:             created.Notes,
		Intake:            created.Intake,
		CreatedAt:         created.CreatedAt,
	}, nil
}

// notifyOwner отправляет владельцу письмо о новом бронировании в фоне
func (uc *UseCase) notifyOwner(appt *domain.Appointment) {
	if uc.notifier == nil {
		return
	}

	notification := &sendgrid.BookingNotification{
		ServiceLabel: appt.ServiceLabel,
		StartTime:    appt.StartTime,
		EndTime:      appt.EndTime(),
		CustomerName: appt.Name,
	}
	if appt.Email != nil {
		notification.CustomerEmail = *appt.Email
	}
	if appt.Phone != nil {
		notification.CustomerPhone = *appt.Phone
	}
	if appt.Notes != nil {
		notification.Notes = *appt.Notes
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := uc.notifier.NotifyOwnerBooking(ctx, notification); err != nil {
			if errors.Is(err, sendgrid.ErrDisabled) {
				return
			}
			uc.logger.Error("CreateAppointment: owner notification failed for appointment id=%d: %v", appt.ID, err)
		}
	}()
}
