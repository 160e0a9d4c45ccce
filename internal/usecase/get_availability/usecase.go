package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
	serviceRepo "github.com/m04kA/BarberBookingService/internal/infra/storage/service"
)

// Policy параметры расписания барбершопа
type Policy struct {
	Location         *time.Location // Часовой пояс барбершопа
	SlotStepMinutes  int            // Шаг сетки слотов
	FallbackStartMin int            // Начало резервного окна, минут от полуночи
	FallbackEndMin   int            // Конец резервного окна, минут от полуночи
}

// UseCase use case для получения доступных слотов
type UseCase struct {
	serviceRepo  ServiceRepository
	windowRepo   WindowRepository
	blockRepo    BlockRepository
	apptRepo     AppointmentRepository
	policy       Policy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRepository,
	windowRepo WindowRepository,
	blockRepo BlockRepository,
	apptRepo AppointmentRepository,
	policy Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:  serviceRepo,
		windowRepo:   windowRepo,
		blockRepo:    blockRepo,
		apptRepo:     apptRepo,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: service=%s, date=%s", req.ServiceID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Парсим дату в часовом поясе барбершопа
	dayStart, err := parseDate(req.Date, uc.policy.Location)
	if err != nil {
		uc.logger.Warn("GetAvailability: invalid date=%s", req.Date)
		return nil, err
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	// 3. Получаем услугу и проверяем её длительность
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailability: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailability: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.HasValidDuration() {
		uc.logger.Error("GetAvailability: service id=%s has invalid duration=%d", service.ID, service.DurationMinutes)
		return nil, ErrInvalidServiceConfig
	}

	// 4. Фиксируем текущее время один раз на весь расчет,
	// чтобы фильтр сегодняшних слотов был согласован
	now := uc.timeProvider.Now().In(uc.policy.Location)

	// 5. Получаем окна на день недели, при их отсутствии - резервное окно
	windows, err := uc.windowRepo.ListByWeekday(ctx, int(dayStart.Weekday()))
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get windows: %v", err)
		return nil, fmt.Errorf("%w: failed to get windows: %v", ErrInternal, err)
	}

	if len(windows) == 0 {
		windows = []*domain.AvailabilityWindow{uc.fallbackWindow(dayStart)}
		uc.logger.Info("GetAvailability: no windows for weekday=%d, using fallback %d-%d",
			int(dayStart.Weekday()), uc.policy.FallbackStartMin, uc.policy.FallbackEndMin)
	}

	// 6. Собираем занятые интервалы дня
	blocks, err := uc.blockRepo.ListOverlapping(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
	}

	appointments, err := uc.apptRepo.ListInRange(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 7. Генерируем слоты
	var cutoff *time.Time
	if isSameDay(dayStart, now) {
		cutoff = &now
	}

	slots := generateSlots(
		anchorWindows(windows, dayStart),
		collectBusyIntervals(blocks, appointments),
		service.Duration(),
		time.Duration(uc.policy.SlotStepMinutes)*time.Minute,
		cutoff,
	)

	uc.logger.Info("GetAvailability: generated %d slots for service=%s, date=%s", len(slots), req.ServiceID, req.Date)

	return &Response{
		Date:            req.Date,
		ServiceID:       service.ID,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}

// fallbackWindow возвращает резервное окно на день без настроенных окон
func (uc *UseCase) fallbackWindow(dayStart time.Time) *domain.AvailabilityWindow {
	return &domain.AvailabilityWindow{
		Weekday:  int(dayStart.Weekday()),
		StartMin: uc.policy.FallbackStartMin,
		EndMin:   uc.policy.FallbackEndMin,
	}
}
