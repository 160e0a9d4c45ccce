package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/BarberBookingService/internal/domain"
	blockRepo "github.com/m04kA/BarberBookingService/internal/infra/storage/block"
	windowRepo "github.com/m04kA/BarberBookingService/internal/infra/storage/window"
	"github.com/m04kA/BarberBookingService/internal/service/schedule/models"
)

// Service сервис управления расписанием: еженедельные окна и разовые блокировки
type Service struct {
	windowRepo WindowRepository
	blockRepo  BlockRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(windowRepo WindowRepository, blockRepo BlockRepository, logger Logger) *Service {
	return &Service{
		windowRepo: windowRepo,
		blockRepo:  blockRepo,
		logger:     logger,
	}
}

// CreateWindow создает еженедельное окно доступности
func (s *Service) CreateWindow(ctx context.Context, req *models.CreateWindowRequest) (*models.WindowResponse, error) {
	window := &domain.AvailabilityWindow{
		Weekday:  req.Weekday,
		StartMin: req.StartMin,
		EndMin:   req.EndMin,
	}

	if !window.IsValid() {
		s.logger.Warn("CreateWindow: invalid window weekday=%d start=%d end=%d", req.Weekday, req.StartMin, req.EndMin)
		return nil, fmt.Errorf("%w: weekday must be 0-6 and 0 <= startMin < endMin <= 1440", ErrInvalidInput)
	}

	created, err := s.windowRepo.Create(ctx, window)
	if err != nil {
		s.logger.Error("CreateWindow: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateWindow - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateWindow: created window id=%d weekday=%d %d-%d", created.ID, created.Weekday, created.StartMin, created.EndMin)
	return models.FromDomainWindow(created), nil
}

// ListWindows получает все окна доступности, отсортированные по дню недели и началу
func (s *Service) ListWindows(ctx context.Context) (*models.WindowListResponse, error) {
	windows, err := s.windowRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListWindows: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListWindows - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWindowList(windows), nil
}

// DeleteWindow удаляет окно доступности
func (s *Service) DeleteWindow(ctx context.Context, id int64) error {
	err := s.windowRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, windowRepo.ErrWindowNotFound) {
			s.logger.Warn("DeleteWindow: window id=%d not found", id)
			return ErrWindowNotFound
		}
		s.logger.Error("DeleteWindow: repository error for window id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteWindow - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteWindow: deleted window id=%d", id)
	return nil
}

// CreateBlock создает разовую блокировку расписания
func (s *Service) CreateBlock(ctx context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error) {
	block := &domain.AvailabilityBlock{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    normalizeReason(req.Reason),
	}

	if !block.IsValid() {
		s.logger.Warn("CreateBlock: invalid block %s - %s", req.StartTime, req.EndTime)
		return nil, fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}
	if block.Reason != nil && len(*block.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	created, err := s.blockRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("CreateBlock: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlock: created block id=%d %s - %s", created.ID, created.StartTime, created.EndTime)
	return models.FromDomainBlock(created), nil
}

// ListBlocks получает все блокировки расписания
func (s *Service) ListBlocks(ctx context.Context) (*models.BlockListResponse, error) {
	blocks, err := s.blockRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListBlocks: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlocks - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockList(blocks), nil
}

// DeleteBlock удаляет блокировку расписания
func (s *Service) DeleteBlock(ctx context.Context, id int64) error {
	err := s.blockRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("DeleteBlock: block id=%d not found", id)
			return ErrBlockNotFound
		}
		s.logger.Error("DeleteBlock: repository error for block id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlock: deleted block id=%d", id)
	return nil
}

// normalizeReason обрезает пробелы и превращает пустую причину в NULL
func normalizeReason(reason *string) *string {
	if reason == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
