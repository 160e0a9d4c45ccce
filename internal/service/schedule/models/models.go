package models

import (
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

// Request модели

// CreateWindowRequest запрос на создание окна доступности
type CreateWindowRequest struct {
	Weekday  int `json:"weekday"`
	StartMin int `json:"startMin"`
	EndMin   int `json:"endMin"`
}

// CreateBlockRequest запрос на создание блокировки расписания
type CreateBlockRequest struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Reason    *string   `json:"reason,omitempty"`
}

// Response модели

// WindowResponse окно доступности
type WindowResponse struct {
	ID       int64 `json:"id"`
	Weekday  int   `json:"weekday"`
	StartMin int   `json:"startMin"`
	EndMin   int   `json:"endMin"`
}

// WindowListResponse список окон доступности
type WindowListResponse struct {
	Windows []WindowResponse `json:"windows"`
}

// BlockResponse блокировка расписания
type BlockResponse struct {
	ID        int64     `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Reason    *string   `json:"reason,omitempty"`
}

// BlockListResponse список блокировок
type BlockListResponse struct {
	Blocks []BlockResponse `json:"blocks"`
}

// FromDomainWindow конвертирует domain модель в response
func FromDomainWindow(w *domain.AvailabilityWindow) *WindowResponse {
	return &WindowResponse{
		ID:       w.ID,
		Weekday:  w.Weekday,
		StartMin: w.StartMin,
		EndMin:   w.EndMin,
	}
}

// FromDomainWindowList конвертирует список domain моделей в response
func FromDomainWindowList(windows []*domain.AvailabilityWindow) *WindowListResponse {
	out := make([]WindowResponse, 0, len(windows))
	for _, w := range windows {
		out = append(out, *FromDomainWindow(w))
	}
	return &WindowListResponse{Windows: out}
}

// FromDomainBlock конвертирует domain модель в response
func FromDomainBlock(b *domain.AvailabilityBlock) *BlockResponse {
	return &BlockResponse{
		ID:        b.ID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Reason:    b.Reason,
	}
}

// FromDomainBlockList конвертирует список domain моделей в response
func FromDomainBlockList(blocks []*domain.AvailabilityBlock) *BlockListResponse {
	out := make([]BlockResponse, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, *FromDomainBlock(b))
	}
	return &BlockListResponse{Blocks: out}
}
