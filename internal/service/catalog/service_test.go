package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BarberBookingService/internal/domain"
	servicestore "github.com/m04kA/BarberBookingService/internal/infra/storage/service"
)

type stubServiceRepo struct {
	services []*domain.Service
	err      error
}

func (s *stubServiceRepo) List(ctx context.Context) ([]*domain.Service, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.services, nil
}

func (s *stubServiceRepo) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, svc := range s.services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return nil, servicestore.ErrServiceNotFound
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestList(t *testing.T) {
	repo := &stubServiceRepo{services: []*domain.Service{
		{ID: "haircut", Label: "Haircut", DurationMinutes: 45, PriceCents: 3500},
		{ID: "beard-trim", Label: "Beard Trim", DurationMinutes: 20, PriceCents: 1500},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Services, 2)
	assert.Equal(t, "haircut", resp.Services[0].ID)
	assert.Equal(t, 45, resp.Services[0].DurationMinutes)
	assert.Equal(t, 1500, resp.Services[1].PriceCents)
}

func TestList_Empty(t *testing.T) {
	svc := NewService(&stubServiceRepo{}, nopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resp.Services)
}

func TestGetByID(t *testing.T) {
	repo := &stubServiceRepo{services: []*domain.Service{
		{ID: "haircut", Label: "Haircut", DurationMinutes: 45, PriceCents: 3500},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), "haircut")
	require.NoError(t, err)
	assert.Equal(t, "Haircut", resp.Label)

	_, err = svc.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestGetByID_RepositoryError(t *testing.T) {
	svc := NewService(&stubServiceRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := svc.GetByID(context.Background(), "haircut")
	assert.ErrorIs(t, err, ErrInternal)
}
