package create_appointment

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BarberBookingService/internal/domain"
	apptstore "github.com/m04kA/BarberBookingService/internal/infra/storage/appointment"
	servicestore "github.com/m04kA/BarberBookingService/internal/infra/storage/service"
	"github.com/m04kA/BarberBookingService/internal/integrations/sendgrid"
	"github.com/m04kA/BarberBookingService/pkg/ptr"
)

type stubServiceRepo struct {
	svc *domain.Service
	err error
}

func (s *stubServiceRepo) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.svc, nil
}

type stubApptRepo struct {
	created *domain.Appointment
	err     error
}

func (s *stubApptRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if s.err != nil {
		return nil, s.err
	}
	stored := *appt
	stored.ID = 42
	stored.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.created = &stored
	return &stored, nil
}

type stubNotifier struct {
	sent chan *sendgrid.BookingNotification
}

func (s *stubNotifier) NotifyOwnerBooking(ctx context.Context, n *sendgrid.BookingNotification) error {
	s.sent <- n
	return nil
}

type failingNotifier struct {
	called chan struct{}
}

func (f *failingNotifier) NotifyOwnerBooking(ctx context.Context, n *sendgrid.BookingNotification) error {
	defer close(f.called)
	return sendgrid.ErrSendFailed
}

type fixedTimeProvider struct {
	t time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.t
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(serviceRepo ServiceRepository, apptRepo AppointmentRepository, notifier NotificationClient) *UseCase {
	uc := NewUseCase(serviceRepo, apptRepo, notifier, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		ServiceID: "haircut",
		StartTime: time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC),
		Name:      "Ivan Petrov",
		Email:     ptr.Ptr("ivan@example.com"),
	}
}

func haircut() *domain.Service {
	return &domain.Service{ID: "haircut", Label: "Haircut", DurationMinutes: 45, PriceCents: 3500}
}

func TestExecute_CreatesAppointmentWithServiceSnapshot(t *testing.T) {
	apptRepo := &stubApptRepo{}
	uc := newTestUseCase(&stubServiceRepo{svc: haircut()}, apptRepo, nil)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "haircut", resp.ServiceID)
	assert.Equal(t, "Haircut", resp.ServiceLabel)
	assert.Equal(t, 3500, resp.ServicePriceCents)
	assert.Equal(t, 45, resp.DurationMinutes)
	assert.Equal(t, resp.StartTime.Add(45*time.Minute), resp.EndTime)

	// Снимок услуги зафиксирован на бронировании
	require.NotNil(t, apptRepo.created)
	assert.Equal(t, "Haircut", apptRepo.created.ServiceLabel)
	assert.Equal(t, 45, apptRepo.created.DurationMinutes)
	assert.Nil(t, apptRepo.created.CustomerID)
}

func TestExecute_CustomerBookingKeepsCustomerID(t *testing.T) {
	apptRepo := &stubApptRepo{}
	uc := newTestUseCase(&stubServiceRepo{svc: haircut()}, apptRepo, nil)

	req := validRequest()
	req.CustomerID = ptr.Ptr(int64(7))

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, apptRepo.created.CustomerID)
	assert.Equal(t, int64(7), *apptRepo.created.CustomerID)
}

func TestExecute_SlotConflict(t *testing.T) {
	uc := newTestUseCase(&stubServiceRepo{svc: haircut()}, &stubApptRepo{err: apptstore.ErrSlotTaken}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_StartTimeInPast(t *testing.T) {
	uc := newTestUseCase(&stubServiceRepo{svc: haircut()}, &stubApptRepo{}, nil)

	req := validRequest()
	req.StartTime = time.Date(2026, 2, 1, 14, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStartTimeInPast)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(&stubServiceRepo{err: servicestore.ErrServiceNotFound}, &stubApptRepo{}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ValidationFailures(t *testing.T) {
	uc := newTestUseCase(&stubServiceRepo{svc: haircut()}, &stubApptRepo{}, nil)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"empty serviceId", func(req *Request) { req.ServiceID = "" }},
		{"zero startTime", func(req *Request) { req.StartTime = time.Time{} }},
		{"short name", func(req *Request) { req.Name = "A" }},
		{"email without at", func(req *Request) { req.Email = ptr.Ptr("not-an-email") }},
		{"intake is not JSON", func(req *Request) { req.Intake = json.RawMessage(`{broken`) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_NotifiesOwner(t *testing.T) {
	notifier := &stubNotifier{sent: make(chan *sendgrid.BookingNotification, 1)}
	uc := newTestUseCase(&stubServiceRepo{svc: haircut()}, &stubApptRepo{}, notifier)

	req := validRequest()
	req.Phone = ptr.Ptr("+14165550142")

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	select {
	case n := <-notifier.sent:
		assert.Equal(t, "Haircut", n.ServiceLabel)
		assert.Equal(t, "Ivan Petrov", n.CustomerName)
		assert.Equal(t, "ivan@example.com", n.CustomerEmail)
		assert.Equal(t, "+14165550142", n.CustomerPhone)
		assert.Equal(t, req.StartTime, n.StartTime)
		assert.Equal(t, req.StartTime.Add(45*time.Minute), n.EndTime)
	case <-time.After(2 * time.Second):
		t.Fatal("owner notification was not sent")
	}
}

func TestExecute_NotificationFailureDoesNotAffectBooking(t *testing.T) {
	notifier := &failingNotifier{called: make(chan struct{})}
	uc := newTestUseCase(&stubServiceRepo{svc: haircut()}, &stubApptRepo{}, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotNil(t, resp)

	select {
	case <-notifier.called:
	case <-time.After(2 * time.Second):
		t.Fatal("owner notification was not attempted")
	}
}

func TestExecute_NilNotifierIsSafe(t *testing.T) {
	uc := newTestUseCase(&stubServiceRepo{svc: haircut()}, &stubApptRepo{}, nil)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotNil(t, resp)
}
