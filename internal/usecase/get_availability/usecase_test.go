package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BarberBookingService/internal/domain"
	servicestore "github.com/m04kA/BarberBookingService/internal/infra/storage/service"
)

// testDate среда 2026-03-11, день недели 3
const testDate = "2026-03-11"

var testLoc = time.UTC

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

type stubWindowRepo struct {
	windows []*domain.AvailabilityWindow
}

func (s *stubWindowRepo) ListByWeekday(ctx context.Context, weekday int) ([]*domain.AvailabilityWindow, error) {
	return s.windows, nil
}

type stubBlockRepo struct {
	blocks []*domain.AvailabilityBlock
}

func (s *stubBlockRepo) ListOverlapping(ctx context.Context, rangeStart, rangeEnd time.Time) ([]*domain.AvailabilityBlock, error) {
	return s.blocks, nil
}

type stubApptRepo struct {
	appts []*domain.Appointment
}

func (s *stubApptRepo) ListInRange(ctx context.Context, rangeStart, rangeEnd time.Time) ([]*domain.Appointment, error) {
	return s.appts, nil
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

type fixture struct {
	serviceRepo *stubServiceRepo
	windowRepo  *stubWindowRepo
	blockRepo   *stubBlockRepo
	apptRepo    *stubApptRepo
	now         time.Time
}

func newFixture() *fixture {
	return &fixture{
		serviceRepo: &stubServiceRepo{svc: &domain.Service{ID: "haircut", Label: "Haircut", DurationMinutes: 45, PriceCents: 3500}},
		windowRepo:  &stubWindowRepo{},
		blockRepo:   &stubBlockRepo{},
		apptRepo:    &stubApptRepo{},
		// По умолчанию запрошенная дата в будущем, фильтр cutoff не активен
		now: time.Date(2026, 3, 1, 12, 0, 0, 0, testLoc),
	}
}

func (f *fixture) build() *UseCase {
	uc := NewUseCase(f.serviceRepo, f.windowRepo, f.blockRepo, f.apptRepo, Policy{
		Location:         testLoc,
		SlotStepMinutes:  15,
		FallbackStartMin: 600,
		FallbackEndMin:   1140,
	}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{t: f.now}
	return uc
}

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 11, hour, min, 0, 0, testLoc)
}

func TestExecute_FallbackWindowOpenDay(t *testing.T) {
	f := newFixture()
	uc := f.build()

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "haircut", Date: testDate})
	require.NoError(t, err)

	// Окно 10:00-19:00, услуга 45 минут, шаг 15: старты 10:00 .. 18:15
	require.Len(t, resp.Slots, 34)
	assert.Equal(t, at(10, 0), resp.Slots[0])
	assert.Equal(t, at(18, 15), resp.Slots[33])
	assert.Equal(t, testDate, resp.Date)
	assert.Equal(t, "haircut", resp.ServiceID)
	assert.Equal(t, 45, resp.DurationMinutes)
}

func TestExecute_AppointmentExcludesOverlappingSlots(t *testing.T) {
	f := newFixture()
	f.apptRepo.appts = []*domain.Appointment{
		{ID: 1, ServiceID: "haircut", StartTime: at(12, 0), DurationMinutes: 45},
	}
	uc := f.build()

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "haircut", Date: testDate})
	require.NoError(t, err)

	// Исключаются старты 11:30 .. 12:30, граничные 11:15 и 12:45 остаются
	assert.Len(t, resp.Slots, 29)
	assert.Contains(t, resp.Slots, at(11, 15))
	assert.Contains(t, resp.Slots, at(12, 45))
	assert.NotContains(t, resp.Slots, at(11, 30))
	assert.NotContains(t, resp.Slots, at(12, 0))
	assert.NotContains(t, resp.Slots, at(12, 30))
}

func TestExecute_BlockExcludesSlots(t *testing.T) {
	f := newFixture()
	f.blockRepo.blocks = []*domain.AvailabilityBlock{
		{ID: 1, StartTime: at(14, 0), EndTime: at(16, 0)},
	}
	uc := f.build()

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "haircut", Date: testDate})
	require.NoError(t, err)

	// Исключаются старты 13:30 .. 15:45, слот 13:15 заканчивается ровно в 14:00
	assert.Len(t, resp.Slots, 24)
	assert.Contains(t, resp.Slots, at(13, 15))
	assert.Contains(t, resp.Slots, at(16, 0))
	assert.NotContains(t, resp.Slots, at(13, 30))
	assert.NotContains(t, resp.Slots, at(15, 45))
}

func TestExecute_TodayCutoffFiltersPastSlots(t *testing.T) {
	f := newFixture()
	f.now = at(12, 5)
	uc := f.build()

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "haircut", Date: testDate})
	require.NoError(t, err)

	// Всё до 12:05 отфильтровано, первый доступный старт 12:15
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, at(12, 15), resp.Slots[0])
	assert.NotContains(t, resp.Slots, at(12, 0))
}

func TestExecute_SlotStartingExactlyNowIsAllowed(t *testing.T) {
	f := newFixture()
	f.now = at(12, 15)
	uc := f.build()

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "haircut", Date: testDate})
	require.NoError(t, err)

	// Слот, начинающийся ровно в текущий момент, ещё доступен
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, at(12, 15), resp.Slots[0])
}

func TestExecute_ConfiguredWindowsOverrideFallback(t *testing.T) {
	f := newFixture()
	f.windowRepo.windows = []*domain.AvailabilityWindow{
		{ID: 1, Weekday: 3, StartMin: 540, EndMin: 720},  // 9:00-12:00
		{ID: 2, Weekday: 3, StartMin: 780, EndMin: 1020}, // 13:00-17:00
	}
	uc := f.build()

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "haircut", Date: testDate})
	require.NoError(t, err)

	// 10 стартов в первом окне + 14 во втором, в хронологическом порядке
	require.Len(t, resp.Slots, 24)
	assert.Equal(t, at(9, 0), resp.Slots[0])
	assert.Equal(t, at(11, 15), resp.Slots[9])
	assert.Equal(t, at(13, 0), resp.Slots[10])
	assert.Equal(t, at(16, 15), resp.Slots[23])
	// Резервное окно не применяется при наличии настроенных окон
	assert.NotContains(t, resp.Slots, at(18, 15))
}

func TestExecute_AppointmentOccupiesPersistedDuration(t *testing.T) {
	f := newFixture()
	// Запрашивается короткая услуга, но существующее бронирование
	// занимает свою сохраненную длительность 60 минут
	f.serviceRepo.svc = &domain.Service{ID: "beard-trim", Label: "Beard Trim", DurationMinutes: 20, PriceCents: 1500}
	f.apptRepo.appts = []*domain.Appointment{
		{ID: 1, ServiceID: "haircut-beard", StartTime: at(12, 0), DurationMinutes: 60},
	}
	uc := f.build()

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "beard-trim", Date: testDate})
	require.NoError(t, err)

	assert.Contains(t, resp.Slots, at(11, 30))
	assert.NotContains(t, resp.Slots, at(11, 45))
	assert.NotContains(t, resp.Slots, at(12, 45))
	assert.Contains(t, resp.Slots, at(13, 0))
}

func TestExecute_DayFullyBlocked(t *testing.T) {
	f := newFixture()
	f.blockRepo.blocks = []*domain.AvailabilityBlock{
		{ID: 1, StartTime: at(0, 0), EndTime: at(23, 59)},
	}
	uc := f.build()

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "haircut", Date: testDate})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	f := newFixture()
	f.serviceRepo.err = servicestore.ErrServiceNotFound
	uc := f.build()

	_, err := uc.Execute(context.Background(), &Request{ServiceID: "nope", Date: testDate})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidServiceDuration(t *testing.T) {
	f := newFixture()
	f.serviceRepo.svc = &domain.Service{ID: "broken", Label: "Broken", DurationMinutes: 0}
	uc := f.build()

	_, err := uc.Execute(context.Background(), &Request{ServiceID: "broken", Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidServiceConfig)
}

func TestExecute_InvalidDate(t *testing.T) {
	f := newFixture()
	uc := f.build()

	_, err := uc.Execute(context.Background(), &Request{ServiceID: "haircut", Date: "11-03-2026"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_MissingInput(t *testing.T) {
	f := newFixture()
	uc := f.build()

	_, err := uc.Execute(context.Background(), &Request{ServiceID: "", Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: "haircut", Date: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
