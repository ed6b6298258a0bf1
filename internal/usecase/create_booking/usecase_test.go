package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-SchedulerService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	created  *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	stored := *booking
	stored.ID = 100
	stored.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
}

func (f *fakeBookingRepo) GetByWorkerWithFilter(_ context.Context, _ domain.WorkerBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeScheduleRepo struct {
	settings *domain.ScheduleSettings
}

func (f *fakeScheduleRepo) Get(_ context.Context) (*domain.ScheduleSettings, error) {
	return f.settings, nil
}

type fakeStaffClient struct {
	worker *staffservice.Worker
	err    error
}

func (f *fakeStaffClient) GetWorker(_ context.Context, _ int64) (*staffservice.Worker, error) {
	return f.worker, f.err
}

type fakeCatalogClient struct {
	service *catalogservice.Service
	err     error
}

func (f *fakeCatalogClient) GetService(_ context.Context, _ int64) (*catalogservice.Service, error) {
	return f.service, f.err
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, value string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(value)
	require.NoError(t, err)
	return ts
}

func workingWeek() map[string]staffservice.DayHours {
	week := make(map[string]staffservice.DayHours, len(domain.Weekdays))
	for _, weekday := range domain.Weekdays {
		week[domain.WeekdayName(weekday)] = staffservice.DayHours{Start: "09:00", End: "17:00", Enabled: true}
	}
	return week
}

func companyWeek(t *testing.T) domain.WeeklySchedule {
	t.Helper()
	var schedule domain.WeeklySchedule
	day := domain.DayHours{Start: mustTime(t, "09:00"), End: mustTime(t, "17:00"), Enabled: true}
	for _, weekday := range domain.Weekdays {
		schedule.SetForWeekday(weekday, day)
	}
	return schedule
}

func activeWorker(autoAccept bool) *staffservice.Worker {
	return &staffservice.Worker{
		ID:               1,
		Name:             "Ivan",
		Status:           "active",
		AutoAccept:       autoAccept,
		AssignedServices: []int64{10},
		WorkingHours:     workingWeek(),
	}
}

func catalogService() *catalogservice.Service {
	return &catalogservice.Service{
		ID:       10,
		Name:     "Complex wash",
		Price:    1500,
		Duration: 60,
		Active:   true,
	}
}

func newTestUseCase(
	bookings *fakeBookingRepo,
	schedule *fakeScheduleRepo,
	staff *fakeStaffClient,
	catalog *fakeCatalogClient,
	now time.Time,
) *UseCase {
	uc := NewUseCase(bookings, schedule, staff, catalog, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_CreatesConfirmedBookingWithAutoAccept(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{}
	uc := newTestUseCase(
		repo,
		&fakeScheduleRepo{settings: &domain.ScheduleSettings{WorkingHours: companyWeek(t)}},
		&fakeStaffClient{worker: activeWorker(true)},
		&fakeCatalogClient{service: catalogService()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID:   7,
		CustomerName: "Anna",
		WorkerID:     1,
		ServiceID:    10,
		Date:         date,
		StartTime:    mustTime(t, "10:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "10:00", resp.StartTime.String())
	assert.Equal(t, "11:00", resp.EndTime.String())
	assert.Equal(t, "Complex wash", resp.ServiceName)
	assert.Equal(t, float64(1500), resp.ServicePrice)

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusConfirmed, repo.created.Status)
}

func TestExecute_CreatesPendingBookingWithoutAutoAccept(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{settings: &domain.ScheduleSettings{WorkingHours: companyWeek(t)}},
		&fakeStaffClient{worker: activeWorker(false)},
		&fakeCatalogClient{service: catalogService()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID:   7,
		CustomerName: "Anna",
		WorkerID:     1,
		ServiceID:    10,
		Date:         date,
		StartTime:    mustTime(t, "10:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_EndTimeIncludesBuffer(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	service := catalogService()
	service.BufferTime = 15

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{settings: &domain.ScheduleSettings{WorkingHours: companyWeek(t)}},
		&fakeStaffClient{worker: activeWorker(true)},
		&fakeCatalogClient{service: service},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID:   7,
		CustomerName: "Anna",
		WorkerID:     1,
		ServiceID:    10,
		Date:         date,
		StartTime:    mustTime(t, "09:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "10:15", resp.EndTime.String())
}

func TestExecute_OccupiedSlotRejected(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{{
			ID:        1,
			WorkerID:  1,
			StartTime: mustTime(t, "10:00"),
			EndTime:   mustTime(t, "11:00"),
			Status:    domain.StatusConfirmed,
		}}},
		&fakeScheduleRepo{settings: &domain.ScheduleSettings{WorkingHours: companyWeek(t)}},
		&fakeStaffClient{worker: activeWorker(true)},
		&fakeCatalogClient{service: catalogService()},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID:   7,
		CustomerName: "Anna",
		WorkerID:     1,
		ServiceID:    10,
		Date:         date,
		StartTime:    mustTime(t, "10:00"),
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_OffGridStartTimeRejected(t *testing.T) {
	// Сетка с шагом 60 минут начинается в 09:00, поэтому 09:30 не слот
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{settings: &domain.ScheduleSettings{WorkingHours: companyWeek(t)}},
		&fakeStaffClient{worker: activeWorker(true)},
		&fakeCatalogClient{service: catalogService()},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID:   7,
		CustomerName: "Anna",
		WorkerID:     1,
		ServiceID:    10,
		Date:         date,
		StartTime:    mustTime(t, "09:30"),
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_CompanyOffDateRejected(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{settings: &domain.ScheduleSettings{
			WorkingHours: companyWeek(t),
			OffDates:     []string{"2026-09-07"},
		}},
		&fakeStaffClient{worker: activeWorker(true)},
		&fakeCatalogClient{service: catalogService()},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID:   7,
		CustomerName: "Anna",
		WorkerID:     1,
		ServiceID:    10,
		Date:         date,
		StartTime:    mustTime(t, "10:00"),
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_WorkerNotFound(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{},
		&fakeStaffClient{err: staffservice.ErrWorkerNotFound},
		&fakeCatalogClient{},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID:   7,
		CustomerName: "Anna",
		WorkerID:     99,
		ServiceID:    10,
		Date:         now.AddDate(0, 0, 1),
		StartTime:    mustTime(t, "10:00"),
	})
	assert.ErrorIs(t, err, ErrWorkerNotFound)
}

func TestExecute_PastDateRejected(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeStaffClient{}, &fakeCatalogClient{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID:   7,
		CustomerName: "Anna",
		WorkerID:     1,
		ServiceID:    10,
		Date:         now.AddDate(0, 0, -1),
		StartTime:    mustTime(t, "10:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeStaffClient{}, &fakeCatalogClient{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerName: "Anna",
		WorkerID:     1,
		ServiceID:    10,
		Date:         now,
		StartTime:    mustTime(t, "10:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		CustomerID: 7,
		WorkerID:   1,
		ServiceID:  10,
		Date:       now,
		StartTime:  mustTime(t, "10:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		CustomerID:   7,
		CustomerName: "Anna",
		WorkerID:     1,
		ServiceID:    10,
		Date:         now,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
