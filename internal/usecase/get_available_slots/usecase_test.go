package get_available_slots

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
	err      error
}

func (f *fakeBookingRepo) GetByWorkerWithFilter(_ context.Context, _ domain.WorkerBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeScheduleRepo struct {
	settings *domain.ScheduleSettings
	err      error
}

func (f *fakeScheduleRepo) Get(_ context.Context) (*domain.ScheduleSettings, error) {
	return f.settings, f.err
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

func workingWeek(t *testing.T, start, end string) map[string]staffservice.DayHours {
	t.Helper()
	week := make(map[string]staffservice.DayHours, len(domain.Weekdays))
	for _, weekday := range domain.Weekdays {
		week[domain.WeekdayName(weekday)] = staffservice.DayHours{Start: start, End: end, Enabled: true}
	}
	return week
}

func companyWeek(t *testing.T, start, end string) domain.WeeklySchedule {
	t.Helper()
	var schedule domain.WeeklySchedule
	day := domain.DayHours{Start: mustTime(t, start), End: mustTime(t, end), Enabled: true}
	for _, weekday := range domain.Weekdays {
		schedule.SetForWeekday(weekday, day)
	}
	return schedule
}

func newTestUseCase(
	bookings *fakeBookingRepo,
	schedule *fakeScheduleRepo,
	staff *fakeStaffClient,
	catalog *fakeCatalogClient,
	now time.Time,
) *UseCase {
	uc := NewUseCase(bookings, schedule, staff, catalog, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_ReturnsSlots(t *testing.T) {
	// Понедельник 2026-09-07, компания и сотрудник работают 09:00-17:00
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{settings: &domain.ScheduleSettings{
			Currency:     domain.DefaultCurrency,
			WorkingHours: companyWeek(t, "09:00", "17:00"),
		}},
		&fakeStaffClient{worker: &staffservice.Worker{
			ID:               1,
			Status:           "active",
			AssignedServices: []int64{10},
			WorkingHours:     workingWeek(t, "09:00", "17:00"),
		}},
		&fakeCatalogClient{service: &catalogservice.Service{
			ID:       10,
			Duration: 60,
			Active:   true,
		}},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{WorkerID: 1, ServiceID: 10, Date: date})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 8)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "16:00", resp.Slots[7].StartTime.String())
	assert.Equal(t, 60, resp.Slots[0].DurationMinutes)
}

func TestExecute_SpecialHoursOverrideWeeklySchedule(t *testing.T) {
	// На дату заданы особые часы 10:00-14:00 вместо обычных 09:00-17:00
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{settings: &domain.ScheduleSettings{
			WorkingHours: companyWeek(t, "09:00", "17:00"),
			SpecialHours: []domain.SpecialHours{{
				Date:  "2026-09-07",
				Start: mustTime(t, "10:00"),
				End:   mustTime(t, "14:00"),
			}},
		}},
		&fakeStaffClient{worker: &staffservice.Worker{
			ID:               1,
			Status:           "active",
			AssignedServices: []int64{10},
			WorkingHours:     workingWeek(t, "09:00", "17:00"),
		}},
		&fakeCatalogClient{service: &catalogservice.Service{
			ID:       10,
			Duration: 60,
			Active:   true,
		}},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{WorkerID: 1, ServiceID: 10, Date: date})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)
	assert.Equal(t, "10:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "13:00", resp.Slots[3].StartTime.String())
}

func TestExecute_CompanyOffDateGivesEmptyResult(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{settings: &domain.ScheduleSettings{
			WorkingHours: companyWeek(t, "09:00", "17:00"),
			OffDates:     []string{"2026-09-07"},
		}},
		&fakeStaffClient{worker: &staffservice.Worker{
			ID:               1,
			Status:           "active",
			AssignedServices: []int64{10},
			WorkingHours:     workingWeek(t, "09:00", "17:00"),
		}},
		&fakeCatalogClient{service: &catalogservice.Service{
			ID:       10,
			Duration: 60,
			Active:   true,
		}},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{WorkerID: 1, ServiceID: 10, Date: date})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_WorkerNotFound(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{settings: &domain.ScheduleSettings{
			WorkingHours: companyWeek(t, "09:00", "17:00"),
		}},
		&fakeStaffClient{err: staffservice.ErrWorkerNotFound},
		&fakeCatalogClient{},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{WorkerID: 99, ServiceID: 10, Date: now.AddDate(0, 0, 1)})
	assert.ErrorIs(t, err, ErrWorkerNotFound)
}

func TestExecute_InactiveWorker(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{settings: &domain.ScheduleSettings{
			WorkingHours: companyWeek(t, "09:00", "17:00"),
		}},
		&fakeStaffClient{worker: &staffservice.Worker{
			ID:               1,
			Status:           "on_leave",
			AssignedServices: []int64{10},
		}},
		&fakeCatalogClient{},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{WorkerID: 1, ServiceID: 10, Date: now.AddDate(0, 0, 1)})
	assert.ErrorIs(t, err, ErrWorkerInactive)
}

func TestExecute_ServiceNotAssigned(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{settings: &domain.ScheduleSettings{
			WorkingHours: companyWeek(t, "09:00", "17:00"),
		}},
		&fakeStaffClient{worker: &staffservice.Worker{
			ID:               1,
			Status:           "active",
			AssignedServices: []int64{20},
		}},
		&fakeCatalogClient{},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{WorkerID: 1, ServiceID: 10, Date: now.AddDate(0, 0, 1)})
	assert.ErrorIs(t, err, ErrServiceNotAssigned)
}

func TestExecute_InactiveService(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{settings: &domain.ScheduleSettings{
			WorkingHours: companyWeek(t, "09:00", "17:00"),
		}},
		&fakeStaffClient{worker: &staffservice.Worker{
			ID:               1,
			Status:           "active",
			AssignedServices: []int64{10},
			WorkingHours:     workingWeek(t, "09:00", "17:00"),
		}},
		&fakeCatalogClient{service: &catalogservice.Service{
			ID:       10,
			Duration: 60,
			Active:   false,
		}},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{WorkerID: 1, ServiceID: 10, Date: now.AddDate(0, 0, 1)})
	assert.ErrorIs(t, err, ErrServiceInactive)
}

func TestExecute_ZeroDurationServiceIsConfigurationError(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{settings: &domain.ScheduleSettings{
			WorkingHours: companyWeek(t, "09:00", "17:00"),
		}},
		&fakeStaffClient{worker: &staffservice.Worker{
			ID:               1,
			Status:           "active",
			AssignedServices: []int64{10},
			WorkingHours:     workingWeek(t, "09:00", "17:00"),
		}},
		&fakeCatalogClient{service: &catalogservice.Service{
			ID:       10,
			Duration: 0,
			Active:   true,
		}},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{WorkerID: 1, ServiceID: 10, Date: now.AddDate(0, 0, 1)})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestExecute_PastDateRejected(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{},
		&fakeStaffClient{},
		&fakeCatalogClient{},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{WorkerID: 1, ServiceID: 10, Date: now.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeStaffClient{}, &fakeCatalogClient{}, now)

	_, err := uc.Execute(context.Background(), &Request{WorkerID: 0, ServiceID: 10, Date: now})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{WorkerID: 1, ServiceID: 0, Date: now})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{WorkerID: 1, ServiceID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_BookingBlocksSlot(t *testing.T) {
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
		&fakeScheduleRepo{settings: &domain.ScheduleSettings{
			WorkingHours: companyWeek(t, "09:00", "17:00"),
		}},
		&fakeStaffClient{worker: &staffservice.Worker{
			ID:               1,
			Status:           "active",
			AssignedServices: []int64{10},
			WorkingHours:     workingWeek(t, "09:00", "17:00"),
		}},
		&fakeCatalogClient{service: &catalogservice.Service{
			ID:       10,
			Duration: 60,
			Active:   true,
		}},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{WorkerID: 1, ServiceID: 10, Date: date})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 7)
	for _, slot := range resp.Slots {
		assert.NotEqual(t, "10:00", slot.StartTime.String())
	}
}
