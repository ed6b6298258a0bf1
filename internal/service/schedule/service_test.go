package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SchedulerService/internal/service/schedule/models"
	"github.com/m04kA/SMC-SchedulerService/pkg/ptr"
)

type fakeScheduleRepo struct {
	settings     *domain.ScheduleSettings
	offDates     []string
	specials     []domain.SpecialHours
	hoursUpdated bool
	currency     string
}

func (f *fakeScheduleRepo) Get(_ context.Context) (*domain.ScheduleSettings, error) {
	return f.settings, nil
}

func (f *fakeScheduleRepo) UpdateWorkingHours(_ context.Context, hours domain.WeeklySchedule) error {
	f.hoursUpdated = true
	f.settings.WorkingHours = hours
	return nil
}

func (f *fakeScheduleRepo) UpdateCurrency(_ context.Context, currency string) error {
	f.currency = currency
	f.settings.Currency = currency
	return nil
}

func (f *fakeScheduleRepo) AddOffDate(_ context.Context, date string) error {
	f.offDates = append(f.offDates, date)
	return nil
}

func (f *fakeScheduleRepo) RemoveOffDate(_ context.Context, date string) error {
	for i, d := range f.offDates {
		if d == date {
			f.offDates = append(f.offDates[:i], f.offDates[i+1:]...)
			return nil
		}
	}
	return scheduleRepo.ErrOffDateNotFound
}

func (f *fakeScheduleRepo) AddSpecialHours(_ context.Context, special domain.SpecialHours) error {
	f.specials = append(f.specials, special)
	return nil
}

func (f *fakeScheduleRepo) RemoveSpecialHours(_ context.Context, date string) error {
	for i, sh := range f.specials {
		if sh.Date == date {
			f.specials = append(f.specials[:i], f.specials[i+1:]...)
			return nil
		}
	}
	return scheduleRepo.ErrSpecialHoursNotFound
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeScheduleRepo) *Service {
	return NewService(repo, fakeTxManager{}, nopLogger{})
}

func TestUpdate_WorkingHoursAndCurrency(t *testing.T) {
	repo := &fakeScheduleRepo{settings: &domain.ScheduleSettings{Currency: "USD"}}
	svc := newTestService(repo)

	resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		WorkingHours: map[string]models.DayHoursDTO{
			"monday": {Start: "09:00", End: "18:00", Enabled: true},
		},
		Currency: ptr.Ptr("EUR"),
	})
	require.NoError(t, err)

	assert.True(t, repo.hoursUpdated)
	assert.Equal(t, "EUR", resp.Currency)
	assert.Equal(t, "09:00", resp.WorkingHours["monday"].Start)
	assert.False(t, resp.WorkingHours["tuesday"].Enabled)
}

func TestUpdate_EmptyRequestRejected(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{settings: &domain.ScheduleSettings{}})

	_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_InvertedHoursRejected(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{settings: &domain.ScheduleSettings{}})

	_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		WorkingHours: map[string]models.DayHoursDTO{
			"monday": {Start: "18:00", End: "09:00", Enabled: true},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddOffDates_SingleDate(t *testing.T) {
	repo := &fakeScheduleRepo{settings: &domain.ScheduleSettings{}}
	svc := newTestService(repo)

	err := svc.AddOffDates(context.Background(), &models.AddOffDatesRequest{StartDate: "2026-09-15"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-09-15"}, repo.offDates)
}

func TestAddOffDates_RangeExpansion(t *testing.T) {
	repo := &fakeScheduleRepo{settings: &domain.ScheduleSettings{}}
	svc := newTestService(repo)

	err := svc.AddOffDates(context.Background(), &models.AddOffDatesRequest{
		StartDate: "2026-12-30",
		EndDate:   ptr.Ptr("2027-01-02"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-12-30", "2026-12-31", "2027-01-01", "2027-01-02"}, repo.offDates)
}

func TestAddOffDates_InvertedRangeRejected(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{settings: &domain.ScheduleSettings{}})

	err := svc.AddOffDates(context.Background(), &models.AddOffDatesRequest{
		StartDate: "2026-09-15",
		EndDate:   ptr.Ptr("2026-09-10"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRemoveOffDate_NotFound(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{settings: &domain.ScheduleSettings{}})

	err := svc.RemoveOffDate(context.Background(), "2026-09-15")
	assert.ErrorIs(t, err, ErrOffDateNotFound)
}

func TestRemoveSpecialHours_NotFound(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{settings: &domain.ScheduleSettings{}})

	err := svc.RemoveSpecialHours(context.Background(), "2026-09-15")
	assert.ErrorIs(t, err, ErrSpecialHoursNotFound)
}

func TestAddSpecialHours_Valid(t *testing.T) {
	repo := &fakeScheduleRepo{settings: &domain.ScheduleSettings{}}
	svc := newTestService(repo)

	err := svc.AddSpecialHours(context.Background(), &models.AddSpecialHoursRequest{
		Date:  "2026-09-15",
		Start: "10:00",
		End:   "14:00",
	})
	require.NoError(t, err)
	require.Len(t, repo.specials, 1)
	assert.Equal(t, "2026-09-15", repo.specials[0].Date)
}

func TestAddSpecialHours_InvertedRangeRejected(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{settings: &domain.ScheduleSettings{}})

	err := svc.AddSpecialHours(context.Background(), &models.AddSpecialHoursRequest{
		Date:  "2026-09-15",
		Start: "14:00",
		End:   "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
