package update_schedule_settings

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/service/schedule/models"
)

type ScheduleService interface {
	Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error)
	AddOffDates(ctx context.Context, req *models.AddOffDatesRequest) error
	RemoveOffDate(ctx context.Context, date string) error
	AddSpecialHours(ctx context.Context, req *models.AddSpecialHoursRequest) error
	RemoveSpecialHours(ctx context.Context, date string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
