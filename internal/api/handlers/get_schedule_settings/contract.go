package get_schedule_settings

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/service/schedule/models"
)

type ScheduleService interface {
	Get(ctx context.Context) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
