package schedule

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// ScheduleRepository интерфейс репозитория настроек расписания
type ScheduleRepository interface {
	Get(ctx context.Context) (*domain.ScheduleSettings, error)
	UpdateWorkingHours(ctx context.Context, hours domain.WeeklySchedule) error
	UpdateCurrency(ctx context.Context, currency string) error
	AddOffDate(ctx context.Context, date string) error
	RemoveOffDate(ctx context.Context, date string) error
	AddSpecialHours(ctx context.Context, special domain.SpecialHours) error
	RemoveSpecialHours(ctx context.Context, date string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
