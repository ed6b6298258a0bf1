package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-SchedulerService/internal/integrations/staffservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByWorkerWithFilter получает бронирования сотрудника по фильтру
	GetByWorkerWithFilter(ctx context.Context, filter domain.WorkerBookingsFilter) ([]*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория настроек расписания компании
type ScheduleRepository interface {
	// Get получает настройки расписания: рабочие часы, выходные и особые даты
	Get(ctx context.Context) (*domain.ScheduleSettings, error)
}

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	GetWorker(ctx context.Context, workerID int64) (*staffservice.Worker, error)
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
