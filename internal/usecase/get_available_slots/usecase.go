package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	catalogClient "github.com/m04kA/SMC-SchedulerService/internal/integrations/catalogservice"
	staffClient "github.com/m04kA/SMC-SchedulerService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-SchedulerService/internal/scheduler"
)

// UseCase use case для получения доступных слотов записи
type UseCase struct {
	bookingRepo   BookingRepository
	scheduleRepo  ScheduleRepository
	staffClient   StaffServiceClient
	catalogClient CatalogServiceClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	staffClient StaffServiceClient,
	catalogClient CatalogServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		scheduleRepo:  scheduleRepo,
		staffClient:   staffClient,
		catalogClient: catalogClient,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: worker=%d, service=%d, date=%s",
		req.WorkerID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата в прошлом не обслуживается
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем настройки расписания компании
	settings, err := uc.scheduleRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule settings: %v", ErrInternal, err)
	}

	// 4. Получаем профиль сотрудника
	worker, err := uc.staffClient.GetWorker(ctx, req.WorkerID)
	if err != nil {
		if errors.Is(err, staffClient.ErrWorkerNotFound) {
			uc.logger.Warn("GetAvailableSlots: worker id=%d not found", req.WorkerID)
			return nil, ErrWorkerNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get worker id=%d: %v", req.WorkerID, err)
		return nil, fmt.Errorf("%w: failed to get worker: %v", ErrInternal, err)
	}

	if !worker.IsActive() {
		uc.logger.Warn("GetAvailableSlots: worker id=%d is not active (status=%s)", req.WorkerID, worker.Status)
		return nil, ErrWorkerInactive
	}

	if !worker.HasService(req.ServiceID) {
		uc.logger.Warn("GetAvailableSlots: service id=%d not assigned to worker id=%d", req.ServiceID, req.WorkerID)
		return nil, ErrServiceNotAssigned
	}

	// 5. Получаем услугу из каталога
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.Active {
		uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 6. Особые часы компании на дату перекрывают недельное расписание
	companyHours := companyHoursForDate(settings, req.Date)

	// 7. Получаем занимающие бронирования сотрудника на эту дату
	filter := domain.WorkerBookingsFilter{
		WorkerID:      req.WorkerID,
		StartDate:     &req.Date,
		EndDate:       &req.Date,
		OnlyOccupying: true,
	}

	bookings, err := uc.bookingRepo.GetByWorkerWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Вычисляем доступные слоты
	slots, err := scheduler.ComputeAvailableSlots(
		req.Date,
		companyHours,
		worker.WeeklySchedule(),
		domain.NewHolidaySet(settings.OffDates),
		worker.Holidays(),
		service.Profile(),
		bookings,
	)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: slot computation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	result := make([]Slot, len(slots))
	for i, slot := range slots {
		result[i] = Slot{
			StartTime:       slot.StartTime,
			EndTime:         slot.EndTime,
			DurationMinutes: service.Duration,
		}
	}

	uc.logger.Info("GetAvailableSlots: computed %d slots for worker=%d, service=%d, date=%s",
		len(result), req.WorkerID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      req.Date,
		WorkerID:  req.WorkerID,
		ServiceID: req.ServiceID,
		Slots:     result,
	}, nil
}

// companyHoursForDate возвращает недельное расписание компании с учетом
// особых часов на конкретную дату: если на дату заданы особые часы,
// они подменяют часы соответствующего дня недели
func companyHoursForDate(settings *domain.ScheduleSettings, date time.Time) domain.WeeklySchedule {
	hours := settings.WorkingHours

	if special, ok := settings.SpecialHoursFor(date); ok {
		hours.SetForWeekday(date.Weekday(), domain.DayHours{
			Start:   special.Start,
			End:     special.End,
			Enabled: true,
		})
	}

	return hours
}
