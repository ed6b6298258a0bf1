package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	catalogClient "github.com/m04kA/SMC-SchedulerService/internal/integrations/catalogservice"
	staffClient "github.com/m04kA/SMC-SchedulerService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-SchedulerService/internal/scheduler"
	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	scheduleRepo  ScheduleRepository
	staffClient   StaffServiceClient
	catalogClient CatalogServiceClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	staffClient StaffServiceClient,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		scheduleRepo:  scheduleRepo,
		staffClient:   staffClient,
		catalogClient: catalogClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
// Запрошенный слот принимается, только если он в точности совпадает
// с одним из доступных слотов сетки. Проверка доступности и вставка
// выполняются в сериализуемой транзакции для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, worker=%d, service=%d, date=%s, time=%s",
		req.CustomerID, req.WorkerID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата в прошлом не обслуживается
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем профиль сотрудника
	worker, err := uc.staffClient.GetWorker(ctx, req.WorkerID)
	if err != nil {
		if errors.Is(err, staffClient.ErrWorkerNotFound) {
			uc.logger.Warn("CreateBooking: worker id=%d not found", req.WorkerID)
			return nil, ErrWorkerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get worker id=%d: %v", req.WorkerID, err)
		return nil, fmt.Errorf("%w: failed to get worker: %v", ErrInternal, err)
	}

	if !worker.IsActive() {
		uc.logger.Warn("CreateBooking: worker id=%d is not active (status=%s)", req.WorkerID, worker.Status)
		return nil, ErrWorkerInactive
	}

	if !worker.HasService(req.ServiceID) {
		uc.logger.Warn("CreateBooking: service id=%d not assigned to worker id=%d", req.ServiceID, req.WorkerID)
		return nil, ErrServiceNotAssigned
	}

	// 4. Получаем услугу из каталога
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.Active {
		uc.logger.Warn("CreateBooking: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 5. Получаем настройки расписания компании
	settings, err := uc.scheduleRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get schedule settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule settings: %v", ErrInternal, err)
	}

	companyHours := companyHoursForDate(settings, req.Date)

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем занимающие бронирования сотрудника на эту дату
		// с блокировкой (FOR UPDATE)
		filter := domain.WorkerBookingsFilter{
			WorkerID:      req.WorkerID,
			StartDate:     &req.Date,
			EndDate:       &req.Date,
			OnlyOccupying: true,
		}

		bookings, err := uc.bookingRepo.GetByWorkerWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.2. Пересчитываем доступные слоты уже под блокировкой
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
			uc.logger.Error("CreateBooking: slot computation failed: %v", err)
			return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}

		// 6.3. Запрошенное время должно в точности совпадать с одним из слотов
		slot, ok := findSlotByStart(slots, req.StartTime)
		if !ok {
			uc.logger.Warn("CreateBooking: slot %s is not available for worker=%d on %s",
				req.StartTime, req.WorkerID, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 6.4. Авто-подтверждение зависит от настроек сотрудника
		status := domain.StatusPending
		if worker.AutoAccept {
			status = domain.StatusConfirmed
		}

		// 6.5. Создаем бронирование с денормализацией данных услуги
		booking := &domain.Booking{
			CustomerID:   req.CustomerID,
			CustomerName: req.CustomerName,
			WorkerID:     req.WorkerID,
			ServiceID:    req.ServiceID,
			BookingDate:  req.Date,
			StartTime:    slot.StartTime,
			EndTime:      slot.EndTime,
			Status:       status,
			ServiceName:  service.Name,
			ServicePrice: service.Price,
			Notes:        req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d status=%s", result.ID, result.Status)

	// Конвертируем в response
	return &Response{
		ID:           result.ID,
		CustomerID:   result.CustomerID,
		CustomerName: result.CustomerName,
		WorkerID:     result.WorkerID,
		ServiceID:    result.ServiceID,
		BookingDate:  result.BookingDate,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		Status:       string(result.Status),
		ServiceName:  result.ServiceName,
		ServicePrice: result.ServicePrice,
		Notes:        result.Notes,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

// findSlotByStart ищет слот с указанным временем начала
func findSlotByStart(slots []scheduler.Slot, start types.TimeString) (scheduler.Slot, bool) {
	for _, slot := range slots {
		if slot.StartTime == start {
			return slot, true
		}
	}
	return scheduler.Slot{}, false
}

// companyHoursForDate возвращает недельное расписание компании с учетом
// особых часов на конкретную дату
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
