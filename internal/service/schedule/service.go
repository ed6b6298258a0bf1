package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SchedulerService/internal/service/schedule/models"
	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

// maxOffDateRangeDays ограничение на длину диапазона выходных дат
const maxOffDateRangeDays = 366

// Service сервис для работы с настройками расписания компании
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Get возвращает настройки расписания компании
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching schedule settings")

	settings, err := s.scheduleRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrSettingsNotFound) {
			s.logger.Warn("Get: schedule settings not found")
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(settings), nil
}

// Update обновляет настройки расписания: недельные часы и/или валюту
// Обновление выполняется в одной транзакции
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating schedule settings")

	if req.WorkingHours == nil && req.Currency == nil {
		s.logger.Warn("Update: empty update request")
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	var hours domain.WeeklySchedule
	if req.WorkingHours != nil {
		converted, err := models.ToDomainSchedule(req.WorkingHours)
		if err != nil {
			s.logger.Warn("Update: invalid working hours: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		hours = converted
	}

	if req.Currency != nil && *req.Currency == "" {
		s.logger.Warn("Update: empty currency")
		return nil, fmt.Errorf("%w: currency must not be empty", ErrInvalidInput)
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if req.WorkingHours != nil {
			if err := s.scheduleRepo.UpdateWorkingHours(txCtx, hours); err != nil {
				return fmt.Errorf("%w: Update - working hours: %v", ErrInternal, err)
			}
		}
		if req.Currency != nil {
			if err := s.scheduleRepo.UpdateCurrency(txCtx, *req.Currency); err != nil {
				if errors.Is(err, scheduleRepo.ErrSettingsNotFound) {
					return ErrSettingsNotFound
				}
				return fmt.Errorf("%w: Update - currency: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Update: transaction failed: %v", err)
		return nil, err
	}

	s.logger.Info("Update: schedule settings updated")
	return s.Get(ctx)
}

// AddOffDates добавляет выходные даты компании
// Диапазон [startDate, endDate] разворачивается в отдельные даты,
// все вставки выполняются в одной транзакции
func (s *Service) AddOffDates(ctx context.Context, req *models.AddOffDatesRequest) error {
	s.logger.Info("AddOffDates: adding off dates from %s", req.StartDate)

	dates, err := expandDateRange(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("AddOffDates: invalid date range: %v", err)
		return err
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, date := range dates {
			if err := s.scheduleRepo.AddOffDate(txCtx, date); err != nil {
				return fmt.Errorf("%w: AddOffDates - date %s: %v", ErrInternal, date, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("AddOffDates: transaction failed: %v", err)
		return err
	}

	s.logger.Info("AddOffDates: added %d off dates", len(dates))
	return nil
}

// RemoveOffDate удаляет выходную дату компании
func (s *Service) RemoveOffDate(ctx context.Context, date string) error {
	s.logger.Info("RemoveOffDate: removing off date %s", date)

	if err := validateDate(date); err != nil {
		s.logger.Warn("RemoveOffDate: invalid date %s: %v", date, err)
		return err
	}

	if err := s.scheduleRepo.RemoveOffDate(ctx, date); err != nil {
		if errors.Is(err, scheduleRepo.ErrOffDateNotFound) {
			s.logger.Warn("RemoveOffDate: off date %s not found", date)
			return ErrOffDateNotFound
		}
		s.logger.Error("RemoveOffDate: repository error: %v", err)
		return fmt.Errorf("%w: RemoveOffDate - repository error: %v", ErrInternal, err)
	}

	return nil
}

// AddSpecialHours добавляет особые рабочие часы на дату
// Повторное добавление на ту же дату перезаписывает часы
func (s *Service) AddSpecialHours(ctx context.Context, req *models.AddSpecialHoursRequest) error {
	s.logger.Info("AddSpecialHours: adding special hours for %s", req.Date)

	if err := validateDate(req.Date); err != nil {
		s.logger.Warn("AddSpecialHours: invalid date %s: %v", req.Date, err)
		return err
	}

	start, err := types.NewTimeStringFromString(req.Start)
	if err != nil {
		s.logger.Warn("AddSpecialHours: invalid start time %s: %v", req.Start, err)
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	end, err := types.NewTimeStringFromString(req.End)
	if err != nil {
		s.logger.Warn("AddSpecialHours: invalid end time %s: %v", req.End, err)
		return fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}

	if !start.IsBefore(end) {
		s.logger.Warn("AddSpecialHours: start %s is not before end %s", req.Start, req.End)
		return fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}

	special := domain.SpecialHours{Date: req.Date, Start: start, End: end}
	if err := s.scheduleRepo.AddSpecialHours(ctx, special); err != nil {
		s.logger.Error("AddSpecialHours: repository error: %v", err)
		return fmt.Errorf("%w: AddSpecialHours - repository error: %v", ErrInternal, err)
	}

	return nil
}

// RemoveSpecialHours удаляет особые рабочие часы на дату
func (s *Service) RemoveSpecialHours(ctx context.Context, date string) error {
	s.logger.Info("RemoveSpecialHours: removing special hours for %s", date)

	if err := validateDate(date); err != nil {
		s.logger.Warn("RemoveSpecialHours: invalid date %s: %v", date, err)
		return err
	}

	if err := s.scheduleRepo.RemoveSpecialHours(ctx, date); err != nil {
		if errors.Is(err, scheduleRepo.ErrSpecialHoursNotFound) {
			s.logger.Warn("RemoveSpecialHours: special hours for %s not found", date)
			return ErrSpecialHoursNotFound
		}
		s.logger.Error("RemoveSpecialHours: repository error: %v", err)
		return fmt.Errorf("%w: RemoveSpecialHours - repository error: %v", ErrInternal, err)
	}

	return nil
}

// validateDate проверяет формат даты YYYY-MM-DD
func validateDate(date string) error {
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}
	return nil
}

// expandDateRange разворачивает диапазон [start, end] в список отдельных дат
// Если end не указан, возвращается единственная дата start
func expandDateRange(startDate string, endDate *string) ([]string, error) {
	start, err := time.Parse(domain.DateFormat, startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	if endDate == nil {
		return []string{startDate}, nil
	}

	end, err := time.Parse(domain.DateFormat, *endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date must not be before start date", ErrInvalidInput)
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days > maxOffDateRangeDays {
		return nil, fmt.Errorf("%w: date range exceeds %d days", ErrInvalidInput, maxOffDateRangeDays)
	}

	dates := make([]string, 0, days)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(domain.DateFormat))
	}

	return dates, nil
}
