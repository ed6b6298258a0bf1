package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

var (
	// ErrInvalidWeekday возвращается при неизвестном имени дня недели
	ErrInvalidWeekday = errors.New("invalid weekday name")

	// ErrInvalidTimeRange возвращается, когда начало не раньше конца
	ErrInvalidTimeRange = errors.New("start time must be before end time")
)

// Request модели

// DayHoursDTO рабочие часы на один день недели
type DayHoursDTO struct {
	Start   string `json:"start"` // "09:00"
	End     string `json:"end"`   // "18:00"
	Enabled bool   `json:"enabled"`
}

// UpdateSettingsRequest запрос на обновление настроек расписания
// Обновляются только переданные разделы
type UpdateSettingsRequest struct {
	WorkingHours map[string]DayHoursDTO `json:"workingHours,omitempty"` // ключ - день недели ("monday")
	Currency     *string                `json:"currency,omitempty"`
}

// AddOffDatesRequest запрос на добавление выходных дат
// EndDate опционален: при отсутствии добавляется одна дата StartDate
type AddOffDatesRequest struct {
	StartDate string  `json:"startDate"` // "2026-09-15"
	EndDate   *string `json:"endDate,omitempty"`
}

// AddSpecialHoursRequest запрос на добавление особых часов на дату
type AddSpecialHoursRequest struct {
	Date  string `json:"date"`  // "2026-09-15"
	Start string `json:"start"` // "10:00"
	End   string `json:"end"`   // "14:00"
}

// ToDomainSchedule конвертирует часы запроса в доменное недельное расписание
// Дни, отсутствующие в запросе, считаются нерабочими
func ToDomainSchedule(hours map[string]DayHoursDTO) (domain.WeeklySchedule, error) {
	var schedule domain.WeeklySchedule

	for name, day := range hours {
		weekday, ok := domain.ParseWeekday(name)
		if !ok {
			return schedule, ErrInvalidWeekday
		}

		if !day.Enabled {
			schedule.SetForWeekday(weekday, domain.DayHours{Enabled: false})
			continue
		}

		start, err := types.NewTimeStringFromString(day.Start)
		if err != nil {
			return schedule, err
		}
		end, err := types.NewTimeStringFromString(day.End)
		if err != nil {
			return schedule, err
		}
		if !start.IsBefore(end) {
			return schedule, ErrInvalidTimeRange
		}

		schedule.SetForWeekday(weekday, domain.DayHours{Start: start, End: end, Enabled: true})
	}

	return schedule, nil
}

// Response модели

// SettingsResponse ответ с настройками расписания компании
type SettingsResponse struct {
	Currency     string                 `json:"currency"`
	WorkingHours map[string]DayHoursDTO `json:"workingHours"`
	OffDates     []string               `json:"offDates"`
	SpecialHours []SpecialHoursDTO      `json:"specialHours"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

// SpecialHoursDTO особые часы на конкретную дату
type SpecialHoursDTO struct {
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.ScheduleSettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	hours := make(map[string]DayHoursDTO, len(domain.Weekdays))
	for _, weekday := range domain.Weekdays {
		day := s.WorkingHours.ForWeekday(weekday)
		hours[domain.WeekdayName(weekday)] = DayHoursDTO{
			Start:   day.Start.String(),
			End:     day.End.String(),
			Enabled: day.Enabled,
		}
	}

	specials := make([]SpecialHoursDTO, len(s.SpecialHours))
	for i, sh := range s.SpecialHours {
		specials[i] = SpecialHoursDTO{
			Date:  sh.Date,
			Start: sh.Start.String(),
			End:   sh.End.String(),
		}
	}

	offDates := s.OffDates
	if offDates == nil {
		offDates = []string{}
	}

	return &SettingsResponse{
		Currency:     s.Currency,
		WorkingHours: hours,
		OffDates:     offDates,
		SpecialHours: specials,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
