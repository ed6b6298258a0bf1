package staffservice

import (
	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

// Worker модель сотрудника из StaffService
type Worker struct {
	ID               int64               `json:"id"`
	Name             string              `json:"name"`
	Status           string              `json:"status"` // active, inactive, on_leave
	AutoAccept       bool                `json:"auto_accept"`
	AssignedServices []int64             `json:"assigned_services"`
	WorkingHours     map[string]DayHours `json:"daily_working_hours"`
	OffDates         []string            `json:"off_dates"` // даты в формате YYYY-MM-DD
}

// DayHours рабочие часы сотрудника на один день недели
type DayHours struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Enabled bool   `json:"enabled"`
}

// ErrorResponse модель ошибки от StaffService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IsActive проверяет, что сотрудник принимает записи
func (w *Worker) IsActive() bool {
	return w.Status == "active"
}

// HasService проверяет, что услуга назначена сотруднику
func (w *Worker) HasService(serviceID int64) bool {
	for _, id := range w.AssignedServices {
		if id == serviceID {
			return true
		}
	}
	return false
}

// WeeklySchedule преобразует рабочие часы сотрудника в доменное недельное расписание
// День, отсутствующий в ответе сервиса, считается нерабочим
func (w *Worker) WeeklySchedule() domain.WeeklySchedule {
	var schedule domain.WeeklySchedule
	for _, weekday := range domain.Weekdays {
		day, ok := w.WorkingHours[domain.WeekdayName(weekday)]
		if !ok {
			continue
		}
		schedule.SetForWeekday(weekday, domain.DayHours{
			Start:   types.TimeString(day.Start),
			End:     types.TimeString(day.End),
			Enabled: day.Enabled,
		})
	}
	return schedule
}

// Holidays преобразует выходные даты сотрудника в доменный набор
func (w *Worker) Holidays() domain.HolidaySet {
	return domain.NewHolidaySet(w.OffDates)
}
