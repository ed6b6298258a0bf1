package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

// DayHours working hours for a single weekday.
// When Enabled is false the entity does not operate that day and
// Start/End are ignored.
type DayHours struct {
	Start   types.TimeString
	End     types.TimeString
	Enabled bool
}

// WeeklySchedule working hours per weekday.
// The same type is used for company-wide hours and for individual worker
// hours, so both sides are guaranteed to carry the same structure.
type WeeklySchedule struct {
	Monday    DayHours
	Tuesday   DayHours
	Wednesday DayHours
	Thursday  DayHours
	Friday    DayHours
	Saturday  DayHours
	Sunday    DayHours
}

// ForWeekday возвращает рабочие часы на указанный день недели
func (s WeeklySchedule) ForWeekday(weekday time.Weekday) DayHours {
	switch weekday {
	case time.Monday:
		return s.Monday
	case time.Tuesday:
		return s.Tuesday
	case time.Wednesday:
		return s.Wednesday
	case time.Thursday:
		return s.Thursday
	case time.Friday:
		return s.Friday
	case time.Saturday:
		return s.Saturday
	case time.Sunday:
		return s.Sunday
	default:
		return DayHours{Enabled: false}
	}
}

// SetForWeekday устанавливает рабочие часы на указанный день недели
func (s *WeeklySchedule) SetForWeekday(weekday time.Weekday, hours DayHours) {
	switch weekday {
	case time.Monday:
		s.Monday = hours
	case time.Tuesday:
		s.Tuesday = hours
	case time.Wednesday:
		s.Wednesday = hours
	case time.Thursday:
		s.Thursday = hours
	case time.Friday:
		s.Friday = hours
	case time.Saturday:
		s.Saturday = hours
	case time.Sunday:
		s.Sunday = hours
	}
}

// Weekdays порядок дней недели, используемый при хранении расписания
var Weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// WeekdayName возвращает имя дня недели в нижнем регистре ("monday")
func WeekdayName(weekday time.Weekday) string {
	switch weekday {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	case time.Sunday:
		return "sunday"
	default:
		return ""
	}
}

// ParseWeekday разбирает имя дня недели в нижнем регистре
func ParseWeekday(name string) (time.Weekday, bool) {
	for _, weekday := range Weekdays {
		if WeekdayName(weekday) == name {
			return weekday, true
		}
	}
	return 0, false
}

// HolidaySet набор календарных дат (ISO YYYY-MM-DD), в которые
// компания или работник не работает независимо от дня недели
type HolidaySet map[string]struct{}

// NewHolidaySet создает набор дат из списка строк
func NewHolidaySet(dates []string) HolidaySet {
	set := make(HolidaySet, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

// Contains возвращает true, если дата входит в набор
func (h HolidaySet) Contains(date time.Time) bool {
	if h == nil {
		return false
	}
	_, ok := h[date.Format(DateFormat)]
	return ok
}

// Dates возвращает отсортированный по вставке список дат набора
func (h HolidaySet) Dates() []string {
	dates := make([]string, 0, len(h))
	for d := range h {
		dates = append(dates, d)
	}
	return dates
}

// SpecialHours рабочие часы на конкретную дату, перекрывающие
// недельное расписание компании (например, сокращенный предпраздничный день)
type SpecialHours struct {
	Date  string // ISO YYYY-MM-DD
	Start types.TimeString
	End   types.TimeString
}

// ScheduleSettings настройки расписания компании
type ScheduleSettings struct {
	ID           int64
	Currency     string
	WorkingHours WeeklySchedule
	OffDates     []string
	SpecialHours []SpecialHours
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SpecialHoursFor возвращает особые часы на дату, если они заданы
func (s *ScheduleSettings) SpecialHoursFor(date time.Time) (SpecialHours, bool) {
	key := date.Format(DateFormat)
	for _, sh := range s.SpecialHours {
		if sh.Date == key {
			return sh, true
		}
	}
	return SpecialHours{}, false
}
