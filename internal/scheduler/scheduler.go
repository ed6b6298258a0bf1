// Package scheduler вычисляет доступные слоты записи на один день.
//
// Пакет чистый: никакого I/O и состояния, все входные данные передаются
// аргументами, вызовы независимы и безопасны для параллельного выполнения.
// Вся арифметика времени выполняется в минутах с начала суток, строки HH:MM
// конвертируются только на границе пакета.
package scheduler

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

// Slot один доступный для записи интервал [StartTime, EndTime)
// Интервал покрывает длительность услуги вместе с буферным временем
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// interval полуоткрытый интервал в минутах с начала суток
type interval struct {
	start int
	end   int
}

// overlaps проверяет реальное пересечение двух полуоткрытых интервалов.
// Граничащие интервалы (end одного == start другого) не пересекаются.
func (i interval) overlaps(other interval) bool {
	return i.start < other.end && i.end > other.start
}

// ComputeAvailableSlots вычисляет упорядоченный список доступных слотов
// на указанную дату для пары (работник, услуга).
//
// Правила:
//   - выходной день компании или работника (offDates) полностью блокирует дату;
//   - день недели должен быть включен и у компании, и у работника;
//   - эффективное окно = пересечение часов компании и работника
//     (максимум начал, минимум концов); пустое или вывернутое окно даёт
//     пустой результат;
//   - слоты идут фиксированной сеткой с шагом duration+bufferTime от начала
//     окна; слот, пересекающийся с занимающим бронированием, отбрасывается,
//     но курсор всё равно шагает на конец отброшенного кандидата - освободившийся
//     промежуток не переупаковывается более поздним стартом;
//   - бронирования со статусами completed/cancelled слот не занимают.
//
// Отсутствие доступности - это нормальный пустой результат без ошибки.
// Ошибка возвращается только для структурно некорректных входных данных
// (неположительная длительность, отрицательный буфер, битый формат HH:MM),
// причем до начала обхода сетки - частично вычисленных результатов не бывает.
func ComputeAvailableSlots(
	date time.Time,
	companyHours domain.WeeklySchedule,
	workerHours domain.WeeklySchedule,
	companyHolidays domain.HolidaySet,
	workerHolidays domain.HolidaySet,
	service domain.ServiceProfile,
	bookings []*domain.Booking,
) ([]Slot, error) {
	if service.Duration <= 0 {
		return nil, fmt.Errorf("%w: got %d minutes", ErrInvalidDuration, service.Duration)
	}
	if service.BufferTime < 0 {
		return nil, fmt.Errorf("%w: got %d minutes", ErrInvalidBuffer, service.BufferTime)
	}

	// Праздник любой из сторон полностью блокирует дату
	if companyHolidays.Contains(date) || workerHolidays.Contains(date) {
		return []Slot{}, nil
	}

	weekday := date.Weekday()
	companyDay := companyHours.ForWeekday(weekday)
	workerDay := workerHours.ForWeekday(weekday)

	// Выключенный (или не заданный) день недели у любой из сторон означает
	// "закрыто", а не ошибку конфигурации
	if !companyDay.Enabled || !workerDay.Enabled {
		return []Slot{}, nil
	}

	window, err := effectiveWindow(companyDay, workerDay)
	if err != nil {
		return nil, err
	}
	if window.start >= window.end {
		return []Slot{}, nil
	}

	occupied := occupiedIntervals(bookings)
	totalMinutes := service.TotalSlotMinutes()

	slots := make([]Slot, 0)
	for cursor := window.start; cursor+totalMinutes <= window.end; cursor += totalMinutes {
		candidate := interval{start: cursor, end: cursor + totalMinutes}

		if overlapsAny(candidate, occupied) {
			continue
		}

		startTime, err := types.NewTimeStringFromMinutes(candidate.start)
		if err != nil {
			return nil, fmt.Errorf("%w: slot start: %v", ErrMalformedHours, err)
		}
		endTime, err := types.NewTimeStringFromMinutes(candidate.end)
		if err != nil {
			return nil, fmt.Errorf("%w: slot end: %v", ErrMalformedHours, err)
		}

		slots = append(slots, Slot{StartTime: startTime, EndTime: endTime})
	}

	return slots, nil
}

// effectiveWindow вычисляет пересечение рабочих часов компании и работника:
// работник не может работать вне часов компании, и наоборот
func effectiveWindow(companyDay, workerDay domain.DayHours) (interval, error) {
	companyStart, err := companyDay.Start.MinutesOfDay()
	if err != nil {
		return interval{}, fmt.Errorf("%w: company start: %v", ErrMalformedHours, err)
	}
	companyEnd, err := companyDay.End.MinutesOfDay()
	if err != nil {
		return interval{}, fmt.Errorf("%w: company end: %v", ErrMalformedHours, err)
	}
	workerStart, err := workerDay.Start.MinutesOfDay()
	if err != nil {
		return interval{}, fmt.Errorf("%w: worker start: %v", ErrMalformedHours, err)
	}
	workerEnd, err := workerDay.End.MinutesOfDay()
	if err != nil {
		return interval{}, fmt.Errorf("%w: worker end: %v", ErrMalformedHours, err)
	}

	return interval{
		start: maxInt(companyStart, workerStart),
		end:   minInt(companyEnd, workerEnd),
	}, nil
}

// occupiedIntervals конвертирует занимающие бронирования в минутные интервалы.
// Бронирования с нечитаемым временем пропускаются - они не могут блокировать слот.
func occupiedIntervals(bookings []*domain.Booking) []interval {
	intervals := make([]interval, 0, len(bookings))
	for _, booking := range bookings {
		if !booking.IsOccupying() {
			continue
		}

		start, err := booking.StartTime.MinutesOfDay()
		if err != nil {
			continue
		}
		end, err := booking.EndTime.MinutesOfDay()
		if err != nil {
			continue
		}

		intervals = append(intervals, interval{start: start, end: end})
	}
	return intervals
}

func overlapsAny(candidate interval, occupied []interval) bool {
	for _, busy := range occupied {
		if candidate.overlaps(busy) {
			return true
		}
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
