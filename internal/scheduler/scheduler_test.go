package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

// testDate 15 октября 2025 - среда
var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func allWeek(start, end string) domain.WeeklySchedule {
	day := domain.DayHours{
		Start:   types.TimeString(start),
		End:     types.TimeString(end),
		Enabled: true,
	}
	return domain.WeeklySchedule{
		Monday:    day,
		Tuesday:   day,
		Wednesday: day,
		Thursday:  day,
		Friday:    day,
		Saturday:  day,
		Sunday:    day,
	}
}

func booking(start, end string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		WorkerID:    1,
		BookingDate: testDate,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		Status:      status,
	}
}

func service(duration, buffer int) domain.ServiceProfile {
	return domain.ServiceProfile{ID: 1, Name: "Exterior wash", Duration: duration, BufferTime: buffer, Active: true}
}

func slotStrings(slots []Slot) []string {
	result := make([]string, len(slots))
	for i, s := range slots {
		result[i] = s.StartTime.String() + "-" + s.EndTime.String()
	}
	return result
}

func TestComputeAvailableSlots_FullDayNoBookings(t *testing.T) {
	slots, err := ComputeAvailableSlots(
		testDate,
		allWeek("09:00", "17:00"),
		allWeek("09:00", "17:00"),
		nil, nil,
		service(60, 0),
		nil,
	)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"09:00-10:00", "10:00-11:00", "11:00-12:00", "12:00-13:00",
		"13:00-14:00", "14:00-15:00", "15:00-16:00", "16:00-17:00",
	}, slotStrings(slots))
}

func TestComputeAvailableSlots_BufferTime(t *testing.T) {
	slots, err := ComputeAvailableSlots(
		testDate,
		allWeek("09:00", "17:00"),
		allWeek("09:00", "17:00"),
		nil, nil,
		service(60, 15),
		nil,
	)
	require.NoError(t, err)

	// Слоты по 75 минут; 16:30-17:45 выходит за 17:00 и не попадает в результат
	assert.Equal(t, []string{
		"09:00-10:15", "10:15-11:30", "11:30-12:45",
		"12:45-14:00", "14:00-15:15", "15:15-16:30",
	}, slotStrings(slots))
}

func TestComputeAvailableSlots_ExistingBookingBlocksSlot(t *testing.T) {
	slots, err := ComputeAvailableSlots(
		testDate,
		allWeek("09:00", "17:00"),
		allWeek("09:00", "17:00"),
		nil, nil,
		service(60, 0),
		[]*domain.Booking{booking("10:00", "11:00", domain.StatusConfirmed)},
	)
	require.NoError(t, err)

	assert.Len(t, slots, 7)
	assert.NotContains(t, slotStrings(slots), "10:00-11:00")
	assert.Contains(t, slotStrings(slots), "09:00-10:00")
	assert.Contains(t, slotStrings(slots), "11:00-12:00")
}

func TestComputeAvailableSlots_WindowIntersection(t *testing.T) {
	slots, err := ComputeAvailableSlots(
		testDate,
		allWeek("09:00", "17:00"),
		allWeek("11:00", "15:00"),
		nil, nil,
		service(60, 0),
		nil,
	)
	require.NoError(t, err)

	// Эффективное окно 11:00-15:00: работник не может работать вне часов компании
	assert.Equal(t, []string{
		"11:00-12:00", "12:00-13:00", "13:00-14:00", "14:00-15:00",
	}, slotStrings(slots))
}

func TestComputeAvailableSlots_WorkerHoliday(t *testing.T) {
	slots, err := ComputeAvailableSlots(
		testDate,
		allWeek("09:00", "17:00"),
		allWeek("09:00", "17:00"),
		nil,
		domain.NewHolidaySet([]string{"2025-10-15"}),
		service(60, 0),
		nil,
	)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_CompanyHoliday(t *testing.T) {
	slots, err := ComputeAvailableSlots(
		testDate,
		allWeek("09:00", "17:00"),
		allWeek("09:00", "17:00"),
		domain.NewHolidaySet([]string{"2025-10-15"}),
		nil,
		service(60, 0),
		nil,
	)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_CompanyClosedWeekday(t *testing.T) {
	companyHours := allWeek("09:00", "17:00")
	companyHours.Wednesday.Enabled = false

	slots, err := ComputeAvailableSlots(
		testDate,
		companyHours,
		allWeek("09:00", "17:00"),
		nil, nil,
		service(60, 0),
		nil,
	)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_WorkerClosedWeekday(t *testing.T) {
	workerHours := allWeek("09:00", "17:00")
	workerHours.Wednesday.Enabled = false

	slots, err := ComputeAvailableSlots(
		testDate,
		allWeek("09:00", "17:00"),
		workerHours,
		nil, nil,
		service(60, 0),
		nil,
	)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_MissingWeekdayEntryMeansClosed(t *testing.T) {
	// Зеленый день недели не задан вовсе (zero value, Enabled=false)
	var workerHours domain.WeeklySchedule

	slots, err := ComputeAvailableSlots(
		testDate,
		allWeek("09:00", "17:00"),
		workerHours,
		nil, nil,
		service(60, 0),
		nil,
	)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_InvertedWindow(t *testing.T) {
	// Часы вообще не пересекаются: компания утром, работник вечером
	slots, err := ComputeAvailableSlots(
		testDate,
		allWeek("08:00", "12:00"),
		allWeek("13:00", "18:00"),
		nil, nil,
		service(60, 0),
		nil,
	)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_WindowShorterThanSlot(t *testing.T) {
	slots, err := ComputeAvailableSlots(
		testDate,
		allWeek("09:00", "09:45"),
		allWeek("09:00", "09:45"),
		nil, nil,
		service(60, 0),
		nil,
	)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_AbuttingBookingDoesNotBlock(t *testing.T) {
	// Бронирование 10:00-11:00 граничит со слотами 09:00-10:00 и 11:00-12:00,
	// полуоткрытые интервалы не пересекаются на границе
	slots, err := ComputeAvailableSlots(
		testDate,
		allWeek("09:00", "17:00"),
		allWeek("09:00", "17:00"),
		nil, nil,
		service(60, 0),
		[]*domain.Booking{booking("10:00", "11:00", domain.StatusPending)},
	)
	require.NoError(t, err)

	assert.Contains(t, slotStrings(slots), "09:00-10:00")
	assert.Contains(t, slotStrings(slots), "11:00-12:00")
	assert.NotContains(t, slotStrings(slots), "10:00-11:00")
}

func TestComputeAvailableSlots_PartialOverlapBlocks(t *testing.T) {
	slots, err := ComputeAvailableSlots(
		testDate,
		allWeek("09:00", "17:00"),
		allWeek("09:00", "17:00"),
		nil, nil,
		service(60, 0),
		[]*domain.Booking{booking("10:30", "11:30", domain.StatusConfirmed)},
	)
	require.NoError(t, err)

	// Бронирование задевает оба слота сетки
	assert.NotContains(t, slotStrings(slots), "10:00-11:00")
	assert.NotContains(t, slotStrings(slots), "11:00-12:00")
	assert.Contains(t, slotStrings(slots), "09:00-10:00")
	assert.Contains(t, slotStrings(slots), "12:00-13:00")
}

func TestComputeAvailableSlots_NonOccupyingStatusesDoNotBlock(t *testing.T) {
	slots, err := ComputeAvailableSlots(
		testDate,
		allWeek("09:00", "17:00"),
		allWeek("09:00", "17:00"),
		nil, nil,
		service(60, 0),
		[]*domain.Booking{
			booking("10:00", "11:00", domain.StatusCancelled),
			booking("14:00", "15:00", domain.StatusCompleted),
		},
	)
	require.NoError(t, err)
	assert.Len(t, slots, 8)
}

func TestComputeAvailableSlots_RejectedSlotIsNotRepacked(t *testing.T) {
	// Бронирование 09:15-09:45 отбрасывает кандидатов 09:00-09:30 и 09:30-10:00,
	// но курсор все равно шагает по сетке: свободный промежуток 09:45-10:15
	// не предлагается более поздним стартом
	slots, err := ComputeAvailableSlots(
		testDate,
		allWeek("09:00", "12:00"),
		allWeek("09:00", "12:00"),
		nil, nil,
		service(30, 0),
		[]*domain.Booking{booking("09:15", "09:45", domain.StatusConfirmed)},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"10:00-10:30", "10:30-11:00", "11:00-11:30", "11:30-12:00",
	}, slotStrings(slots))
	assert.NotContains(t, slotStrings(slots), "09:45-10:15")
}

func TestComputeAvailableSlots_GridSpacing(t *testing.T) {
	slots, err := ComputeAvailableSlots(
		testDate,
		allWeek("09:00", "17:00"),
		allWeek("09:00", "17:00"),
		nil, nil,
		service(45, 15),
		nil,
	)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for i := 1; i < len(slots); i++ {
		prev, err := slots[i-1].StartTime.MinutesOfDay()
		require.NoError(t, err)
		curr, err := slots[i].StartTime.MinutesOfDay()
		require.NoError(t, err)
		assert.Equal(t, 60, curr-prev, "consecutive slots must be spaced by duration+buffer")
	}
}

func TestComputeAvailableSlots_SlotsStayWithinEffectiveWindow(t *testing.T) {
	slots, err := ComputeAvailableSlots(
		testDate,
		allWeek("08:30", "18:00"),
		allWeek("10:00", "16:00"),
		nil, nil,
		service(50, 10),
		nil,
	)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	first, err := slots[0].StartTime.MinutesOfDay()
	require.NoError(t, err)
	last, err := slots[len(slots)-1].EndTime.MinutesOfDay()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, first, 10*60)
	assert.LessOrEqual(t, last, 16*60)
}

func TestComputeAvailableSlots_InvalidDuration(t *testing.T) {
	_, err := ComputeAvailableSlots(
		testDate,
		allWeek("09:00", "17:00"),
		allWeek("09:00", "17:00"),
		nil, nil,
		service(0, 0),
		nil,
	)
	require.ErrorIs(t, err, ErrInvalidDuration)

	_, err = ComputeAvailableSlots(
		testDate,
		allWeek("09:00", "17:00"),
		allWeek("09:00", "17:00"),
		nil, nil,
		service(-30, 0),
		nil,
	)
	require.ErrorIs(t, err, ErrInvalidDuration)
}

func TestComputeAvailableSlots_NegativeBuffer(t *testing.T) {
	_, err := ComputeAvailableSlots(
		testDate,
		allWeek("09:00", "17:00"),
		allWeek("09:00", "17:00"),
		nil, nil,
		service(60, -5),
		nil,
	)
	require.ErrorIs(t, err, ErrInvalidBuffer)
}

func TestComputeAvailableSlots_MalformedHours(t *testing.T) {
	companyHours := allWeek("09:00", "17:00")
	companyHours.Wednesday.Start = "not-a-time"

	_, err := ComputeAvailableSlots(
		testDate,
		companyHours,
		allWeek("09:00", "17:00"),
		nil, nil,
		service(60, 0),
		nil,
	)
	require.ErrorIs(t, err, ErrMalformedHours)
}

func TestComputeAvailableSlots_MalformedBookingIsSkipped(t *testing.T) {
	slots, err := ComputeAvailableSlots(
		testDate,
		allWeek("09:00", "17:00"),
		allWeek("09:00", "17:00"),
		nil, nil,
		service(60, 0),
		[]*domain.Booking{booking("garbage", "11:00", domain.StatusConfirmed)},
	)
	require.NoError(t, err)
	assert.Len(t, slots, 8)
}

func TestComputeAvailableSlots_NoOverlapWithAnyOccupyingBooking(t *testing.T) {
	bookings := []*domain.Booking{
		booking("09:30", "10:30", domain.StatusConfirmed),
		booking("13:00", "14:00", domain.StatusPending),
		booking("16:00", "17:00", domain.StatusConfirmed),
	}

	slots, err := ComputeAvailableSlots(
		testDate,
		allWeek("09:00", "17:00"),
		allWeek("09:00", "17:00"),
		nil, nil,
		service(60, 0),
		bookings,
	)
	require.NoError(t, err)

	for _, slot := range slots {
		slotStart, err := slot.StartTime.MinutesOfDay()
		require.NoError(t, err)
		slotEnd, err := slot.EndTime.MinutesOfDay()
		require.NoError(t, err)

		for _, b := range bookings {
			bStart, err := b.StartTime.MinutesOfDay()
			require.NoError(t, err)
			bEnd, err := b.EndTime.MinutesOfDay()
			require.NoError(t, err)

			overlap := slotStart < bEnd && slotEnd > bStart
			assert.False(t, overlap, "slot %s-%s overlaps booking %s-%s",
				slot.StartTime, slot.EndTime, b.StartTime, b.EndTime)
		}
	}
}
