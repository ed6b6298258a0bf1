package domain

// Default configuration values
const (
	DefaultCurrency = "USD"
)

// Business validation constants
const (
	MinServiceDurationMinutes   = 5
	MaxServiceDurationMinutes   = 480 // 8 hours
	MinBufferTimeMinutes        = 0
	MaxBufferTimeMinutes        = 240 // 4 hours
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses список статусов, при которых бронирование занимает слот
// Используется для фильтрации при вычислении доступных слотов
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// AllStatuses список всех допустимых статусов бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// IsValidStatus проверяет, что статус входит в список допустимых
func IsValidStatus(status BookingStatus) bool {
	for _, s := range AllStatuses {
		if s == status {
			return true
		}
	}
	return false
}
