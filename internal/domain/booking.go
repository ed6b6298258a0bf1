package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a service appointment in the system
type Booking struct {
	ID           int64
	CustomerID   int64
	CustomerName string
	WorkerID     int64
	ServiceID    int64
	BookingDate  time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	Status       BookingStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOccupying returns true if the booking blocks its time range.
// Completed and cancelled bookings free the slot.
func (b *Booking) IsOccupying() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeUpdated returns true if the booking can be updated
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// WorkerBookingsFilter фильтр для получения бронирований работника
type WorkerBookingsFilter struct {
	WorkerID      int64          // Обязательный параметр
	StartDate     *time.Time     // Начало периода (опционально, если nil - без ограничения)
	EndDate       *time.Time     // Конец периода (опционально, если nil - без ограничения)
	Status        *BookingStatus // Фильтр по статусу (опционально)
	OnlyOccupying bool           // Только занимающие слот бронирования (pending/confirmed)
}
