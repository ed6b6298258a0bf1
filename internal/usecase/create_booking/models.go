package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID   int64            // ID клиента
	CustomerName string           // Имя клиента
	WorkerID     int64            // ID сотрудника
	ServiceID    int64            // ID услуги
	Date         time.Time        // Дата бронирования (без времени)
	StartTime    types.TimeString // Время начала слота (например, "10:00")
	Notes        *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64            // ID созданного бронирования
	CustomerID   int64            // ID клиента
	CustomerName string           // Имя клиента
	WorkerID     int64            // ID сотрудника
	ServiceID    int64            // ID услуги
	BookingDate  time.Time        // Дата бронирования
	StartTime    types.TimeString // Время начала
	EndTime      types.TimeString // Время окончания (включая буфер)
	Status       string           // Статус: confirmed при авто-подтверждении, иначе pending

	// Денормализованные данные услуги
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
