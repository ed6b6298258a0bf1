package catalogservice

import (
	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// Service модель услуги из CatalogService
type Service struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Currency   string  `json:"currency"`
	Duration   int     `json:"duration"`    // минуты
	BufferTime int     `json:"buffer_time"` // минуты на уборку после услуги
	GraceTime  int     `json:"grace_time"`  // минуты допустимого опоздания клиента
	Active     bool    `json:"active"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Profile преобразует услугу в доменный профиль для расчета слотов
func (s *Service) Profile() domain.ServiceProfile {
	return domain.ServiceProfile{
		ID:         s.ID,
		Name:       s.Name,
		Price:      s.Price,
		Duration:   s.Duration,
		BufferTime: s.BufferTime,
		GraceTime:  s.GraceTime,
		Active:     s.Active,
	}
}
