package update_booking_status

import (
	"github.com/m04kA/SMC-SchedulerService/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // pending, confirmed, completed, cancelled
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
// userID приходит из контекста аутентификации
func (r *UpdateStatusRequest) ToServiceRequest(userID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		UserID: userID,
		Status: r.Status,
	}
}
