package get_worker_bookings

import (
	"net/url"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос сервиса из path и query параметров
// Поддерживаемые query параметры: startDate, endDate (YYYY-MM-DD), status
func ToServiceRequest(workerID, userID int64, query url.Values) (*models.GetWorkerBookingsRequest, error) {
	req := &models.GetWorkerBookingsRequest{
		UserID:   userID,
		WorkerID: workerID,
	}

	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	return req, nil
}
