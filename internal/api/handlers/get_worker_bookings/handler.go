package get_worker_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulerService/internal/service/bookings"
)

const (
	msgInvalidWorkerID = "некорректный ID сотрудника"
	msgInvalidFilter   = "некорректные параметры фильтрации"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgForbidden       = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/workers/{workerId}/bookings
// Query params: startDate, endDate (YYYY-MM-DD), status (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем workerId из URL
	vars := mux.Vars(r)
	workerIDStr := vars["workerId"]

	workerID, err := strconv.ParseInt(workerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /workers/{id}/bookings - Invalid worker ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkerID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /workers/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Собираем запрос с фильтрами из query параметров
	req, err := ToServiceRequest(workerID, userID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /workers/{id}/bookings - Invalid filter: worker_id=%d, error=%v", workerID, err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.GetWorkerBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /workers/{id}/bookings - Access denied: worker_id=%d, user_id=%d",
				workerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /workers/{id}/bookings - Invalid filter: worker_id=%d", workerID)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /workers/{id}/bookings - Failed to get bookings: worker_id=%d, error=%v",
				workerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /workers/{id}/bookings - Bookings retrieved successfully: worker_id=%d, count=%d",
		workerID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
