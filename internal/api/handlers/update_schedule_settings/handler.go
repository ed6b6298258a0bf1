package update_schedule_settings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/service/schedule"
	"github.com/m04kA/SMC-SchedulerService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidInput         = "некорректные входные данные"
	msgSettingsNotFound     = "настройки расписания не найдены"
	msgOffDateNotFound      = "выходная дата не найдена"
	msgSpecialHoursNotFound = "особые часы не найдены"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleUpdate PUT /api/v1/schedule-settings
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule-settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	settings, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrSettingsNotFound):
			h.logger.Warn("PUT /schedule-settings - Settings not found")
			handlers.RespondNotFound(w, msgSettingsNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedule-settings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /schedule-settings - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule-settings - Settings updated successfully")
	handlers.RespondJSON(w, http.StatusOK, settings)
}

// HandleAddOffDates POST /api/v1/schedule-settings/off-dates
func (h *Handler) HandleAddOffDates(w http.ResponseWriter, r *http.Request) {
	var req models.AddOffDatesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule-settings/off-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.AddOffDates(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /schedule-settings/off-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /schedule-settings/off-dates - Failed to add off dates: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule-settings/off-dates - Off dates added successfully")
	handlers.RespondJSON(w, http.StatusCreated, nil)
}

// HandleRemoveOffDate DELETE /api/v1/schedule-settings/off-dates/{date}
func (h *Handler) HandleRemoveOffDate(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	if err := h.service.RemoveOffDate(r.Context(), date); err != nil {
		switch {
		case errors.Is(err, schedule.ErrOffDateNotFound):
			h.logger.Warn("DELETE /schedule-settings/off-dates/{date} - Off date not found: date=%s", date)
			handlers.RespondNotFound(w, msgOffDateNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("DELETE /schedule-settings/off-dates/{date} - Invalid date: %s", date)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("DELETE /schedule-settings/off-dates/{date} - Failed to remove off date: date=%s, error=%v",
				date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedule-settings/off-dates/{date} - Off date removed successfully: date=%s", date)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

// HandleAddSpecialHours POST /api/v1/schedule-settings/special-hours
func (h *Handler) HandleAddSpecialHours(w http.ResponseWriter, r *http.Request) {
	var req models.AddSpecialHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule-settings/special-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.AddSpecialHours(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /schedule-settings/special-hours - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /schedule-settings/special-hours - Failed to add special hours: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule-settings/special-hours - Special hours added successfully: date=%s", req.Date)
	handlers.RespondJSON(w, http.StatusCreated, nil)
}

// HandleRemoveSpecialHours DELETE /api/v1/schedule-settings/special-hours/{date}
func (h *Handler) HandleRemoveSpecialHours(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	if err := h.service.RemoveSpecialHours(r.Context(), date); err != nil {
		switch {
		case errors.Is(err, schedule.ErrSpecialHoursNotFound):
			h.logger.Warn("DELETE /schedule-settings/special-hours/{date} - Special hours not found: date=%s", date)
			handlers.RespondNotFound(w, msgSpecialHoursNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("DELETE /schedule-settings/special-hours/{date} - Invalid date: %s", date)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("DELETE /schedule-settings/special-hours/{date} - Failed to remove special hours: date=%s, error=%v",
				date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedule-settings/special-hours/{date} - Special hours removed successfully: date=%s", date)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
