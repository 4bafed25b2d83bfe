package holidays

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OfficeBooking/internal/api/handlers"
	holidaysService "github.com/m04kA/SMC-OfficeBooking/internal/service/holidays"
)

const (
	msgNameRequired = "please enter a holiday name"
	msgNotFound     = "holiday not found"
)

type Handler struct {
	service HolidayService
	logger  Logger
}

func NewHandler(service HolidayService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/holidays
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	rows := h.service.List(r.Context())
	handlers.RespondJSON(w, http.StatusOK, &HolidayListResponse{Holidays: rows, Total: len(rows)})
}

// HandleCreate POST /api/v1/holidays
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input holidaysService.HolidayInput
	if err := handlers.DecodeJSON(r, &input); err != nil {
		h.logger.Warn("POST /holidays - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	id, err := h.service.Create(r.Context(), &input)
	if err != nil {
		h.respondError(w, "POST /holidays", err)
		return
	}

	h.logger.Info("POST /holidays - Holiday created: id=%s", id)
	handlers.RespondJSON(w, http.StatusCreated, &CreatedResponse{ID: id})
}

// HandleUpdate PUT /api/v1/holidays/{holidayId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["holidayId"]

	var input holidaysService.HolidayInput
	if err := handlers.DecodeJSON(r, &input); err != nil {
		h.logger.Warn("PUT /holidays/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	if err := h.service.Update(r.Context(), id, &input); err != nil {
		h.respondError(w, "PUT /holidays/{id}", err)
		return
	}

	h.logger.Info("PUT /holidays/{id} - Holiday updated: id=%s", id)
	handlers.RespondNoContent(w)
}

// HandleDelete DELETE /api/v1/holidays/{holidayId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["holidayId"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /holidays/{id}", err)
		return
	}

	h.logger.Info("DELETE /holidays/{id} - Holiday deleted: id=%s", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, holidaysService.ErrNameRequired):
		h.logger.Warn("%s - Validation failed: %v", op, err)
		handlers.RespondBadRequest(w, msgNameRequired)

	case errors.Is(err, holidaysService.ErrHolidayNotFound):
		h.logger.Warn("%s - Holiday not found", op)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		if handlers.RespondDataError(w, err) {
			h.logger.Warn("%s - Rejected: %v", op, err)
			return
		}
		h.logger.Error("%s - Failed: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
