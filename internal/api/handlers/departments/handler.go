package departments

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OfficeBooking/internal/api/handlers"
	departmentsService "github.com/m04kA/SMC-OfficeBooking/internal/service/departments"
)

const (
	msgNameRequired     = "please enter a department name"
	msgInvalidStrategy  = "unknown booking strategy"
	msgCapacityRequired = "please enter a seat capacity for a capacity-limited department"
	msgInvalidCapacity  = "seat capacity must be a whole number greater than 0"
	msgNotFound         = "department not found"
)

type Handler struct {
	service DepartmentService
	logger  Logger
}

func NewHandler(service DepartmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/departments
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	departments := h.service.List()
	handlers.RespondJSON(w, http.StatusOK, &DepartmentListResponse{Departments: departments, Total: len(departments)})
}

// HandleCreate POST /api/v1/departments
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input departmentsService.DepartmentInput
	if err := handlers.DecodeJSON(r, &input); err != nil {
		h.logger.Warn("POST /departments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	id, err := h.service.Create(r.Context(), &input)
	if err != nil {
		h.respondError(w, "POST /departments", err)
		return
	}

	h.logger.Info("POST /departments - Department created: id=%s", id)
	handlers.RespondJSON(w, http.StatusCreated, &CreatedResponse{ID: id})
}

// HandleUpdate PUT /api/v1/departments/{departmentId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["departmentId"]

	var input departmentsService.DepartmentInput
	if err := handlers.DecodeJSON(r, &input); err != nil {
		h.logger.Warn("PUT /departments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	if err := h.service.Update(r.Context(), id, &input); err != nil {
		h.respondError(w, "PUT /departments/{id}", err)
		return
	}

	h.logger.Info("PUT /departments/{id} - Department updated: id=%s", id)
	handlers.RespondNoContent(w)
}

// HandleDelete DELETE /api/v1/departments/{departmentId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["departmentId"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /departments/{id}", err)
		return
	}

	h.logger.Info("DELETE /departments/{id} - Department deleted: id=%s", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, departmentsService.ErrNameRequired):
		handlers.RespondBadRequest(w, msgNameRequired)
	case errors.Is(err, departmentsService.ErrInvalidStrategy):
		handlers.RespondBadRequest(w, msgInvalidStrategy)
	case errors.Is(err, departmentsService.ErrCapacityRequired):
		handlers.RespondBadRequest(w, msgCapacityRequired)
	case errors.Is(err, departmentsService.ErrInvalidCapacity):
		handlers.RespondBadRequest(w, msgInvalidCapacity)
	case errors.Is(err, departmentsService.ErrDepartmentNotFound):
		h.logger.Warn("%s - Department not found", op)
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
