package employees

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OfficeBooking/internal/api/handlers"
	employeesService "github.com/m04kA/SMC-OfficeBooking/internal/service/employees"
)

const (
	msgRequiredFields = "please fill in the employee code, first name and last name"
	msgNotFound       = "employee not found"
)

type Handler struct {
	service EmployeeService
	logger  Logger
}

func NewHandler(service EmployeeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/employees
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	employees := h.service.List()
	handlers.RespondJSON(w, http.StatusOK, &EmployeeListResponse{Employees: employees, Total: len(employees)})
}

// HandleCreate POST /api/v1/employees
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input employeesService.EmployeeInput
	if err := handlers.DecodeJSON(r, &input); err != nil {
		h.logger.Warn("POST /employees - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	userID, err := h.service.Create(r.Context(), &input)
	if err != nil {
		h.respondError(w, "POST /employees", err)
		return
	}

	h.logger.Info("POST /employees - Employee created: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusCreated, &CreatedResponse{UserID: userID})
}

// HandleUpdate PUT /api/v1/employees/{userId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var input employeesService.EmployeeInput
	if err := handlers.DecodeJSON(r, &input); err != nil {
		h.logger.Warn("PUT /employees/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	if err := h.service.Update(r.Context(), userID, &input); err != nil {
		h.respondError(w, "PUT /employees/{id}", err)
		return
	}

	h.logger.Info("PUT /employees/{id} - Employee updated: user_id=%s", userID)
	handlers.RespondNoContent(w)
}

// HandleDelete DELETE /api/v1/employees/{userId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if err := h.service.Delete(r.Context(), userID); err != nil {
		h.respondError(w, "DELETE /employees/{id}", err)
		return
	}

	h.logger.Info("DELETE /employees/{id} - Employee deleted: user_id=%s", userID)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, employeesService.ErrRequiredFields):
		handlers.RespondBadRequest(w, msgRequiredFields)
	case errors.Is(err, employeesService.ErrEmployeeNotFound):
		h.logger.Warn("%s - Employee not found", op)
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
