package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
)

const (
	msgTransport = "data service unavailable"

	// MsgInvalidRequestBody сообщение о некорректном теле запроса
	MsgInvalidRequestBody = "invalid request body"

	// MsgBookingNotUpdated сообщение об обновлении, не затронувшем ни одной строки
	MsgBookingNotUpdated = "booking not found or not permitted (check row-level access on bookings)"
)

// validationMessages сообщения для ошибок проверки черновика и форм
var validationMessages = []struct {
	err     error
	message string
}{
	{domain.ErrEmployeeRequired, "please select an employee"},
	{domain.ErrDepartmentRequired, "please select a department"},
	{domain.ErrSeatRequired, "please select a seat for a seat-assigned department"},
	{domain.ErrInvalidDateRange, "please select a valid start and end date"},
	{domain.ErrEndBeforeStart, "end date must not be earlier than start date"},
	{domain.ErrEmptyDateSet, "please add at least one date to book"},
	{domain.ErrDateRequired, "please select a date first"},
	{domain.ErrInvalidDate, "invalid date"},
	{domain.ErrDuplicateDate, "this date is already selected"},
	{domain.ErrUnknownOffice, "unknown office"},
	{domain.ErrUnknownDepartment, "unknown department"},
	{domain.ErrUnknownEmployee, "unknown employee"},
	{domain.ErrDepartmentMismatch, "the selected department does not match the employee's department"},
	{domain.ErrSeatNotInDepartment, "seat does not belong to the selected department"},
	{domain.ErrUnknownPurpose, "unknown purpose"},
	{domain.ErrInvalidMode, "unknown booking mode"},
	{domain.ErrUnknownAction, "unknown draft action"},
}

// ValidationMessage возвращает сообщение для ошибки проверки домена
func ValidationMessage(err error) (string, bool) {
	for _, v := range validationMessages {
		if errors.Is(err, v.err) {
			return v.message, true
		}
	}
	return "", false
}

// RespondDataError отвечает на ошибки, общие для всех операций записи и чтения:
// не настроен источник (503), отказ источника (422), ошибка транспорта (502),
// ошибка проверки домена (400). Возвращает false, если ошибка не распознана.
func RespondDataError(w http.ResponseWriter, err error) bool {
	if errors.Is(err, gateway.ErrNotConfigured) {
		RespondJSON(w, http.StatusServiceUnavailable, ErrorResponse{
			Error: "data source is not configured",
			Hint:  domain.ConfigurationHint,
		})
		return true
	}

	if backendErr, ok := gateway.AsBackendError(err); ok {
		RespondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error: backendErr.Error(),
			Hint:  backendErr.Hint,
			Code:  backendErr.Code,
		})
		return true
	}

	if errors.Is(err, gateway.ErrTransport) {
		RespondError(w, http.StatusBadGateway, msgTransport)
		return true
	}

	if message, ok := ValidationMessage(err); ok {
		RespondBadRequest(w, message)
		return true
	}

	return false
}
