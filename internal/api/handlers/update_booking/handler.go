package update_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OfficeBooking/internal/api/handlers"
	updateBooking "github.com/m04kA/SMC-OfficeBooking/internal/usecase/update_booking"
)

const msgMissingBookingID = "booking id is required for update"

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrMissingBookingID):
			h.logger.Warn("PUT /bookings/{id} - Missing booking ID")
			handlers.RespondBadRequest(w, msgMissingBookingID)

		case errors.Is(err, updateBooking.ErrBookingNotUpdated):
			h.logger.Warn("PUT /bookings/{id} - No rows affected: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, handlers.MsgBookingNotUpdated)

		default:
			if handlers.RespondDataError(w, err) {
				h.logger.Warn("PUT /bookings/{id} - Update rejected: booking_id=%s, error=%v", bookingID, err)
				return
			}
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated: booking_id=%s", result.Form.ID)
	handlers.RespondJSON(w, http.StatusOK, result.Form)
}
