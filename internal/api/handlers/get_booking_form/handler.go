package get_booking_form

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OfficeBooking/internal/api/handlers"
	loadBookingForm "github.com/m04kA/SMC-OfficeBooking/internal/usecase/load_booking_form"
)

const (
	msgMissingBookingID = "booking id is required"
	msgNotFound         = "booking not found"
)

type Handler struct {
	useCase LoadBookingFormUseCase
	logger  Logger
}

func NewHandler(useCase LoadBookingFormUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/form
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.useCase.Execute(r.Context(), &loadBookingForm.Request{BookingID: bookingID})
	if err != nil {
		switch {
		case errors.Is(err, loadBookingForm.ErrMissingBookingID):
			h.logger.Warn("GET /bookings/{id}/form - Missing booking ID")
			handlers.RespondBadRequest(w, msgMissingBookingID)

		case errors.Is(err, loadBookingForm.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/form - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			if handlers.RespondDataError(w, err) {
				h.logger.Warn("GET /bookings/{id}/form - Data error: booking_id=%s, error=%v", bookingID, err)
				return
			}
			h.logger.Error("GET /bookings/{id}/form - Failed to load booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
