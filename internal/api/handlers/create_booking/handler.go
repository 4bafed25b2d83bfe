package create_booking

import (
	"net/http"

	"github.com/m04kA/SMC-OfficeBooking/internal/api/handlers"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if handlers.RespondDataError(w, err) {
			h.logger.Warn("POST /bookings - Booking rejected: employee=%s, error=%v", req.Draft.EmployeeID, err)
			return
		}
		h.logger.Error("POST /bookings - Failed to create bookings: employee=%s, error=%v", req.Draft.EmployeeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /bookings - Bookings created: employee=%s, count=%d", req.Draft.EmployeeID, len(result.IDs))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
