package apply_draft_action

import (
	"net/http"

	"github.com/m04kA/SMC-OfficeBooking/internal/api/handlers"
)

type Handler struct {
	useCase ApplyDraftActionUseCase
	logger  Logger
}

func NewHandler(useCase ApplyDraftActionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking-draft/actions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DraftActionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-draft/actions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if message, ok := handlers.ValidationMessage(err); ok {
			h.logger.Warn("POST /booking-draft/actions - Action rejected: type=%s, error=%v", req.Action.Type, err)
			handlers.RespondBadRequest(w, message)
			return
		}
		h.logger.Error("POST /booking-draft/actions - Failed to apply action: type=%s, error=%v", req.Action.Type, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
