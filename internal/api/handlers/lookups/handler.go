package lookups

import (
	"net/http"

	"github.com/m04kA/SMC-OfficeBooking/internal/api/handlers"
)

const msgReloadFailed = "failed to reload reference data, previous data kept"

type Handler struct {
	service LookupService
	logger  Logger
}

func NewHandler(service LookupService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGet GET /api/v1/lookups
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.Snapshot())
}

// HandleReload POST /api/v1/lookups/reload
func (h *Handler) HandleReload(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Load(r.Context()); err != nil {
		h.logger.Error("POST /lookups/reload - Failed to reload lookups: %v", err)
		handlers.RespondError(w, http.StatusBadGateway, msgReloadFailed)
		return
	}

	h.logger.Info("POST /lookups/reload - Lookups reloaded")
	handlers.RespondJSON(w, http.StatusOK, h.service.Snapshot())
}
