package status

import (
	"net/http"

	"github.com/m04kA/SMC-OfficeBooking/internal/api/handlers"
	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
)

type Handler struct {
	source  DataSource
	gateway string
}

// NewHandler gateway - имя выбранного шлюза (postgres, data_api, sample)
func NewHandler(source DataSource, gateway string) *Handler {
	return &Handler{
		source:  source,
		gateway: gateway,
	}
}

// Handle GET /api/v1/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp := &StatusResponse{
		Configured: h.source.Configured(),
		Gateway:    h.gateway,
	}
	if !resp.Configured {
		resp.Hint = domain.ConfigurationHint
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}
