package reports

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OfficeBooking/internal/api/handlers"
	reportsService "github.com/m04kA/SMC-OfficeBooking/internal/service/reports"
)

const (
	msgUnknownReport = "unknown report"
	msgInvalidMonth  = "month must be in YYYY-MM format"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGet GET /api/v1/reports/{report}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	name, ok := h.reportName(w, r, "GET /reports/{report}")
	if !ok {
		return
	}

	snap, err := h.service.Get(r.Context(), name)
	if err != nil {
		h.respondError(w, "GET /reports/{report}", name, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, snap)
}

// HandleReload POST /api/v1/reports/{report}/reload?month=YYYY-MM
func (h *Handler) HandleReload(w http.ResponseWriter, r *http.Request) {
	name, ok := h.reportName(w, r, "POST /reports/{report}/reload")
	if !ok {
		return
	}

	var month *string
	if query := r.URL.Query(); query.Has("month") {
		value := query.Get("month")
		month = &value
	}

	snap, err := h.service.Reload(r.Context(), name, month)
	if err != nil {
		h.respondError(w, "POST /reports/{report}/reload", name, err)
		return
	}

	h.logger.Info("POST /reports/{report}/reload - Report reloaded: report=%s, rows=%d", name, snap.Count)
	handlers.RespondJSON(w, http.StatusOK, snap)
}

// HandleExport GET /api/v1/reports/{report}/export
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	name, ok := h.reportName(w, r, "GET /reports/{report}/export")
	if !ok {
		return
	}

	snap, err := h.service.Get(r.Context(), name)
	if err != nil {
		h.respondError(w, "GET /reports/{report}/export", name, err)
		return
	}

	// Заголовки пишутся только после успешной сборки файла
	var buf bytes.Buffer
	if err := h.service.Export(r.Context(), name, &buf); err != nil {
		h.respondError(w, "GET /reports/{report}/export", name, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reportsService.FileName(name, snap.Month)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("GET /reports/{report}/export - Failed to write file: report=%s, error=%v", name, err)
	}
}

func (h *Handler) reportName(w http.ResponseWriter, r *http.Request, op string) (reportsService.Name, bool) {
	raw := mux.Vars(r)["report"]
	name, err := reportsService.ParseName(raw)
	if err != nil {
		h.logger.Warn("%s - Unknown report: %s", op, raw)
		handlers.RespondNotFound(w, msgUnknownReport)
		return "", false
	}
	return name, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, name reportsService.Name, err error) {
	switch {
	case errors.Is(err, reportsService.ErrUnknownReport):
		handlers.RespondNotFound(w, msgUnknownReport)
	case errors.Is(err, reportsService.ErrInvalidMonth):
		h.logger.Warn("%s - Invalid month: report=%s, error=%v", op, name, err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
	default:
		h.logger.Error("%s - Failed: report=%s, error=%v", op, name, err)
		handlers.RespondInternalError(w)
	}
}
