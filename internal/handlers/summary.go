package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"PortfolioDesk/internal/middleware"
	"PortfolioDesk/internal/service"
)

// SummaryHandler отдаёт сводку дашборда.
type SummaryHandler struct {
	Service *service.SummaryService
	Logger  *zap.SugaredLogger
}

func NewSummaryHandler(svc *service.SummaryService, logger *zap.SugaredLogger) *SummaryHandler {
	return &SummaryHandler{Service: svc, Logger: logger}
}

// Summary обрабатывает GET /api/admin/summary.
func (h *SummaryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	sum, err := h.Service.Summary(r.Context())
	if err != nil {
		h.Logger.Errorw("summary failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, sum)
}
