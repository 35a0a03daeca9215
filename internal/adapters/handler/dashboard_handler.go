package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/haemolink/lifeline/blood-bank-service/internal/adapters/middleware"
	"github.com/haemolink/lifeline/blood-bank-service/internal/core/ports"
)

type DashboardHandler struct {
	dashboardService ports.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboard ports.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboard, logger: logger}
}

// UserStats serves the per-user dashboard: totals, pending/scheduled
// counts and the recent activity slices.
func (h *DashboardHandler) UserStats(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(middleware.UserIDKey).(string)

	stats, err := h.dashboardService.UserStats(r.Context(), userID)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, stats, h.logger)
}

// AdminStats serves the global dashboard, including the distinct
// active-user count across requests and donations.
func (h *DashboardHandler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.AdminStats(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, stats, h.logger)
}
