package http

import (
	"context"
	"net/http"

	"github.com/aea-eng/aea-backend/internal/http/middleware"
	"github.com/aea-eng/aea-backend/internal/service"
	"github.com/aea-eng/aea-backend/pkg/logger"
)

// DashboardServiceInterface is what the dashboard handler needs from the
// dashboard service
type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*service.DashboardStats, error)
}

type DashboardHandler struct {
	service        DashboardServiceInterface
	authMiddleware *middleware.AuthMiddleware
	logger         logger.Logger
}

func NewDashboardHandler(svc DashboardServiceInterface, authMiddleware *middleware.AuthMiddleware, logger logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		service:        svc,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

func (h *DashboardHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.authMiddleware.RequireAuth()

	mux.Handle("/api/dashboard.stats", requireAuth(http.HandlerFunc(h.handleStats)))
}

func (h *DashboardHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to get dashboard stats")
		WriteJSONError(w, "Failed to get dashboard stats", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
