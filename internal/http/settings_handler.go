package http

import (
	"encoding/json"
	"net/http"

	"github.com/aea-eng/aea-backend/internal/domain"
	"github.com/aea-eng/aea-backend/internal/http/middleware"
	"github.com/aea-eng/aea-backend/pkg/logger"
)

// SettingsHandler serves the admin settings endpoints. The first update
// creates the row; there is no separate create endpoint.
type SettingsHandler struct {
	repo           domain.SettingsRepository
	authMiddleware *middleware.AuthMiddleware
	logger         logger.Logger
}

func NewSettingsHandler(repo domain.SettingsRepository, authMiddleware *middleware.AuthMiddleware, logger logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		repo:           repo,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

func (h *SettingsHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.authMiddleware.RequireAuth()

	mux.Handle("/api/settings.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/settings.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
}

func (h *SettingsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	settings, err := h.repo.Get(r.Context())
	if err != nil {
		if domain.IsNotFound(err) {
			writeJSON(w, http.StatusOK, map[string]interface{}{})
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to get settings")
		WriteJSONError(w, "Failed to get settings", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

func (h *SettingsHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	fields, err := req.Validate()
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	settings, err := h.repo.Update(r.Context(), fields)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to update settings")
		WriteJSONError(w, "Failed to update settings", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}
