package http

import (
	"encoding/json"
	"net/http"

	"github.com/aea-eng/aea-backend/internal/database"
	"github.com/aea-eng/aea-backend/internal/domain"
	"github.com/aea-eng/aea-backend/internal/http/middleware"
	"github.com/aea-eng/aea-backend/pkg/logger"
)

// PageHandler serves the admin page-content endpoints. Pages are addressed
// by page_name, mirroring how the public site requests them.
type PageHandler struct {
	repo           domain.PageContentRepository
	authMiddleware *middleware.AuthMiddleware
	logger         logger.Logger
}

func NewPageHandler(repo domain.PageContentRepository, authMiddleware *middleware.AuthMiddleware, logger logger.Logger) *PageHandler {
	return &PageHandler{
		repo:           repo,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

func (h *PageHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.authMiddleware.RequireAuth()

	mux.Handle("/api/pages.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/pages.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/pages.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/pages.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/pages.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *PageHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	pages, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list pages")
		WriteJSONError(w, "Failed to list pages", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, pages)
}

func (h *PageHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	pageName := r.URL.Query().Get("page_name")
	if pageName == "" {
		WriteJSONError(w, "Missing page_name", http.StatusBadRequest)
		return
	}

	page, err := h.repo.GetByPageName(r.Context(), pageName)
	if err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Page not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to get page")
		WriteJSONError(w, "Failed to get page", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (h *PageHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.CreatePageContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	page, err := req.Validate()
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repo.Create(r.Context(), page); err != nil {
		if database.IsUniqueViolation(err) {
			WriteJSONError(w, "A page with this name already exists", http.StatusConflict)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to create page")
		WriteJSONError(w, "Failed to create page", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, page)
}

func (h *PageHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	pageName := r.URL.Query().Get("page_name")
	if pageName == "" {
		WriteJSONError(w, "Missing page_name", http.StatusBadRequest)
		return
	}

	var req domain.UpdatePageContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	fields, err := req.Validate()
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := h.repo.UpdateByPageName(r.Context(), pageName, fields)
	if err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Page not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to update page")
		WriteJSONError(w, "Failed to update page", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (h *PageHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	pageName := r.URL.Query().Get("page_name")
	if pageName == "" {
		WriteJSONError(w, "Missing page_name", http.StatusBadRequest)
		return
	}

	page, err := h.repo.DeleteByPageName(r.Context(), pageName)
	if err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Page not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to delete page")
		WriteJSONError(w, "Failed to delete page", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"deleted": page,
	})
}
