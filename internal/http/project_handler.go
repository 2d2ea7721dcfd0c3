package http

import (
	"encoding/json"
	"net/http"

	"github.com/aea-eng/aea-backend/internal/domain"
	"github.com/aea-eng/aea-backend/internal/http/middleware"
	"github.com/aea-eng/aea-backend/pkg/logger"
)

type ProjectHandler struct {
	repo           domain.ProjectRepository
	authMiddleware *middleware.AuthMiddleware
	logger         logger.Logger
}

func NewProjectHandler(repo domain.ProjectRepository, authMiddleware *middleware.AuthMiddleware, logger logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		repo:           repo,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

func (h *ProjectHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.authMiddleware.RequireAuth()

	mux.Handle("/api/projects.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/projects.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/projects.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/projects.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/projects.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *ProjectHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// The admin UI sees inactive projects too.
	projects, err := h.repo.List(r.Context(), false)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list projects")
		WriteJSONError(w, "Failed to list projects", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		WriteJSONError(w, "Missing project ID", http.StatusBadRequest)
		return
	}

	project, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Project not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to get project")
		WriteJSONError(w, "Failed to get project", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	project, err := req.Validate()
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repo.Create(r.Context(), project); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to create project")
		WriteJSONError(w, "Failed to create project", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		WriteJSONError(w, "Missing project ID", http.StatusBadRequest)
		return
	}

	var req domain.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	fields, err := req.Validate()
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	project, err := h.repo.Update(r.Context(), id, fields)
	if err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Project not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to update project")
		WriteJSONError(w, "Failed to update project", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		WriteJSONError(w, "Missing project ID", http.StatusBadRequest)
		return
	}

	project, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Project not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to delete project")
		WriteJSONError(w, "Failed to delete project", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"deleted": project,
	})
}
