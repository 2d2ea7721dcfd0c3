package http

import (
	"encoding/json"
	"net/http"

	"github.com/aea-eng/aea-backend/internal/domain"
	"github.com/aea-eng/aea-backend/internal/http/middleware"
	"github.com/aea-eng/aea-backend/pkg/logger"
)

type StaffHandler struct {
	repo           domain.StaffMemberRepository
	authMiddleware *middleware.AuthMiddleware
	logger         logger.Logger
}

func NewStaffHandler(repo domain.StaffMemberRepository, authMiddleware *middleware.AuthMiddleware, logger logger.Logger) *StaffHandler {
	return &StaffHandler{
		repo:           repo,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

func (h *StaffHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.authMiddleware.RequireAuth()

	mux.Handle("/api/staff.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/staff.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/staff.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/staff.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/staff.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *StaffHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	members, err := h.repo.List(r.Context(), false)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list staff members")
		WriteJSONError(w, "Failed to list staff members", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, members)
}

func (h *StaffHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		WriteJSONError(w, "Missing staff member ID", http.StatusBadRequest)
		return
	}

	member, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Staff member not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to get staff member")
		WriteJSONError(w, "Failed to get staff member", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, member)
}

func (h *StaffHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.CreateStaffMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	member, err := req.Validate()
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repo.Create(r.Context(), member); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to create staff member")
		WriteJSONError(w, "Failed to create staff member", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, member)
}

func (h *StaffHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		WriteJSONError(w, "Missing staff member ID", http.StatusBadRequest)
		return
	}

	var req domain.UpdateStaffMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	fields, err := req.Validate()
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	member, err := h.repo.Update(r.Context(), id, fields)
	if err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Staff member not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to update staff member")
		WriteJSONError(w, "Failed to update staff member", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, member)
}

func (h *StaffHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		WriteJSONError(w, "Missing staff member ID", http.StatusBadRequest)
		return
	}

	member, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Staff member not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to delete staff member")
		WriteJSONError(w, "Failed to delete staff member", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"deleted": member,
	})
}
