package http

import (
	"context"
	"net/http"

	"github.com/aea-eng/aea-backend/internal/domain"
	"github.com/aea-eng/aea-backend/internal/http/middleware"
	"github.com/aea-eng/aea-backend/pkg/logger"
)

// ContactAdminServiceInterface is what the admin contact handler needs from
// the contact service
type ContactAdminServiceInterface interface {
	List(ctx context.Context) ([]*domain.ContactSubmission, error)
	GetByID(ctx context.Context, id string) (*domain.ContactSubmission, error)
	MarkAsRead(ctx context.Context, id string) (*domain.ContactSubmission, error)
	Delete(ctx context.Context, id string) (*domain.ContactSubmission, error)
}

// ContactHandler serves the admin side of contact submissions. The public
// form posts through PublicHandler instead.
type ContactHandler struct {
	service        ContactAdminServiceInterface
	authMiddleware *middleware.AuthMiddleware
	logger         logger.Logger
}

func NewContactHandler(svc ContactAdminServiceInterface, authMiddleware *middleware.AuthMiddleware, logger logger.Logger) *ContactHandler {
	return &ContactHandler{
		service:        svc,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

func (h *ContactHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.authMiddleware.RequireAuth()

	mux.Handle("/api/contacts.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/contacts.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/contacts.markRead", requireAuth(http.HandlerFunc(h.handleMarkRead)))
	mux.Handle("/api/contacts.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *ContactHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	submissions, err := h.service.List(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list submissions")
		WriteJSONError(w, "Failed to list submissions", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, submissions)
}

func (h *ContactHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		WriteJSONError(w, "Missing submission ID", http.StatusBadRequest)
		return
	}

	submission, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Submission not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to get submission")
		WriteJSONError(w, "Failed to get submission", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, submission)
}

func (h *ContactHandler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		WriteJSONError(w, "Missing submission ID", http.StatusBadRequest)
		return
	}

	submission, err := h.service.MarkAsRead(r.Context(), id)
	if err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Submission not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to mark submission as read")
		WriteJSONError(w, "Failed to mark submission as read", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, submission)
}

func (h *ContactHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		WriteJSONError(w, "Missing submission ID", http.StatusBadRequest)
		return
	}

	submission, err := h.service.Delete(r.Context(), id)
	if err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Submission not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to delete submission")
		WriteJSONError(w, "Failed to delete submission", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"deleted": submission,
	})
}
