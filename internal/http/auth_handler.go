package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aea-eng/aea-backend/internal/domain"
	"github.com/aea-eng/aea-backend/internal/http/middleware"
	"github.com/aea-eng/aea-backend/internal/service"
	"github.com/aea-eng/aea-backend/pkg/logger"
)

// AuthServiceInterface is what the auth handler needs from the auth service
type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (*domain.Admin, string, error)
}

type AuthHandler struct {
	service        AuthServiceInterface
	authMiddleware *middleware.AuthMiddleware
	logger         logger.Logger
}

func NewAuthHandler(svc AuthServiceInterface, authMiddleware *middleware.AuthMiddleware, logger logger.Logger) *AuthHandler {
	return &AuthHandler{
		service:        svc,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.authMiddleware.RequireAuth()

	mux.HandleFunc("/api/auth.login", h.handleLogin)
	mux.Handle("/api/auth.me", requireAuth(http.HandlerFunc(h.handleMe)))
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	admin, token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			WriteJSONError(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to log in")
		WriteJSONError(w, "Failed to log in", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"admin": admin,
	})
}

func (h *AuthHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	admin, ok := middleware.AdminFromContext(r.Context())
	if !ok {
		WriteJSONError(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"admin": admin,
	})
}
