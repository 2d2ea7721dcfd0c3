package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aea-eng/aea-backend/internal/domain"
	"github.com/aea-eng/aea-backend/pkg/logger"
)

// ContactServiceInterface is what the public handler needs from the contact
// service
type ContactServiceInterface interface {
	Submit(ctx context.Context, req *domain.CreateContactSubmissionRequest) (*domain.ContactSubmission, error)
}

// PublicHandler serves the unauthenticated endpoints the site frontend reads.
type PublicHandler struct {
	settingsRepo   domain.SettingsRepository
	pageRepo       domain.PageContentRepository
	staffRepo      domain.StaffMemberRepository
	projectRepo    domain.ProjectRepository
	contactService ContactServiceInterface
	logger         logger.Logger
}

type PublicHandlerConfig struct {
	SettingsRepository domain.SettingsRepository
	PageRepository     domain.PageContentRepository
	StaffRepository    domain.StaffMemberRepository
	ProjectRepository  domain.ProjectRepository
	ContactService     ContactServiceInterface
	Logger             logger.Logger
}

func NewPublicHandler(cfg PublicHandlerConfig) *PublicHandler {
	return &PublicHandler{
		settingsRepo:   cfg.SettingsRepository,
		pageRepo:       cfg.PageRepository,
		staffRepo:      cfg.StaffRepository,
		projectRepo:    cfg.ProjectRepository,
		contactService: cfg.ContactService,
		logger:         cfg.Logger,
	}
}

func (h *PublicHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/public.settings", h.handleSettings)
	mux.HandleFunc("/api/public.page", h.handlePage)
	mux.HandleFunc("/api/public.staff", h.handleStaff)
	mux.HandleFunc("/api/public.projects", h.handleProjects)
	mux.HandleFunc("/api/public.contact", h.handleContact)
}

func (h *PublicHandler) handleSettings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	settings, err := h.settingsRepo.Get(r.Context())
	if err != nil {
		// No settings row yet is normal for a fresh install.
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

func (h *PublicHandler) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	pageName := r.URL.Query().Get("page_name")
	if pageName == "" {
		WriteJSONError(w, "Missing page_name", http.StatusBadRequest)
		return
	}

	page, err := h.pageRepo.GetByPageName(r.Context(), pageName)
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

func (h *PublicHandler) handleStaff(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	members, err := h.staffRepo.List(r.Context(), true)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list staff members")
		WriteJSONError(w, "Failed to list staff members", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, members)
}

func (h *PublicHandler) handleProjects(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	projects, err := h.projectRepo.List(r.Context(), true)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list projects")
		WriteJSONError(w, "Failed to list projects", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

func (h *PublicHandler) handleContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.CreateContactSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	submission, err := h.contactService.Submit(r.Context(), &req)
	if err != nil {
		if domain.IsValidationError(err) {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to store contact submission")
		WriteJSONError(w, "Failed to submit message", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"id":      submission.ID,
	})
}
