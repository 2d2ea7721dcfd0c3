package service

import (
	"context"

	"github.com/aea-eng/aea-backend/internal/domain"
	"github.com/aea-eng/aea-backend/pkg/logger"
	"github.com/aea-eng/aea-backend/pkg/mailer"
)

// ContactService handles contact form submissions and their admin-side
// management. Submitting stores the message first; the email notification
// is best-effort and never fails the request.
type ContactService struct {
	repo         domain.ContactSubmissionRepository
	mailer       mailer.Mailer
	logger       logger.Logger
	contactEmail string
}

type ContactServiceConfig struct {
	Repository   domain.ContactSubmissionRepository
	Mailer       mailer.Mailer
	Logger       logger.Logger
	ContactEmail string
}

func NewContactService(cfg ContactServiceConfig) *ContactService {
	return &ContactService{
		repo:         cfg.Repository,
		mailer:       cfg.Mailer,
		logger:       cfg.Logger,
		contactEmail: cfg.ContactEmail,
	}
}

// Submit stores a new submission and notifies the business inbox.
func (s *ContactService) Submit(ctx context.Context, req *domain.CreateContactSubmissionRequest) (*domain.ContactSubmission, error) {
	submission, err := req.Validate()
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, submission); err != nil {
		return nil, err
	}

	if s.contactEmail != "" {
		if err := s.mailer.SendContactNotification(s.contactEmail, submission); err != nil {
			// The submission is already stored; losing the notification
			// must not lose the message.
			s.logger.WithField("submission_id", submission.ID).
				WithField("error", err.Error()).
				Error("Failed to send contact notification email")
		}
	}

	return submission, nil
}

func (s *ContactService) List(ctx context.Context) ([]*domain.ContactSubmission, error) {
	return s.repo.List(ctx)
}

func (s *ContactService) GetByID(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ContactService) MarkAsRead(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	return s.repo.MarkAsRead(ctx, id)
}

func (s *ContactService) Delete(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	return s.repo.Delete(ctx, id)
}
