package domain

import (
	"context"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

// ContactSubmission is a message left through the public contact form.
// Immutable after creation except for the read flag; deletable.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactSubmissionRepository persists contact form submissions.
// List returns newest first.
type ContactSubmissionRepository interface {
	List(ctx context.Context) ([]*ContactSubmission, error)
	GetByID(ctx context.Context, id string) (*ContactSubmission, error)
	Create(ctx context.Context, submission *ContactSubmission) error
	MarkAsRead(ctx context.Context, id string) (*ContactSubmission, error)
	Delete(ctx context.Context, id string) (*ContactSubmission, error)
	CountUnread(ctx context.Context) (int, error)
}

// CreateContactSubmissionRequest is the public contact form payload.
type CreateContactSubmissionRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r *CreateContactSubmissionRequest) Validate() (*ContactSubmission, error) {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)

	if r.Name == "" {
		return nil, NewValidationError("name is required")
	}
	if r.Email == "" {
		return nil, NewValidationError("email is required")
	}
	if !govalidator.IsEmail(r.Email) {
		return nil, NewValidationError("email is invalid")
	}
	if r.Subject == "" {
		return nil, NewValidationError("subject is required")
	}
	if r.Message == "" {
		return nil, NewValidationError("message is required")
	}

	return &ContactSubmission{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}, nil
}
