package domain

import (
	"context"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

// Admin is a back-office account that can edit site content.
// PasswordHash is stored and updatable but never serialized outward.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AdminRepository persists admin accounts. Email lookups are
// case-insensitive: emails are lowercased before they reach storage.
type AdminRepository interface {
	Create(ctx context.Context, admin *Admin) error
	GetByID(ctx context.Context, id string) (*Admin, error)
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	Update(ctx context.Context, id string, fields Fields) (*Admin, error)
	Delete(ctx context.Context, id string) (*Admin, error)
	Count(ctx context.Context) (int, error)
}

// LoginRequest carries admin credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Email == "" {
		return NewValidationError("email is required")
	}
	if !govalidator.IsEmail(r.Email) {
		return NewValidationError("email is invalid")
	}
	if r.Password == "" {
		return NewValidationError("password is required")
	}
	return nil
}
