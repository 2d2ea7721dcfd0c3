package domain

import (
	"context"
	"strings"
	"time"
)

// StaffMember is a team member shown on the public staff page.
type StaffMember struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Bio          string    `json:"bio"`
	PhotoURL     string    `json:"photoUrl"`
	DisplayOrder int       `json:"displayOrder"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// StaffMemberRepository persists staff members. List orders by display order
// ascending; activeOnly restricts to is_active rows.
type StaffMemberRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*StaffMember, error)
	GetByID(ctx context.Context, id string) (*StaffMember, error)
	Create(ctx context.Context, member *StaffMember) error
	Update(ctx context.Context, id string, fields Fields) (*StaffMember, error)
	Delete(ctx context.Context, id string) (*StaffMember, error)
	Count(ctx context.Context) (int, error)
}

// CreateStaffMemberRequest creates a new staff member.
type CreateStaffMemberRequest struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Bio          string `json:"bio"`
	PhotoURL     string `json:"photoUrl"`
	DisplayOrder *int   `json:"displayOrder"`
	IsActive     *bool  `json:"isActive"`
}

func (r *CreateStaffMemberRequest) Validate() (*StaffMember, error) {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return nil, NewValidationError("name is required")
	}

	member := &StaffMember{
		Name:     r.Name,
		Title:    strings.TrimSpace(r.Title),
		Bio:      r.Bio,
		PhotoURL: r.PhotoURL,
		IsActive: true,
	}
	if r.DisplayOrder != nil {
		member.DisplayOrder = *r.DisplayOrder
	}
	if r.IsActive != nil {
		member.IsActive = *r.IsActive
	}
	return member, nil
}

// UpdateStaffMemberRequest partially updates a staff member.
type UpdateStaffMemberRequest struct {
	Name         *string `json:"name"`
	Title        *string `json:"title"`
	Bio          *string `json:"bio"`
	PhotoURL     *string `json:"photoUrl"`
	DisplayOrder *int    `json:"displayOrder"`
	IsActive     *bool   `json:"isActive"`
}

func (r *UpdateStaffMemberRequest) Validate() (Fields, error) {
	fields := Fields{}
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			return nil, NewValidationError("name cannot be empty")
		}
		fields["name"] = name
	}
	if r.Title != nil {
		fields["title"] = strings.TrimSpace(*r.Title)
	}
	if r.Bio != nil {
		fields["bio"] = *r.Bio
	}
	if r.PhotoURL != nil {
		fields["photoUrl"] = *r.PhotoURL
	}
	if r.DisplayOrder != nil {
		fields["displayOrder"] = *r.DisplayOrder
	}
	if r.IsActive != nil {
		fields["isActive"] = *r.IsActive
	}
	return fields, nil
}
