package domain

import (
	"context"
	"strings"
	"time"
)

// Project categories. The set is closed: validation happens at the request
// boundary, repositories store whatever they are given.
const (
	CategoryInternationalLivestock = "International Livestock Production"
	CategoryDomesticLivestock      = "Domestic Livestock Production"
	CategoryNaturalResources       = "Natural Resources Development"
	CategoryRuralDevelopment       = "Rural Development"
)

// ProjectCategories lists the valid categories in display order.
var ProjectCategories = []string{
	CategoryInternationalLivestock,
	CategoryDomesticLivestock,
	CategoryNaturalResources,
	CategoryRuralDevelopment,
}

// IsValidProjectCategory reports whether c is one of the four known categories.
func IsValidProjectCategory(c string) bool {
	for _, category := range ProjectCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Project is a portfolio entry shown on the public site.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Location     string    `json:"location"`
	ImageURL     string    `json:"imageUrl"`
	IsActive     bool      `json:"isActive"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProjectRepository persists projects. List orders by category then display
// order; activeOnly restricts to is_active rows.
type ProjectRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*Project, error)
	GetByID(ctx context.Context, id string) (*Project, error)
	Create(ctx context.Context, project *Project) error
	Update(ctx context.Context, id string, fields Fields) (*Project, error)
	Delete(ctx context.Context, id string) (*Project, error)
	Count(ctx context.Context) (int, error)
}

// CreateProjectRequest creates a new project.
type CreateProjectRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Location     string `json:"location"`
	ImageURL     string `json:"imageUrl"`
	IsActive     *bool  `json:"isActive"`
	DisplayOrder *int   `json:"displayOrder"`
}

func (r *CreateProjectRequest) Validate() (*Project, error) {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return nil, NewValidationError("title is required")
	}
	if !IsValidProjectCategory(r.Category) {
		return nil, NewValidationError("category is invalid")
	}

	project := &Project{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Location:    strings.TrimSpace(r.Location),
		ImageURL:    r.ImageURL,
		IsActive:    true,
	}
	if r.IsActive != nil {
		project.IsActive = *r.IsActive
	}
	if r.DisplayOrder != nil {
		project.DisplayOrder = *r.DisplayOrder
	}
	return project, nil
}

// UpdateProjectRequest partially updates a project. Only fields present in
// the JSON payload are written.
type UpdateProjectRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Category     *string `json:"category"`
	Location     *string `json:"location"`
	ImageURL     *string `json:"imageUrl"`
	IsActive     *bool   `json:"isActive"`
	DisplayOrder *int    `json:"displayOrder"`
}

func (r *UpdateProjectRequest) Validate() (Fields, error) {
	fields := Fields{}
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if title == "" {
			return nil, NewValidationError("title cannot be empty")
		}
		fields["title"] = title
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Category != nil {
		if !IsValidProjectCategory(*r.Category) {
			return nil, NewValidationError("category is invalid")
		}
		fields["category"] = *r.Category
	}
	if r.Location != nil {
		fields["location"] = strings.TrimSpace(*r.Location)
	}
	if r.ImageURL != nil {
		fields["imageUrl"] = *r.ImageURL
	}
	if r.IsActive != nil {
		fields["isActive"] = *r.IsActive
	}
	if r.DisplayOrder != nil {
		fields["displayOrder"] = *r.DisplayOrder
	}
	return fields, nil
}
