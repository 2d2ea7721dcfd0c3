package domain

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Section is one editable block of a page. Order matters and is preserved.
type Section struct {
	SectionName string `json:"sectionName"`
	Content     string `json:"content"`
	ImageURL    string `json:"imageUrl"`
	ImageAlt    string `json:"imageAlt"`
}

// SectionList is the ordered sections of a page, stored as a single JSONB
// column.
type SectionList []Section

// Value implements driver.Valuer for JSONB storage.
func (s SectionList) Value() (driver.Value, error) {
	if s == nil {
		s = SectionList{}
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB storage.
func (s *SectionList) Scan(src interface{}) error {
	if src == nil {
		*s = SectionList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into SectionList", src)
	}
}

// PageContent is the editable content of one site page. PageName is the
// natural key used for lookup and upsert; the storage id stays opaque.
type PageContent struct {
	ID        string      `json:"id"`
	PageName  string      `json:"pageName"`
	Sections  SectionList `json:"sections"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// PageContentRepository persists page content. List returns pages ordered by
// page name ascending.
type PageContentRepository interface {
	List(ctx context.Context) ([]*PageContent, error)
	GetByID(ctx context.Context, id string) (*PageContent, error)
	GetByPageName(ctx context.Context, pageName string) (*PageContent, error)
	Create(ctx context.Context, page *PageContent) error
	UpdateByPageName(ctx context.Context, pageName string, fields Fields) (*PageContent, error)
	DeleteByPageName(ctx context.Context, pageName string) (*PageContent, error)
	Count(ctx context.Context) (int, error)
}

// CreatePageContentRequest creates a new page with its sections.
type CreatePageContentRequest struct {
	PageName string      `json:"pageName"`
	Sections SectionList `json:"sections"`
}

func (r *CreatePageContentRequest) Validate() (*PageContent, error) {
	r.PageName = strings.TrimSpace(r.PageName)
	if r.PageName == "" {
		return nil, NewValidationError("pageName is required")
	}
	if r.Sections == nil {
		return nil, NewValidationError("sections must be an array")
	}
	return &PageContent{
		PageName: r.PageName,
		Sections: r.Sections,
	}, nil
}

// UpdatePageContentRequest replaces the sections of an existing page.
type UpdatePageContentRequest struct {
	Sections SectionList `json:"sections"`
}

func (r *UpdatePageContentRequest) Validate() (Fields, error) {
	if r.Sections == nil {
		return nil, NewValidationError("sections must be an array")
	}
	return Fields{"sections": r.Sections}, nil
}
