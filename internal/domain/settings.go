package domain

import (
	"context"
	"time"
)

// SocialLinks is the nested social-media sub-object exposed by the API. It is
// synthesized from four flat storage columns and flattened back on update.
type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedin"`
}

// Settings holds the site-wide business settings. At most one row ever
// exists; the cardinality is enforced by the repository, not the schema.
type Settings struct {
	ID           string      `json:"id"`
	BusinessName string      `json:"businessName"`
	Address      string      `json:"address"`
	City         string      `json:"city"`
	State        string      `json:"state"`
	Zip          string      `json:"zip"`
	Phone        string      `json:"phone"`
	Email        string      `json:"email"`
	Website      string      `json:"website"`
	SocialLinks  SocialLinks `json:"socialLinks"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// SettingsRepository presents the singleton settings row. Update performs
// create-or-update: the first ever update inserts the row.
type SettingsRepository interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, fields Fields) (*Settings, error)
}

// UpdateSettingsRequest partially updates the settings row, including a
// partial nested socialLinks object.
type UpdateSettingsRequest struct {
	BusinessName *string                   `json:"businessName"`
	Address      *string                   `json:"address"`
	City         *string                   `json:"city"`
	State        *string                   `json:"state"`
	Zip          *string                   `json:"zip"`
	Phone        *string                   `json:"phone"`
	Email        *string                   `json:"email"`
	Website      *string                   `json:"website"`
	SocialLinks  *UpdateSocialLinksRequest `json:"socialLinks"`
}

// UpdateSocialLinksRequest carries the provided subset of social links.
type UpdateSocialLinksRequest struct {
	Facebook  *string `json:"facebook"`
	Instagram *string `json:"instagram"`
	Twitter   *string `json:"twitter"`
	LinkedIn  *string `json:"linkedin"`
}

func (r *UpdateSettingsRequest) Validate() (Fields, error) {
	fields := Fields{}
	if r.BusinessName != nil {
		fields["businessName"] = *r.BusinessName
	}
	if r.Address != nil {
		fields["address"] = *r.Address
	}
	if r.City != nil {
		fields["city"] = *r.City
	}
	if r.State != nil {
		fields["state"] = *r.State
	}
	if r.Zip != nil {
		fields["zip"] = *r.Zip
	}
	if r.Phone != nil {
		fields["phone"] = *r.Phone
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.Website != nil {
		fields["website"] = *r.Website
	}
	if r.SocialLinks != nil {
		links := Fields{}
		if r.SocialLinks.Facebook != nil {
			links["facebook"] = *r.SocialLinks.Facebook
		}
		if r.SocialLinks.Instagram != nil {
			links["instagram"] = *r.SocialLinks.Instagram
		}
		if r.SocialLinks.Twitter != nil {
			links["twitter"] = *r.SocialLinks.Twitter
		}
		if r.SocialLinks.LinkedIn != nil {
			links["linkedin"] = *r.SocialLinks.LinkedIn
		}
		fields["socialLinks"] = links
	}
	return fields, nil
}
