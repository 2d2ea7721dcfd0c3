package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/aea-eng/aea-backend/internal/domain"
)

var settingsColumns = []string{
	"id", "business_name", "address", "city", "state", "zip",
	"phone", "email", "website",
	"facebook", "instagram", "twitter", "linkedin",
	"created_at", "updated_at",
}

type settingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new PostgreSQL settings repository. The
// settings table holds at most one row; this repository is what enforces
// that cardinality, since the schema carries no constraint for it.
func NewSettingsRepository(db *sql.DB) domain.SettingsRepository {
	return &settingsRepository{db: db}
}

func scanSettings(scanner interface{ Scan(dest ...interface{}) error }) (*domain.Settings, error) {
	var s domain.Settings
	var businessName, address, city, state, zip sql.NullString
	var phone, email, website sql.NullString
	var facebook, instagram, twitter, linkedin sql.NullString
	if err := scanner.Scan(
		&s.ID,
		&businessName,
		&address,
		&city,
		&state,
		&zip,
		&phone,
		&email,
		&website,
		&facebook,
		&instagram,
		&twitter,
		&linkedin,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	s.BusinessName = businessName.String
	s.Address = address.String
	s.City = city.String
	s.State = state.String
	s.Zip = zip.String
	s.Phone = phone.String
	s.Email = email.String
	s.Website = website.String
	s.SocialLinks = domain.SocialLinks{
		Facebook:  facebook.String,
		Instagram: instagram.String,
		Twitter:   twitter.String,
		LinkedIn:  linkedin.String,
	}
	return &s, nil
}

// Get returns the settings row, or a not-found error when none exists yet.
func (r *settingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Select(settingsColumns...).
		From("settings").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build settings query: %w", err)
	}

	settings, err := scanSettings(r.db.QueryRowContext(ctx, sqlStr, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "settings"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// flattenSocialLinks lifts the nested socialLinks object into the flat link
// fields the table stores. Links absent from the payload stay untouched.
func flattenSocialLinks(fields domain.Fields) domain.Fields {
	raw, ok := fields["socialLinks"]
	if !ok {
		return fields
	}

	flat := make(domain.Fields, len(fields)+3)
	for key, value := range fields {
		if key != "socialLinks" {
			flat[key] = value
		}
	}

	var links map[string]any
	switch v := raw.(type) {
	case domain.Fields:
		links = v
	case map[string]any:
		links = v
	case nil:
		return flat
	}
	for key, value := range links {
		flat[key] = value
	}
	return flat
}

// Update performs create-or-update on the singleton row: a lookup first,
// then an insert when no row exists or an update of the found row. The two
// steps are not atomic, so concurrent first updates can each insert; Get
// still behaves because it reads a single row.
func (r *settingsRepository) Update(ctx context.Context, fields domain.Fields) (*domain.Settings, error) {
	columns := toColumns(flattenSocialLinks(fields))

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	lookupSQL, lookupArgs, err := psql.Select("id").
		From("settings").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build settings lookup: %w", err)
	}

	var id string
	err = r.db.QueryRowContext(ctx, lookupSQL, lookupArgs...).Scan(&id)
	if err == sql.ErrNoRows {
		return r.insert(ctx, columns)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up settings: %w", err)
	}

	if len(columns) == 0 {
		return r.Get(ctx)
	}
	columns["updated_at"] = time.Now().UTC()

	sqlStr, args, err := psql.Update("settings").
		SetMap(columns).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(settingsColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build settings update: %w", err)
	}

	settings, err := scanSettings(r.db.QueryRowContext(ctx, sqlStr, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return settings, nil
}

func (r *settingsRepository) insert(ctx context.Context, columns map[string]any) (*domain.Settings, error) {
	if columns == nil {
		columns = map[string]any{}
	}
	now := time.Now().UTC()
	columns["id"] = uuid.New().String()
	columns["created_at"] = now
	columns["updated_at"] = now

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Insert("settings").
		SetMap(columns).
		Suffix("RETURNING " + strings.Join(settingsColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build settings insert: %w", err)
	}

	settings, err := scanSettings(r.db.QueryRowContext(ctx, sqlStr, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to create settings: %w", err)
	}
	return settings, nil
}
