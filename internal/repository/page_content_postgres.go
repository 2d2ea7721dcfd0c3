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

var pageContentColumns = []string{
	"id", "page_name", "sections", "created_at", "updated_at",
}

type pageContentRepository struct {
	db *sql.DB
}

// NewPageContentRepository creates a new PostgreSQL page content repository.
// Pages are addressed by their natural key page_name; the storage id stays
// opaque to callers.
func NewPageContentRepository(db *sql.DB) domain.PageContentRepository {
	return &pageContentRepository{db: db}
}

func scanPageContent(scanner interface{ Scan(dest ...interface{}) error }) (*domain.PageContent, error) {
	var p domain.PageContent
	if err := scanner.Scan(
		&p.ID,
		&p.PageName,
		&p.Sections,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pageContentRepository) List(ctx context.Context) ([]*domain.PageContent, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Select(pageContentColumns...).
		From("page_contents").
		OrderBy("page_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build page list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	defer rows.Close()

	pages := make([]*domain.PageContent, 0)
	for rows.Next() {
		page, err := scanPageContent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan page: %w", err)
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}

func (r *pageContentRepository) GetByID(ctx context.Context, id string) (*domain.PageContent, error) {
	return r.getByColumn(ctx, "id", id)
}

func (r *pageContentRepository) GetByPageName(ctx context.Context, pageName string) (*domain.PageContent, error) {
	return r.getByColumn(ctx, "page_name", pageName)
}

func (r *pageContentRepository) getByColumn(ctx context.Context, column, value string) (*domain.PageContent, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Select(pageContentColumns...).
		From("page_contents").
		Where(sq.Eq{column: value}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build page query: %w", err)
	}

	page, err := scanPageContent(r.db.QueryRowContext(ctx, sqlStr, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "page", ID: value}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get page: %w", err)
	}
	return page, nil
}

func (r *pageContentRepository) Create(ctx context.Context, page *domain.PageContent) error {
	if page.ID == "" {
		page.ID = uuid.New().String()
	}
	if page.Sections == nil {
		page.Sections = domain.SectionList{}
	}
	now := time.Now().UTC()
	page.CreatedAt = now
	page.UpdatedAt = now

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Insert("page_contents").
		Columns(pageContentColumns...).
		Values(
			page.ID,
			page.PageName,
			page.Sections,
			page.CreatedAt,
			page.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build page insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("failed to create page: %w", err)
	}
	return nil
}

// UpdateByPageName writes only the provided fields, keyed by the natural key.
func (r *pageContentRepository) UpdateByPageName(ctx context.Context, pageName string, fields domain.Fields) (*domain.PageContent, error) {
	if len(fields) == 0 {
		return r.GetByPageName(ctx, pageName)
	}

	columns := toColumns(fields)
	columns["updated_at"] = time.Now().UTC()

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Update("page_contents").
		SetMap(columns).
		Where(sq.Eq{"page_name": pageName}).
		Suffix("RETURNING " + strings.Join(pageContentColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build page update: %w", err)
	}

	page, err := scanPageContent(r.db.QueryRowContext(ctx, sqlStr, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "page", ID: pageName}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update page: %w", err)
	}
	return page, nil
}

func (r *pageContentRepository) DeleteByPageName(ctx context.Context, pageName string) (*domain.PageContent, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Delete("page_contents").
		Where(sq.Eq{"page_name": pageName}).
		Suffix("RETURNING " + strings.Join(pageContentColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build page delete: %w", err)
	}

	page, err := scanPageContent(r.db.QueryRowContext(ctx, sqlStr, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "page", ID: pageName}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete page: %w", err)
	}
	return page, nil
}

func (r *pageContentRepository) Count(ctx context.Context) (int, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Select("COUNT(*)").From("page_contents").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build page count query: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pages: %w", err)
	}
	return count, nil
}
