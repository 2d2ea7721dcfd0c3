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

var projectColumns = []string{
	"id", "title", "description", "category", "location",
	"image_url", "is_active", "display_order", "created_at", "updated_at",
}

type projectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new PostgreSQL project repository.
func NewProjectRepository(db *sql.DB) domain.ProjectRepository {
	return &projectRepository{db: db}
}

func scanProject(scanner interface{ Scan(dest ...interface{}) error }) (*domain.Project, error) {
	var p domain.Project
	if err := scanner.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Category,
		&p.Location,
		&p.ImageURL,
		&p.IsActive,
		&p.DisplayOrder,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns projects ordered by category then display order; created_at
// keeps ties stable in insertion order.
func (r *projectRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Project, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query := psql.Select(projectColumns...).
		From("projects").
		OrderBy("category ASC", "display_order ASC", "created_at ASC")
	if activeOnly {
		query = query.Where(sq.Eq{"is_active": true})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build project list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Select(projectColumns...).
		From("projects").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build project query: %w", err)
	}

	project, err := scanProject(r.db.QueryRowContext(ctx, sqlStr, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "project", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Insert("projects").
		Columns(projectColumns...).
		Values(
			project.ID,
			project.Title,
			project.Description,
			project.Category,
			project.Location,
			project.ImageURL,
			project.IsActive,
			project.DisplayOrder,
			project.CreatedAt,
			project.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build project insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// Update writes only the provided fields. An empty payload issues no UPDATE
// and returns the row as-is.
func (r *projectRepository) Update(ctx context.Context, id string, fields domain.Fields) (*domain.Project, error) {
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}

	columns := toColumns(fields)
	columns["updated_at"] = time.Now().UTC()

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Update("projects").
		SetMap(columns).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(projectColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build project update: %w", err)
	}

	project, err := scanProject(r.db.QueryRowContext(ctx, sqlStr, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "project", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

// Delete removes the row and returns its prior contents.
func (r *projectRepository) Delete(ctx context.Context, id string) (*domain.Project, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Delete("projects").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(projectColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build project delete: %w", err)
	}

	project, err := scanProject(r.db.QueryRowContext(ctx, sqlStr, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "project", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}
	return project, nil
}

func (r *projectRepository) Count(ctx context.Context) (int, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Select("COUNT(*)").From("projects").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build project count query: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return count, nil
}
