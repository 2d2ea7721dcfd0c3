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

var adminColumns = []string{
	"id", "email", "password_hash", "name", "created_at", "updated_at",
}

type adminRepository struct {
	db *sql.DB
}

// NewAdminRepository creates a new PostgreSQL admin repository.
func NewAdminRepository(db *sql.DB) domain.AdminRepository {
	return &adminRepository{db: db}
}

func scanAdmin(scanner interface{ Scan(dest ...interface{}) error }) (*domain.Admin, error) {
	var a domain.Admin
	if err := scanner.Scan(
		&a.ID,
		&a.Email,
		&a.PasswordHash,
		&a.Name,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}
	admin.Email = strings.ToLower(admin.Email)
	now := time.Now().UTC()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Insert("admins").
		Columns(adminColumns...).
		Values(
			admin.ID,
			admin.Email,
			admin.PasswordHash,
			admin.Name,
			admin.CreatedAt,
			admin.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build admin insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Select(adminColumns...).
		From("admins").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build admin query: %w", err)
	}

	admin, err := scanAdmin(r.db.QueryRowContext(ctx, sqlStr, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "admin", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return admin, nil
}

// GetByEmail looks up an admin case-insensitively.
func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	email = strings.ToLower(email)

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Select(adminColumns...).
		From("admins").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build admin query: %w", err)
	}

	admin, err := scanAdmin(r.db.QueryRowContext(ctx, sqlStr, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "admin", ID: email}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}
	return admin, nil
}

func (r *adminRepository) Update(ctx context.Context, id string, fields domain.Fields) (*domain.Admin, error) {
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}

	columns := toColumns(fields)
	if email, ok := columns["email"].(string); ok {
		columns["email"] = strings.ToLower(email)
	}
	columns["updated_at"] = time.Now().UTC()

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Update("admins").
		SetMap(columns).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(adminColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build admin update: %w", err)
	}

	admin, err := scanAdmin(r.db.QueryRowContext(ctx, sqlStr, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "admin", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update admin: %w", err)
	}
	return admin, nil
}

func (r *adminRepository) Delete(ctx context.Context, id string) (*domain.Admin, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Delete("admins").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(adminColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build admin delete: %w", err)
	}

	admin, err := scanAdmin(r.db.QueryRowContext(ctx, sqlStr, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "admin", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete admin: %w", err)
	}
	return admin, nil
}

func (r *adminRepository) Count(ctx context.Context) (int, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Select("COUNT(*)").From("admins").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build admin count query: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}
