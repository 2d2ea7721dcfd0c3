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

var staffMemberColumns = []string{
	"id", "name", "title", "bio", "photo_url",
	"display_order", "is_active", "created_at", "updated_at",
}

type staffMemberRepository struct {
	db *sql.DB
}

// NewStaffMemberRepository creates a new PostgreSQL staff member repository.
func NewStaffMemberRepository(db *sql.DB) domain.StaffMemberRepository {
	return &staffMemberRepository{db: db}
}

func scanStaffMember(scanner interface{ Scan(dest ...interface{}) error }) (*domain.StaffMember, error) {
	var m domain.StaffMember
	if err := scanner.Scan(
		&m.ID,
		&m.Name,
		&m.Title,
		&m.Bio,
		&m.PhotoURL,
		&m.DisplayOrder,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *staffMemberRepository) List(ctx context.Context, activeOnly bool) ([]*domain.StaffMember, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query := psql.Select(staffMemberColumns...).
		From("staff_members").
		OrderBy("display_order ASC")
	if activeOnly {
		query = query.Where(sq.Eq{"is_active": true})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build staff list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff members: %w", err)
	}
	defer rows.Close()

	members := make([]*domain.StaffMember, 0)
	for rows.Next() {
		member, err := scanStaffMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff member: %w", err)
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

func (r *staffMemberRepository) GetByID(ctx context.Context, id string) (*domain.StaffMember, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Select(staffMemberColumns...).
		From("staff_members").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build staff query: %w", err)
	}

	member, err := scanStaffMember(r.db.QueryRowContext(ctx, sqlStr, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "staff member", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	return member, nil
}

func (r *staffMemberRepository) Create(ctx context.Context, member *domain.StaffMember) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	member.CreatedAt = now
	member.UpdatedAt = now

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Insert("staff_members").
		Columns(staffMemberColumns...).
		Values(
			member.ID,
			member.Name,
			member.Title,
			member.Bio,
			member.PhotoURL,
			member.DisplayOrder,
			member.IsActive,
			member.CreatedAt,
			member.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build staff insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("failed to create staff member: %w", err)
	}
	return nil
}

func (r *staffMemberRepository) Update(ctx context.Context, id string, fields domain.Fields) (*domain.StaffMember, error) {
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}

	columns := toColumns(fields)
	columns["updated_at"] = time.Now().UTC()

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Update("staff_members").
		SetMap(columns).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(staffMemberColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build staff update: %w", err)
	}

	member, err := scanStaffMember(r.db.QueryRowContext(ctx, sqlStr, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "staff member", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update staff member: %w", err)
	}
	return member, nil
}

func (r *staffMemberRepository) Delete(ctx context.Context, id string) (*domain.StaffMember, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Delete("staff_members").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(staffMemberColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build staff delete: %w", err)
	}

	member, err := scanStaffMember(r.db.QueryRowContext(ctx, sqlStr, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "staff member", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete staff member: %w", err)
	}
	return member, nil
}

func (r *staffMemberRepository) Count(ctx context.Context) (int, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Select("COUNT(*)").From("staff_members").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build staff count query: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count staff members: %w", err)
	}
	return count, nil
}
