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

var contactSubmissionColumns = []string{
	"id", "name", "email", "subject", "message", "is_read", "created_at",
}

type contactSubmissionRepository struct {
	db *sql.DB
}

// NewContactSubmissionRepository creates a new PostgreSQL contact submission
// repository.
func NewContactSubmissionRepository(db *sql.DB) domain.ContactSubmissionRepository {
	return &contactSubmissionRepository{db: db}
}

func scanContactSubmission(scanner interface{ Scan(dest ...interface{}) error }) (*domain.ContactSubmission, error) {
	var s domain.ContactSubmission
	if err := scanner.Scan(
		&s.ID,
		&s.Name,
		&s.Email,
		&s.Subject,
		&s.Message,
		&s.IsRead,
		&s.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns submissions newest first.
func (r *contactSubmissionRepository) List(ctx context.Context) ([]*domain.ContactSubmission, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Select(contactSubmissionColumns...).
		From("contact_submissions").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build submission list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	submissions := make([]*domain.ContactSubmission, 0)
	for rows.Next() {
		submission, err := scanContactSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, submission)
	}
	return submissions, rows.Err()
}

func (r *contactSubmissionRepository) GetByID(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Select(contactSubmissionColumns...).
		From("contact_submissions").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build submission query: %w", err)
	}

	submission, err := scanContactSubmission(r.db.QueryRowContext(ctx, sqlStr, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "contact submission", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return submission, nil
}

func (r *contactSubmissionRepository) Create(ctx context.Context, submission *domain.ContactSubmission) error {
	if submission.ID == "" {
		submission.ID = uuid.New().String()
	}
	submission.IsRead = false
	submission.CreatedAt = time.Now().UTC()

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Insert("contact_submissions").
		Columns(contactSubmissionColumns...).
		Values(
			submission.ID,
			submission.Name,
			submission.Email,
			submission.Subject,
			submission.Message,
			submission.IsRead,
			submission.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build submission insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

// MarkAsRead flips the read flag, the only mutable field of a submission.
func (r *contactSubmissionRepository) MarkAsRead(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Update("contact_submissions").
		Set("is_read", true).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(contactSubmissionColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build submission update: %w", err)
	}

	submission, err := scanContactSubmission(r.db.QueryRowContext(ctx, sqlStr, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "contact submission", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to mark submission as read: %w", err)
	}
	return submission, nil
}

func (r *contactSubmissionRepository) Delete(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Delete("contact_submissions").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(contactSubmissionColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build submission delete: %w", err)
	}

	submission, err := scanContactSubmission(r.db.QueryRowContext(ctx, sqlStr, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "contact submission", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete submission: %w", err)
	}
	return submission, nil
}

// CountUnread is a head-only count of unread submissions.
func (r *contactSubmissionRepository) CountUnread(ctx context.Context) (int, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlStr, args, err := psql.Select("COUNT(*)").
		From("contact_submissions").
		Where(sq.Eq{"is_read": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build unread count query: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread submissions: %w", err)
	}
	return count, nil
}
