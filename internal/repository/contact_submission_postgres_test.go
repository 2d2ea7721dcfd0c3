package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aea-eng/aea-backend/internal/domain"
	"github.com/aea-eng/aea-backend/internal/repository/testutil"
)

func contactSubmissionRows(submissions ...*domain.ContactSubmission) *sqlmock.Rows {
	rows := sqlmock.NewRows(contactSubmissionColumns)
	for _, s := range submissions {
		rows.AddRow(s.ID, s.Name, s.Email, s.Subject, s.Message, s.IsRead, s.CreatedAt)
	}
	return rows
}

func TestContactSubmissionRepository(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewContactSubmissionRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	testSubmission := &domain.ContactSubmission{
		ID:        "sub-1",
		Name:      "A Farmer",
		Email:     "farmer@example.com",
		Subject:   "Grain bin design",
		Message:   "Looking for help with a new grain bin.",
		IsRead:    false,
		CreatedAt: now,
	}

	t.Run("List", func(t *testing.T) {
		t.Run("newest first", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC`)).
				WillReturnRows(contactSubmissionRows(testSubmission))

			submissions, err := repo.List(ctx)
			require.NoError(t, err)
			require.Len(t, submissions, 1)
			assert.Equal(t, testSubmission.Email, submissions[0].Email)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("empty table yields an empty slice", func(t *testing.T) {
			mock.ExpectQuery(`SELECT .+ FROM contact_submissions`).
				WillReturnRows(contactSubmissionRows())

			submissions, err := repo.List(ctx)
			require.NoError(t, err)
			assert.NotNil(t, submissions)
			assert.Empty(t, submissions)
		})
	})

	t.Run("Create", func(t *testing.T) {
		t.Run("always starts unread", func(t *testing.T) {
			submission := &domain.ContactSubmission{
				Name:    "B Rancher",
				Email:   "rancher@example.com",
				Subject: "Waste system",
				Message: "Need a waste management plan.",
				IsRead:  true, // must be overridden
			}

			mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO contact_submissions`)).
				WithArgs(
					sqlmock.AnyArg(), submission.Name, submission.Email,
					submission.Subject, submission.Message, false, sqlmock.AnyArg(),
				).
				WillReturnResult(sqlmock.NewResult(0, 1))

			err := repo.Create(ctx, submission)
			require.NoError(t, err)
			assert.NotEmpty(t, submission.ID)
			assert.False(t, submission.IsRead)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("MarkAsRead", func(t *testing.T) {
		t.Run("flips the flag and returns the row", func(t *testing.T) {
			read := *testSubmission
			read.IsRead = true

			mock.ExpectQuery(regexp.QuoteMeta(
				`UPDATE contact_submissions SET is_read = $1 WHERE id = $2 RETURNING`,
			)).
				WithArgs(true, testSubmission.ID).
				WillReturnRows(contactSubmissionRows(&read))

			submission, err := repo.MarkAsRead(ctx, testSubmission.ID)
			require.NoError(t, err)
			assert.True(t, submission.IsRead)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("not found", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(`UPDATE contact_submissions`)).
				WillReturnRows(contactSubmissionRows())

			submission, err := repo.MarkAsRead(ctx, "missing")
			require.Error(t, err)
			assert.Nil(t, submission)
			assert.True(t, domain.IsNotFound(err))
		})
	})

	t.Run("Delete", func(t *testing.T) {
		t.Run("returns the deleted row", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(
				`DELETE FROM contact_submissions WHERE id = $1 RETURNING`,
			)).
				WithArgs(testSubmission.ID).
				WillReturnRows(contactSubmissionRows(testSubmission))

			submission, err := repo.Delete(ctx, testSubmission.ID)
			require.NoError(t, err)
			assert.Equal(t, testSubmission.Subject, submission.Subject)
		})

		t.Run("not found", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM contact_submissions`)).
				WithArgs("missing").
				WillReturnRows(contactSubmissionRows())

			_, err := repo.Delete(ctx, "missing")
			require.Error(t, err)
			assert.True(t, domain.IsNotFound(err))
			assert.Contains(t, err.Error(), "contact submission not found")
		})
	})

	t.Run("CountUnread", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT COUNT(*) FROM contact_submissions WHERE is_read = $1`,
		)).
			WithArgs(false).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

		count, err := repo.CountUnread(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})
}
