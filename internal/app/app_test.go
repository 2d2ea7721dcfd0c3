package app

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aea-eng/aea-backend/config"
	"github.com/aea-eng/aea-backend/pkg/logger"
	"github.com/aea-eng/aea-backend/pkg/mailer"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host: "127.0.0.1",
			Port: 0,
		},
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret",
			TokenExpiryHours: 1,
		},
		Environment: "development",
		LogLevel:    "disabled",
		Version:     "test",
	}
}

// newInitializedApp wires a full application against a sqlmock handle. The
// schema statements run during InitDB, so each table creation is expected.
func newInitializedApp(t *testing.T) (*App, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	for i := 0; i < 6; i++ {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS").
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	app := NewApp(testConfig(),
		WithLogger(logger.NewTestLogger(t)),
		WithMockDB(db),
		WithMockMailer(mailer.NewConsoleMailer()),
	)
	require.NoError(t, app.Initialize())

	return app, mock
}

func TestAppInitialize(t *testing.T) {
	app, mock := newInitializedApp(t)

	assert.NotNil(t, app.GetDB())
	assert.NotNil(t, app.GetAdminRepository())
	assert.NotNil(t, app.GetSettingsRepository())
	assert.NotNil(t, app.GetPageRepository())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppInitMailerDefaultsToConsoleInDevelopment(t *testing.T) {
	app := NewApp(testConfig(), WithLogger(logger.NewTestLogger(t)))
	require.NoError(t, app.InitMailer())

	_, ok := app.mailer.(*mailer.ConsoleMailer)
	assert.True(t, ok)
}

func TestAppRoutesRegistered(t *testing.T) {
	app, _ := newInitializedApp(t)

	t.Run("health endpoint", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/health", nil)
		w := httptest.NewRecorder()
		app.GetMux().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "ok", resp["status"])
		assert.Equal(t, "test", resp["version"])
	})

	t.Run("admin routes reject anonymous requests", func(t *testing.T) {
		for _, path := range []string{
			"/api/projects.list",
			"/api/staff.list",
			"/api/pages.list",
			"/api/settings.get",
			"/api/contacts.list",
			"/api/dashboard.stats",
			"/api/auth.me",
		} {
			req := httptest.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()
			app.GetMux().ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		}
	})

	t.Run("public settings endpoint is open", func(t *testing.T) {
		app, mock := newInitializedApp(t)
		mock.ExpectQuery("SELECT .* FROM settings").WillReturnError(sql.ErrNoRows)

		req := httptest.NewRequest("GET", "/api/public.settings", nil)
		w := httptest.NewRecorder()
		app.GetMux().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{}`, w.Body.String())
	})
}

func TestAppShutdownClosesDatabase(t *testing.T) {
	app, mock := newInitializedApp(t)
	mock.ExpectClose()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, app.Shutdown(ctx))

	assert.NoError(t, mock.ExpectationsWereMet())
}
