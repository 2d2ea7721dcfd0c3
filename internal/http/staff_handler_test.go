package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aea-eng/aea-backend/internal/domain"
)

func newStaffMux(t *testing.T, repo domain.StaffMemberRepository) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	NewStaffHandler(repo, testAuthMiddleware(), testLogger(t)).RegisterRoutes(mux)
	return mux
}

func authedStaffRequest(method, target string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Authorization", "Bearer some-token")
	return req
}

func TestStaffHandlerList(t *testing.T) {
	t.Run("includes inactive members", func(t *testing.T) {
		mux := newStaffMux(t, &stubStaffRepo{
			listFn: func(ctx context.Context, activeOnly bool) ([]*domain.StaffMember, error) {
				assert.False(t, activeOnly)
				return []*domain.StaffMember{
					{ID: "staff-1", Name: "Joseph Harner", IsActive: true},
					{ID: "staff-2", Name: "Retired Engineer", IsActive: false},
				}, nil
			},
		})

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, authedStaffRequest("GET", "/api/staff.list", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var members []*domain.StaffMember
		require.NoError(t, json.NewDecoder(w.Body).Decode(&members))
		require.Len(t, members, 2)
	})

	t.Run("requires auth", func(t *testing.T) {
		mux := http.NewServeMux()
		repo := &stubStaffRepo{
			listFn: func(ctx context.Context, activeOnly bool) ([]*domain.StaffMember, error) {
				t.Fatal("List should not be called")
				return nil, nil
			},
		}
		NewStaffHandler(repo, rejectingAuthMiddleware(), testLogger(t)).RegisterRoutes(mux)

		req := httptest.NewRequest("GET", "/api/staff.list", nil)
		req.Header.Set("Authorization", "Bearer bad")
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestStaffHandlerCreate(t *testing.T) {
	t.Run("valid payload defaults to active", func(t *testing.T) {
		mux := newStaffMux(t, &stubStaffRepo{
			createFn: func(ctx context.Context, member *domain.StaffMember) error {
				assert.True(t, member.IsActive)
				member.ID = "staff-1"
				return nil
			},
		})

		body, _ := json.Marshal(map[string]interface{}{
			"name":  "Joseph Harner",
			"title": "Agricultural Engineer",
		})
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, authedStaffRequest("POST", "/api/staff.create", body))

		require.Equal(t, http.StatusCreated, w.Code)
		var member domain.StaffMember
		require.NoError(t, json.NewDecoder(w.Body).Decode(&member))
		assert.Equal(t, "staff-1", member.ID)
	})

	t.Run("blank name", func(t *testing.T) {
		mux := newStaffMux(t, &stubStaffRepo{
			createFn: func(ctx context.Context, member *domain.StaffMember) error {
				t.Fatal("Create should not be called")
				return nil
			},
		})

		body, _ := json.Marshal(map[string]interface{}{"name": "   "})
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, authedStaffRequest("POST", "/api/staff.create", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStaffHandlerUpdate(t *testing.T) {
	t.Run("partial update renames the photo field", func(t *testing.T) {
		mux := newStaffMux(t, &stubStaffRepo{
			updateFn: func(ctx context.Context, id string, fields domain.Fields) (*domain.StaffMember, error) {
				assert.Equal(t, "staff-1", id)
				assert.Equal(t, domain.Fields{"photoUrl": "https://cdn.example.com/harner.jpg"}, fields)
				return &domain.StaffMember{ID: id, PhotoURL: "https://cdn.example.com/harner.jpg"}, nil
			},
		})

		body, _ := json.Marshal(map[string]interface{}{
			"photoUrl": "https://cdn.example.com/harner.jpg",
		})
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, authedStaffRequest("POST", "/api/staff.update?id=staff-1", body))

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown member", func(t *testing.T) {
		mux := newStaffMux(t, &stubStaffRepo{})

		body, _ := json.Marshal(map[string]interface{}{"bio": "Updated bio."})
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, authedStaffRequest("POST", "/api/staff.update?id=missing", body))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestStaffHandlerDelete(t *testing.T) {
	mux := newStaffMux(t, &stubStaffRepo{
		deleteFn: func(ctx context.Context, id string) (*domain.StaffMember, error) {
			return &domain.StaffMember{ID: id, Name: "Joseph Harner"}, nil
		},
	})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, authedStaffRequest("POST", "/api/staff.delete?id=staff-1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool                `json:"success"`
		Deleted *domain.StaffMember `json:"deleted"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "staff-1", resp.Deleted.ID)
}
