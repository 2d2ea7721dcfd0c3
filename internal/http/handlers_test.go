package http

import (
	"context"
	"errors"
	"testing"

	"github.com/aea-eng/aea-backend/internal/domain"
	"github.com/aea-eng/aea-backend/internal/http/middleware"
	"github.com/aea-eng/aea-backend/pkg/logger"
)

// Shared handler-test plumbing: stub repositories and services with
// overridable func fields, and an auth middleware that accepts any
// bearer token.

type stubVerifier struct {
	admin *domain.Admin
	err   error
}

func (s *stubVerifier) VerifyToken(ctx context.Context, token string) (*domain.Admin, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.admin, nil
}

func testAuthMiddleware() *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(&stubVerifier{
		admin: &domain.Admin{ID: "admin-1", Email: "admin@example.com", Name: "Site Admin"},
	})
}

func rejectingAuthMiddleware() *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(&stubVerifier{err: errors.New("invalid token")})
}

func testLogger(t *testing.T) logger.Logger {
	return logger.NewTestLogger(t)
}

type stubProjectRepo struct {
	listFn   func(ctx context.Context, activeOnly bool) ([]*domain.Project, error)
	getFn    func(ctx context.Context, id string) (*domain.Project, error)
	createFn func(ctx context.Context, project *domain.Project) error
	updateFn func(ctx context.Context, id string, fields domain.Fields) (*domain.Project, error)
	deleteFn func(ctx context.Context, id string) (*domain.Project, error)
}

func (s *stubProjectRepo) List(ctx context.Context, activeOnly bool) ([]*domain.Project, error) {
	return s.listFn(ctx, activeOnly)
}

func (s *stubProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.getFn(ctx, id)
}

func (s *stubProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	return s.createFn(ctx, project)
}

func (s *stubProjectRepo) Update(ctx context.Context, id string, fields domain.Fields) (*domain.Project, error) {
	return s.updateFn(ctx, id, fields)
}

func (s *stubProjectRepo) Delete(ctx context.Context, id string) (*domain.Project, error) {
	return s.deleteFn(ctx, id)
}

func (s *stubProjectRepo) Count(ctx context.Context) (int, error) {
	return 0, nil
}

type stubPageRepo struct {
	listFn         func(ctx context.Context) ([]*domain.PageContent, error)
	getByNameFn    func(ctx context.Context, pageName string) (*domain.PageContent, error)
	createFn       func(ctx context.Context, page *domain.PageContent) error
	updateByNameFn func(ctx context.Context, pageName string, fields domain.Fields) (*domain.PageContent, error)
	deleteByNameFn func(ctx context.Context, pageName string) (*domain.PageContent, error)
}

func (s *stubPageRepo) List(ctx context.Context) ([]*domain.PageContent, error) {
	return s.listFn(ctx)
}

func (s *stubPageRepo) GetByID(ctx context.Context, id string) (*domain.PageContent, error) {
	return nil, &domain.ErrNotFound{Entity: "page", ID: id}
}

func (s *stubPageRepo) GetByPageName(ctx context.Context, pageName string) (*domain.PageContent, error) {
	return s.getByNameFn(ctx, pageName)
}

func (s *stubPageRepo) Create(ctx context.Context, page *domain.PageContent) error {
	return s.createFn(ctx, page)
}

func (s *stubPageRepo) UpdateByPageName(ctx context.Context, pageName string, fields domain.Fields) (*domain.PageContent, error) {
	return s.updateByNameFn(ctx, pageName, fields)
}

func (s *stubPageRepo) DeleteByPageName(ctx context.Context, pageName string) (*domain.PageContent, error) {
	return s.deleteByNameFn(ctx, pageName)
}

func (s *stubPageRepo) Count(ctx context.Context) (int, error) {
	return 0, nil
}

type stubStaffRepo struct {
	listFn   func(ctx context.Context, activeOnly bool) ([]*domain.StaffMember, error)
	getFn    func(ctx context.Context, id string) (*domain.StaffMember, error)
	createFn func(ctx context.Context, member *domain.StaffMember) error
	updateFn func(ctx context.Context, id string, fields domain.Fields) (*domain.StaffMember, error)
	deleteFn func(ctx context.Context, id string) (*domain.StaffMember, error)
}

func (s *stubStaffRepo) List(ctx context.Context, activeOnly bool) ([]*domain.StaffMember, error) {
	return s.listFn(ctx, activeOnly)
}

func (s *stubStaffRepo) GetByID(ctx context.Context, id string) (*domain.StaffMember, error) {
	if s.getFn == nil {
		return nil, &domain.ErrNotFound{Entity: "staff member", ID: id}
	}
	return s.getFn(ctx, id)
}

func (s *stubStaffRepo) Create(ctx context.Context, member *domain.StaffMember) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, member)
}

func (s *stubStaffRepo) Update(ctx context.Context, id string, fields domain.Fields) (*domain.StaffMember, error) {
	if s.updateFn == nil {
		return nil, &domain.ErrNotFound{Entity: "staff member", ID: id}
	}
	return s.updateFn(ctx, id, fields)
}

func (s *stubStaffRepo) Delete(ctx context.Context, id string) (*domain.StaffMember, error) {
	if s.deleteFn == nil {
		return nil, &domain.ErrNotFound{Entity: "staff member", ID: id}
	}
	return s.deleteFn(ctx, id)
}

func (s *stubStaffRepo) Count(ctx context.Context) (int, error) {
	return 0, nil
}

type stubSettingsRepo struct {
	getFn    func(ctx context.Context) (*domain.Settings, error)
	updateFn func(ctx context.Context, fields domain.Fields) (*domain.Settings, error)
}

func (s *stubSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	return s.getFn(ctx)
}

func (s *stubSettingsRepo) Update(ctx context.Context, fields domain.Fields) (*domain.Settings, error) {
	return s.updateFn(ctx, fields)
}

type stubContactService struct {
	submitFn   func(ctx context.Context, req *domain.CreateContactSubmissionRequest) (*domain.ContactSubmission, error)
	listFn     func(ctx context.Context) ([]*domain.ContactSubmission, error)
	getFn      func(ctx context.Context, id string) (*domain.ContactSubmission, error)
	markReadFn func(ctx context.Context, id string) (*domain.ContactSubmission, error)
	deleteFn   func(ctx context.Context, id string) (*domain.ContactSubmission, error)
}

func (s *stubContactService) Submit(ctx context.Context, req *domain.CreateContactSubmissionRequest) (*domain.ContactSubmission, error) {
	return s.submitFn(ctx, req)
}

func (s *stubContactService) List(ctx context.Context) ([]*domain.ContactSubmission, error) {
	return s.listFn(ctx)
}

func (s *stubContactService) GetByID(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	return s.getFn(ctx, id)
}

func (s *stubContactService) MarkAsRead(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	return s.markReadFn(ctx, id)
}

func (s *stubContactService) Delete(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	return s.deleteFn(ctx, id)
}
