package service

import (
	"context"

	"github.com/aea-eng/aea-backend/internal/domain"
)

// Hand-rolled repository fakes. Each method delegates to an optional func
// field so a test overrides only what it needs.

type fakeAdminRepository struct {
	createFn     func(ctx context.Context, admin *domain.Admin) error
	getByIDFn    func(ctx context.Context, id string) (*domain.Admin, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.Admin, error)
}

func (f *fakeAdminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	return f.createFn(ctx, admin)
}

func (f *fakeAdminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeAdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	return f.getByEmailFn(ctx, email)
}

func (f *fakeAdminRepository) Update(ctx context.Context, id string, fields domain.Fields) (*domain.Admin, error) {
	return nil, nil
}

func (f *fakeAdminRepository) Delete(ctx context.Context, id string) (*domain.Admin, error) {
	return nil, nil
}

func (f *fakeAdminRepository) Count(ctx context.Context) (int, error) {
	return 0, nil
}

type fakeContactRepository struct {
	createFn      func(ctx context.Context, submission *domain.ContactSubmission) error
	listFn        func(ctx context.Context) ([]*domain.ContactSubmission, error)
	countUnreadFn func(ctx context.Context) (int, error)
}

func (f *fakeContactRepository) List(ctx context.Context) ([]*domain.ContactSubmission, error) {
	return f.listFn(ctx)
}

func (f *fakeContactRepository) GetByID(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	return nil, &domain.ErrNotFound{Entity: "contact submission", ID: id}
}

func (f *fakeContactRepository) Create(ctx context.Context, submission *domain.ContactSubmission) error {
	return f.createFn(ctx, submission)
}

func (f *fakeContactRepository) MarkAsRead(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	return nil, &domain.ErrNotFound{Entity: "contact submission", ID: id}
}

func (f *fakeContactRepository) Delete(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	return nil, &domain.ErrNotFound{Entity: "contact submission", ID: id}
}

func (f *fakeContactRepository) CountUnread(ctx context.Context) (int, error) {
	return f.countUnreadFn(ctx)
}

type fakeMailer struct {
	sendFn func(to string, submission *domain.ContactSubmission) error
	sent   []string
}

func (f *fakeMailer) SendContactNotification(to string, submission *domain.ContactSubmission) error {
	f.sent = append(f.sent, to)
	if f.sendFn != nil {
		return f.sendFn(to, submission)
	}
	return nil
}

type fakePageRepository struct {
	countFn func(ctx context.Context) (int, error)
}

func (f *fakePageRepository) List(ctx context.Context) ([]*domain.PageContent, error) {
	return nil, nil
}

func (f *fakePageRepository) GetByID(ctx context.Context, id string) (*domain.PageContent, error) {
	return nil, &domain.ErrNotFound{Entity: "page", ID: id}
}

func (f *fakePageRepository) GetByPageName(ctx context.Context, pageName string) (*domain.PageContent, error) {
	return nil, &domain.ErrNotFound{Entity: "page", ID: pageName}
}

func (f *fakePageRepository) Create(ctx context.Context, page *domain.PageContent) error {
	return nil
}

func (f *fakePageRepository) UpdateByPageName(ctx context.Context, pageName string, fields domain.Fields) (*domain.PageContent, error) {
	return nil, &domain.ErrNotFound{Entity: "page", ID: pageName}
}

func (f *fakePageRepository) DeleteByPageName(ctx context.Context, pageName string) (*domain.PageContent, error) {
	return nil, &domain.ErrNotFound{Entity: "page", ID: pageName}
}

func (f *fakePageRepository) Count(ctx context.Context) (int, error) {
	return f.countFn(ctx)
}

type fakeStaffRepository struct {
	countFn func(ctx context.Context) (int, error)
}

func (f *fakeStaffRepository) List(ctx context.Context, activeOnly bool) ([]*domain.StaffMember, error) {
	return nil, nil
}

func (f *fakeStaffRepository) GetByID(ctx context.Context, id string) (*domain.StaffMember, error) {
	return nil, &domain.ErrNotFound{Entity: "staff member", ID: id}
}

func (f *fakeStaffRepository) Create(ctx context.Context, member *domain.StaffMember) error {
	return nil
}

func (f *fakeStaffRepository) Update(ctx context.Context, id string, fields domain.Fields) (*domain.StaffMember, error) {
	return nil, &domain.ErrNotFound{Entity: "staff member", ID: id}
}

func (f *fakeStaffRepository) Delete(ctx context.Context, id string) (*domain.StaffMember, error) {
	return nil, &domain.ErrNotFound{Entity: "staff member", ID: id}
}

func (f *fakeStaffRepository) Count(ctx context.Context) (int, error) {
	return f.countFn(ctx)
}

type fakeProjectRepository struct {
	countFn func(ctx context.Context) (int, error)
}

func (f *fakeProjectRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Project, error) {
	return nil, nil
}

func (f *fakeProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return nil, &domain.ErrNotFound{Entity: "project", ID: id}
}

func (f *fakeProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	return nil
}

func (f *fakeProjectRepository) Update(ctx context.Context, id string, fields domain.Fields) (*domain.Project, error) {
	return nil, &domain.ErrNotFound{Entity: "project", ID: id}
}

func (f *fakeProjectRepository) Delete(ctx context.Context, id string) (*domain.Project, error) {
	return nil, &domain.ErrNotFound{Entity: "project", ID: id}
}

func (f *fakeProjectRepository) Count(ctx context.Context) (int, error) {
	return f.countFn(ctx)
}
