package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/aea-eng/aea-backend/internal/domain"
	"github.com/aea-eng/aea-backend/pkg/logger"
)

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	Pages             int `json:"pages"`
	StaffMembers      int `json:"staffMembers"`
	Projects          int `json:"projects"`
	UnreadSubmissions int `json:"unreadSubmissions"`
}

// DashboardService aggregates counts across the content repositories.
type DashboardService struct {
	pageRepo    domain.PageContentRepository
	staffRepo   domain.StaffMemberRepository
	projectRepo domain.ProjectRepository
	contactRepo domain.ContactSubmissionRepository
	logger      logger.Logger
}

type DashboardServiceConfig struct {
	PageRepository    domain.PageContentRepository
	StaffRepository   domain.StaffMemberRepository
	ProjectRepository domain.ProjectRepository
	ContactRepository domain.ContactSubmissionRepository
	Logger            logger.Logger
}

func NewDashboardService(cfg DashboardServiceConfig) *DashboardService {
	return &DashboardService{
		pageRepo:    cfg.PageRepository,
		staffRepo:   cfg.StaffRepository,
		projectRepo: cfg.ProjectRepository,
		contactRepo: cfg.ContactRepository,
		logger:      cfg.Logger,
	}
}

// GetStats runs the four counts concurrently and fails if any of them fails.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.pageRepo.Count(ctx)
		if err != nil {
			return err
		}
		stats.Pages = count
		return nil
	})
	g.Go(func() error {
		count, err := s.staffRepo.Count(ctx)
		if err != nil {
			return err
		}
		stats.StaffMembers = count
		return nil
	})
	g.Go(func() error {
		count, err := s.projectRepo.Count(ctx)
		if err != nil {
			return err
		}
		stats.Projects = count
		return nil
	})
	g.Go(func() error {
		count, err := s.contactRepo.CountUnread(ctx)
		if err != nil {
			return err
		}
		stats.UnreadSubmissions = count
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.WithField("error", err.Error()).Error("Failed to collect dashboard stats")
		return nil, err
	}
	return stats, nil
}
