package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aea-eng/aea-backend/pkg/logger"
)

func TestDashboardServiceGetStats(t *testing.T) {
	ctx := context.Background()

	count := func(n int) func(ctx context.Context) (int, error) {
		return func(ctx context.Context) (int, error) { return n, nil }
	}

	t.Run("aggregates all four counts", func(t *testing.T) {
		svc := NewDashboardService(DashboardServiceConfig{
			PageRepository:    &fakePageRepository{countFn: count(5)},
			StaffRepository:   &fakeStaffRepository{countFn: count(3)},
			ProjectRepository: &fakeProjectRepository{countFn: count(12)},
			ContactRepository: &fakeContactRepository{countUnreadFn: count(2)},
			Logger:            logger.NewTestLogger(t),
		})

		stats, err := svc.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, stats.Pages)
		assert.Equal(t, 3, stats.StaffMembers)
		assert.Equal(t, 12, stats.Projects)
		assert.Equal(t, 2, stats.UnreadSubmissions)
	})

	t.Run("any failing count fails the whole call", func(t *testing.T) {
		svc := NewDashboardService(DashboardServiceConfig{
			PageRepository:  &fakePageRepository{countFn: count(5)},
			StaffRepository: &fakeStaffRepository{countFn: count(3)},
			ProjectRepository: &fakeProjectRepository{countFn: func(ctx context.Context) (int, error) {
				return 0, errors.New("connection reset")
			}},
			ContactRepository: &fakeContactRepository{countUnreadFn: count(2)},
			Logger:            logger.NewTestLogger(t),
		})

		stats, err := svc.GetStats(ctx)
		require.Error(t, err)
		assert.Nil(t, stats)
	})
}
