package services

import (
	"context"

	"github.com/sbilibin2017/gw-library-catalog/internal/logger"
	"github.com/sbilibin2017/gw-library-catalog/internal/models"
)

// StatsReader computes dashboard counters from the store.
type StatsReader interface {
	GetDashboard(ctx context.Context) (*models.DashboardStats, error)
}

// StatsCache caches dashboard counters.
type StatsCache interface {
	GetDashboard(ctx context.Context) (*models.DashboardStats, error)
	SetDashboard(ctx context.Context, stats *models.DashboardStats) error
}

// UserLister lists user accounts.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// AdminService serves the admin read surface: dashboard counters
// (cache-aside through Redis) and the user listing.
type AdminService struct {
	statsReader StatsReader
	statsCache  StatsCache
	users       UserLister
}

// NewAdminService creates a new AdminService.
func NewAdminService(statsReader StatsReader, statsCache StatsCache, users UserLister) *AdminService {
	return &AdminService{
		statsReader: statsReader,
		statsCache:  statsCache,
		users:       users,
	}
}

// GetDashboard returns the dashboard counters, preferring the cache.
// A cache write failure is logged, not surfaced. Admin only.
func (svc *AdminService) GetDashboard(ctx context.Context, actor models.Actor) (*models.DashboardStats, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	if svc.statsCache != nil {
		if stats, err := svc.statsCache.GetDashboard(ctx); err == nil {
			return stats, nil
		}
	}

	stats, err := svc.statsReader.GetDashboard(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read dashboard stats", "error", err)
		return nil, err
	}

	if svc.statsCache != nil {
		if err := svc.statsCache.SetDashboard(ctx, stats); err != nil {
			logger.Log.Errorw("failed to cache dashboard stats", "error", err)
		}
	}

	return stats, nil
}

// ListUsers returns all user accounts, newest first. Admin only.
func (svc *AdminService) ListUsers(ctx context.Context, actor models.Actor) ([]models.UserDB, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	users, err := svc.users.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}

	return users, nil
}
