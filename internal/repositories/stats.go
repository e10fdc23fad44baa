package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-library-catalog/internal/logger"
	"github.com/sbilibin2017/gw-library-catalog/internal/models"
)

// StatsReadRepository computes dashboard counters from the database
type StatsReadRepository struct {
	db *sqlx.DB
}

func NewStatsReadRepository(db *sqlx.DB) *StatsReadRepository {
	return &StatsReadRepository{db: db}
}

// GetDashboard returns the current dashboard counters.
func (r *StatsReadRepository) GetDashboard(ctx context.Context) (*models.DashboardStats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM books) AS total_books,
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM reservations WHERE status = $1) AS pending_reservations,
			(SELECT COUNT(*) FROM loans WHERE status = $2) AS active_loans,
			(SELECT COUNT(*) FROM loans WHERE status = $3) AS overdue_loans
	`

	var stats models.DashboardStats
	err := r.db.GetContext(ctx, &stats, query,
		models.ReservationPending, models.LoanActive, models.LoanOverdue)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", stats,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// StatsCacheRepository caches dashboard counters in Redis
type StatsCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached stats
}

// NewStatsCacheRepository creates a new repository instance with the given TTL
func NewStatsCacheRepository(client *redis.Client, expiration time.Duration) *StatsCacheRepository {
	return &StatsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

const dashboardStatsKey = "dashboard_stats"

// GetDashboard fetches cached dashboard counters
func (r *StatsCacheRepository) GetDashboard(ctx context.Context) (*models.DashboardStats, error) {
	val, err := r.client.Get(ctx, dashboardStatsKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", dashboardStatsKey,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("dashboard stats not found in cache")
		}
		return nil, err
	}

	var stats models.DashboardStats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		logger.Log.Infow(
			"key", dashboardStatsKey,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", dashboardStatsKey,
		"result", stats,
		"error", nil,
	)

	return &stats, nil
}

// SetDashboard caches dashboard counters with expiration
func (r *StatsCacheRepository) SetDashboard(ctx context.Context, stats *models.DashboardStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, dashboardStatsKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", dashboardStatsKey,
		"stats", stats,
		"result", "ok",
		"error", err,
	)

	return err
}
