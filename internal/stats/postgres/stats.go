package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/easyhr/backend/internal/feedback"
	"github.com/easyhr/backend/internal/stats"
)

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) CountTenantFeedback(ctx context.Context, tenantID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&feedback.Feedback{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error
	return count, err
}

func (r *StatsRepository) CountManagerFeedback(ctx context.Context, tenantID, managerID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&feedback.Feedback{}).
		Where("tenant_id = ? AND manager_id = ?", tenantID, managerID).
		Count(&count).Error
	return count, err
}

func (r *StatsRepository) CountUserFeedback(ctx context.Context, tenantID, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&feedback.Feedback{}).
		Where("tenant_id = ? AND user_id = ?", tenantID, userID).
		Count(&count).Error
	return count, err
}

// TenantWorklogEntries joins each worklog row to its owner's current rate.
func (r *StatsRepository) TenantWorklogEntries(ctx context.Context, tenantID int64) ([]stats.WorklogEntry, error) {
	var entries []stats.WorklogEntry
	err := r.db.WithContext(ctx).
		Table("worklogs").
		Select("worklogs.hours AS hours, users.hourly_rate AS owner_rate").
		Joins("JOIN users ON users.id = worklogs.user_id").
		Where("worklogs.tenant_id = ?", tenantID).
		Scan(&entries).Error
	return entries, err
}

func (r *StatsRepository) ManagerWorklogEntries(ctx context.Context, tenantID, managerID int64) ([]stats.WorklogEntry, error) {
	var entries []stats.WorklogEntry
	err := r.db.WithContext(ctx).
		Table("worklogs").
		Select("worklogs.hours AS hours, users.hourly_rate AS owner_rate").
		Joins("JOIN users ON users.id = worklogs.user_id").
		Where("worklogs.tenant_id = ? AND worklogs.manager_id = ?", tenantID, managerID).
		Scan(&entries).Error
	return entries, err
}

// UserWorklogHours sums by ownership alone; a user's own history follows
// them regardless of tenant.
func (r *StatsRepository) UserWorklogHours(ctx context.Context, userID int64) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Table("worklogs").
		Select("COALESCE(SUM(hours), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error
	return total, err
}
