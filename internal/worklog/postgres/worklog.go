package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/easyhr/backend/internal/visibility"
	"github.com/easyhr/backend/internal/worklog"
)

type WorklogRepository struct {
	db *gorm.DB
}

func NewWorklogRepository(db *gorm.DB) *WorklogRepository {
	return &WorklogRepository{db: db}
}

func (r *WorklogRepository) Create(ctx context.Context, w *worklog.Worklog) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *WorklogRepository) List(ctx context.Context, pred visibility.Predicate) ([]*worklog.Worklog, error) {
	var worklogs []*worklog.Worklog
	q := applyPredicate(r.db.WithContext(ctx), pred)
	if err := q.Order("created_at DESC").Find(&worklogs).Error; err != nil {
		return nil, err
	}
	return worklogs, nil
}

// Update only touches rows inside the predicate. A miss is not an error:
// zero rows affected still reports success to the caller.
func (r *WorklogRepository) Update(ctx context.Context, pred visibility.Predicate, id int64, changes worklog.Changes) error {
	q := applyPredicate(r.db.WithContext(ctx).Model(&worklog.Worklog{}), pred)
	return q.Where("id = ?", id).Updates(map[string]interface{}{
		"service_date": changes.ServiceDate,
		"hours":        changes.Hours,
		"notes":        changes.Notes,
		"updated_at":   time.Now(),
	}).Error
}

func (r *WorklogRepository) Delete(ctx context.Context, pred visibility.Predicate, id int64) error {
	q := applyPredicate(r.db.WithContext(ctx), pred)
	return q.Where("id = ?", id).Delete(&worklog.Worklog{}).Error
}

func applyPredicate(q *gorm.DB, pred visibility.Predicate) *gorm.DB {
	q = q.Where("tenant_id = ?", pred.TenantID)
	if pred.ParticipantID != nil {
		q = q.Where("user_id = ? OR manager_id = ?", *pred.ParticipantID, *pred.ParticipantID)
	}
	return q
}
