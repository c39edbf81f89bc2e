package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/easyhr/backend/internal/feedback"
	"github.com/easyhr/backend/internal/visibility"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, f *feedback.Feedback) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FeedbackRepository) List(ctx context.Context, pred visibility.Predicate) ([]*feedback.Feedback, error) {
	var feedbacks []*feedback.Feedback
	q := applyPredicate(r.db.WithContext(ctx), pred)
	if err := q.Order("created_at DESC").Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	return feedbacks, nil
}

func (r *FeedbackRepository) Update(ctx context.Context, pred visibility.Predicate, id int64, changes feedback.Changes) error {
	q := applyPredicate(r.db.WithContext(ctx).Model(&feedback.Feedback{}), pred)
	return q.Where("id = ?", id).Updates(map[string]interface{}{
		"description":  changes.Description,
		"is_anonymous": changes.IsAnonymous,
		"updated_at":   time.Now(),
	}).Error
}

func (r *FeedbackRepository) Delete(ctx context.Context, pred visibility.Predicate, id int64) error {
	q := applyPredicate(r.db.WithContext(ctx), pred)
	return q.Where("id = ?", id).Delete(&feedback.Feedback{}).Error
}

func applyPredicate(q *gorm.DB, pred visibility.Predicate) *gorm.DB {
	q = q.Where("tenant_id = ?", pred.TenantID)
	if pred.ParticipantID != nil {
		q = q.Where("user_id = ? OR manager_id = ?", *pred.ParticipantID, *pred.ParticipantID)
	}
	return q
}
