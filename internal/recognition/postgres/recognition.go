package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/easyhr/backend/internal/recognition"
	"github.com/easyhr/backend/internal/visibility"
)

type RecognitionRepository struct {
	db *gorm.DB
}

func NewRecognitionRepository(db *gorm.DB) *RecognitionRepository {
	return &RecognitionRepository{db: db}
}

func (r *RecognitionRepository) Create(ctx context.Context, rec *recognition.Recognition) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *RecognitionRepository) List(ctx context.Context, pred visibility.Predicate) ([]*recognition.Recognition, error) {
	var recognitions []*recognition.Recognition
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", pred.TenantID).
		Order("created_at DESC").
		Find(&recognitions).Error
	if err != nil {
		return nil, err
	}
	return recognitions, nil
}

func (r *RecognitionRepository) Update(ctx context.Context, pred visibility.Predicate, id int64, changes recognition.Changes) error {
	return r.db.WithContext(ctx).Model(&recognition.Recognition{}).
		Where("tenant_id = ? AND id = ?", pred.TenantID, id).
		Updates(map[string]interface{}{
			"company_value_id": changes.CompanyValueID,
			"description":      changes.Description,
			"updated_at":       time.Now(),
		}).Error
}

func (r *RecognitionRepository) Delete(ctx context.Context, pred visibility.Predicate, id int64) error {
	return r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", pred.TenantID, id).
		Delete(&recognition.Recognition{}).Error
}
