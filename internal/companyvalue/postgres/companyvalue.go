package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/easyhr/backend/internal/companyvalue"
	"github.com/easyhr/backend/internal/visibility"
)

type CompanyValueRepository struct {
	db *gorm.DB
}

func NewCompanyValueRepository(db *gorm.DB) *CompanyValueRepository {
	return &CompanyValueRepository{db: db}
}

func (r *CompanyValueRepository) Create(ctx context.Context, cv *companyvalue.CompanyValue) error {
	return r.db.WithContext(ctx).Create(cv).Error
}

func (r *CompanyValueRepository) List(ctx context.Context, pred visibility.Predicate) ([]*companyvalue.CompanyValue, error) {
	var values []*companyvalue.CompanyValue
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", pred.TenantID).
		Order("created_at DESC").
		Find(&values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (r *CompanyValueRepository) Update(ctx context.Context, pred visibility.Predicate, id int64, changes companyvalue.Changes) error {
	return r.db.WithContext(ctx).Model(&companyvalue.CompanyValue{}).
		Where("tenant_id = ? AND id = ?", pred.TenantID, id).
		Updates(map[string]interface{}{
			"title":       changes.Title,
			"description": changes.Description,
			"updated_at":  time.Now(),
		}).Error
}

func (r *CompanyValueRepository) Delete(ctx context.Context, pred visibility.Predicate, id int64) error {
	return r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", pred.TenantID, id).
		Delete(&companyvalue.CompanyValue{}).Error
}
