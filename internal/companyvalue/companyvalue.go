package companyvalue

import (
	"context"
	"time"

	"github.com/easyhr/backend/internal/visibility"
)

// CompanyValue is a tenant-defined value that recognitions reference.
// Values are tenant-wide: every role sees the full list.
type CompanyValue struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	TenantID    int64     `json:"tenantId" gorm:"column:tenant_id;not null"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (CompanyValue) TableName() string {
	return "company_values"
}

type Changes struct {
	Title       string
	Description string
}

type RepositoryAPI interface {
	Create(ctx context.Context, cv *CompanyValue) error
	List(ctx context.Context, pred visibility.Predicate) ([]*CompanyValue, error)
	Update(ctx context.Context, pred visibility.Predicate, id int64, changes Changes) error
	Delete(ctx context.Context, pred visibility.Predicate, id int64) error
}
