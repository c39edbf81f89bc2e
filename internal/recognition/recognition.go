package recognition

import (
	"context"
	"time"

	"github.com/easyhr/backend/internal/visibility"
)

// Recognition is a peer shout-out tied to a company value. Recognitions are
// tenant-wide: every role in the tenant sees all of them.
type Recognition struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	TenantID       int64     `json:"tenantId" gorm:"column:tenant_id;not null"`
	FromUserID     int64     `json:"fromUser" gorm:"column:from_user_id;not null"`
	ToUserID       int64     `json:"toUser" gorm:"column:to_user_id;not null"`
	CompanyValueID int64     `json:"companyValue" gorm:"column:company_value_id;not null"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt      time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Recognition) TableName() string {
	return "recognitions"
}

type Changes struct {
	CompanyValueID int64
	Description    string
}

type RepositoryAPI interface {
	Create(ctx context.Context, rec *Recognition) error
	List(ctx context.Context, pred visibility.Predicate) ([]*Recognition, error)
	Update(ctx context.Context, pred visibility.Predicate, id int64, changes Changes) error
	Delete(ctx context.Context, pred visibility.Predicate, id int64) error
}
