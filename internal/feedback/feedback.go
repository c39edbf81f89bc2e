package feedback

import (
	"context"
	"time"

	"github.com/easyhr/backend/internal/visibility"
)

// Feedback is a free-form note from a user. Anonymous entries keep the author
// reference in storage; anonymity is a presentation concern. The manager
// reference is denormalized from the author's profile at creation time.
type Feedback struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	TenantID    int64     `json:"tenantId" gorm:"column:tenant_id;not null"`
	UserID      int64     `json:"user" gorm:"column:user_id;not null"`
	ManagerID   *int64    `json:"manager,omitempty" gorm:"column:manager_id"`
	Description string    `json:"description"`
	IsAnonymous bool      `json:"isAnonymous" gorm:"column:is_anonymous"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}

type Changes struct {
	Description string
	IsAnonymous bool
}

type RepositoryAPI interface {
	Create(ctx context.Context, f *Feedback) error
	List(ctx context.Context, pred visibility.Predicate) ([]*Feedback, error)
	Update(ctx context.Context, pred visibility.Predicate, id int64, changes Changes) error
	Delete(ctx context.Context, pred visibility.Predicate, id int64) error
}
