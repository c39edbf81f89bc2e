package worklog

import (
	"context"
	"time"

	"github.com/easyhr/backend/internal/visibility"
)

// Worklog is a unit of recorded work. The manager reference is denormalized
// at creation time from the author's profile and is not kept in sync with
// later manager changes.
type Worklog struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	TenantID    int64     `json:"tenantId" gorm:"column:tenant_id;not null"`
	UserID      int64     `json:"user" gorm:"column:user_id;not null"`
	ManagerID   *int64    `json:"manager,omitempty" gorm:"column:manager_id"`
	ServiceDate string    `json:"serviceDate" gorm:"column:service_date"`
	Hours       float64   `json:"hours"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Worklog) TableName() string {
	return "worklogs"
}

// Changes are the columns an update may touch.
type Changes struct {
	ServiceDate string
	Hours       float64
	Notes       string
}

type RepositoryAPI interface {
	Create(ctx context.Context, w *Worklog) error
	List(ctx context.Context, pred visibility.Predicate) ([]*Worklog, error)
	Update(ctx context.Context, pred visibility.Predicate, id int64, changes Changes) error
	Delete(ctx context.Context, pred visibility.Predicate, id int64) error
}
