package tenant

import (
	"context"
	"time"

	"github.com/easyhr/backend/internal"
)

// Tenant is an organization. Rows are immutable after creation; no update or
// delete path exists.
type Tenant struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Subdomain string    `json:"subdomain" gorm:"not null"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}

type CreateTenantDTO struct {
	Subdomain string `json:"subdomain"`
}

func (dto CreateTenantDTO) Validate() error {
	if dto.Subdomain == "" {
		return internal.NewRequiredFieldError("Subdomain")
	}
	return nil
}

type RepositoryAPI interface {
	Create(ctx context.Context, t *Tenant) error
	GetBySubdomain(ctx context.Context, subdomain string) (*Tenant, error)
	GetByID(ctx context.Context, id int64) (*Tenant, error)
}
