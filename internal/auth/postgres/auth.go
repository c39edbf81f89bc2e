package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/easyhr/backend/internal"
	"github.com/easyhr/backend/internal/auth"
	"gorm.io/gorm"
)

// Repository loads the user and tenant rows the actor context is built from.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetUserByID(ctx context.Context, id int64) (*auth.UserRecord, error) {
	var user auth.UserRecord
	var managerID sql.NullInt64

	query := `SELECT id, tenant_id, first_name, last_name, email, role, status, manager_id, hourly_rate
	          FROM users WHERE id = ?`

	row := r.db.WithContext(ctx).Raw(query, id).Row()
	err := row.Scan(&user.ID, &user.TenantID, &user.FirstName, &user.LastName,
		&user.Email, &user.Role, &user.Status, &managerID, &user.HourlyRate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}

	if managerID.Valid {
		user.ManagerID = &managerID.Int64
	}
	return &user, nil
}

func (r *Repository) GetTenantByID(ctx context.Context, id int64) (*auth.Tenant, error) {
	var tenant auth.Tenant

	query := `SELECT id, subdomain, enabled FROM tenants WHERE id = ?`

	row := r.db.WithContext(ctx).Raw(query, id).Row()
	if err := row.Scan(&tenant.ID, &tenant.Subdomain, &tenant.Enabled); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal.ErrTenantNotFound
		}
		return nil, err
	}
	return &tenant, nil
}
