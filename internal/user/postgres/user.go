package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/easyhr/backend/internal"
	"github.com/easyhr/backend/internal/auth"
	"github.com/easyhr/backend/internal/user"
	"github.com/easyhr/backend/internal/visibility"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// List returns users matching the visibility predicate, newest first.
func (r *UserRepository) List(ctx context.Context, pred visibility.Predicate) ([]*user.User, error) {
	var users []*user.User
	q := applyPredicate(r.db.WithContext(ctx), pred)
	if err := q.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, changes user.ProfileChanges) error {
	updates := map[string]interface{}{
		"first_name":  changes.FirstName,
		"last_name":   changes.LastName,
		"email":       changes.Email,
		"dob":         changes.Dob,
		"department":  changes.Department,
		"designation": changes.Designation,
		"hourly_rate": changes.HourlyRate,
		"role":        changes.Role,
		"manager_id":  changes.ManagerID,
		"updated_at":  time.Now(),
	}
	if !changes.JoiningDate.IsZero() {
		updates["joining_date"] = changes.JoiningDate
	}
	return r.db.WithContext(ctx).Model(&user.User{}).Where("id = ?", id).Updates(updates).Error
}

func (r *UserRepository) SetStatus(ctx context.Context, id int64, status auth.Status) error {
	return r.db.WithContext(ctx).Model(&user.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()}).Error
}

// applyPredicate translates a visibility predicate into WHERE clauses. The
// tenant clause is unconditional; every listing stays inside one tenant.
func applyPredicate(q *gorm.DB, pred visibility.Predicate) *gorm.DB {
	q = q.Where("tenant_id = ?", pred.TenantID)
	if pred.SelfID != nil {
		q = q.Where("id = ?", *pred.SelfID)
	}
	if pred.ExcludeID != nil {
		q = q.Where("id <> ?", *pred.ExcludeID)
	}
	if pred.ManagedBy != nil {
		q = q.Where("manager_id = ?", *pred.ManagedBy)
	}
	return q
}
