package user

import (
	"context"
	"time"

	"github.com/easyhr/backend/internal/auth"
	"github.com/easyhr/backend/internal/tenant"
	"github.com/easyhr/backend/internal/visibility"
)

type User struct {
	ID           int64       `json:"id" gorm:"primaryKey"`
	TenantID     int64       `json:"tenantId" gorm:"column:tenant_id;not null"`
	FirstName    string      `json:"firstName" gorm:"column:first_name"`
	LastName     string      `json:"lastName" gorm:"column:last_name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-" gorm:"column:password_hash"`
	Role         auth.Role   `json:"role"`
	Status       auth.Status `json:"status"`
	ManagerID    *int64      `json:"manager,omitempty" gorm:"column:manager_id"`
	HourlyRate   float64     `json:"hourlyRate" gorm:"column:hourly_rate"`
	Dob          string      `json:"dob"`
	Department   string      `json:"department"`
	Designation  string      `json:"designation"`
	JoiningDate  *time.Time  `json:"joiningDate,omitempty" gorm:"column:joining_date"`
	CreatedAt    time.Time   `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt    time.Time   `json:"updatedAt" gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}

// ProfileChanges are the columns a profile update may touch.
type ProfileChanges struct {
	FirstName   string
	LastName    string
	Email       string
	Dob         string
	Department  string
	Designation string
	JoiningDate time.Time
	HourlyRate  float64
	Role        auth.Role
	ManagerID   *int64
}

type RepositoryAPI interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, pred visibility.Predicate) ([]*User, error)
	UpdateProfile(ctx context.Context, id int64, changes ProfileChanges) error
	SetStatus(ctx context.Context, id int64, status auth.Status) error
}

// TenantRepositoryAPI is the slice of the tenant store the user service needs.
type TenantRepositoryAPI interface {
	GetBySubdomain(ctx context.Context, subdomain string) (*tenant.Tenant, error)
	GetByID(ctx context.Context, id int64) (*tenant.Tenant, error)
}

// CredentialIssuer signs and resolves the tokens the user flows hand out.
type CredentialIssuer interface {
	IssueAccessToken(userID int64) (string, error)
	IssueInviteToken(email string) (string, error)
	ResolveInviteToken(tokenString string) (string, error)
}
