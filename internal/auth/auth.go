package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the tenant-scoped role assigned to a user. MEMBER is the base role
// given at signup, before an admin assigns a specific one.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
	RoleMember   Role = "MEMBER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee, RoleMember:
		return true
	}
	return false
}

type Status string

const (
	StatusPending Status = "PENDING"
	StatusActive  Status = "ACTIVE"
)

// UserRecord is the slice of the stored user that authorization decisions
// depend on.
type UserRecord struct {
	ID         int64   `json:"id"`
	TenantID   int64   `json:"tenantId"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	Role       Role    `json:"role"`
	Status     Status  `json:"status"`
	ManagerID  *int64  `json:"manager,omitempty"`
	HourlyRate float64 `json:"hourlyRate"`
}

type Tenant struct {
	ID        int64  `json:"id"`
	Subdomain string `json:"subdomain"`
	Enabled   bool   `json:"enabled"`
}

// Actor is the per-request authorization context. It is rebuilt from storage
// on every request so role changes take effect immediately; it is never
// cached across requests.
type Actor struct {
	UserID     int64
	TenantID   int64
	Role       Role
	ManagerID  *int64
	HourlyRate float64
	User       UserRecord
	Tenant     Tenant
}

// Repository loads the records the actor context is built from.
type Repository interface {
	GetUserByID(ctx context.Context, id int64) (*UserRecord, error)
	GetTenantByID(ctx context.Context, id int64) (*Tenant, error)
}

// Claims are the payload of an access token: just the raw user id.
type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// InviteClaims are the payload of an invitation email token.
type InviteClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenGenerator signs and verifies bearer credentials.
type TokenGenerator interface {
	GenerateAccessToken(userID int64) (string, error)
	GenerateInviteToken(email string) (string, error)
	ParseAccessToken(tokenString string) (*Claims, error)
	ParseInviteToken(tokenString string) (*InviteClaims, error)
}

type ctxKey string

const contextActorKey ctxKey = "actor"

// ActorFromContext returns the actor placed in the request context by the
// auth middleware.
func ActorFromContext(ctx context.Context) (*Actor, bool) {
	actor, ok := ctx.Value(contextActorKey).(*Actor)
	return actor, ok && actor != nil
}

func ContextWithActor(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, contextActorKey, actor)
}

// TokenTTLs bundle the validity windows for issued credentials.
type TokenTTLs struct {
	Access time.Duration
	Invite time.Duration
}
