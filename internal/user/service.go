package user

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/easyhr/backend/internal"
	"github.com/easyhr/backend/internal/auth"
	"github.com/easyhr/backend/internal/core/events"
	"github.com/easyhr/backend/internal/visibility"
)

type Service struct {
	repo        RepositoryAPI
	tenants     TenantRepositoryAPI
	credentials CredentialIssuer
	bus         *events.EventBus
	publicHost  string
	bcryptCost  int
	logger      *slog.Logger
}

func NewService(repo RepositoryAPI, tenants TenantRepositoryAPI, credentials CredentialIssuer, bus *events.EventBus, publicHost string, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:        repo,
		tenants:     tenants,
		credentials: credentials,
		bus:         bus,
		publicHost:  publicHost,
		bcryptCost:  bcryptCost,
		logger:      logger,
	}
}

// Signup registers the first-touch user of a tenant, identified by the
// subdomain header. New users start as MEMBER until an admin assigns a role.
func (s *Service) Signup(ctx context.Context, subdomain string, dto SignupDTO) (*SignupResult, error) {
	if subdomain == "" {
		return nil, internal.NewValidationError("Invalid params.", internal.ErrCodeValidationFailed)
	}

	t, err := s.tenants.GetBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, err
	}

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByEmail(ctx, dto.Email); err == nil && existing != nil {
		return nil, internal.NewConflictError("User with email already exists. Please sign in.", internal.ErrCodeUserExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		TenantID:     t.ID,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Email:        dto.Email,
		PasswordHash: string(hash),
		Role:         auth.RoleMember,
		Status:       auth.StatusActive,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Error("failed to create user", "error", err, "email", dto.Email)
		return nil, err
	}

	token, err := s.credentials.IssueAccessToken(u.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user signed up", "user_id", u.ID, "tenant_id", t.ID)
	return &SignupResult{User: u, Token: token}, nil
}

// Signin verifies credentials, activates the user, and issues a bearer token.
func (s *Service) Signin(ctx context.Context, dto SigninDTO) (*SigninResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByEmail(ctx, dto.Email)
	if err != nil {
		return nil, internal.NewNotFoundError(
			"User with email does not exist. Please check your credentials and try again.",
			internal.ErrCodeUserNotFound)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)) != nil {
		return nil, internal.NewUnauthorizedError("Invalid email or password.", internal.ErrCodeInvalidCredentials)
	}

	if u.Status != auth.StatusActive {
		if err := s.repo.SetStatus(ctx, u.ID, auth.StatusActive); err != nil {
			s.logger.Error("failed to activate user on signin", "error", err, "user_id", u.ID)
		} else {
			u.Status = auth.StatusActive
		}
	}

	token, err := s.credentials.IssueAccessToken(u.ID)
	if err != nil {
		return nil, err
	}

	// The tenant subdomain rides along so the frontend can route to the
	// right origin after signin.
	var subdomain string
	if t, err := s.tenants.GetByID(ctx, u.TenantID); err == nil {
		subdomain = t.Subdomain
	}

	return &SigninResult{User: u, Token: token, Subdomain: subdomain}, nil
}

// Info returns the current user's full record.
func (s *Service) Info(ctx context.Context, actor *auth.Actor) (*User, error) {
	return s.repo.GetByID(ctx, actor.UserID)
}

// UpdateProfile updates the actor's own record. The manager reference is only
// persisted for the EMPLOYEE role; other roles never carry one.
func (s *Service) UpdateProfile(ctx context.Context, actor *auth.Actor, dto ProfileDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	changes := ProfileChanges{
		FirstName:   dto.FirstName,
		LastName:    dto.LastName,
		Email:       dto.Email,
		Dob:         dto.Dob,
		Department:  dto.Department,
		Designation: dto.Designation,
		JoiningDate: dto.JoiningDate,
		HourlyRate:  dto.HourlyRate,
		Role:        dto.Role,
	}
	if dto.Role == auth.RoleEmployee {
		changes.ManagerID = dto.Manager
	}

	if err := s.repo.UpdateProfile(ctx, actor.UserID, changes); err != nil {
		s.logger.Error("failed to update profile", "error", err, "user_id", actor.UserID)
		return err
	}
	return nil
}

// List returns the users the actor may see. The all flag is a capability:
// only an ADMIN can lift the role filter, and even then the listing stays
// inside the tenant.
func (s *Service) List(ctx context.Context, actor *auth.Actor, all bool) ([]*User, error) {
	pred := visibility.FilterForUserList(actor, all)
	return s.repo.List(ctx, pred)
}

// Invite creates a PENDING user in the actor's tenant and dispatches the
// invitation email asynchronously. The response never waits on delivery.
func (s *Service) Invite(ctx context.Context, actor *auth.Actor, email string, dto ProfileDTO) error {
	if email == "" {
		return internal.NewRequiredFieldError("email")
	}
	if err := dto.Validate(); err != nil {
		return err
	}

	u := &User{
		TenantID:    actor.TenantID,
		FirstName:   dto.FirstName,
		LastName:    dto.LastName,
		Email:       email,
		Role:        dto.Role,
		Status:      auth.StatusPending,
		Dob:         dto.Dob,
		Department:  dto.Department,
		Designation: dto.Designation,
		HourlyRate:  dto.HourlyRate,
	}
	if !dto.JoiningDate.IsZero() {
		joining := dto.JoiningDate
		u.JoiningDate = &joining
	}
	if dto.Role == auth.RoleEmployee {
		u.ManagerID = dto.Manager
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Error("failed to create invited user", "error", err, "email", email)
		return err
	}

	inviteToken, err := s.credentials.IssueInviteToken(email)
	if err != nil {
		s.logger.Error("failed to issue invite token", "error", err, "email", email)
		return err
	}

	link := fmt.Sprintf("http://%s.%s/signin", actor.Tenant.Subdomain, s.publicHost)
	event := events.NewUserInvitedEvent(email, dto.FirstName, actor.Tenant.Subdomain, link, inviteToken)
	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish invite event", "error", err, "email", email)
	}

	s.logger.Info("user invited", "user_id", u.ID, "tenant_id", actor.TenantID, "role", dto.Role)
	return nil
}

// AcceptInvite flips an invited user to ACTIVE and hands back a usable bearer
// token. Accepting is idempotent: a token presented twice succeeds both
// times; only the token's own expiry bounds reuse.
func (s *Service) AcceptInvite(ctx context.Context, dto AcceptInviteDTO) (*AcceptInviteResult, error) {
	email, err := s.credentials.ResolveInviteToken(dto.EmailToken)
	if err != nil {
		return nil, internal.NewValidationError("Invalid email token.", internal.ErrCodeTokenInvalid)
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, internal.NewValidationError("Failed.", internal.ErrCodeUserNotFound)
	}

	if err := s.repo.SetStatus(ctx, u.ID, auth.StatusActive); err != nil {
		s.logger.Error("failed to activate invited user", "error", err, "user_id", u.ID)
		return nil, err
	}

	token, err := s.credentials.IssueAccessToken(u.ID)
	if err != nil {
		return nil, err
	}

	return &AcceptInviteResult{Token: token}, nil
}
