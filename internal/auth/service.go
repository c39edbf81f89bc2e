package auth

import (
	"context"
	"log/slog"

	"github.com/easyhr/backend/internal"
)

// Service resolves bearer credentials into actors. It chains the identity
// resolver (token → user id) and the actor context builder (user id →
// user + tenant + role).
type Service struct {
	repo   Repository
	tokens TokenGenerator
	logger *slog.Logger
}

func NewService(repo Repository, tokens TokenGenerator, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// Resolve decodes a bearer credential into the embedded user id. It fails
// closed: a missing, malformed, or expired credential never yields an id.
func (s *Service) Resolve(credential string) (int64, error) {
	if credential == "" {
		return 0, internal.ErrTokenMissing
	}

	claims, err := s.tokens.ParseAccessToken(credential)
	if err != nil {
		return 0, err
	}

	return claims.UserID, nil
}

// BuildActor loads the user and tenant for a resolved id and assembles the
// per-request actor context. No caching: every request reflects the stored
// role and status at that moment.
func (s *Service) BuildActor(ctx context.Context, userID int64) (*Actor, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	tenant, err := s.repo.GetTenantByID(ctx, user.TenantID)
	if err != nil {
		return nil, err
	}

	return &Actor{
		UserID:     user.ID,
		TenantID:   tenant.ID,
		Role:       user.Role,
		ManagerID:  user.ManagerID,
		HourlyRate: user.HourlyRate,
		User:       *user,
		Tenant:     *tenant,
	}, nil
}

// Authorize runs Resolve then BuildActor for a request credential.
func (s *Service) Authorize(ctx context.Context, credential string) (*Actor, error) {
	userID, err := s.Resolve(credential)
	if err != nil {
		return nil, err
	}
	return s.BuildActor(ctx, userID)
}

// IssueAccessToken signs a bearer credential for a user id.
func (s *Service) IssueAccessToken(userID int64) (string, error) {
	return s.tokens.GenerateAccessToken(userID)
}

// IssueInviteToken signs the email-embedded token carried in invitation mail.
func (s *Service) IssueInviteToken(email string) (string, error) {
	return s.tokens.GenerateInviteToken(email)
}

// ResolveInviteToken reads the email back out of an invitation token.
func (s *Service) ResolveInviteToken(tokenString string) (string, error) {
	claims, err := s.tokens.ParseInviteToken(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Email, nil
}
