package tenant

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateTenant registers a new organization. Subdomain matching is
// case-sensitive and the tenant starts enabled.
func (s *Service) CreateTenant(ctx context.Context, dto CreateTenantDTO) (*Tenant, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	t := &Tenant{
		Subdomain: dto.Subdomain,
		Enabled:   true,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("failed to create tenant", "error", err, "subdomain", dto.Subdomain)
		return nil, err
	}

	s.logger.Info("tenant created", "tenant_id", t.ID, "subdomain", t.Subdomain)
	return t, nil
}
