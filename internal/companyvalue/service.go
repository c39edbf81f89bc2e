package companyvalue

import (
	"context"
	"log/slog"

	"github.com/easyhr/backend/internal/auth"
	"github.com/easyhr/backend/internal/visibility"
)

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(ctx context.Context, actor *auth.Actor) ([]*CompanyValue, error) {
	pred := visibility.FilterFor(actor, visibility.KindCompanyValues, visibility.IntentRead)
	return s.repo.List(ctx, pred)
}

func (s *Service) Create(ctx context.Context, actor *auth.Actor, dto CreateCompanyValueDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	cv := &CompanyValue{
		TenantID:    actor.TenantID,
		Title:       dto.Title,
		Description: dto.Description,
	}

	if err := s.repo.Create(ctx, cv); err != nil {
		s.logger.Error("failed to create company value", "error", err, "tenant_id", actor.TenantID)
		return err
	}
	return nil
}

func (s *Service) Update(ctx context.Context, actor *auth.Actor, dto UpdateCompanyValueDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	pred := visibility.FilterFor(actor, visibility.KindCompanyValues, visibility.IntentWrite)
	changes := Changes{Title: dto.Title, Description: dto.Description}
	if err := s.repo.Update(ctx, pred, dto.ID, changes); err != nil {
		s.logger.Error("failed to update company value", "error", err, "company_value_id", dto.ID)
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, actor *auth.Actor, dto DeleteCompanyValueDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	pred := visibility.FilterFor(actor, visibility.KindCompanyValues, visibility.IntentWrite)
	if err := s.repo.Delete(ctx, pred, dto.ID); err != nil {
		s.logger.Error("failed to delete company value", "error", err, "company_value_id", dto.ID)
		return err
	}
	return nil
}
