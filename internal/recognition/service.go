package recognition

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

func (s *Service) List(ctx context.Context, actor *auth.Actor) ([]*Recognition, error) {
	pred := visibility.FilterFor(actor, visibility.KindRecognitions, visibility.IntentRead)
	return s.repo.List(ctx, pred)
}

// Create records a recognition authored by the actor.
func (s *Service) Create(ctx context.Context, actor *auth.Actor, dto CreateRecognitionDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	rec := &Recognition{
		TenantID:       actor.TenantID,
		FromUserID:     actor.UserID,
		ToUserID:       dto.ToUser,
		CompanyValueID: dto.CompanyValue,
		Description:    dto.Description,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		s.logger.Error("failed to create recognition", "error", err, "user_id", actor.UserID)
		return err
	}
	return nil
}

func (s *Service) Update(ctx context.Context, actor *auth.Actor, dto UpdateRecognitionDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	pred := visibility.FilterFor(actor, visibility.KindRecognitions, visibility.IntentWrite)
	changes := Changes{CompanyValueID: dto.CompanyValue, Description: dto.Description}
	if err := s.repo.Update(ctx, pred, dto.ID, changes); err != nil {
		s.logger.Error("failed to update recognition", "error", err, "recognition_id", dto.ID)
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, actor *auth.Actor, dto DeleteRecognitionDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	pred := visibility.FilterFor(actor, visibility.KindRecognitions, visibility.IntentWrite)
	if err := s.repo.Delete(ctx, pred, dto.ID); err != nil {
		s.logger.Error("failed to delete recognition", "error", err, "recognition_id", dto.ID)
		return err
	}
	return nil
}
