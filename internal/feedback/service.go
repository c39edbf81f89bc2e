package feedback

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

func (s *Service) List(ctx context.Context, actor *auth.Actor) ([]*Feedback, error) {
	pred := visibility.FilterFor(actor, visibility.KindFeedbacks, visibility.IntentRead)
	return s.repo.List(ctx, pred)
}

func (s *Service) Create(ctx context.Context, actor *auth.Actor, dto CreateFeedbackDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	f := &Feedback{
		TenantID:    actor.TenantID,
		UserID:      actor.UserID,
		ManagerID:   visibility.ManagerStamp(actor),
		Description: dto.Description,
		IsAnonymous: *dto.IsAnonymous,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		s.logger.Error("failed to create feedback", "error", err, "user_id", actor.UserID)
		return err
	}
	return nil
}

func (s *Service) Update(ctx context.Context, actor *auth.Actor, dto UpdateFeedbackDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	pred := visibility.FilterFor(actor, visibility.KindFeedbacks, visibility.IntentWrite)
	changes := Changes{Description: dto.Description, IsAnonymous: *dto.IsAnonymous}
	if err := s.repo.Update(ctx, pred, dto.ID, changes); err != nil {
		s.logger.Error("failed to update feedback", "error", err, "feedback_id", dto.ID)
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, actor *auth.Actor, dto DeleteFeedbackDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	pred := visibility.FilterFor(actor, visibility.KindFeedbacks, visibility.IntentWrite)
	if err := s.repo.Delete(ctx, pred, dto.ID); err != nil {
		s.logger.Error("failed to delete feedback", "error", err, "feedback_id", dto.ID)
		return err
	}
	return nil
}
