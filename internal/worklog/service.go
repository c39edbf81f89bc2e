package worklog

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

// List returns the worklogs visible to the actor, newest first. Managers and
// employees see rows they authored or rows stamped with them as manager.
func (s *Service) List(ctx context.Context, actor *auth.Actor) ([]*Worklog, error) {
	pred := visibility.FilterFor(actor, visibility.KindWorklogs, visibility.IntentRead)
	return s.repo.List(ctx, pred)
}

// Create records a worklog for the actor. When the actor is an employee the
// row is stamped with their current manager so the manager can see it.
func (s *Service) Create(ctx context.Context, actor *auth.Actor, dto CreateWorklogDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	w := &Worklog{
		TenantID:    actor.TenantID,
		UserID:      actor.UserID,
		ManagerID:   visibility.ManagerStamp(actor),
		ServiceDate: dto.ServiceDate,
		Hours:       dto.Hours,
		Notes:       dto.Notes,
	}

	if err := s.repo.Create(ctx, w); err != nil {
		s.logger.Error("failed to create worklog", "error", err, "user_id", actor.UserID)
		return err
	}
	return nil
}

// Update modifies a worklog the actor can see. A row outside the actor's
// visibility is simply not matched; the call still succeeds with no effect.
func (s *Service) Update(ctx context.Context, actor *auth.Actor, dto UpdateWorklogDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	pred := visibility.FilterFor(actor, visibility.KindWorklogs, visibility.IntentWrite)
	changes := Changes{ServiceDate: dto.ServiceDate, Hours: dto.Hours, Notes: dto.Notes}
	if err := s.repo.Update(ctx, pred, dto.ID, changes); err != nil {
		s.logger.Error("failed to update worklog", "error", err, "worklog_id", dto.ID)
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, actor *auth.Actor, dto DeleteWorklogDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	pred := visibility.FilterFor(actor, visibility.KindWorklogs, visibility.IntentWrite)
	if err := s.repo.Delete(ctx, pred, dto.ID); err != nil {
		s.logger.Error("failed to delete worklog", "error", err, "worklog_id", dto.ID)
		return err
	}
	return nil
}
