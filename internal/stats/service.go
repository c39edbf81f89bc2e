package stats

import (
	"context"
	"log/slog"

	"github.com/easyhr/backend/internal/auth"
)

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ComputeStats assembles the role-scoped sections. Disbursements multiply
// each row's hours by that row's owner rate before summing; totals are never
// a product of two sums.
func (s *Service) ComputeStats(ctx context.Context, actor *auth.Actor) (*Stats, error) {
	stats := &Stats{}

	if actor.Role == auth.RoleAdmin {
		org, err := s.organizationStats(ctx, actor.TenantID)
		if err != nil {
			return nil, err
		}
		stats.Organization = org
	}

	if actor.Role == auth.RoleManager {
		team, err := s.teamStats(ctx, actor.TenantID, actor.UserID)
		if err != nil {
			return nil, err
		}
		stats.Team = team
	}

	personal, err := s.personalStats(ctx, actor)
	if err != nil {
		return nil, err
	}
	stats.Personal = *personal

	return stats, nil
}

func (s *Service) organizationStats(ctx context.Context, tenantID int64) (*OrgStats, error) {
	feedbackCount, err := s.repo.CountTenantFeedback(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.TenantWorklogEntries(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	hours, disbursements := rollup(entries)
	return &OrgStats{
		TotalFeedbackReceived: feedbackCount,
		TotalWorkHours:        hours,
		TotalDisbursements:    disbursements,
	}, nil
}

func (s *Service) teamStats(ctx context.Context, tenantID, managerID int64) (*TeamStats, error) {
	feedbackCount, err := s.repo.CountManagerFeedback(ctx, tenantID, managerID)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.ManagerWorklogEntries(ctx, tenantID, managerID)
	if err != nil {
		return nil, err
	}

	hours, disbursements := rollup(entries)
	return &TeamStats{
		TotalFeedbackReceived: feedbackCount,
		TotalWorkHours:        hours,
		TotalDisbursements:    disbursements,
	}, nil
}

// personalStats sums hours by ownership alone and prices them at the actor's
// own current rate.
func (s *Service) personalStats(ctx context.Context, actor *auth.Actor) (*PersonalStats, error) {
	feedbackCount, err := s.repo.CountUserFeedback(ctx, actor.TenantID, actor.UserID)
	if err != nil {
		return nil, err
	}

	hours, err := s.repo.UserWorklogHours(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	return &PersonalStats{
		TotalFeedbackShared: feedbackCount,
		TotalHoursWorked:    hours,
		TotalEarnings:       hours * actor.HourlyRate,
	}, nil
}

func rollup(entries []WorklogEntry) (hours, disbursements float64) {
	for _, e := range entries {
		hours += e.Hours
		disbursements += e.Hours * e.OwnerRate
	}
	return hours, disbursements
}
