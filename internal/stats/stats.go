package stats

import "context"

// WorklogEntry pairs recorded hours with the owner's current hourly rate.
// Disbursements are per-row products, so the rate must travel with each row.
type WorklogEntry struct {
	Hours     float64
	OwnerRate float64
}

// OrgStats is the tenant-wide rollup visible to admins.
type OrgStats struct {
	TotalFeedbackReceived int64   `json:"totalFeedbackReceived"`
	TotalWorkHours        float64 `json:"totalWorkHours"`
	TotalDisbursements    float64 `json:"totalDisbursements"`
}

// TeamStats is the manager-scoped rollup over direct reports.
type TeamStats struct {
	TotalFeedbackReceived int64   `json:"totalFeedbackReceived"`
	TotalWorkHours        float64 `json:"totalWorkHours"`
	TotalDisbursements    float64 `json:"totalDisbursements"`
}

// PersonalStats is computed for every role.
type PersonalStats struct {
	TotalFeedbackShared int64   `json:"totalFeedbackShared"`
	TotalHoursWorked    float64 `json:"totalHoursWorked"`
	TotalEarnings       float64 `json:"totalEarnings"`
}

// Stats carries the sections the actor's role unlocks. Personal is always
// present; organization only for admins, team only for managers.
type Stats struct {
	Organization *OrgStats     `json:"organization,omitempty"`
	Team         *TeamStats    `json:"team,omitempty"`
	Personal     PersonalStats `json:"personal"`
}

type RepositoryAPI interface {
	CountTenantFeedback(ctx context.Context, tenantID int64) (int64, error)
	CountManagerFeedback(ctx context.Context, tenantID, managerID int64) (int64, error)
	CountUserFeedback(ctx context.Context, tenantID, userID int64) (int64, error)
	TenantWorklogEntries(ctx context.Context, tenantID int64) ([]WorklogEntry, error)
	ManagerWorklogEntries(ctx context.Context, tenantID, managerID int64) ([]WorklogEntry, error)
	UserWorklogHours(ctx context.Context, userID int64) (float64, error)
}
