package stats_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/easyhr/backend/internal/auth"
	"github.com/easyhr/backend/internal/stats"
)

func TestStatsService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Stats Service Suite")
}

type mockStatsRepository struct {
	tenantFeedback  int64
	managerFeedback int64
	userFeedback    int64
	tenantEntries   []stats.WorklogEntry
	managerEntries  []stats.WorklogEntry
	userHours       float64
}

func (m *mockStatsRepository) CountTenantFeedback(_ context.Context, tenantID int64) (int64, error) {
	return m.tenantFeedback, nil
}

func (m *mockStatsRepository) CountManagerFeedback(_ context.Context, tenantID, managerID int64) (int64, error) {
	return m.managerFeedback, nil
}

func (m *mockStatsRepository) CountUserFeedback(_ context.Context, tenantID, userID int64) (int64, error) {
	return m.userFeedback, nil
}

func (m *mockStatsRepository) TenantWorklogEntries(_ context.Context, tenantID int64) ([]stats.WorklogEntry, error) {
	return m.tenantEntries, nil
}

func (m *mockStatsRepository) ManagerWorklogEntries(_ context.Context, tenantID, managerID int64) ([]stats.WorklogEntry, error) {
	return m.managerEntries, nil
}

func (m *mockStatsRepository) UserWorklogHours(_ context.Context, userID int64) (float64, error) {
	return m.userHours, nil
}

var _ = Describe("StatsService", func() {
	var (
		svc  *stats.Service
		repo *mockStatsRepository
		ctx  context.Context
	)

	BeforeEach(func() {
		repo = &mockStatsRepository{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		svc = stats.NewService(repo, logger)
		ctx = context.Background()
	})

	Describe("ComputeStats", func() {
		It("prices each worklog row at its owner's rate", func() {
			repo.managerEntries = []stats.WorklogEntry{
				{Hours: 5, OwnerRate: 10},
				{Hours: 2, OwnerRate: 20},
			}
			actor := &auth.Actor{UserID: 2, TenantID: 1, Role: auth.RoleManager}

			result, err := svc.ComputeStats(ctx, actor)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Team).NotTo(BeNil())
			Expect(result.Team.TotalWorkHours).To(Equal(float64(7)))
			Expect(result.Team.TotalDisbursements).To(Equal(float64(90)))
		})

		It("gives an admin the organization section and no team section", func() {
			repo.tenantFeedback = 4
			repo.tenantEntries = []stats.WorklogEntry{{Hours: 3, OwnerRate: 15}}
			actor := &auth.Actor{UserID: 1, TenantID: 1, Role: auth.RoleAdmin}

			result, err := svc.ComputeStats(ctx, actor)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Organization).NotTo(BeNil())
			Expect(result.Team).To(BeNil())
			Expect(result.Organization.TotalFeedbackReceived).To(Equal(int64(4)))
			Expect(result.Organization.TotalDisbursements).To(Equal(float64(45)))
		})

		It("gives an employee only the personal section", func() {
			repo.userFeedback = 2
			repo.userHours = 8
			actor := &auth.Actor{UserID: 3, TenantID: 1, Role: auth.RoleEmployee, HourlyRate: 25}

			result, err := svc.ComputeStats(ctx, actor)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Organization).To(BeNil())
			Expect(result.Team).To(BeNil())
			Expect(result.Personal.TotalFeedbackShared).To(Equal(int64(2)))
			Expect(result.Personal.TotalHoursWorked).To(Equal(float64(8)))
			Expect(result.Personal.TotalEarnings).To(Equal(float64(200)))
		})

		It("always includes the personal section for managers and admins", func() {
			repo.userHours = 4
			admin := &auth.Actor{UserID: 1, TenantID: 1, Role: auth.RoleAdmin, HourlyRate: 100}

			result, err := svc.ComputeStats(ctx, admin)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Personal.TotalEarnings).To(Equal(float64(400)))
		})
	})
})
