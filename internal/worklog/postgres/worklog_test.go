package postgres_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/easyhr/backend/internal/visibility"
	"github.com/easyhr/backend/internal/worklog"
	worklogPostgres "github.com/easyhr/backend/internal/worklog/postgres"
)

func TestWorklogPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Worklog Postgres Suite")
}

// SQLiteWorklog mirrors the worklogs table for in-memory tests.
type SQLiteWorklog struct {
	ID          int64     `gorm:"primaryKey"`
	TenantID    int64     `gorm:"column:tenant_id;not null"`
	UserID      int64     `gorm:"column:user_id;not null"`
	ManagerID   *int64    `gorm:"column:manager_id"`
	ServiceDate string    `gorm:"column:service_date"`
	Hours       float64   `gorm:"column:hours"`
	Notes       string    `gorm:"column:notes"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (SQLiteWorklog) TableName() string {
	return "worklogs"
}

var _ = Describe("Worklog PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo worklog.RepositoryAPI
		ctx  context.Context
	)

	ref := func(id int64) *int64 { return &id }

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteWorklog{})
		Expect(err).NotTo(HaveOccurred())

		repo = worklogPostgres.NewWorklogRepository(db)
		ctx = context.Background()
	})

	seed := func(tenantID, userID int64, managerID *int64, notes string) *worklog.Worklog {
		w := &worklog.Worklog{
			TenantID:    tenantID,
			UserID:      userID,
			ManagerID:   managerID,
			ServiceDate: "2026-08-01",
			Hours:       8,
			Notes:       notes,
		}
		Expect(repo.Create(ctx, w)).To(Succeed())
		return w
	}

	Describe("List", func() {
		It("returns only the predicate's tenant", func() {
			seed(1, 10, nil, "tenant one")
			seed(2, 10, nil, "tenant two")

			rows, err := repo.List(ctx, visibility.TenantOnly(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].Notes).To(Equal("tenant one"))
		})

		It("matches rows by author or stamped manager for participants", func() {
			seed(1, 10, nil, "own entry")
			seed(1, 20, ref(10), "report entry")
			seed(1, 30, nil, "unrelated entry")

			pred := visibility.TenantOnly(1)
			pred.ParticipantID = ref(10)

			rows, err := repo.List(ctx, pred)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
		})

		It("orders newest first", func() {
			first := seed(1, 10, nil, "first")
			db.Model(&SQLiteWorklog{}).Where("id = ?", first.ID).
				Update("created_at", time.Now().Add(-time.Hour))
			seed(1, 10, nil, "second")

			rows, err := repo.List(ctx, visibility.TenantOnly(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(rows[0].Notes).To(Equal("second"))
			Expect(rows[1].Notes).To(Equal("first"))
		})
	})

	Describe("Update", func() {
		It("is idempotent for a repeated payload", func() {
			w := seed(1, 10, nil, "draft")
			changes := worklog.Changes{ServiceDate: "2026-08-02", Hours: 6, Notes: "final"}

			Expect(repo.Update(ctx, visibility.TenantOnly(1), w.ID, changes)).To(Succeed())
			Expect(repo.Update(ctx, visibility.TenantOnly(1), w.ID, changes)).To(Succeed())

			rows, err := repo.List(ctx, visibility.TenantOnly(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].Notes).To(Equal("final"))
			Expect(rows[0].Hours).To(Equal(float64(6)))
		})

		It("does not touch rows outside the predicate", func() {
			w := seed(1, 30, nil, "someone else")
			pred := visibility.TenantOnly(1)
			pred.ParticipantID = ref(10)

			Expect(repo.Update(ctx, pred, w.ID, worklog.Changes{ServiceDate: "x", Hours: 1, Notes: "hijack"})).To(Succeed())

			rows, err := repo.List(ctx, visibility.TenantOnly(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(rows[0].Notes).To(Equal("someone else"))
		})

		It("treats a missing id as a no-op success", func() {
			Expect(repo.Update(ctx, visibility.TenantOnly(1), 999, worklog.Changes{ServiceDate: "x", Hours: 1, Notes: "n"})).To(Succeed())
		})
	})

	Describe("Delete", func() {
		It("removes a visible row", func() {
			w := seed(1, 10, nil, "to remove")
			Expect(repo.Delete(ctx, visibility.TenantOnly(1), w.ID)).To(Succeed())

			rows, err := repo.List(ctx, visibility.TenantOnly(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(BeEmpty())
		})

		It("leaves rows in another tenant alone", func() {
			w := seed(2, 10, nil, "other tenant")
			Expect(repo.Delete(ctx, visibility.TenantOnly(1), w.ID)).To(Succeed())

			rows, err := repo.List(ctx, visibility.TenantOnly(2))
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
		})
	})
})
