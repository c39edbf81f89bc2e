package recognition_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/easyhr/backend/internal"
	"github.com/easyhr/backend/internal/auth"
	"github.com/easyhr/backend/internal/recognition"
	"github.com/easyhr/backend/internal/visibility"
)

func TestRecognitionService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Recognition Service Suite")
}

type mockRecognitionRepository struct {
	recognitions map[int64]*recognition.Recognition
	lastPred     visibility.Predicate
	nextID       int64
}

func newMockRecognitionRepository() *mockRecognitionRepository {
	return &mockRecognitionRepository{recognitions: make(map[int64]*recognition.Recognition), nextID: 1}
}

func (m *mockRecognitionRepository) Create(_ context.Context, rec *recognition.Recognition) error {
	rec.ID = m.nextID
	m.nextID++
	rec.CreatedAt = time.Now()
	m.recognitions[rec.ID] = rec
	return nil
}

func (m *mockRecognitionRepository) List(_ context.Context, pred visibility.Predicate) ([]*recognition.Recognition, error) {
	m.lastPred = pred
	var out []*recognition.Recognition
	for _, rec := range m.recognitions {
		if rec.TenantID == pred.TenantID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *mockRecognitionRepository) Update(_ context.Context, pred visibility.Predicate, id int64, changes recognition.Changes) error {
	m.lastPred = pred
	if rec, ok := m.recognitions[id]; ok && rec.TenantID == pred.TenantID {
		rec.CompanyValueID = changes.CompanyValueID
		rec.Description = changes.Description
	}
	return nil
}

func (m *mockRecognitionRepository) Delete(_ context.Context, pred visibility.Predicate, id int64) error {
	m.lastPred = pred
	if rec, ok := m.recognitions[id]; ok && rec.TenantID == pred.TenantID {
		delete(m.recognitions, id)
	}
	return nil
}

var _ = Describe("RecognitionService", func() {
	var (
		svc  *recognition.Service
		repo *mockRecognitionRepository
		ctx  context.Context
	)

	member := &auth.Actor{UserID: 5, TenantID: 1, Role: auth.RoleMember}
	employee := &auth.Actor{UserID: 3, TenantID: 1, Role: auth.RoleEmployee}

	BeforeEach(func() {
		repo = newMockRecognitionRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		svc = recognition.NewService(repo, logger)
		ctx = context.Background()
	})

	Describe("Create", func() {
		It("requires a recipient", func() {
			err := svc.Create(ctx, member, recognition.CreateRecognitionDTO{CompanyValue: 2, Description: "great work"})
			var appErr *internal.AppError
			Expect(errors.As(err, &appErr)).To(BeTrue())
			Expect(appErr.Message).To(Equal("Employee is required."))
		})

		It("requires a company value and a description", func() {
			err := svc.Create(ctx, member, recognition.CreateRecognitionDTO{ToUser: 7, Description: "great work"})
			var appErr *internal.AppError
			Expect(errors.As(err, &appErr)).To(BeTrue())
			Expect(appErr.Message).To(Equal("Company value is required."))

			err = svc.Create(ctx, member, recognition.CreateRecognitionDTO{ToUser: 7, CompanyValue: 2})
			Expect(errors.As(err, &appErr)).To(BeTrue())
			Expect(appErr.Message).To(Equal("Description is required."))
		})

		It("records the actor as the author", func() {
			Expect(svc.Create(ctx, member, recognition.CreateRecognitionDTO{
				ToUser: 7, CompanyValue: 2, Description: "great work",
			})).To(Succeed())
			Expect(repo.recognitions[1].FromUserID).To(Equal(int64(5)))
			Expect(repo.recognitions[1].ToUserID).To(Equal(int64(7)))
			Expect(repo.recognitions[1].TenantID).To(Equal(int64(1)))
		})
	})

	Describe("List", func() {
		It("is tenant-wide for every role", func() {
			_, err := svc.List(ctx, employee)
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.lastPred).To(Equal(visibility.TenantOnly(1)))
		})
	})

	Describe("Update", func() {
		It("changes the value and text but never the recipient", func() {
			Expect(svc.Create(ctx, member, recognition.CreateRecognitionDTO{
				ToUser: 7, CompanyValue: 2, Description: "great work",
			})).To(Succeed())

			Expect(svc.Update(ctx, employee, recognition.UpdateRecognitionDTO{
				ID: 1, CompanyValue: 4, Description: "even better",
			})).To(Succeed())

			Expect(repo.recognitions[1].CompanyValueID).To(Equal(int64(4)))
			Expect(repo.recognitions[1].Description).To(Equal("even better"))
			Expect(repo.recognitions[1].ToUserID).To(Equal(int64(7)))
		})

		It("requires an id", func() {
			err := svc.Update(ctx, member, recognition.UpdateRecognitionDTO{CompanyValue: 4, Description: "text"})
			var appErr *internal.AppError
			Expect(errors.As(err, &appErr)).To(BeTrue())
			Expect(appErr.Message).To(Equal("ID is required."))
		})
	})

	Describe("Delete", func() {
		It("removes a recognition in the actor's tenant", func() {
			Expect(svc.Create(ctx, member, recognition.CreateRecognitionDTO{
				ToUser: 7, CompanyValue: 2, Description: "great work",
			})).To(Succeed())
			Expect(svc.Delete(ctx, member, recognition.DeleteRecognitionDTO{ID: 1})).To(Succeed())
			Expect(repo.recognitions).To(BeEmpty())
		})

		It("leaves records of another tenant untouched", func() {
			Expect(svc.Create(ctx, member, recognition.CreateRecognitionDTO{
				ToUser: 7, CompanyValue: 2, Description: "great work",
			})).To(Succeed())

			foreign := &auth.Actor{UserID: 11, TenantID: 2, Role: auth.RoleAdmin}
			Expect(svc.Delete(ctx, foreign, recognition.DeleteRecognitionDTO{ID: 1})).To(Succeed())
			Expect(repo.recognitions).To(HaveKey(int64(1)))
		})
	})
})
