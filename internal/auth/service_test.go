package auth_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/easyhr/backend/internal"
	"github.com/easyhr/backend/internal/auth"
	"github.com/easyhr/backend/pkg/logger"
)

func TestAuthService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Service Suite")
}

type mockAuthRepository struct {
	users   map[int64]*auth.UserRecord
	tenants map[int64]*auth.Tenant
}

func newMockAuthRepository() *mockAuthRepository {
	return &mockAuthRepository{
		users:   make(map[int64]*auth.UserRecord),
		tenants: make(map[int64]*auth.Tenant),
	}
}

func (m *mockAuthRepository) GetUserByID(_ context.Context, id int64) (*auth.UserRecord, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, internal.ErrUserNotFound
	}
	return u, nil
}

func (m *mockAuthRepository) GetTenantByID(_ context.Context, id int64) (*auth.Tenant, error) {
	t, ok := m.tenants[id]
	if !ok {
		return nil, internal.ErrTenantNotFound
	}
	return t, nil
}

var _ = Describe("AuthService", func() {
	var (
		svc  *auth.Service
		repo *mockAuthRepository
		ctx  context.Context
	)

	ref := func(id int64) *int64 { return &id }

	BeforeEach(func() {
		repo = newMockAuthRepository()
		tokens := auth.NewJWTTokenGenerator("test-secret-used-only-in-this-suite", auth.TokenTTLs{})
		svc = auth.NewService(repo, tokens, logger.L())
		ctx = context.Background()

		repo.tenants[1] = &auth.Tenant{ID: 1, Subdomain: "acme", Enabled: true}
		repo.users[10] = &auth.UserRecord{
			ID:         10,
			TenantID:   1,
			FirstName:  "Eva",
			Email:      "eva@acme.test",
			Role:       auth.RoleEmployee,
			Status:     auth.StatusActive,
			ManagerID:  ref(2),
			HourlyRate: 50,
		}
	})

	Describe("Resolve", func() {
		It("fails closed on an empty credential", func() {
			_, err := svc.Resolve("")
			Expect(err).To(MatchError(internal.ErrTokenMissing))
		})

		It("fails closed on a malformed credential", func() {
			_, err := svc.Resolve("not-a-jwt")
			Expect(err).To(MatchError(internal.ErrTokenInvalid))
		})

		It("round-trips a user id through a signed credential", func() {
			token, err := svc.IssueAccessToken(10)
			Expect(err).NotTo(HaveOccurred())

			userID, err := svc.Resolve(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(userID).To(Equal(int64(10)))
		})

		It("rejects a credential signed with a different secret", func() {
			other := auth.NewJWTTokenGenerator("another-secret-for-a-different-deployment", auth.TokenTTLs{})
			token, err := other.GenerateAccessToken(10)
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Resolve(token)
			Expect(err).To(MatchError(internal.ErrTokenInvalid))
		})

		It("rejects an expired credential", func() {
			expired := &auth.JWTTokenGenerator{
				Secret:    []byte("test-secret-used-only-in-this-suite"),
				AccessTTL: -time.Minute,
				InviteTTL: time.Hour,
			}
			token, err := expired.GenerateAccessToken(10)
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Resolve(token)
			Expect(err).To(MatchError(internal.ErrTokenExpired))
		})
	})

	Describe("BuildActor", func() {
		It("assembles the actor from the user and tenant records", func() {
			actor, err := svc.BuildActor(ctx, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(actor.UserID).To(Equal(int64(10)))
			Expect(actor.TenantID).To(Equal(int64(1)))
			Expect(actor.Role).To(Equal(auth.RoleEmployee))
			Expect(actor.ManagerID).To(HaveValue(Equal(int64(2))))
			Expect(actor.HourlyRate).To(Equal(float64(50)))
			Expect(actor.Tenant.Subdomain).To(Equal("acme"))
		})

		It("fails when the user no longer exists", func() {
			_, err := svc.BuildActor(ctx, 999)
			Expect(err).To(MatchError(internal.ErrUserNotFound))
		})

		It("fails when the tenant is missing", func() {
			repo.users[11] = &auth.UserRecord{ID: 11, TenantID: 42, Role: auth.RoleMember}
			_, err := svc.BuildActor(ctx, 11)
			Expect(err).To(MatchError(internal.ErrTenantNotFound))
		})
	})

	Describe("Authorize", func() {
		It("resolves a credential straight to an actor", func() {
			token, err := svc.IssueAccessToken(10)
			Expect(err).NotTo(HaveOccurred())

			actor, err := svc.Authorize(ctx, token)
			Expect(err).NotTo(HaveOccurred())
			Expect(actor.UserID).To(Equal(int64(10)))
		})
	})

	Describe("Invite tokens", func() {
		It("round-trips an email", func() {
			token, err := svc.IssueInviteToken("grace@acme.test")
			Expect(err).NotTo(HaveOccurred())

			email, err := svc.ResolveInviteToken(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(email).To(Equal("grace@acme.test"))
		})

		It("rejects an access token presented as an invite token", func() {
			token, err := svc.IssueAccessToken(10)
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.ResolveInviteToken(token)
			Expect(err).To(HaveOccurred())
		})
	})
})
