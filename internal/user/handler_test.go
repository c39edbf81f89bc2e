package user_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/easyhr/backend/internal/auth"
	"github.com/easyhr/backend/internal/core/events"
	"github.com/easyhr/backend/internal/tenant"
	"github.com/easyhr/backend/internal/transport"
	"github.com/easyhr/backend/internal/user"
)

var _ = Describe("UserHandler", func() {
	var (
		handler *user.Handler
		repo    *mockUserRepository
	)

	admin := &auth.Actor{
		UserID:   1,
		TenantID: 1,
		Role:     auth.RoleAdmin,
		Tenant:   auth.Tenant{ID: 1, Subdomain: "acme", Enabled: true},
	}

	inviteBody := `{
		"firstName": "Grace",
		"lastName": "Hopper",
		"email": "grace@acme.test",
		"dob": "1985-12-09",
		"department": "Engineering",
		"designation": "Engineer",
		"joiningDate": "2026-01-05T00:00:00Z",
		"hourlyRate": 60,
		"role": "EMPLOYEE",
		"manager": 1
	}`

	BeforeEach(func() {
		repo = newMockUserRepository()
		tenants := newMockTenantRepository()
		tenants.tenants["acme"] = &tenant.Tenant{ID: 1, Subdomain: "acme", Enabled: true}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		bus := events.NewEventBus(logger)

		svc := user.NewService(repo, tenants, newMockCredentialIssuer(), bus, "easyhr.test", bcrypt.MinCost, logger)
		handler = user.NewHandler(transport.NewBaseHandler(logger), svc)
	})

	invite := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/users/invite", strings.NewReader(body))
		req = req.WithContext(auth.ContextWithActor(context.Background(), admin))
		rec := httptest.NewRecorder()
		handler.Invite(rec, req)
		return rec
	}

	Describe("Invite", func() {
		It("creates a PENDING user from a full flat invite body", func() {
			rec := invite(inviteBody)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var env transport.Envelope
			Expect(json.Unmarshal(rec.Body.Bytes(), &env)).To(Succeed())
			Expect(env.Success).To(BeTrue())
			Expect(env.Message).To(Equal("Invitation sent successfully."))

			u, err := repo.GetByEmail(context.Background(), "grace@acme.test")
			Expect(err).NotTo(HaveOccurred())
			Expect(u.Status).To(Equal(auth.StatusPending))
			Expect(u.Role).To(Equal(auth.RoleEmployee))
		})

		It("rejects a body without an email", func() {
			rec := invite(`{"firstName": "Grace"}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			var env transport.Envelope
			Expect(json.Unmarshal(rec.Body.Bytes(), &env)).To(Succeed())
			Expect(env.Success).To(BeFalse())
			Expect(env.Message).To(Equal("email is required."))
			Expect(repo.users).To(BeEmpty())
		})

		It("requires an actor on the request", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/users/invite", strings.NewReader(inviteBody))
			rec := httptest.NewRecorder()
			handler.Invite(rec, req)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})
	})
})
