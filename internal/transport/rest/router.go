package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/easyhr/backend/internal/auth"
	"github.com/easyhr/backend/internal/companyvalue"
	"github.com/easyhr/backend/internal/feedback"
	"github.com/easyhr/backend/internal/recognition"
	"github.com/easyhr/backend/internal/stats"
	"github.com/easyhr/backend/internal/tenant"
	"github.com/easyhr/backend/internal/transport/middleware"
	"github.com/easyhr/backend/internal/transport/swagger"
	"github.com/easyhr/backend/internal/user"
	"github.com/easyhr/backend/internal/worklog"
)

type Handlers struct {
	Auth         *auth.Middleware
	Tenant       *tenant.Handler
	User         *user.Handler
	Worklog      *worklog.Handler
	Feedback     *feedback.Handler
	Recognition  *recognition.Handler
	CompanyValue *companyvalue.Handler
	Stats        *stats.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, handlers Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Logging(logger))

	// OpenAPI spec and Swagger UI live at the root, outside the API prefix.
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Public routes
		r.Post("/tenant", handlers.Tenant.CreateTenant)
		r.Post("/users/signup", handlers.User.Signup)
		r.Post("/users/signin", handlers.User.Signin)
		r.Post("/users/accept-invite", handlers.User.AcceptInvite)

		// Everything else needs a resolved actor.
		r.Group(func(pr chi.Router) {
			pr.Use(handlers.Auth.RequireActor)

			pr.Get("/users/info", handlers.User.Info)
			pr.Put("/users/profile", handlers.User.UpdateProfile)
			pr.Get("/users", handlers.User.List)
			pr.Post("/users/invite", handlers.User.Invite)

			pr.Route("/worklog", func(wr chi.Router) {
				wr.Get("/", handlers.Worklog.List)
				wr.Post("/", handlers.Worklog.Create)
				wr.Put("/", handlers.Worklog.Update)
				wr.Delete("/", handlers.Worklog.Delete)
			})

			pr.Route("/feedback", func(fr chi.Router) {
				fr.Get("/", handlers.Feedback.List)
				fr.Post("/", handlers.Feedback.Create)
				fr.Put("/", handlers.Feedback.Update)
				fr.Delete("/", handlers.Feedback.Delete)
			})

			pr.Route("/recognition", func(rr chi.Router) {
				rr.Get("/", handlers.Recognition.List)
				rr.Post("/", handlers.Recognition.Create)
				rr.Put("/", handlers.Recognition.Update)
				rr.Delete("/", handlers.Recognition.Delete)
			})

			pr.Route("/company-values", func(cr chi.Router) {
				cr.Get("/", handlers.CompanyValue.List)
				cr.Post("/", handlers.CompanyValue.Create)
				cr.Put("/", handlers.CompanyValue.Update)
				cr.Delete("/", handlers.CompanyValue.Delete)
			})

			pr.Get("/stats", handlers.Stats.Get)
		})
	})
}
