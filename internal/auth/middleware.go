package auth

import (
	"log/slog"
	"net/http"

	"github.com/easyhr/backend/internal/transport"
	"github.com/easyhr/backend/pkg/logger"
)

// Middleware authenticates requests and places the actor in the request
// context for downstream handlers.
type Middleware struct {
	*transport.BaseHandler
	Service *Service
}

func NewMiddleware(svc *Service) *Middleware {
	lg := logger.L()
	if lg == nil {
		lg = slog.Default()
	}
	return &Middleware{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// RequireActor rejects requests without a valid bearer credential. The actor
// is rebuilt from storage on every request.
func (m *Middleware) RequireActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		credential := m.ExtractTokenFromHeader(r)

		actor, err := m.Service.Authorize(r.Context(), credential)
		if err != nil {
			m.Logger.Warn("request rejected by auth", "path", r.URL.Path, "error", err)
			m.HandleServiceError(w, err)
			return
		}

		ctx := ContextWithActor(r.Context(), actor)
		ctx = logger.With(ctx, "userID", actor.UserID, "tenantID", actor.TenantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
