package tenant

import (
	"context"
	"net/http"

	"github.com/easyhr/backend/internal/transport"
	"github.com/easyhr/backend/pkg/logger"
)

type ServiceAPI interface {
	CreateTenant(ctx context.Context, dto CreateTenantDTO) (*Tenant, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     svc,
	}
}

// CreateTenant handles POST /tenant. The endpoint is unauthenticated: it is
// the entry point for a brand new organization.
func (h *Handler) CreateTenant(w http.ResponseWriter, r *http.Request) {
	var dto CreateTenantDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	if _, err := h.Service.CreateTenant(r.Context(), dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteMessage(w, http.StatusOK, "Tenant created successfully.")
}
