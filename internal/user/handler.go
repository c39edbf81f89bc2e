package user

import (
	"net/http"

	"github.com/easyhr/backend/internal/auth"
	"github.com/easyhr/backend/internal/transport"
)

type Handler struct {
	*transport.BaseHandler
	service *Service
}

func NewHandler(base *transport.BaseHandler, service *Service) *Handler {
	return &Handler{BaseHandler: base, service: service}
}

// Signup handles POST /users/signup. The tenant is carried on the
// X-Subdomain header rather than in the body.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var dto SignupDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	result, err := h.service.Signup(r.Context(), r.Header.Get("X-Subdomain"), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, result)
}

// Signin handles POST /users/signin.
func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	var dto SigninDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	result, err := h.service.Signin(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, result)
}

// Info handles GET /users/info.
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "Token is required.")
		return
	}

	u, err := h.service.Info(r.Context(), actor)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, u)
}

// UpdateProfile handles PUT /users/profile.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "Token is required.")
		return
	}

	var dto ProfileDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	if err := h.service.UpdateProfile(r.Context(), actor, dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteMessage(w, http.StatusOK, "Profile updated successfully.")
}

// List handles GET /users. The all query flag widens an admin's view to the
// whole tenant including themself; other roles keep their scoped view.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "Token is required.")
		return
	}

	all := r.URL.Query().Get("all") == "true"
	users, err := h.service.List(r.Context(), actor, all)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, users)
}

// Invite handles POST /users/invite. The invitee's email rides in the same
// flat body as the profile fields.
func (h *Handler) Invite(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "Token is required.")
		return
	}

	var dto ProfileDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	if err := h.service.Invite(r.Context(), actor, dto.Email, dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteMessage(w, http.StatusOK, "Invitation sent successfully.")
}

// AcceptInvite handles POST /users/accept-invite.
func (h *Handler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	var dto AcceptInviteDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	result, err := h.service.AcceptInvite(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, result)
}
