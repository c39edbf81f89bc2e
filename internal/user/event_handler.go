package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/easyhr/backend/internal"
	"github.com/easyhr/backend/internal/core/events"
	"github.com/easyhr/backend/internal/email"
)

// InviteEmailHandler delivers invitation emails off the request path.
type InviteEmailHandler struct {
	mailer email.Mailer
	logger *slog.Logger
}

func NewInviteEmailHandler(mailer email.Mailer, logger *slog.Logger) *InviteEmailHandler {
	return &InviteEmailHandler{mailer: mailer, logger: logger}
}

func (h *InviteEmailHandler) Register(bus *events.EventBus) {
	bus.Subscribe(events.UserInvitedEventType, h.HandleUserInvited)
}

// HandleUserInvited sends the invitation email. It detaches from the request
// context: the request has usually completed by the time this runs.
func (h *InviteEmailHandler) HandleUserInvited(_ context.Context, event events.Event) error {
	data, ok := event.Payload().(map[string]interface{})
	if !ok {
		return fmt.Errorf("unexpected payload for event %s", event.EventID())
	}

	to, _ := data["email"].(string)
	firstName, _ := data["firstName"].(string)
	subdomain, _ := data["subdomain"].(string)
	signinLink, _ := data["signinLink"].(string)
	inviteToken, _ := data["inviteToken"].(string)
	if to == "" {
		return fmt.Errorf("invite event %s has no recipient", event.EventID())
	}

	ctx, cancel := internal.WithTimeout(context.Background(), 0)
	defer cancel()

	msg := email.Message{
		To:       to,
		Subject:  "You have been invited to " + subdomain,
		HTMLBody: inviteBody(firstName, subdomain, signinLink, inviteToken),
	}
	if err := h.mailer.Send(ctx, msg); err != nil {
		return err
	}

	h.logger.Info("invitation email sent", "email", to, "subdomain", subdomain)
	return nil
}

func inviteBody(firstName, subdomain, signinLink, inviteToken string) string {
	return fmt.Sprintf(
		`<p>Hi %s,</p>
<p>You have been invited to join <b>%s</b>.</p>
<p><a href="%s?emailToken=%s">Accept your invitation and sign in</a></p>
<p>If you were not expecting this invitation you can ignore this email.</p>`,
		firstName, subdomain, signinLink, inviteToken)
}
