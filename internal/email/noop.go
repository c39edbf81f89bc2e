package email

import (
	"context"
	"log/slog"
)

// NoopMailer is used when email delivery is disabled; it logs instead of
// sending.
type NoopMailer struct {
	Logger *slog.Logger
}

func (m NoopMailer) Send(_ context.Context, msg Message) error {
	if m.Logger != nil {
		m.Logger.Info("email delivery disabled, dropping message", "to", msg.To, "subject", msg.Subject)
	}
	return nil
}
