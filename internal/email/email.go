// Package email delivers outbound mail. Delivery is best effort and
// fire-and-forget: callers never block on it and failures are only logged.
package email

import "context"

// Config is handed to the mailer constructor explicitly; no process-wide SDK
// state is mutated.
type Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	FromAddress     string
}

type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
