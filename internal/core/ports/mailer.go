package ports

import "context"

// Email is a templated message handed to the mail pipeline.
type Email struct {
	To       string
	Subject  string
	Template string
	Data     map[string]string
}

// Mailer renders and delivers a single message synchronously.
type Mailer interface {
	Send(ctx context.Context, msg Email) error
}

// MailEnqueuer hands a message to the asynchronous dispatch pipeline.
// Enqueue never blocks the request path on delivery.
type MailEnqueuer interface {
	Enqueue(msg Email)
}

// ResetThrottle limits how often a reset email may be issued per address.
type ResetThrottle interface {
	// Allow reports whether a reset email may be sent to the address now,
	// and records the attempt when it may.
	Allow(ctx context.Context, email string) (bool, error)
}
