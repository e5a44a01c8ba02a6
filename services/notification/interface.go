package notification

import "context"

// Email is one outbound message to a single recipient.
type Email struct {
	To      string
	ToName  string
	Subject string
	HTML    string
	ReplyTo string
}

// Mailer abstracts the email-sending provider so the dispatcher can be
// tested without network calls and swapped for the dev no-op.
type Mailer interface {
	Send(ctx context.Context, msg Email) error
}
