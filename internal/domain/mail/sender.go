package mail

import "context"

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	Text    string
}

// Sender defines an interface for delivering messages via a mail provider.
// This helps in decoupling the application logic from the specific provider SDK.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
