package ports

import (
	"context"

	"github.com/thevittavardhan/backend/internal/core/domain"
)

// Message is one outbound email ready for delivery.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer delivers a single message to the SMTP relay. Implementations must
// bound the send with a timeout so a slow relay cannot pile up in-flight sends.
type Mailer interface {
	Send(ctx context.Context, m Message) error
}

// Notifier turns a freshly persisted submission into outbound notification
// email. Calls never block on delivery and never report failure; a lost
// notification is logged and dropped (best-effort, at-most-once).
type Notifier interface {
	ContactReceived(c *domain.Contact)
	CareerReceived(a *domain.Career)
}
