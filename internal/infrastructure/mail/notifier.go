package mail

import (
	"github.com/thevittavardhan/backend/internal/core/domain"
	"github.com/thevittavardhan/backend/internal/core/ports"
)

// Routes maps inquiry types to recipient addresses. Company is the fallback
// for unknown or unmapped types.
type Routes struct {
	Company string
	Support string
	HR      string
	Help    string
}

// ForInquiry resolves the business recipient for a contact inquiry type.
func (r Routes) ForInquiry(inquiryType string) string {
	switch inquiryType {
	case domain.InquirySupport:
		return r.Support
	case domain.InquiryHR:
		return r.HR
	case domain.InquiryHelp:
		return r.Help
	default: // general, partnership, or anything unmapped
		return r.Company
	}
}

// Enqueuer hands a message to the background delivery queue.
type Enqueuer interface {
	Enqueue(m ports.Message)
}

// Notifier builds notification email for freshly persisted submissions and
// enqueues it for background delivery. Neither call blocks on SMTP.
type Notifier struct {
	routes Routes
	queue  Enqueuer
}

func NewNotifier(routes Routes, queue Enqueuer) *Notifier {
	return &Notifier{routes: routes, queue: queue}
}

// ContactReceived enqueues the business alert plus the sender auto-reply.
func (n *Notifier) ContactReceived(c *domain.Contact) {
	n.queue.Enqueue(contactAlert(c, n.routes.ForInquiry(c.Type)))
	n.queue.Enqueue(contactAutoReply(c))
}

// CareerReceived enqueues the HR alert plus the applicant confirmation.
func (n *Notifier) CareerReceived(a *domain.Career) {
	n.queue.Enqueue(careerAlert(a, n.routes.HR))
	n.queue.Enqueue(careerConfirmation(a))
}
