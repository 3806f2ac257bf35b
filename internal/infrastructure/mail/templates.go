package mail

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/thevittavardhan/backend/internal/core/domain"
	"github.com/thevittavardhan/backend/internal/core/ports"
)

// Message bodies are simple field interpolations. All submitter-provided
// values are HTML-escaped before they reach a mail client.

func contactAlert(c *domain.Contact, recipient string) ports.Message {
	var b strings.Builder
	b.WriteString("<h2>New Contact Form Submission</h2>")
	writeField(&b, "Name", c.Name)
	writeField(&b, "Email", c.Email)
	writeField(&b, "Phone", orNotProvided(c.Phone))
	writeField(&b, "Company", orNotProvided(c.Company))
	writeField(&b, "Type", c.Type)
	b.WriteString("<p><strong>Message:</strong></p>")
	fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(c.Message))
	writeField(&b, "Date", c.Date.Format(time.RFC1123))

	return ports.Message{
		To:      recipient,
		Subject: "New Contact Form Submission - " + strings.ToUpper(c.Type),
		HTML:    b.String(),
	}
}

func contactAutoReply(c *domain.Contact) ports.Message {
	var b strings.Builder
	b.WriteString("<h2>Thank You for Contacting The Vitta Vardhan</h2>")
	fmt.Fprintf(&b, "<p>Dear %s,</p>", html.EscapeString(c.Name))
	b.WriteString("<p>Thank you for reaching out to us. We have received your message and will get back to you shortly.</p>")
	b.WriteString("<p><strong>Your Message:</strong></p>")
	fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(c.Message))
	b.WriteString("<p>Best regards,<br>The Vitta Vardhan Team</p>")

	return ports.Message{
		To:      c.Email,
		Subject: "Thank you for contacting us",
		HTML:    b.String(),
	}
}

func careerAlert(a *domain.Career, recipient string) ports.Message {
	var b strings.Builder
	b.WriteString("<h2>New Job Application</h2>")
	writeField(&b, "Name", a.Name)
	writeField(&b, "Email", a.Email)
	writeField(&b, "Phone", orNotProvided(a.Phone))
	writeField(&b, "Position", a.Position)
	writeField(&b, "Experience", a.Experience)
	b.WriteString("<p><strong>Message:</strong></p>")
	fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(orNotProvided(a.Message)))
	writeField(&b, "Date", a.Date.Format(time.RFC1123))

	return ports.Message{
		To:      recipient,
		Subject: "New Job Application - " + a.Position,
		HTML:    b.String(),
	}
}

func careerConfirmation(a *domain.Career) ports.Message {
	var b strings.Builder
	b.WriteString("<h2>Application Received - The Vitta Vardhan</h2>")
	fmt.Fprintf(&b, "<p>Dear %s,</p>", html.EscapeString(a.Name))
	fmt.Fprintf(&b, "<p>Thank you for applying for the %s position at The Vitta Vardhan.</p>", html.EscapeString(a.Position))
	b.WriteString("<p>We have received your application and our HR team will review it shortly. " +
		"If your profile matches our requirements, we will contact you for further discussions.</p>")
	b.WriteString("<p>Best regards,<br>HR Team<br>The Vitta Vardhan</p>")

	return ports.Message{
		To:      a.Email,
		Subject: "Application Received",
		HTML:    b.String(),
	}
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "<p><strong>%s:</strong> %s</p>", label, html.EscapeString(value))
}

func orNotProvided(s string) string {
	if s == "" {
		return "Not provided"
	}
	return s
}
