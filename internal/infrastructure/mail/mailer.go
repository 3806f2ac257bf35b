package mail

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/thevittavardhan/backend/internal/core/ports"
)

// SMTPConfig captures the relay settings for outbound mail.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// SMTPMailer delivers messages through an SMTP relay via gomail. Every send
// is bounded by the configured timeout so an unreachable relay cannot
// accumulate in-flight sends indefinitely.
type SMTPMailer struct {
	dialer  *gomail.Dialer
	from    string
	timeout time.Duration
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SMTPMailer{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:    cfg.From,
		timeout: timeout,
	}
}

// Send delivers one message. gomail's DialAndSend has no context support,
// so the call runs in its own goroutine and is abandoned on timeout; the
// goroutine exits once the dial fails or the relay responds.
func (s *SMTPMailer) Send(ctx context.Context, msg ports.Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.dialer.DialAndSend(m) }()

	select {
	case <-ctx.Done():
		return fmt.Errorf("smtp send to %s: %w", msg.To, ctx.Err())
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send to %s: %w", msg.To, err)
		}
		return nil
	}
}
