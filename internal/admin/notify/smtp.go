package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/nexusadmin/pkg/slogx"
	"gopkg.in/gomail.v2"
)

// SMTPNotifier sends email through an SMTP relay.
type SMTPNotifier struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string // defaults to Username
}

// Configured reports whether enough settings are present to send mail.
func (n *SMTPNotifier) Configured() bool {
	return n != nil && n.Host != "" && n.Username != "" && n.Password != ""
}

func (n *SMTPNotifier) from() string {
	if n.FromEmail != "" {
		return n.FromEmail
	}
	return n.Username
}

func (n *SMTPNotifier) Send(ctx context.Context, msg Message) error {
	if !n.Configured() {
		return errors.New("smtp notifier is not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.from(), n.FromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}

	d := gomail.NewDialer(n.Host, n.Port, n.Username, n.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	slogx.FromContext(ctx).Debug("email delivered", slog.String("to", msg.To), slog.String("kind", msg.Kind))
	return nil
}

// LogNotifier writes messages to the log instead of sending them. It is
// used when SMTP is not configured.
type LogNotifier struct{}

func (LogNotifier) Send(ctx context.Context, msg Message) error {
	slogx.FromContext(ctx).Info("email not sent, smtp not configured",
		slog.String("kind", msg.Kind),
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Text),
	)
	return nil
}
