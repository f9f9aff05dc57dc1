// Package mail implements the admin notifier over SMTP, with a console
// fallback for environments without a configured mail account.
package mail

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/wneessen/go-mail"

	"github.com/mikan-studio/portfolio-api/internal/api/metrics"
	"github.com/mikan-studio/portfolio-api/internal/core/ports"
)

// Config captures the SMTP account and the admin recipient.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// SMTPNotifier sends application alerts to the admin address.
type SMTPNotifier struct {
	client *mail.Client
	from   string
	to     string
	logger zerolog.Logger
}

func NewSMTP(cfg Config, logger zerolog.Logger) (*SMTPNotifier, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &SMTPNotifier{client: client, from: cfg.From, to: cfg.To, logger: logger}, nil
}

func (n *SMTPNotifier) ApplicationReceived(ctx context.Context, app ports.ApplicationInput, resumeURL string) error {
	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(n.to); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	msg.Subject("New Job Application for " + app.JobTitle)
	msg.SetBodyString(mail.TypeTextHTML, applicationBody(app, resumeURL))

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		metrics.MailTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("send mail: %w", err)
	}

	n.logger.Info().Str("to", n.to).Str("job_title", app.JobTitle).Msg("application notification sent")
	metrics.MailTotal.WithLabelValues("ok").Inc()
	return nil
}

func applicationBody(app ports.ApplicationInput, resumeURL string) string {
	return fmt.Sprintf(`<h2>New Job Application</h2>
<p><strong>Position:</strong> %s</p>
<p><strong>Applicant Name:</strong> %s</p>
<p><strong>Applicant Email:</strong> %s</p>
<p><strong>Resume Link:</strong> <a href="%s">%s</a></p>`,
		app.JobTitle, app.Name, app.Email, resumeURL, resumeURL)
}
