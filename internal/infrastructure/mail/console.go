package mail

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mikan-studio/portfolio-api/internal/core/ports"
)

// ConsoleNotifier logs notifications instead of sending them. Used when no
// SMTP host is configured, typically in development.
type ConsoleNotifier struct {
	logger zerolog.Logger
}

func NewConsole(logger zerolog.Logger) *ConsoleNotifier {
	return &ConsoleNotifier{logger: logger}
}

func (n *ConsoleNotifier) ApplicationReceived(_ context.Context, app ports.ApplicationInput, resumeURL string) error {
	n.logger.Info().
		Str("job_title", app.JobTitle).
		Str("applicant", app.Name).
		Str("email", app.Email).
		Str("resume_url", resumeURL).
		Msg("application received (mail disabled)")
	return nil
}
