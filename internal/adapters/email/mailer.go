package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"

	"notifier/internal/domain"
)

// MailerConfig holds configuration for creating a mailer.
type MailerConfig struct {
	Provider string
	APIKey   string
}

// NewMailer creates a mailer from config. Provider "resend" uses the Resend
// API; "noop" or unknown uses a no-op mailer that only logs.
func NewMailer(config MailerConfig, logger *slog.Logger) domain.Mailer {
	switch config.Provider {
	case "resend":
		return &resendMailer{
			client: resend.NewClient(config.APIKey),
			logger: logger,
		}
	case "noop":
		return &noopMailer{logger: logger}
	default:
		logger.Warn("unknown email provider, using noop", "provider", config.Provider)
		return &noopMailer{logger: logger}
	}
}

type resendMailer struct {
	client *resend.Client
	logger *slog.Logger
}

func (m *resendMailer) Send(ctx context.Context, from, to, subject, html string) (domain.ProviderResponse, error) {
	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}
	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to send email via resend: %w", err)
	}
	m.logger.Info("email sent via resend", "to", to, "id", sent.Id)
	return domain.ProviderResponse{"id": sent.Id}, nil
}

type noopMailer struct {
	logger *slog.Logger
}

func (m *noopMailer) Send(_ context.Context, _, to, subject, _ string) (domain.ProviderResponse, error) {
	m.logger.Info("email would be sent (noop)", "to", to, "subject", subject)
	return domain.ProviderResponse{"id": "noop"}, nil
}
