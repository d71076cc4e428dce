package services

import (
	"context"
	"fmt"
	"log/slog"

	"notifier/internal/domain"
)

type notificationService struct {
	store    domain.LocaleStore
	renderer domain.TemplateRenderer
	mailer   domain.Mailer
	logger   *slog.Logger

	fromEmail string
	fromName  string
}

// NewNotificationService returns a NotificationService that resolves
// translations through store, renders through renderer, and dispatches
// through mailer. fromName and fromEmail form the sender address.
func NewNotificationService(store domain.LocaleStore, renderer domain.TemplateRenderer, mailer domain.Mailer, fromName, fromEmail string, logger *slog.Logger) domain.NotificationService {
	return &notificationService{
		store:     store,
		renderer:  renderer,
		mailer:    mailer,
		logger:    logger,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// SendEmail renders the named template for the given language and sends the
// result to toEmail. A missing template propagates unchanged (client error);
// any provider failure is wrapped in *domain.ProviderError. No retries: a
// failed send is simply reported failed.
func (s *notificationService) SendEmail(ctx context.Context, toEmail, language, templateName string, templateContext map[string]any) (domain.ProviderResponse, error) {
	templatePath := templateName + "/content.html"
	translations := s.store.Resolve(language)

	s.logger.Info("processing email request", "to", toEmail, "template", templatePath, "lang", language)

	subject, html, err := s.renderer.Render(templatePath, templateContext, translations)
	if err != nil {
		return nil, err
	}

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)

	s.logger.Debug("sending via provider", "to", toEmail)
	response, err := s.mailer.Send(ctx, from, toEmail, subject, html)
	if err != nil {
		s.logger.Error("failed to send email via provider", "to", toEmail, "err", err)
		return nil, &domain.ProviderError{Message: err.Error()}
	}

	s.logger.Info("email sent successfully", "to", toEmail, "id", response["id"])
	return response, nil
}
