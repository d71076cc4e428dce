package domain

import "context"

// DefaultLocale is the catalog entry every unresolved locale falls back to.
const DefaultLocale = "es"

// TranslationTree is a nested mapping of string keys to strings or further
// nested mappings, as loaded from a locale file.
type TranslationTree = map[string]any

// ProviderResponse is the raw payload returned by the email provider on a
// successful send. It is passed through to the API caller unmodified.
type ProviderResponse = map[string]any

// LocaleStore serves translation trees by locale code (infrastructure port).
type LocaleStore interface {
	// Resolve returns the translation tree for the given locale code, falling
	// back to the default locale when absent. It never returns nil.
	Resolve(locale string) TranslationTree
}

// TemplateRenderer renders a notification template into a subject line and an
// HTML body (infrastructure port).
type TemplateRenderer interface {
	// Render executes the template at templatePath with the request context
	// merged over the global context. Returns *TemplateNotFoundError when
	// templatePath does not exist under the template root.
	Render(templatePath string, specificContext map[string]any, translations TranslationTree) (subject, html string, err error)
}

// Mailer defines the contract for sending one email through the provider
// (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, from, to, subject, html string) (ProviderResponse, error)
}

// NotificationService orchestrates one notification send end to end.
type NotificationService interface {
	SendEmail(ctx context.Context, toEmail, language, templateName string, templateContext map[string]any) (ProviderResponse, error)
}
