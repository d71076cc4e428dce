package domain

// TemplateNotFoundError reports a notification template missing from the
// template root. Surfaced to the API caller as 404 with Error() as detail.
type TemplateNotFoundError struct {
	Path string
}

func (e *TemplateNotFoundError) Error() string {
	return "Template not found: " + e.Path
}

// ProviderError wraps a failure reported by the email provider. The provider's
// own message is exposed to the API caller as a 500 detail; this service is
// internal, not public-facing.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}
