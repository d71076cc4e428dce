package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notifier/internal/domain"
)

// fakeLocaleStore implements domain.LocaleStore for tests.
type fakeLocaleStore struct {
	tree     domain.TranslationTree
	resolved []string
}

func (f *fakeLocaleStore) Resolve(locale string) domain.TranslationTree {
	f.resolved = append(f.resolved, locale)
	if f.tree == nil {
		return domain.TranslationTree{}
	}
	return f.tree
}

// fakeRenderer implements domain.TemplateRenderer for tests.
type fakeRenderer struct {
	subject  string
	html     string
	err      error
	lastPath string
	lastCtx  map[string]any
}

func (f *fakeRenderer) Render(templatePath string, specificContext map[string]any, _ domain.TranslationTree) (string, string, error) {
	f.lastPath = templatePath
	f.lastCtx = specificContext
	if f.err != nil {
		return "", "", f.err
	}
	return f.subject, f.html, nil
}

// fakeMailer implements domain.Mailer for tests.
type fakeMailer struct {
	response domain.ProviderResponse
	err      error
	calls    int
	lastFrom string
	lastTo   string
	lastSubj string
	lastHTML string
}

func (f *fakeMailer) Send(_ context.Context, from, to, subject, html string) (domain.ProviderResponse, error) {
	f.calls++
	f.lastFrom = from
	f.lastTo = to
	f.lastSubj = subject
	f.lastHTML = html
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNotificationService_SendEmail(t *testing.T) {
	store := &fakeLocaleStore{tree: domain.TranslationTree{"test": "ok_en"}}
	renderer := &fakeRenderer{subject: "Welcome!", html: "<p>Hello Ann</p>"}
	mailer := &fakeMailer{response: domain.ProviderResponse{"id": "re_123"}}

	svc := NewNotificationService(store, renderer, mailer, "Email Service", "no-reply@example.com", testLogger())

	resp, err := svc.SendEmail(context.Background(), "user@example.com", "en", "welcome", map[string]any{"name": "Ann"})
	require.NoError(t, err)

	assert.Equal(t, domain.ProviderResponse{"id": "re_123"}, resp)
	assert.Equal(t, []string{"en"}, store.resolved)
	assert.Equal(t, "welcome/content.html", renderer.lastPath)
	assert.Equal(t, map[string]any{"name": "Ann"}, renderer.lastCtx)
	assert.Equal(t, 1, mailer.calls)
	assert.Equal(t, "Email Service <no-reply@example.com>", mailer.lastFrom)
	assert.Equal(t, "user@example.com", mailer.lastTo)
	assert.Equal(t, "Welcome!", mailer.lastSubj)
	assert.Equal(t, "<p>Hello Ann</p>", mailer.lastHTML)
}

func TestNotificationService_TemplateNotFoundPropagatesUnchanged(t *testing.T) {
	notFound := &domain.TemplateNotFoundError{Path: "missing_template/content.html"}
	store := &fakeLocaleStore{}
	renderer := &fakeRenderer{err: notFound}
	mailer := &fakeMailer{}

	svc := NewNotificationService(store, renderer, mailer, "Email Service", "no-reply@example.com", testLogger())

	_, err := svc.SendEmail(context.Background(), "user@example.com", "en", "missing_template", nil)
	var got *domain.TemplateNotFoundError
	require.ErrorAs(t, err, &got)
	assert.Same(t, notFound, got)
	assert.Equal(t, 0, mailer.calls, "provider must not be called when the template is missing")
}

func TestNotificationService_ProviderFailureWrapped(t *testing.T) {
	store := &fakeLocaleStore{}
	renderer := &fakeRenderer{subject: "s", html: "h"}
	mailer := &fakeMailer{err: errors.New("resend: invalid api key")}

	svc := NewNotificationService(store, renderer, mailer, "Email Service", "no-reply@example.com", testLogger())

	_, err := svc.SendEmail(context.Background(), "user@example.com", "en", "welcome", nil)
	var provErr *domain.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Contains(t, provErr.Message, "invalid api key")
	assert.Equal(t, 1, mailer.calls, "no retry after a provider failure")
}
