package email

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notifier/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testRenderer(files map[string]string) domain.TemplateRenderer {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return NewTemplateRenderer(fsys, "https://example.com", "Email Service", testLogger())
}

func TestRender_SubjectBlock(t *testing.T) {
	r := testRenderer(map[string]string{
		"welcome/content.html": `{{define "subject"}}Welcome {{.name}}!{{end}}<p>Hello {{.name}}</p>`,
	})

	subject, html, err := r.Render("welcome/content.html", map[string]any{"name": "Ann"}, domain.TranslationTree{})
	require.NoError(t, err)
	assert.Equal(t, "Welcome Ann!", subject)
	assert.Contains(t, html, "Hello Ann")
}

func TestRender_SubjectFallsBackToSubjectPrefix(t *testing.T) {
	r := testRenderer(map[string]string{
		"welcome/content.html": `<p>Hello</p>`,
	})
	translations := domain.TranslationTree{
		"base": map[string]any{"subject_prefix": "Test Subject"},
	}

	subject, html, err := r.Render("welcome/content.html", nil, translations)
	require.NoError(t, err)
	assert.Equal(t, "Test Subject", subject)
	assert.Equal(t, "<p>Hello</p>", html)
}

func TestRender_SubjectFallsBackToLiteral(t *testing.T) {
	r := testRenderer(map[string]string{
		"welcome/content.html": `<p>Hello</p>`,
	})

	subject, _, err := r.Render("welcome/content.html", nil, domain.TranslationTree{})
	require.NoError(t, err)
	assert.Equal(t, "Notification", subject)
}

func TestRender_TemplateNotFound(t *testing.T) {
	r := testRenderer(map[string]string{})

	_, _, err := r.Render("missing_template/content.html", nil, domain.TranslationTree{})
	var notFound *domain.TemplateNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing_template/content.html", notFound.Path)
	assert.Equal(t, "Template not found: missing_template/content.html", err.Error())
}

func TestRender_SpecificContextWinsOverGlobal(t *testing.T) {
	r := testRenderer(map[string]string{
		"welcome/content.html": `<p>{{.project_name}}</p>`,
	})

	_, html, err := r.Render("welcome/content.html", map[string]any{"project_name": "Override"}, domain.TranslationTree{})
	require.NoError(t, err)
	assert.Contains(t, html, "Override")
	assert.NotContains(t, html, "Email Service")
}

func TestRender_GlobalContext(t *testing.T) {
	r := testRenderer(map[string]string{
		"welcome/content.html": `<a href="{{.site_url}}">{{.project_name}}</a> {{.year}} {{.theme.Primary}} {{.t.test.message}}`,
	})
	translations := domain.TranslationTree{
		"test": map[string]any{"message": "Works!"},
	}

	_, html, err := r.Render("welcome/content.html", nil, translations)
	require.NoError(t, err)
	assert.Contains(t, html, "https://example.com")
	assert.Contains(t, html, "Email Service")
	assert.Contains(t, html, fmt.Sprint(time.Now().Year()))
	assert.Contains(t, html, DefaultTheme.Primary)
	assert.Contains(t, html, "Works!")
}

func TestRender_AutoescapesContextValues(t *testing.T) {
	r := testRenderer(map[string]string{
		"welcome/content.html": `<p>{{.name}}</p>`,
	})

	_, html, err := r.Render("welcome/content.html", map[string]any{"name": `<script>alert("x")</script>`}, domain.TranslationTree{})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRender_Deterministic(t *testing.T) {
	r := testRenderer(map[string]string{
		"welcome/content.html": `{{define "subject"}}Hi{{end}}<p>{{.name}} {{.t.test.message}} {{.year}}</p>`,
	})
	ctx := map[string]any{"name": "Ann"}
	translations := domain.TranslationTree{"test": map[string]any{"message": "ok"}}

	subject1, html1, err := r.Render("welcome/content.html", ctx, translations)
	require.NoError(t, err)
	subject2, html2, err := r.Render("welcome/content.html", ctx, translations)
	require.NoError(t, err)

	assert.Equal(t, subject1, subject2)
	assert.Equal(t, html1, html2)
}
