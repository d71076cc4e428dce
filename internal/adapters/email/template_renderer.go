package email

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"notifier/internal/domain"
)

// fallbackSubject is used when a template has no subject block and the
// translations carry no base.subject_prefix.
const fallbackSubject = "Notification"

// templateRenderer implements domain.TemplateRenderer on top of a template
// root filesystem. Templates are HTML files with contextual autoescaping; a
// template may declare an optional {{define "subject"}} block whose rendered
// text becomes the email subject line.
type templateRenderer struct {
	fsys        fs.FS
	logger      *slog.Logger
	siteURL     string
	projectName string
	theme       Theme
}

// NewTemplateRenderer returns a TemplateRenderer loading templates from fsys
// (the configured template root). siteURL and projectName are exposed to every
// template through the global context.
func NewTemplateRenderer(fsys fs.FS, siteURL, projectName string, logger *slog.Logger) domain.TemplateRenderer {
	return &templateRenderer{
		fsys:        fsys,
		logger:      logger,
		siteURL:     siteURL,
		projectName: projectName,
		theme:       DefaultTheme,
	}
}

// Render executes the template at templatePath (e.g. "welcome/content.html")
// with the request context merged over the global context; request keys win on
// collision. The subject falls back to translations base.subject_prefix, then
// to a literal, and never fails on its own.
func (r *templateRenderer) Render(templatePath string, specificContext map[string]any, translations domain.TranslationTree) (string, string, error) {
	r.logger.Debug("rendering template", "path", templatePath)

	raw, err := fs.ReadFile(r.fsys, templatePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Error("template not found", "path", templatePath)
			return "", "", &domain.TemplateNotFoundError{Path: templatePath}
		}
		return "", "", fmt.Errorf("read template %s: %w", templatePath, err)
	}

	tmpl, err := template.New("content.html").Parse(string(raw))
	if err != nil {
		return "", "", fmt.Errorf("parse template %s: %w", templatePath, err)
	}

	final := map[string]any{
		"site_url":     r.siteURL,
		"project_name": r.projectName,
		"t":            translations,
		"year":         time.Now().Year(),
		"theme":        r.theme,
	}
	for k, v := range specificContext {
		final[k] = v
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, final); err != nil {
		return "", "", fmt.Errorf("execute template %s: %w", templatePath, err)
	}

	subject := r.renderSubject(tmpl, final, translations, templatePath)
	return subject, body.String(), nil
}

func (r *templateRenderer) renderSubject(tmpl *template.Template, ctx map[string]any, translations domain.TranslationTree, templatePath string) string {
	if block := tmpl.Lookup("subject"); block != nil {
		var buf bytes.Buffer
		if err := block.Execute(&buf, ctx); err == nil {
			return strings.TrimSpace(buf.String())
		}
		r.logger.Warn("failed to render subject block", "path", templatePath)
	} else {
		r.logger.Warn("no subject block in template", "path", templatePath)
	}

	if base, ok := translations["base"].(map[string]any); ok {
		if prefix, ok := base["subject_prefix"].(string); ok && prefix != "" {
			return prefix
		}
	}
	return fallbackSubject
}
