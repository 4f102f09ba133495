// Package summary renders a step.View as a plain text report through an
// embedded pongo2 template.
package summary

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-jobwizard/pkg/step"
)

//go:embed summary.tpl
var defaultTemplate string

// Option configures the renderer.
type Option func(*Renderer)

// WithTemplate replaces the embedded template source.
func WithTemplate(source string) Option {
	return func(r *Renderer) {
		if source != "" {
			r.source = source
		}
	}
}

// Renderer renders views as text. Templates compile lazily on first use.
type Renderer struct {
	source string

	once     sync.Once
	compiled *pongo2.Template
	err      error
}

// New constructs a Renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{source: defaultTemplate}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// ContentType reports the rendered media type.
func (r *Renderer) ContentType() string {
	return "text/plain"
}

// Render returns the text report for view.
func (r *Renderer) Render(view step.View) (string, error) {
	tpl, err := r.template()
	if err != nil {
		return "", err
	}
	out, err := tpl.Execute(contextFor(view))
	if err != nil {
		return "", fmt.Errorf("summary: execute: %w", err)
	}
	return out, nil
}

// RenderTo writes the text report for view to w.
func (r *Renderer) RenderTo(w io.Writer, view step.View) error {
	if w == nil {
		return errors.New("summary: writer is nil")
	}
	out, err := r.Render(view)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func (r *Renderer) template() (*pongo2.Template, error) {
	r.once.Do(func() {
		r.compiled, r.err = pongo2.FromString(r.source)
		if r.err != nil {
			r.err = fmt.Errorf("summary: compile template: %w", r.err)
		}
	})
	return r.compiled, r.err
}

func contextFor(view step.View) pongo2.Context {
	groups := make([]map[string]any, 0, len(view.Template.Groups))
	for _, group := range view.Template.Groups {
		options := make([]map[string]any, 0, len(group.Options))
		for _, opt := range group.Options {
			options = append(options, map[string]any{"label": opt.Label, "value": opt.Value})
		}
		groups = append(groups, map[string]any{"label": group.GroupLabel, "options": options})
	}

	ctx := pongo2.Context{
		"title": view.Title,
		"note":  view.Note,
		"category": map[string]any{
			"label":       view.Category.Label,
			"value":       view.Category.Value,
			"status":      string(view.Category.Status),
			"placeholder": view.Category.Placeholder,
			"options":     view.Category.Options,
		},
		"template": map[string]any{
			"label":       view.Template.Label,
			"selected":    view.Template.Selected,
			"status":      string(view.Template.Status),
			"placeholder": view.Template.Placeholder,
			"groups":      groups,
		},
	}

	if p := view.Notices.Permission; p != nil {
		ctx["permission"] = map[string]any{"title": p.Title, "message": p.Message}
	}
	if panel := view.Notices.Errors; panel != nil {
		lines := make([]string, 0, len(panel.Lines))
		for _, line := range panel.Lines {
			lines = append(lines, line.String())
		}
		ctx["errors"] = map[string]any{"title": panel.Title, "lines": lines}
	}
	return ctx
}
