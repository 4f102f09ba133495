// Package tui runs the category and template step in a terminal. Prompts go
// through a PromptDriver (survey by default) so the flow can be scripted in
// tests. Fields the step reports as disabled are not prompted; the notices
// explaining why are printed instead.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-jobwizard/pkg/i18n"
	"github.com/goliatone/go-jobwizard/pkg/model"
	"github.com/goliatone/go-jobwizard/pkg/notice"
	"github.com/goliatone/go-jobwizard/pkg/step"
)

// Catalog supplies the step input for a selection, standing in for the data
// layer that refetches templates when the category changes.
type Catalog interface {
	Input(sel model.Selection) step.Input
}

// Renderer drives the step interactively.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	theme        Theme
	localizer    i18n.Localizer
	sanitizer    *bluemonday.Policy
	logger       zerolog.Logger
	pageSize     int
}

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) *Renderer {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
		theme: Theme{
			InfoPrefix:  "i ",
			WarnPrefix:  "! ",
			ErrorPrefix: "x ",
		},
		sanitizer: bluemonday.StrictPolicy(),
		logger:    zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver()
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Run.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatPrettyText {
		return "text/plain"
	}
	return "application/json"
}

// Run prompts for a category and then a template, writing every change to
// session, and returns the serialized final selection.
func (r *Renderer) Run(ctx context.Context, catalog Catalog, session *step.Session) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if catalog == nil {
		return nil, errors.New("tui: catalog is nil")
	}
	if session == nil {
		return nil, errors.New("tui: session is nil")
	}

	in := catalog.Input(session.Selection())
	session.SetTemplates(in.Templates)
	view := step.Build(in, step.WithLocalizer(r.localizer))

	if err := r.printNotices(ctx, view.Notices); err != nil {
		return nil, err
	}

	if err := r.promptCategory(ctx, in, view, session); err != nil {
		return nil, err
	}

	in = catalog.Input(session.Selection())
	session.SetTemplates(in.Templates)
	view = step.Build(in, step.WithLocalizer(r.localizer))

	if err := r.promptTemplate(ctx, in, view, session); err != nil {
		return nil, err
	}

	return r.serialize(session.Selection(), catalog.Input(session.Selection()).Templates)
}

func (r *Renderer) promptCategory(ctx context.Context, in step.Input, view step.View, session *step.Session) error {
	field := view.Category
	if field.Disabled {
		r.logger.Debug().Str("field", field.ID).Str("status", string(field.Status)).Msg("field disabled, skipping prompt")
		return r.info(ctx, r.theme.WarnPrefix+field.Label+": "+placeholderOr(field.Placeholder, string(field.Status)))
	}
	if len(field.Options) == 0 {
		return r.info(ctx, r.theme.InfoPrefix+field.Label+": "+r.localizer.Text("tui.noOptions", "no options available"))
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      field.Label,
		Options:      field.Options,
		DefaultIndex: indexOf(field.Options, field.Value),
		PageSize:     r.pageSize,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(field.Options) {
		return fmt.Errorf("%w: category index %d", ErrNoSelection, idx)
	}

	category := field.Options[idx]
	if step.New(in, session).OnSelectCategory(category) {
		r.logger.Info().Str("category", category).Msg("category changed")
	}
	return nil
}

func (r *Renderer) promptTemplate(ctx context.Context, in step.Input, view step.View, session *step.Session) error {
	field := view.Template
	if field.Disabled {
		r.logger.Debug().Str("field", field.ID).Str("status", string(field.Status)).Msg("field disabled, skipping prompt")
		return r.info(ctx, r.theme.WarnPrefix+field.Label+": "+placeholderOr(field.Placeholder, string(field.Status)))
	}

	var (
		labels       []string
		names        []string
		descriptions []string
	)
	for _, group := range field.Groups {
		for _, opt := range group.Options {
			labels = append(labels, fmt.Sprintf("%s / %s", group.GroupLabel, opt.Label))
			names = append(names, opt.Label)
			descriptions = append(descriptions, fmt.Sprintf("#%d", opt.Value))
		}
	}
	if len(labels) == 0 {
		return r.info(ctx, r.theme.InfoPrefix+field.Label+": "+r.localizer.Text("tui.noOptions", "no options available"))
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      field.Label,
		Options:      labels,
		DefaultIndex: indexOf(names, field.Selected),
		Descriptions: descriptions,
		PageSize:     r.pageSize,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(labels) {
		return fmt.Errorf("%w: template index %d", ErrNoSelection, idx)
	}

	name := names[idx]
	if step.New(in, session).OnSelectTemplate(name) {
		r.logger.Info().Str("template", name).Msg("template changed")
	}
	return nil
}

func (r *Renderer) printNotices(ctx context.Context, n notice.Notices) error {
	if p := n.Permission; p != nil {
		if err := r.info(ctx, r.theme.WarnPrefix+p.Title+": "+r.clean(p.Message)); err != nil {
			return err
		}
	}
	if panel := n.Errors; panel != nil {
		if err := r.info(ctx, r.theme.ErrorPrefix+panel.Title); err != nil {
			return err
		}
		for _, line := range panel.Lines {
			if err := r.info(ctx, "  "+line.Label+" "+r.clean(line.Message)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, msg)
}

// clean strips markup from upstream messages, which are often HTML error
// pages, and restores entities for terminal display.
func (r *Renderer) clean(msg string) string {
	return strings.TrimSpace(html.UnescapeString(r.sanitizer.Sanitize(msg)))
}

type result struct {
	Category     string  `json:"category"`
	TemplateID   *int    `json:"templateId"`
	TemplateName string  `json:"templateName,omitempty"`
	Feature      *string `json:"feature"`
}

func (r *Renderer) serialize(sel model.Selection, templates []model.Template) ([]byte, error) {
	res := result{
		Category:   sel.Category,
		TemplateID: sel.TemplateID,
		Feature:    sel.Feature,
	}
	if sel.TemplateID != nil {
		for _, tmpl := range templates {
			if tmpl.ID == *sel.TemplateID {
				res.TemplateName = tmpl.Name
				break
			}
		}
	}

	switch r.outputFormat {
	case OutputFormatPrettyText:
		var b strings.Builder
		fmt.Fprintf(&b, "category: %s\n", placeholderOr(res.Category, "-"))
		if res.TemplateID != nil {
			fmt.Fprintf(&b, "template: %s (#%d)\n", placeholderOr(res.TemplateName, "?"), *res.TemplateID)
		} else {
			b.WriteString("template: -\n")
		}
		return []byte(b.String()), nil
	default:
		payload, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("tui: encode selection: %w", err)
		}
		return payload, nil
	}
}

func placeholderOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func indexOf(options []string, value string) int {
	if value == "" {
		return -1
	}
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return -1
}
