// Package notice folds the upstream fetch failures and the missing
// permissions of the actor into the two notices the step shows: an access
// warning listing the missing permissions, and an error panel with one line
// per failed fetch. A categories failure that comes with missing permissions
// is reported only through the access warning.
package notice

import (
	"strings"

	"github.com/goliatone/go-jobwizard/pkg/i18n"
	"github.com/goliatone/go-jobwizard/pkg/model"
)

// Source identifies the upstream fetch behind an error line.
type Source string

const (
	SourceCategories Source = "categories"
	SourceTemplates  Source = "templates"
	SourceTemplate   Source = "template"
)

// Line is a single entry of the error panel.
type Line struct {
	Source  Source `json:"source"`
	Label   string `json:"label"`
	Message string `json:"message"`
}

// String renders the line as "<label> <message>".
func (l Line) String() string {
	return l.Label + " " + l.Message
}

// Panel lists the fetch failures to surface.
type Panel struct {
	Title string `json:"title"`
	Lines []Line `json:"lines"`
}

// PermissionNotice is the access warning for missing permissions.
type PermissionNotice struct {
	Title       string   `json:"title"`
	Message     string   `json:"message"`
	Permissions []string `json:"permissions"`
}

// Notices is the display-ready error state of the step. Permission and
// Errors are independent and may both be set.
type Notices struct {
	IsError    bool              `json:"isError"`
	Permission *PermissionNotice `json:"permission,omitempty"`
	Errors     *Panel            `json:"errors,omitempty"`
}

// Empty reports whether there is nothing to show.
func (n Notices) Empty() bool {
	return n.Permission == nil && n.Errors == nil
}

// Option configures Aggregate.
type Option func(*config)

type config struct {
	localizer i18n.Localizer
}

// WithLocalizer translates titles and labels.
func WithLocalizer(l i18n.Localizer) Option {
	return func(cfg *config) {
		cfg.localizer = l
	}
}

// IsError reports whether the error panel is shown: a categories failure
// counts only when no permissions are missing, the templates list and single
// template failures always count.
func IsError(errs model.Errors, missingPermissions []string) bool {
	return (errs.CategoryError != "" && len(missingPermissions) == 0) ||
		errs.AllTemplatesError != "" ||
		errs.TemplateError != ""
}

// Aggregate builds the notices for the given failures and missing
// permissions. Messages are surfaced verbatim.
func Aggregate(errs model.Errors, missingPermissions []string, opts ...Option) Notices {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	l := cfg.localizer

	out := Notices{IsError: IsError(errs, missingPermissions)}

	if len(missingPermissions) > 0 {
		perms := append([]string(nil), missingPermissions...)
		out.Permission = &PermissionNotice{
			Title:       l.Text("notice.accessDenied.title", "Access denied"),
			Message:     l.Text("notice.accessDenied.message", "Missing the required permissions:") + " " + strings.Join(perms, ", "),
			Permissions: perms,
		}
	}

	if !out.IsError {
		return out
	}

	panel := &Panel{Title: l.Text("notice.errors.title", "Errors:")}
	if errs.CategoryError != "" && len(missingPermissions) == 0 {
		panel.Lines = append(panel.Lines, Line{
			Source:  SourceCategories,
			Label:   l.Text("notice.errors.categories", "Categories list failed with:"),
			Message: errs.CategoryError,
		})
	}
	if errs.AllTemplatesError != "" {
		panel.Lines = append(panel.Lines, Line{
			Source:  SourceTemplates,
			Label:   l.Text("notice.errors.templates", "Templates list failed with:"),
			Message: errs.AllTemplatesError,
		})
	}
	if errs.TemplateError != "" {
		panel.Lines = append(panel.Lines, Line{
			Source:  SourceTemplate,
			Label:   l.Text("notice.errors.template", "Template failed with:"),
			Message: errs.TemplateError,
		})
	}
	out.Errors = panel
	return out
}
