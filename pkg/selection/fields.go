package selection

import (
	"github.com/goliatone/go-jobwizard/pkg/i18n"
	"github.com/goliatone/go-jobwizard/pkg/model"
)

// FieldStatus is the availability of a select field, derived from the inputs
// of a single build.
type FieldStatus string

const (
	FieldStatusLoading   FieldStatus = "loading"
	FieldStatusAvailable FieldStatus = "available"
	FieldStatusErrored   FieldStatus = "errored"
	// FieldStatusDisabled marks a field blocked by a failure of another
	// field's fetch.
	FieldStatusDisabled FieldStatus = "disabled"
)

const (
	CategoryFieldID = "job_category"
	TemplateFieldID = "job_template"
)

// FieldState describes how a select field should be presented.
type FieldState struct {
	ID          string      `json:"id"`
	Label       string      `json:"label"`
	Placeholder string      `json:"placeholder,omitempty"`
	Required    bool        `json:"required"`
	Disabled    bool        `json:"disabled"`
	Status      FieldStatus `json:"status"`
}

// CategoryField derives the category select state. It is disabled only when
// the categories list fetch failed.
func CategoryField(errs model.Errors, l i18n.Localizer) FieldState {
	state := FieldState{
		ID:       CategoryFieldID,
		Label:    l.Text("field.category.label", "Job category"),
		Required: true,
		Status:   FieldStatusAvailable,
	}
	if errs.CategoryError != "" {
		state.Disabled = true
		state.Status = FieldStatusErrored
		state.Placeholder = l.Text("field.notAvailable", "Not available")
	}
	return state
}

// TemplateField derives the template select state. It is disabled when the
// categories fetch or the templates fetch failed, or while templates load.
// A failed templates fetch takes precedence over an upstream category
// failure, which takes precedence over loading.
func TemplateField(errs model.Errors, loading bool, l i18n.Localizer) FieldState {
	state := FieldState{
		ID:     TemplateFieldID,
		Label:  l.Text("field.template.label", "Job template"),
		Status: FieldStatusAvailable,
	}
	state.Disabled = errs.CategoryError != "" || errs.AllTemplatesError != "" || loading
	if errs.AllTemplatesError != "" {
		state.Placeholder = l.Text("field.notAvailable", "Not available")
	}

	switch {
	case errs.AllTemplatesError != "":
		state.Status = FieldStatusErrored
	case errs.CategoryError != "":
		state.Status = FieldStatusDisabled
	case loading:
		state.Status = FieldStatusLoading
	}
	return state
}

// DisplayedTemplate is the value the template select shows. While templates
// load it is forced empty so no stale choice flashes.
func DisplayedTemplate(templates []model.Template, id *int, loading bool) string {
	if loading {
		return ""
	}
	name, _ := SelectedTemplateName(templates, id)
	return name
}
