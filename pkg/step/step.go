package step

import (
	"github.com/goliatone/go-jobwizard/pkg/grouping"
	"github.com/goliatone/go-jobwizard/pkg/i18n"
	"github.com/goliatone/go-jobwizard/pkg/model"
	"github.com/goliatone/go-jobwizard/pkg/notice"
	"github.com/goliatone/go-jobwizard/pkg/selection"
)

// Input holds everything the step reads from the data layer and the wizard.
// The zero value is a valid input: no options, no errors, nothing selected.
type Input struct {
	Categories         []string         `json:"jobCategories" yaml:"job_categories"`
	Templates          []model.Template `json:"jobTemplates" yaml:"job_templates"`
	TemplatesLoading   bool             `json:"isTemplatesLoading" yaml:"templates_loading"`
	MissingPermissions []string         `json:"missingPermissions" yaml:"missing_permissions"`
	Errors             model.Errors     `json:"errors" yaml:"errors"`
	Selection          model.Selection  `json:"selection" yaml:"selection"`
}

// CategoryView is the category select as presented.
type CategoryView struct {
	selection.FieldState
	Options []string `json:"options"`
	Value   string   `json:"value"`
}

// TemplateView is the grouped template select as presented. Selected is
// empty while templates load.
type TemplateView struct {
	selection.FieldState
	Groups   []model.TemplateGroup `json:"groups"`
	Selected string                `json:"selected"`
}

// View is the derived, display-ready state of the step.
type View struct {
	Title    string         `json:"title"`
	Note     string         `json:"note"`
	Category CategoryView   `json:"category"`
	Template TemplateView   `json:"template"`
	Notices  notice.Notices `json:"notices"`
}

// Option configures Build and Step.
type Option func(*options)

type options struct {
	localizer i18n.Localizer
}

// WithLocalizer translates every label the step produces.
func WithLocalizer(l i18n.Localizer) Option {
	return func(o *options) {
		o.localizer = l
	}
}

func collectOptions(opts []Option) options {
	out := options{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&out)
	}
	return out
}

// Build derives the View for in.
func Build(in Input, opts ...Option) View {
	o := collectOptions(opts)
	l := o.localizer

	groups := grouping.Group(in.Templates, in.TemplatesLoading)

	return View{
		Title: l.Text("step.title", "Category And Template"),
		Note:  l.Text("step.requiredNote", "All fields are required."),
		Category: CategoryView{
			FieldState: selection.CategoryField(in.Errors, l),
			Options:    append([]string(nil), in.Categories...),
			Value:      in.Selection.Category,
		},
		Template: TemplateView{
			FieldState: selection.TemplateField(in.Errors, in.TemplatesLoading, l),
			Groups:     groups.Values(),
			Selected:   selection.DisplayedTemplate(in.Templates, in.Selection.TemplateID, in.TemplatesLoading),
		},
		Notices: notice.Aggregate(in.Errors, in.MissingPermissions, notice.WithLocalizer(l)),
	}
}

// Step binds one Input to the Setters of the wizard.
type Step struct {
	input   Input
	setters selection.Setters
	opts    options
}

// New constructs a Step for in, writing selection changes to setters.
func New(in Input, setters selection.Setters, opts ...Option) *Step {
	return &Step{
		input:   in,
		setters: setters,
		opts:    collectOptions(opts),
	}
}

// View builds the current view.
func (s *Step) View() View {
	return Build(s.input, WithLocalizer(s.opts.localizer))
}

// OnSelectCategory handles a category pick and reports whether anything was
// written.
func (s *Step) OnSelectCategory(category string) bool {
	change := s.coordinator().OnSelectCategory(category)
	change.Apply(s.setters)
	return !change.Empty()
}

// OnSelectTemplate handles a template pick by label and reports whether
// anything was written.
func (s *Step) OnSelectTemplate(label string) bool {
	change := s.coordinator().OnSelectTemplate(label)
	change.Apply(s.setters)
	return !change.Empty()
}

func (s *Step) coordinator() selection.Coordinator {
	return selection.Coordinator{
		Selection:        s.input.Selection,
		Templates:        s.input.Templates,
		TemplatesLoading: s.input.TemplatesLoading,
	}
}
