// Package selection coordinates the category and template choices of the
// step. Templates and features are scoped to a category, so a category change
// clears both, and a template change clears the feature. Each event yields a
// Change describing every write it performs; the wizard applies the whole
// Change through Setters before reading the selection again.
package selection

import "github.com/goliatone/go-jobwizard/pkg/model"

// Setters receives the writes of a Change. Implementations own the selection
// record; nil clears a value.
type Setters interface {
	SetCategory(category string)
	SetJobTemplate(name *string)
	SetFeature(value *string)
}

// Applier is implemented by Setters that apply a whole Change at once, for
// example under a single lock.
type Applier interface {
	ApplyChange(c Change)
}

// Change is the write set produced by one selection event. The zero value
// performs no writes.
type Change struct {
	SetCategory  bool
	Category     string
	SetTemplate  bool
	Template     *string
	ClearFeature bool
}

// Empty reports whether the change performs no writes.
func (c Change) Empty() bool {
	return !c.SetCategory && !c.SetTemplate && !c.ClearFeature
}

// Apply performs the writes on s. When s implements Applier the change is
// handed over in one call. The order of the writes is not part of the
// contract.
func (c Change) Apply(s Setters) {
	if s == nil || c.Empty() {
		return
	}
	if applier, ok := s.(Applier); ok {
		applier.ApplyChange(c)
		return
	}
	c.write(s)
}

// WriteTo performs the writes on s one by one, bypassing Applier.
func (c Change) WriteTo(s Setters) {
	if s == nil || c.Empty() {
		return
	}
	c.write(s)
}

func (c Change) write(s Setters) {
	if c.SetCategory {
		s.SetCategory(c.Category)
	}
	if c.SetTemplate {
		s.SetJobTemplate(c.Template)
	}
	if c.ClearFeature {
		s.SetFeature(nil)
	}
}

// SelectedTemplateName resolves the display name of the template with the
// given id. It reports false when id is nil or no template matches; the
// first match wins.
func SelectedTemplateName(templates []model.Template, id *int) (string, bool) {
	if id == nil {
		return "", false
	}
	for _, tmpl := range templates {
		if tmpl.ID == *id {
			return tmpl.Name, true
		}
	}
	return "", false
}

// Coordinator derives selection changes from the current inputs.
type Coordinator struct {
	Selection        model.Selection
	Templates        []model.Template
	TemplatesLoading bool
}

// SelectedTemplateName resolves the name of the currently selected template.
// Nothing resolves while templates load.
func (c Coordinator) SelectedTemplateName() (string, bool) {
	if c.TemplatesLoading {
		return "", false
	}
	return SelectedTemplateName(c.Templates, c.Selection.TemplateID)
}

// OnSelectCategory returns the writes for choosing category. Re-selecting the
// current category, including the initial empty value, writes nothing.
func (c Coordinator) OnSelectCategory(category string) Change {
	if category == c.Selection.Category {
		return Change{}
	}
	return Change{
		SetCategory:  true,
		Category:     category,
		SetTemplate:  true,
		Template:     nil,
		ClearFeature: true,
	}
}

// OnSelectTemplate returns the writes for choosing the template labelled
// label. The guard compares display names: when two templates share a name,
// picking the other one while the first is selected writes nothing.
func (c Coordinator) OnSelectTemplate(label string) Change {
	if name, ok := c.SelectedTemplateName(); ok && name == label {
		return Change{}
	}
	return Change{
		SetTemplate:  true,
		Template:     model.StringPtr(label),
		ClearFeature: true,
	}
}
