// Package jobwizard exposes the category and template step of the job
// wizard from the module root. See pkg/step for the composition and the
// pkg/grouping, pkg/selection and pkg/notice packages for the derivations.
package jobwizard

import (
	"github.com/goliatone/go-jobwizard/pkg/model"
	"github.com/goliatone/go-jobwizard/pkg/selection"
	"github.com/goliatone/go-jobwizard/pkg/step"
)

// Input aliases step.Input for callers that only import the root package.
type Input = step.Input

// View aliases step.View.
type View = step.View

// Setters aliases selection.Setters, the write side owned by the wizard.
type Setters = selection.Setters

// Template aliases model.Template.
type Template = model.Template

// Selection aliases model.Selection.
type Selection = model.Selection

// Errors aliases model.Errors.
type Errors = model.Errors

// Build derives the step view for in.
func Build(in Input, opts ...step.Option) View {
	return step.Build(in, opts...)
}

// NewStep binds in to the wizard's setters.
func NewStep(in Input, setters Setters, opts ...step.Option) *step.Step {
	return step.New(in, setters, opts...)
}

// NewSession returns a Setters implementation that keeps the selection as an
// immutable record.
func NewSession(initial Selection, opts ...step.SessionOption) *step.Session {
	return step.NewSession(initial, opts...)
}
