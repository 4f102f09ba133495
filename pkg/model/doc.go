// Package model defines the records exchanged between the data layer, the
// category and template step, and the wizard that owns the selection.
// Templates arrive as flat records tagged with their provider type; the step
// derives TemplateGroup values from them on every build and never persists
// them. Upstream fetch failures travel as plain message strings on Errors,
// where an empty string means the fetch did not fail. Selection is an
// immutable value: the With* helpers return updated copies so a single
// writer can swap the whole record at once.
package model
