// Package step composes the category and template step from its three
// derivations: provider grouping (pkg/grouping), selection coordination and
// field gating (pkg/selection), and error aggregation (pkg/notice). Build is
// pure and recomputes the whole View from the current Input on every call.
// Step routes the two selection events to the wizard's Setters, and Session
// is a ready-made Setters that keeps the selection as an immutable record.
package step
