package model

// Template is a job template as supplied by the data layer.
type Template struct {
	ID           int    `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	ProviderType string `json:"provider_type" yaml:"provider_type"`
}

// Option is a single entry of a grouped select.
type Option struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// TemplateGroup collects the template options sharing a provider type.
type TemplateGroup struct {
	GroupLabel string   `json:"groupLabel"`
	Options    []Option `json:"options"`
}

// Errors carries the failure messages of the three upstream fetches. Each
// field is independent; an empty string means the fetch succeeded or has not
// reported yet.
type Errors struct {
	// CategoryError reports a failed categories list fetch.
	CategoryError string `json:"categoryError,omitempty" yaml:"categoryError,omitempty"`
	// AllTemplatesError reports a failed templates list fetch.
	AllTemplatesError string `json:"allTemplatesError,omitempty" yaml:"allTemplatesError,omitempty"`
	// TemplateError reports a failed single template lookup.
	TemplateError string `json:"templateError,omitempty" yaml:"templateError,omitempty"`
}

// Empty reports whether no upstream fetch failed.
func (e Errors) Empty() bool {
	return e.CategoryError == "" && e.AllTemplatesError == "" && e.TemplateError == ""
}

// Selection is the wizard-owned choice for this step. Category "" is the
// initial, unselected value. TemplateID and Feature are nil when cleared.
type Selection struct {
	Category   string  `json:"category" yaml:"category"`
	TemplateID *int    `json:"templateId" yaml:"template_id"`
	Feature    *string `json:"feature" yaml:"feature"`
}

// WithCategory returns a copy with the category replaced.
func (s Selection) WithCategory(category string) Selection {
	s.Category = category
	return s
}

// WithTemplateID returns a copy with the template id replaced. A nil id
// clears the template.
func (s Selection) WithTemplateID(id *int) Selection {
	if id == nil {
		s.TemplateID = nil
		return s
	}
	v := *id
	s.TemplateID = &v
	return s
}

// WithFeature returns a copy with the feature replaced. A nil value clears
// the feature.
func (s Selection) WithFeature(feature *string) Selection {
	if feature == nil {
		s.Feature = nil
		return s
	}
	v := *feature
	s.Feature = &v
	return s
}

// HasTemplate reports whether a template id is selected.
func (s Selection) HasTemplate() bool {
	return s.TemplateID != nil
}

// IntPtr is a small helper for building selections in callers and tests.
func IntPtr(v int) *int {
	return &v
}

// StringPtr is a small helper for building selections in callers and tests.
func StringPtr(v string) *string {
	return &v
}
