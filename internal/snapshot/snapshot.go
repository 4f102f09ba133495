// Package snapshot loads a recorded state of the data layer (category list,
// templates per category, loading flag, fetch errors and missing permissions)
// from a JSON or YAML document. The CLI and tests use it in place of live
// fetching.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-jobwizard/pkg/model"
	"github.com/goliatone/go-jobwizard/pkg/step"
)

// ErrEmpty is returned for blank documents.
var ErrEmpty = errors.New("snapshot: document is empty")

// Catalog is a parsed snapshot.
type Catalog struct {
	Source             string
	Categories         []string
	Templates          map[string][]model.Template
	TemplatesLoading   bool
	MissingPermissions []string
	Errors             model.Errors
	Selection          model.Selection
}

type documentFile struct {
	JobCategories       []string                    `json:"job_categories" yaml:"job_categories"`
	TemplatesByCategory map[string][]model.Template `json:"templates_by_category" yaml:"templates_by_category"`
	TemplatesLoading    bool                        `json:"templates_loading" yaml:"templates_loading"`
	MissingPermissions  []string                    `json:"missing_permissions" yaml:"missing_permissions"`
	Errors              model.Errors                `json:"errors" yaml:"errors"`
	Selection           selectionFile               `json:"selection" yaml:"selection"`
}

type selectionFile struct {
	Category   string  `json:"category" yaml:"category"`
	TemplateID *int    `json:"template_id" yaml:"template_id"`
	Feature    *string `json:"feature" yaml:"feature"`
}

// Load reads and parses the snapshot at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads and parses the snapshot at path inside fsys.
func LoadFS(fsys fs.FS, path string) (*Catalog, error) {
	if fsys == nil {
		return nil, errors.New("snapshot: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a JSON document, falling back to YAML.
func Parse(data []byte, source string) (*Catalog, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, source)
	}

	var doc documentFile
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = documentFile{}
		if yerr := yaml.Unmarshal(data, &doc); yerr != nil {
			return nil, fmt.Errorf("snapshot: parse %s: invalid JSON or YAML: %w", source, yerr)
		}
	}

	return normalise(doc, source)
}

func normalise(doc documentFile, source string) (*Catalog, error) {
	catalog := &Catalog{
		Source:             source,
		Templates:          make(map[string][]model.Template, len(doc.TemplatesByCategory)),
		TemplatesLoading:   doc.TemplatesLoading,
		MissingPermissions: trimAll(doc.MissingPermissions),
		Errors:             doc.Errors,
		Selection: model.Selection{
			Category:   strings.TrimSpace(doc.Selection.Category),
			TemplateID: doc.Selection.TemplateID,
			Feature:    doc.Selection.Feature,
		},
	}

	seen := make(map[string]struct{}, len(doc.JobCategories))
	for _, raw := range doc.JobCategories {
		category := strings.TrimSpace(raw)
		if category == "" {
			return nil, fmt.Errorf("snapshot: file %s lists an empty category", source)
		}
		if _, dup := seen[category]; dup {
			return nil, fmt.Errorf("snapshot: duplicate category %q (file %s)", category, source)
		}
		seen[category] = struct{}{}
		catalog.Categories = append(catalog.Categories, category)
	}

	for rawCategory, templates := range doc.TemplatesByCategory {
		category := strings.TrimSpace(rawCategory)
		if _, ok := seen[category]; !ok {
			return nil, fmt.Errorf("snapshot: templates listed for unknown category %q (file %s)", category, source)
		}
		for i, tmpl := range templates {
			if strings.TrimSpace(tmpl.Name) == "" {
				return nil, fmt.Errorf("snapshot: template %d of category %q has no name (file %s)", i, category, source)
			}
		}
		catalog.Templates[category] = append([]model.Template(nil), templates...)
	}

	return catalog, nil
}

// TemplatesFor returns the templates recorded for category.
func (c *Catalog) TemplatesFor(category string) []model.Template {
	if c == nil {
		return nil
	}
	return append([]model.Template(nil), c.Templates[category]...)
}

// Input builds the step input for sel, listing the templates of its
// category.
func (c *Catalog) Input(sel model.Selection) step.Input {
	if c == nil {
		return step.Input{Selection: sel}
	}
	return step.Input{
		Categories:         append([]string(nil), c.Categories...),
		Templates:          c.TemplatesFor(sel.Category),
		TemplatesLoading:   c.TemplatesLoading,
		MissingPermissions: append([]string(nil), c.MissingPermissions...),
		Errors:             c.Errors,
		Selection:          sel,
	}
}

func trimAll(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
