// Package grouping partitions job templates into provider groups for a
// grouped select. Groups keep the order in which each provider type was first
// seen, and options inside a group keep the order of the input templates.
package grouping

import (
	"bytes"
	"encoding/json"

	"github.com/goliatone/go-jobwizard/pkg/model"
)

// Groups is an insertion-ordered mapping from provider type to its template
// group. The zero value is not usable; call New.
type Groups struct {
	keys   []string
	index  map[string]int
	groups []model.TemplateGroup
}

// New returns an empty mapping.
func New() *Groups {
	return &Groups{index: make(map[string]int)}
}

// GetOrCreate returns the group keyed by provider, creating it with
// GroupLabel set to provider when it does not exist yet. The returned pointer
// is only valid until the next GetOrCreate call.
func (g *Groups) GetOrCreate(provider string) *model.TemplateGroup {
	if idx, ok := g.index[provider]; ok {
		return &g.groups[idx]
	}
	g.index[provider] = len(g.groups)
	g.keys = append(g.keys, provider)
	g.groups = append(g.groups, model.TemplateGroup{GroupLabel: provider})
	return &g.groups[len(g.groups)-1]
}

// Get returns a copy of the group keyed by provider.
func (g *Groups) Get(provider string) (model.TemplateGroup, bool) {
	if g == nil {
		return model.TemplateGroup{}, false
	}
	idx, ok := g.index[provider]
	if !ok {
		return model.TemplateGroup{}, false
	}
	return cloneGroup(g.groups[idx]), true
}

// Len reports the number of groups.
func (g *Groups) Len() int {
	if g == nil {
		return 0
	}
	return len(g.groups)
}

// Keys returns the provider types in first-seen order.
func (g *Groups) Keys() []string {
	if g == nil || len(g.keys) == 0 {
		return nil
	}
	return append([]string(nil), g.keys...)
}

// Values returns copies of the groups in first-seen order, ready for a
// grouped select widget.
func (g *Groups) Values() []model.TemplateGroup {
	if g == nil || len(g.groups) == 0 {
		return nil
	}
	out := make([]model.TemplateGroup, len(g.groups))
	for i, group := range g.groups {
		out[i] = cloneGroup(group)
	}
	return out
}

// MarshalJSON encodes the mapping as a JSON object whose keys follow
// insertion order.
func (g *Groups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range g.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(g.groups[i])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Group builds the provider mapping for templates. While templates are
// loading the mapping is empty regardless of the cached list so no option is
// offered against partial data. Duplicate template ids are kept as separate
// options.
func Group(templates []model.Template, loading bool) *Groups {
	groups := New()
	if loading {
		return groups
	}
	for _, tmpl := range templates {
		group := groups.GetOrCreate(tmpl.ProviderType)
		group.Options = append(group.Options, model.Option{
			Label: tmpl.Name,
			Value: tmpl.ID,
		})
	}
	return groups
}

func cloneGroup(group model.TemplateGroup) model.TemplateGroup {
	group.Options = append([]model.Option(nil), group.Options...)
	return group
}
