package step

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-jobwizard/pkg/model"
	"github.com/goliatone/go-jobwizard/pkg/selection"
)

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger routes change logging to logger. Sessions are silent by default.
func WithLogger(logger zerolog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithTemplates seeds the templates used to resolve written template labels.
func WithTemplates(templates []model.Template) SessionOption {
	return func(s *Session) {
		s.templates = append([]model.Template(nil), templates...)
	}
}

// Session owns the wizard selection for the step. The record is replaced,
// never mutated, and a whole Change is applied under one lock so its writes
// are visible together to the next reader.
type Session struct {
	mu        sync.RWMutex
	current   model.Selection
	templates []model.Template
	logger    zerolog.Logger
}

var (
	_ selection.Setters = (*Session)(nil)
	_ selection.Applier = (*Session)(nil)
)

// NewSession starts a session from initial.
func NewSession(initial model.Selection, opts ...SessionOption) *Session {
	s := &Session{
		current: initial,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Selection returns the current selection record.
func (s *Session) Selection() model.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SetTemplates replaces the templates used to resolve template labels, for
// example after the data layer fetched the list for a new category.
func (s *Session) SetTemplates(templates []model.Template) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates = append([]model.Template(nil), templates...)
}

// Input overlays the current selection on in.
func (s *Session) Input(in Input) Input {
	in.Selection = s.Selection()
	return in
}

// ApplyChange implements selection.Applier.
func (s *Session) ApplyChange(c selection.Change) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.WriteTo(sessionWriter{s: s})
}

// SetCategory implements selection.Setters.
func (s *Session) SetCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sessionWriter{s: s}.SetCategory(category)
}

// SetJobTemplate implements selection.Setters.
func (s *Session) SetJobTemplate(name *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sessionWriter{s: s}.SetJobTemplate(name)
}

// SetFeature implements selection.Setters.
func (s *Session) SetFeature(value *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sessionWriter{s: s}.SetFeature(value)
}

// sessionWriter performs writes while the session lock is held.
type sessionWriter struct {
	s *Session
}

func (w sessionWriter) SetCategory(category string) {
	w.s.current = w.s.current.WithCategory(category)
	w.s.logger.Debug().Str("category", category).Msg("category selected")
}

// SetJobTemplate resolves name to the first template carrying it. Unknown
// names clear the template.
func (w sessionWriter) SetJobTemplate(name *string) {
	if name == nil {
		w.s.current = w.s.current.WithTemplateID(nil)
		w.s.logger.Debug().Msg("template cleared")
		return
	}
	for _, tmpl := range w.s.templates {
		if tmpl.Name == *name {
			w.s.current = w.s.current.WithTemplateID(model.IntPtr(tmpl.ID))
			w.s.logger.Debug().Int("template_id", tmpl.ID).Str("template", tmpl.Name).Msg("template selected")
			return
		}
	}
	w.s.current = w.s.current.WithTemplateID(nil)
	w.s.logger.Warn().Str("template", *name).Msg("template label not found, selection cleared")
}

func (w sessionWriter) SetFeature(value *string) {
	w.s.current = w.s.current.WithFeature(value)
	if value == nil {
		w.s.logger.Debug().Msg("feature cleared")
		return
	}
	w.s.logger.Debug().Str("feature", *value).Msg("feature selected")
}
