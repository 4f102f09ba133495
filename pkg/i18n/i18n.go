// Package i18n provides the translation seam used for every user-facing
// string the step produces. Callers plug in their own catalogue; without one
// the English fallbacks are returned unchanged.
package i18n

import (
	"errors"
	"strings"
)

// ErrMissingTranslator is passed to a MissingTranslationHandler when no
// Translator was configured.
var ErrMissingTranslator = errors.New("i18n: translator not configured")

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate implements Translator.
func (fn TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return fn(locale, key, args...)
}

// MissingTranslationHandler decides the string used when a key could not be
// translated. err is ErrMissingTranslator or the translator's error.
type MissingTranslationHandler func(locale, key, fallback string, err error) string

// Localizer bundles a translator with a locale and missing-key policy. The
// zero value returns fallbacks.
type Localizer struct {
	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
}

// Text translates key, returning fallback when the key cannot be resolved.
func (l Localizer) Text(key, fallback string, args ...any) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	if l.Translator == nil {
		if l.OnMissing != nil {
			return l.OnMissing(l.Locale, key, fallback, ErrMissingTranslator)
		}
		return orKey(fallback, key)
	}

	result, err := l.Translator.Translate(l.Locale, key, args...)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	if l.OnMissing != nil {
		return l.OnMissing(l.Locale, key, fallback, err)
	}
	return orKey(fallback, key)
}

// MapTranslator serves translations from a locale -> key -> message table.
type MapTranslator map[string]map[string]string

// Translate implements Translator.
func (m MapTranslator) Translate(locale, key string, _ ...any) (string, error) {
	messages, ok := m[locale]
	if !ok {
		return "", errors.New("i18n: unknown locale " + locale)
	}
	msg, ok := messages[key]
	if !ok {
		return "", errors.New("i18n: missing key " + key)
	}
	return msg, nil
}

func orKey(fallback, key string) string {
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}
