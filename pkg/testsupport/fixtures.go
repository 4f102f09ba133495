// Package testsupport holds fixture and golden helpers shared by the package
// tests.
package testsupport

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-jobwizard/pkg/step"
)

// MustLoadInput loads a JSON fixture into a step.Input.
func MustLoadInput(t *testing.T, path string) step.Input {
	t.Helper()

	in, err := LoadInput(path)
	if err != nil {
		t.Fatalf("load input: %v", err)
	}
	return in
}

// LoadInput reads a JSON fixture into a step.Input, returning an error for
// callers managing setup outside of *testing.T.
func LoadInput(path string) (step.Input, error) {
	var out step.Input
	if err := loadJSON(path, &out); err != nil {
		return step.Input{}, fmt.Errorf("testsupport: input: %w", err)
	}
	return out, nil
}

// MustLoadView loads a JSON golden into a step.View.
func MustLoadView(t *testing.T, path string) step.View {
	t.Helper()

	var out step.View
	if err := loadJSON(path, &out); err != nil {
		t.Fatalf("load view: %v", err)
	}
	return out
}

// WriteGolden writes value as indented JSON when UPDATE_GOLDENS is set.
// Returns true if the golden was written (test should exit early).
func WriteGolden(t *testing.T, path string, value any) bool {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

func loadJSON(path string, target any) error {
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return nil
}
