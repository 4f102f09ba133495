package snapshot

import (
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-jobwizard/pkg/model"
)

func TestLoad_YAML(t *testing.T) {
	catalog, err := Load(filepath.Join("testdata", "commands.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if diff := cmp.Diff([]string{"Commands", "Ansible Commands"}, catalog.Categories); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
	want := []model.Template{
		{ID: 1, Name: "Run Command - Script Default", ProviderType: "script"},
		{ID: 2, Name: "Run Command - SSH Default", ProviderType: "SSH"},
		{ID: 4, Name: "Power Action - Script Default", ProviderType: "script"},
	}
	if diff := cmp.Diff(want, catalog.TemplatesFor("Commands")); diff != "" {
		t.Fatalf("templates mismatch (-want +got):\n%s", diff)
	}
	if catalog.Selection.Category != "Commands" || catalog.Selection.TemplateID == nil || *catalog.Selection.TemplateID != 2 {
		t.Fatalf("unexpected selection %+v", catalog.Selection)
	}
}

func TestLoad_JSON(t *testing.T) {
	catalog, err := Load(filepath.Join("testdata", "denied.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"view_job_templates", "view_job_categories"}, catalog.MissingPermissions); diff != "" {
		t.Fatalf("permissions mismatch (-want +got):\n%s", diff)
	}
	if catalog.Errors.CategoryError != "Request failed with status code 403" {
		t.Fatalf("unexpected category error %q", catalog.Errors.CategoryError)
	}
	if len(catalog.Categories) != 0 {
		t.Fatalf("expected no categories, got %v", catalog.Categories)
	}
}

func TestCatalog_InputUsesSelectedCategory(t *testing.T) {
	catalog, err := Load(filepath.Join("testdata", "commands.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	in := catalog.Input(model.Selection{Category: "Ansible Commands"})
	if len(in.Templates) != 1 || in.Templates[0].ProviderType != "Ansible" {
		t.Fatalf("unexpected templates %+v", in.Templates)
	}

	in = catalog.Input(model.Selection{})
	if len(in.Templates) != 0 {
		t.Fatalf("expected no templates without a category, got %+v", in.Templates)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{name: "invalid", data: "job_categories: [unterminated"},
		{name: "empty category", data: "job_categories: ['  ']"},
		{name: "duplicate category", data: "job_categories: [a, a]"},
		{name: "unknown category", data: "job_categories: [a]\ntemplates_by_category:\n  b:\n    - {id: 1, name: x, provider_type: script}\n"},
		{name: "nameless template", data: "job_categories: [a]\ntemplates_by_category:\n  a:\n    - {id: 1, provider_type: script}\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data), tc.name); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse([]byte("  \n"), "blank.yaml")
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"snap.yaml": &fstest.MapFile{Data: []byte("job_categories: [Commands]\ntemplates_loading: true\n")},
	}
	catalog, err := LoadFS(fsys, "snap.yaml")
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if !catalog.TemplatesLoading {
		t.Fatalf("expected loading flag")
	}
	if _, err := LoadFS(nil, "snap.yaml"); err == nil {
		t.Fatalf("expected error for nil filesystem")
	}
}
