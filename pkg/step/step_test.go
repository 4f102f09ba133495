package step

import (
	"bytes"
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-jobwizard/pkg/i18n"
	"github.com/goliatone/go-jobwizard/pkg/model"
	"github.com/goliatone/go-jobwizard/pkg/selection"
)

func commandTemplates() []model.Template {
	return []model.Template{
		{ID: 1, Name: "Run Command - Script Default", ProviderType: "script"},
		{ID: 2, Name: "Run Command - SSH Default", ProviderType: "SSH"},
		{ID: 3, Name: "Run Command - Ansible Default", ProviderType: "Ansible"},
		{ID: 4, Name: "Power Action - Script Default", ProviderType: "script"},
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	view := Build(Input{})

	if view.Category.Disabled || view.Template.Disabled {
		t.Fatalf("expected both fields enabled, got category=%v template=%v", view.Category.Disabled, view.Template.Disabled)
	}
	if len(view.Category.Options) != 0 || len(view.Template.Groups) != 0 {
		t.Fatalf("expected no options, got %v / %v", view.Category.Options, view.Template.Groups)
	}
	if !view.Notices.Empty() || view.Notices.IsError {
		t.Fatalf("expected no notices, got %+v", view.Notices)
	}
	if view.Category.Status != selection.FieldStatusAvailable || view.Template.Status != selection.FieldStatusAvailable {
		t.Fatalf("unexpected statuses %q / %q", view.Category.Status, view.Template.Status)
	}
	if view.Title != "Category And Template" || view.Note != "All fields are required." {
		t.Fatalf("unexpected chrome %q / %q", view.Title, view.Note)
	}
}

func TestBuild_GroupsAndSelectedName(t *testing.T) {
	view := Build(Input{
		Categories: []string{"Commands", "Ansible Commands"},
		Templates:  commandTemplates(),
		Selection:  model.Selection{Category: "Commands", TemplateID: model.IntPtr(2)},
	})

	if view.Category.Value != "Commands" {
		t.Fatalf("unexpected category value %q", view.Category.Value)
	}
	if view.Template.Selected != "Run Command - SSH Default" {
		t.Fatalf("unexpected selected template %q", view.Template.Selected)
	}
	labels := make([]string, 0, len(view.Template.Groups))
	for _, group := range view.Template.Groups {
		labels = append(labels, group.GroupLabel)
	}
	if diff := cmp.Diff([]string{"script", "SSH", "Ansible"}, labels); diff != "" {
		t.Fatalf("group order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_LoadingSuppressesGroupsAndSelection(t *testing.T) {
	view := Build(Input{
		Templates:        commandTemplates(),
		TemplatesLoading: true,
		Selection:        model.Selection{Category: "Commands", TemplateID: model.IntPtr(1)},
	})

	if len(view.Template.Groups) != 0 {
		t.Fatalf("expected no groups while loading, got %d", len(view.Template.Groups))
	}
	if view.Template.Selected != "" {
		t.Fatalf("expected empty selection while loading, got %q", view.Template.Selected)
	}
	if !view.Template.Disabled || view.Template.Status != selection.FieldStatusLoading {
		t.Fatalf("expected disabled loading template field, got %+v", view.Template.FieldState)
	}
	if view.Category.Disabled {
		t.Fatalf("category field stays enabled while templates load")
	}
}

func TestBuild_PermissionAndTemplatesError(t *testing.T) {
	view := Build(Input{
		MissingPermissions: []string{"view_job_templates"},
		Errors: model.Errors{
			CategoryError:     "Request failed with status code 403",
			AllTemplatesError: "boom",
		},
	})

	if view.Notices.Permission == nil || view.Notices.Errors == nil {
		t.Fatalf("expected both notices, got %+v", view.Notices)
	}
	if got := view.Notices.Errors.Lines[0].String(); got != "Templates list failed with: boom" {
		t.Fatalf("unexpected error line %q", got)
	}
	if !view.Category.Disabled || view.Category.Placeholder != "Not available" {
		t.Fatalf("expected disabled category field, got %+v", view.Category.FieldState)
	}
}

func TestBuild_Localized(t *testing.T) {
	l := i18n.Localizer{
		Locale:     "es",
		Translator: i18n.MapTranslator{"es": {"step.title": "Categoría y plantilla"}},
	}
	view := Build(Input{}, WithLocalizer(l))
	if view.Title != "Categoría y plantilla" {
		t.Fatalf("unexpected title %q", view.Title)
	}
}

func TestView_JSONFlattensFieldState(t *testing.T) {
	payload, err := json.Marshal(Build(Input{Categories: []string{"Commands"}}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	category, ok := decoded["category"].(map[string]any)
	if !ok {
		t.Fatalf("expected category object, got %T", decoded["category"])
	}
	if category["id"] != selection.CategoryFieldID || category["required"] != true {
		t.Fatalf("expected flattened field state, got %v", category)
	}
}

func TestStep_CategoryChangeThroughSession(t *testing.T) {
	initial := model.Selection{
		Category:   "Commands",
		TemplateID: model.IntPtr(1),
		Feature:    model.StringPtr("run_script"),
	}
	session := NewSession(initial, WithTemplates(commandTemplates()))
	st := New(Input{Templates: commandTemplates(), Selection: initial}, session)

	if st.OnSelectCategory("Commands") {
		t.Fatalf("re-selecting the category must not write")
	}
	if diff := cmp.Diff(initial, session.Selection()); diff != "" {
		t.Fatalf("selection changed (-want +got):\n%s", diff)
	}

	if !st.OnSelectCategory("Ansible Commands") {
		t.Fatalf("expected writes for a new category")
	}
	want := model.Selection{Category: "Ansible Commands"}
	if diff := cmp.Diff(want, session.Selection()); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
}

func TestStep_TemplateChangeResolvesID(t *testing.T) {
	initial := model.Selection{Category: "Commands", Feature: model.StringPtr("run_script")}
	session := NewSession(initial, WithTemplates(commandTemplates()))
	st := New(Input{Templates: commandTemplates(), Selection: initial}, session)

	if !st.OnSelectTemplate("Power Action - Script Default") {
		t.Fatalf("expected writes for a new template")
	}
	want := model.Selection{Category: "Commands", TemplateID: model.IntPtr(4)}
	if diff := cmp.Diff(want, session.Selection()); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}

	st = New(session.Input(Input{Templates: commandTemplates()}), session)
	if st.OnSelectTemplate("Power Action - Script Default") {
		t.Fatalf("re-selecting the template must not write")
	}
}

func TestSession_UnknownTemplateClearsAndWarns(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	session := NewSession(model.Selection{TemplateID: model.IntPtr(1)}, WithLogger(logger), WithTemplates(commandTemplates()))

	session.SetJobTemplate(model.StringPtr("does not exist"))

	if session.Selection().HasTemplate() {
		t.Fatalf("expected template cleared")
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"level":"warn"`)) {
		t.Fatalf("expected warn log, got %s", buf.String())
	}
}

func TestSession_SetTemplatesReplacesLookup(t *testing.T) {
	session := NewSession(model.Selection{})
	session.SetJobTemplate(model.StringPtr("Run Command - SSH Default"))
	if session.Selection().HasTemplate() {
		t.Fatalf("no templates known yet")
	}
	session.SetTemplates(commandTemplates())
	session.SetJobTemplate(model.StringPtr("Run Command - SSH Default"))
	if got := session.Selection().TemplateID; got == nil || *got != 2 {
		t.Fatalf("expected template 2, got %v", got)
	}
}

func TestSession_ChangesAreAtomic(t *testing.T) {
	session := NewSession(model.Selection{TemplateID: model.IntPtr(1)}, WithTemplates(commandTemplates()))
	change := selection.Change{
		SetCategory:  true,
		Category:     "Commands",
		SetTemplate:  true,
		ClearFeature: true,
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			change.Apply(session)
		}()
		go func() {
			defer wg.Done()
			sel := session.Selection()
			if sel.Category == "Commands" && sel.TemplateID != nil {
				t.Errorf("observed partial change: %+v", sel)
			}
		}()
	}
	wg.Wait()
}

func TestSelection_RecordsAreCopies(t *testing.T) {
	id := 5
	sel := model.Selection{}.WithTemplateID(&id)
	id = 6
	if *sel.TemplateID != 5 {
		t.Fatalf("WithTemplateID aliased caller pointer")
	}
}
