package jobwizard

import "testing"

func TestRootFacade(t *testing.T) {
	in := Input{
		Categories: []string{"Commands"},
		Templates:  []Template{{ID: 1, Name: "Run Command - Script Default", ProviderType: "script"}},
	}
	session := NewSession(Selection{})
	st := NewStep(in, session)

	if !st.OnSelectCategory("Commands") {
		t.Fatalf("expected category write")
	}
	if got := session.Selection().Category; got != "Commands" {
		t.Fatalf("unexpected category %q", got)
	}

	view := Build(in)
	if len(view.Template.Groups) != 1 {
		t.Fatalf("expected one group, got %d", len(view.Template.Groups))
	}
}
