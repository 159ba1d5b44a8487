package model

import "testing"

func TestSectionConstructors(t *testing.T) {
	tests := map[string]struct {
		section  Section
		wantKind SectionKind
	}{
		"metadata":     {NewMetadata("My Rule", "🧭"), SectionMetadata},
		"instructions": {NewInstructions("Overview", "Do the thing."), SectionInstructions},
		"rules":        {NewRules("Guidelines", []string{"Use tabs"}), SectionRules},
		"examples":     {NewExamples("Examples", []Example{{Code: "x := 1", Language: "go"}}), SectionExamples},
		"tools":        {NewTools([]string{"Read", "Write"}), SectionTools},
		"persona":      {NewPersona("You are a careful reviewer."), SectionPersona},
		"custom":       {NewCustom("<!-- opaque -->"), SectionCustom},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.section.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", tt.section.Kind, tt.wantKind)
			}
			if err := tt.section.Validate(); err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestSectionValidateRejectsMixedPayload(t *testing.T) {
	tests := map[string]Section{
		"unknown kind": {Kind: "banner", Content: "x"},
		"rules with content": {
			Kind: SectionRules, Rules: []string{"a"}, Content: "stray prose",
		},
		"empty rules":    {Kind: SectionRules, Title: "Rules"},
		"empty examples": {Kind: SectionExamples, Title: "Examples"},
		"tools with title": {
			Kind: SectionTools, Tools: []string{"Read"}, Title: "Tools",
		},
		"persona with tools": {
			Kind: SectionPersona, Content: "You are...", Tools: []string{"Read"},
		},
		"empty custom": {Kind: SectionCustom},
		"metadata with rules": {
			Kind: SectionMetadata, Title: "T", Rules: []string{"a"},
		},
	}

	for name, section := range tests {
		t.Run(name, func(t *testing.T) {
			if err := section.Validate(); err == nil {
				t.Errorf("Validate() = nil, want error")
			}
		})
	}
}

func TestAllSectionKindsAreValid(t *testing.T) {
	kinds := AllSectionKinds()
	if len(kinds) != 7 {
		t.Fatalf("AllSectionKinds() = %d kinds, want 7", len(kinds))
	}
	for _, k := range kinds {
		if !k.IsValid() {
			t.Errorf("kind %q reported invalid", k)
		}
	}
}
