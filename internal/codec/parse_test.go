package codec

import (
	"testing"

	"github.com/promptpack/promptpack/internal/model"
)

func TestBuildSections(t *testing.T) {
	body := "A linting companion.\n\nExtra intro prose.\n\n## Rules\n\n- Use tabs\n\n## Notes\n\nLegacy code exists.\n"
	doc := SplitBody(body)

	sections, desc := BuildSections(doc, true)
	if desc != "A linting companion." {
		t.Errorf("description = %q", desc)
	}
	if len(sections) != 3 {
		t.Fatalf("sections = %d, want 3", len(sections))
	}
	if sections[0].Kind != model.SectionInstructions || sections[0].Content != "Extra intro prose." {
		t.Errorf("intro section = %+v", sections[0])
	}
	if sections[1].Kind != model.SectionRules {
		t.Errorf("rules section = %+v", sections[1])
	}
	if sections[2].Kind != model.SectionInstructions || sections[2].Title != "Notes" {
		t.Errorf("notes section = %+v", sections[2])
	}
}

func TestBuildSectionsNoDescription(t *testing.T) {
	doc := SplitBody("All of this stays content.\n")
	sections, desc := BuildSections(doc, false)
	if desc != "" {
		t.Errorf("description = %q, want empty", desc)
	}
	if len(sections) != 1 || sections[0].Content != "All of this stays content." {
		t.Errorf("sections = %+v", sections)
	}
}

func TestBuildSectionsZeroHeadings(t *testing.T) {
	doc := SplitBody("Only prose here.\n\nSecond paragraph.\n")
	sections, _ := BuildSections(doc, false)
	if len(sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(sections))
	}
	if sections[0].Kind != model.SectionInstructions {
		t.Errorf("kind = %s, want instructions", sections[0].Kind)
	}
}

func TestSplitIntro(t *testing.T) {
	tests := map[string]struct {
		intro     string
		wantFirst string
		wantRest  string
	}{
		"single paragraph": {
			intro:     "Just one.",
			wantFirst: "Just one.",
		},
		"two paragraphs": {
			intro:     "First here.\n\nSecond here.",
			wantFirst: "First here.",
			wantRest:  "Second here.",
		},
		"empty": {
			intro: "   \n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			first, rest := SplitIntro(tt.intro)
			if first != tt.wantFirst {
				t.Errorf("first = %q, want %q", first, tt.wantFirst)
			}
			if rest != tt.wantRest {
				t.Errorf("rest = %q, want %q", rest, tt.wantRest)
			}
		})
	}
}
