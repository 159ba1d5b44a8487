package codec

import (
	"strings"
	"testing"

	"github.com/promptpack/promptpack/internal/model"
)

func TestMarkdownWriter(t *testing.T) {
	var w MarkdownWriter
	w.Heading(1, "Title")
	w.Paragraph("Some prose.")
	w.List([]string{"a", "b"})
	w.Fence("go", "fmt.Println(\"hi\")")

	want := "# Title\n\nSome prose.\n\n- a\n- b\n\n```go\nfmt.Println(\"hi\")\n```\n"
	if got := w.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMarkdownWriterEmptyBlocks(t *testing.T) {
	var w MarkdownWriter
	w.Paragraph("")
	w.List(nil)
	w.Raw("")
	if w.Len() != 0 {
		t.Errorf("empty blocks wrote %d bytes", w.Len())
	}
}

func TestRenderSection(t *testing.T) {
	tests := map[string]struct {
		section model.Section
		want    []string
	}{
		"rules with title": {
			section: model.NewRules("House Rules", []string{"tabs", "gofmt"}),
			want:    []string{"## House Rules", "- tabs", "- gofmt"},
		},
		"rules default title": {
			section: model.NewRules("", []string{"tabs"}),
			want:    []string{"## Rules", "- tabs"},
		},
		"examples": {
			section: model.NewExamples("", []model.Example{
				{Description: "Greet.", Language: "go", Code: "fmt.Println(\"hi\")"},
			}),
			want: []string{"## Examples", "Greet.", "```go", "fmt.Println(\"hi\")"},
		},
		"tools": {
			section: model.NewTools([]string{"Read", "Write"}),
			want:    []string{"## Tools", "- Read", "- Write"},
		},
		"persona": {
			section: model.NewPersona("You are a reviewer."),
			want:    []string{"## Persona", "You are a reviewer."},
		},
		"custom with title": {
			section: model.Section{Kind: model.SectionCustom, Title: "Matrix", Content: "| a |\n|---|"},
			want:    []string{"## Matrix", "| a |"},
		},
		"untitled instructions": {
			section: model.NewInstructions("", "Keep it simple."),
			want:    []string{"Keep it simple."},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var w MarkdownWriter
			RenderSection(&w, tt.section)
			got := w.String()
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
		})
	}
}

func TestRenderSectionRoundTrip(t *testing.T) {
	sections := []model.Section{
		model.NewRules("Rules", []string{"Use tabs", "Run gofmt"}),
		model.NewExamples("Examples", []model.Example{
			{Description: "Greet politely.", Language: "go", Code: "fmt.Println(\"hi\")"},
		}),
		model.NewPersona("You are a careful reviewer."),
	}

	var w MarkdownWriter
	for _, sec := range sections {
		RenderSection(&w, sec)
	}

	doc := SplitBody(w.String())
	got, _ := BuildSections(doc, false)
	if len(got) != len(sections) {
		t.Fatalf("round trip produced %d sections, want %d", len(got), len(sections))
	}
	for i := range sections {
		if got[i].Kind != sections[i].Kind {
			t.Errorf("section %d kind = %s, want %s", i, got[i].Kind, sections[i].Kind)
		}
	}
	if got[0].Rules[0] != "Use tabs" {
		t.Errorf("rules lost: %v", got[0].Rules)
	}
	if got[1].Examples[0].Code != "fmt.Println(\"hi\")" {
		t.Errorf("example code lost: %q", got[1].Examples[0].Code)
	}
	if got[2].Content != "You are a careful reviewer." {
		t.Errorf("persona lost: %q", got[2].Content)
	}
}

func TestDefaultTitle(t *testing.T) {
	if got := DefaultTitle(model.SectionTools); got != "Tools" {
		t.Errorf("DefaultTitle(tools) = %q, want Tools", got)
	}
	if got := DefaultTitle(model.SectionPersona); got != "Persona" {
		t.Errorf("DefaultTitle(persona) = %q, want Persona", got)
	}
}
