package cursor

import (
	"reflect"
	"strings"
	"testing"

	"github.com/promptpack/promptpack/internal/model"
)

const sampleRule = `---
name: go-style
icon: gopher
---

# Go Style

Rules for writing Go in this repository.

## Guidelines

- Use tabs for indentation
- Run gofmt before committing

## Examples

Error wrapping with context.

` + "```go\nfmt.Errorf(\"read config: %w\", err)\n```" + `
`

func TestParse(t *testing.T) {
	pkg, err := NewParser().Parse([]byte(sampleRule))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if pkg.Name != "go-style" {
		t.Errorf("Name = %q, want go-style", pkg.Name)
	}
	if pkg.Description != "Rules for writing Go in this repository." {
		t.Errorf("Description = %q", pkg.Description)
	}
	if pkg.Type != model.TypeRule {
		t.Errorf("Type = %s, want rule", pkg.Type)
	}

	kinds := pkg.SectionKinds()
	want := []model.SectionKind{model.SectionMetadata, model.SectionRules, model.SectionExamples}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("section kinds = %v, want %v", kinds, want)
	}

	meta := pkg.Sections[0]
	if meta.Title != "Go Style" || meta.Icon != "gopher" {
		t.Errorf("metadata = %+v", meta)
	}
	if got := pkg.Sections[1].Rules; len(got) != 2 || got[0] != "Use tabs for indentation" {
		t.Errorf("rules = %v", got)
	}
	ex := pkg.Sections[2].Examples
	if len(ex) != 1 || ex[0].Language != "go" || ex[0].Description != "Error wrapping with context." {
		t.Errorf("examples = %+v", ex)
	}
}

func TestParseNoFrontmatter(t *testing.T) {
	pkg, err := NewParser().Parse([]byte("# Style Notes\n\nKeep functions small.\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if pkg.Name != "style-notes" {
		t.Errorf("Name = %q, want slug of the title", pkg.Name)
	}
}

func TestParseMultipleFrontmatterBlocks(t *testing.T) {
	content := "---\nname: a\n---\n---\nname: b\n---\nbody\n"
	_, err := NewParser().Parse([]byte(content))
	if err == nil {
		t.Fatal("Parse() expected error for duplicate frontmatter")
	}
	if !strings.Contains(err.Error(), "frontmatter") {
		t.Errorf("error = %v, want frontmatter mention", err)
	}
}

func TestSerialize(t *testing.T) {
	pkg := &model.CanonicalPackage{
		Name:        "go-style",
		Description: "House style.",
		Type:        model.TypeRule,
		Sections: []model.Section{
			model.NewMetadata("Go Style", "gopher"),
			model.NewRules("Guidelines", []string{"Use tabs"}),
		},
	}

	res, err := NewSerializer().Serialize(pkg)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if res.Path != ".cursor/rules/go-style.mdc" {
		t.Errorf("Path = %q", res.Path)
	}
	if res.Lossy {
		t.Errorf("Lossy = true, warnings = %v", res.Warnings)
	}
	for _, want := range []string{"name: go-style", "icon: gopher", "# Go Style", "House style.", "## Guidelines", "- Use tabs"} {
		if !strings.Contains(res.Content, want) {
			t.Errorf("content missing %q:\n%s", want, res.Content)
		}
	}
}

func TestSerializeDegradesPersonaDropsTools(t *testing.T) {
	pkg := &model.CanonicalPackage{
		Name: "reviewer",
		Type: model.TypeAgent,
		Sections: []model.Section{
			model.NewPersona("You review Go code."),
			model.NewTools([]string{"Read"}),
		},
	}

	res, err := NewSerializer().Serialize(pkg)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if !res.Lossy {
		t.Error("Lossy = false, want true")
	}
	if len(res.Warnings) != 2 {
		t.Fatalf("warnings = %v, want 2", res.Warnings)
	}
	if res.Score != 100-10-20 {
		t.Errorf("Score = %d, want 70", res.Score)
	}
	if !strings.Contains(res.Content, "You review Go code.") {
		t.Error("degraded persona prose missing from output")
	}
	if strings.Contains(res.Content, "## Persona") {
		t.Error("degraded persona should not keep its heading")
	}
}

func TestRoundTrip(t *testing.T) {
	parser := NewParser()
	first, err := parser.Parse([]byte(sampleRule))
	if err != nil {
		t.Fatalf("first Parse() error = %v", err)
	}

	res, err := NewSerializer().Serialize(first)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	second, err := parser.Parse([]byte(res.Content))
	if err != nil {
		t.Fatalf("second Parse() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("round trip changed the package:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
