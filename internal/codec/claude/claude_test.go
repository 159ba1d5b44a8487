package claude

import (
	"reflect"
	"strings"
	"testing"

	"github.com/promptpack/promptpack/internal/model"
)

const sampleAgent = `---
name: reviewer
description: Reviews Go changes for style and correctness.
tools:
    - Read
    - Grep
model: sonnet
---

# Reviewer

You check diffs before they merge.

## Rules

- Flag missing error checks
- Prefer table tests
`

func TestParseAgent(t *testing.T) {
	pkg, err := NewAgentParser().Parse([]byte(sampleAgent))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if pkg.Name != "reviewer" {
		t.Errorf("Name = %q", pkg.Name)
	}
	if pkg.Description != "Reviews Go changes for style and correctness." {
		t.Errorf("Description = %q", pkg.Description)
	}
	if pkg.Model != "sonnet" {
		t.Errorf("Model = %q", pkg.Model)
	}
	if pkg.Type != model.TypeAgent {
		t.Errorf("Type = %s", pkg.Type)
	}

	kinds := pkg.SectionKinds()
	want := []model.SectionKind{
		model.SectionMetadata, model.SectionInstructions,
		model.SectionRules, model.SectionTools,
	}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("section kinds = %v, want %v", kinds, want)
	}

	last := pkg.Sections[len(pkg.Sections)-1]
	if !reflect.DeepEqual([]string(last.Tools), []string{"Read", "Grep"}) {
		t.Errorf("tools = %v", last.Tools)
	}
}

func TestParseAgentCommaSeparatedTools(t *testing.T) {
	content := "---\nname: fixer\ntools: Read, Edit, Bash\n---\n\nFix things.\n"
	pkg, err := NewAgentParser().Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	var tools []string
	for _, sec := range pkg.Sections {
		if sec.Kind == model.SectionTools {
			tools = sec.Tools
		}
	}
	if !reflect.DeepEqual(tools, []string{"Read", "Edit", "Bash"}) {
		t.Errorf("tools = %v", tools)
	}
}

func TestParseSkill(t *testing.T) {
	content := `---
name: deploy
description: Deploys the service.
version: 1.2.0
author: platform-team
tags:
    - ops
tools:
    - Bash
---

Run the deploy pipeline end to end.
`
	pkg, err := NewSkillParser().Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if pkg.Type != model.TypeSkill {
		t.Errorf("Type = %s", pkg.Type)
	}
	if pkg.Version != "1.2.0" || pkg.Author != "platform-team" {
		t.Errorf("version/author = %q/%q", pkg.Version, pkg.Author)
	}
	if !reflect.DeepEqual(pkg.Tags, []string{"ops"}) {
		t.Errorf("Tags = %v", pkg.Tags)
	}
}

func TestSerializeAgent(t *testing.T) {
	pkg := &model.CanonicalPackage{
		Name:        "reviewer",
		Description: "Reviews changes.",
		Model:       "sonnet",
		Type:        model.TypeAgent,
		Sections: []model.Section{
			model.NewInstructions("", "Check every diff."),
			model.NewPersona("You are meticulous."),
			model.NewTools([]string{"Read", "Grep"}),
		},
	}

	res, err := NewAgentSerializer().Serialize(pkg)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if res.Lossy {
		t.Errorf("Lossy = true, warnings = %v", res.Warnings)
	}
	if res.Score != 100 {
		t.Errorf("Score = %d, want 100", res.Score)
	}
	if res.Path != ".claude/agents/reviewer.md" {
		t.Errorf("Path = %q", res.Path)
	}
	for _, want := range []string{"name: reviewer", "model: sonnet", "- Read", "- Grep", "## Persona", "Check every diff."} {
		if !strings.Contains(res.Content, want) {
			t.Errorf("content missing %q:\n%s", want, res.Content)
		}
	}
	if strings.Contains(res.Content, "## Tools") {
		t.Error("tools should live in frontmatter, not the body")
	}
}

func TestSerializeSkillKeepsEverything(t *testing.T) {
	pkg := &model.CanonicalPackage{
		Name:        "deploy",
		Description: "Deploys the service.",
		Version:     "2.0.0",
		Author:      "platform-team",
		Tags:        []string{"ops", "ci"},
		Type:        model.TypeSkill,
		Sections: []model.Section{
			model.NewInstructions("", "Ship it safely."),
			model.NewTools([]string{"Bash"}),
		},
	}

	res, err := NewSkillSerializer().Serialize(pkg)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if res.Lossy {
		t.Errorf("Lossy = true, warnings = %v", res.Warnings)
	}
	if res.Path != ".claude/skills/deploy/SKILL.md" {
		t.Errorf("Path = %q", res.Path)
	}
	for _, want := range []string{"version: 2.0.0", "author: platform-team", "- ops"} {
		if !strings.Contains(res.Content, want) {
			t.Errorf("content missing %q:\n%s", want, res.Content)
		}
	}
}

func TestAgentRoundTrip(t *testing.T) {
	parser := NewAgentParser()
	first, err := parser.Parse([]byte(sampleAgent))
	if err != nil {
		t.Fatalf("first Parse() error = %v", err)
	}

	res, err := NewAgentSerializer().Serialize(first)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if res.Lossy {
		t.Fatalf("agent to agent should be clean, warnings = %v", res.Warnings)
	}

	second, err := parser.Parse([]byte(res.Content))
	if err != nil {
		t.Fatalf("second Parse() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("round trip changed the package:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
