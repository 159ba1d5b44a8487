package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewCommand(t *testing.T) {
	repo := newRepo(t)

	output, err := runCLI(t, "new", "code-review")
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	dest := filepath.Join(repo, ".claude", "agents", "code-review.md")
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("scaffolded file missing: %v", err)
	}
	content := string(data)
	for _, want := range []string{"name: code-review", "# Code Review", "## Rules"} {
		if !strings.Contains(content, want) {
			t.Errorf("scaffolded file missing %q\ngot:\n%s", want, content)
		}
	}

	if !strings.Contains(output, "created") {
		t.Errorf("output missing created line: %q", output)
	}
	if !strings.Contains(output, "Next steps:") {
		t.Errorf("output missing next steps: %q", output)
	}
}

func TestNewCommandAgentKind(t *testing.T) {
	repo := newRepo(t)

	if _, err := runCLI(t, "new", "reviewer", "--kind", "agent"); err != nil {
		t.Fatalf("new failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(repo, ".claude", "agents", "reviewer.md"))
	if err != nil {
		t.Fatalf("scaffolded file missing: %v", err)
	}
	content := string(data)
	for _, want := range []string{"name: reviewer", "- read_file", "## Persona"} {
		if !strings.Contains(content, want) {
			t.Errorf("scaffolded agent missing %q\ngot:\n%s", want, content)
		}
	}
}

func TestNewCommandTargetFormat(t *testing.T) {
	repo := newRepo(t)

	if _, err := runCLI(t, "new", "linting", "--format", "cursor"); err != nil {
		t.Fatalf("new failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(repo, ".cursor", "rules", "linting.mdc"))
	if err != nil {
		t.Fatalf("scaffolded file missing: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "description:") {
		t.Errorf("cursor scaffold missing frontmatter:\n%s", content)
	}
	if !strings.Contains(content, "- Replace this with a concrete convention.") {
		t.Errorf("cursor scaffold missing starter rules:\n%s", content)
	}
}

func TestNewCommandDryRun(t *testing.T) {
	repo := newRepo(t)

	output, err := runCLI(t, "new", "preview-pack", "--dry-run")
	if err != nil {
		t.Fatalf("new --dry-run failed: %v", err)
	}

	if !strings.Contains(output, "# Preview Pack") {
		t.Errorf("dry-run output missing content: %q", output)
	}
	if _, err := os.Stat(filepath.Join(repo, ".claude", "agents", "preview-pack.md")); err == nil {
		t.Error("dry-run should not write files")
	}
}

func TestNewCommandRefusesOverwrite(t *testing.T) {
	newRepo(t)

	if _, err := runCLI(t, "new", "dupe"); err != nil {
		t.Fatalf("first new failed: %v", err)
	}

	_, err := runCLI(t, "new", "dupe")
	if err == nil || !strings.Contains(err.Error(), "exists") {
		t.Fatalf("second new error = %v, want exists error", err)
	}

	if _, err := runCLI(t, "new", "dupe", "--force"); err != nil {
		t.Fatalf("new --force failed: %v", err)
	}
}

func TestNewCommandCustomTemplate(t *testing.T) {
	repo := newRepo(t)

	tmpl := writeFixture(t, t.TempDir(), "custom.tmpl", "# {{.Title}}\n\nCustom scaffold body.\n")

	if _, err := runCLI(t, "new", "my-pack", "--template-file", tmpl); err != nil {
		t.Fatalf("new with custom template failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(repo, ".claude", "agents", "my-pack.md"))
	if err != nil {
		t.Fatalf("scaffolded file missing: %v", err)
	}
	if !strings.Contains(string(data), "Custom scaffold body.") {
		t.Errorf("custom template content missing:\n%s", string(data))
	}
}

func TestNewCommandErrors(t *testing.T) {
	tests := map[string]struct {
		args    []string
		wantErr string
	}{
		"missing name":    {[]string{"new"}, "exactly 1 argument"},
		"uppercase name":  {[]string{"new", "MyPack"}, "invalid package name"},
		"underscore lead": {[]string{"new", "_pack"}, "start with a letter"},
		"bad kind":        {[]string{"new", "pack", "--kind", "widget"}, "invalid template kind"},
		"bad format":      {[]string{"new", "pack", "--format", "vim"}, "invalid target format"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}
