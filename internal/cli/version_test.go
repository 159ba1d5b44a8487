package cli

import (
	"runtime"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	output, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for _, want := range []string{"promptpack version", "commit:", "built:", "go:"} {
		if !strings.Contains(output, want) {
			t.Errorf("Run() output = %q, want substring %q", output, want)
		}
	}
}

func TestVersionCommandOutputFormat(t *testing.T) {
	output, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines of output, got %d: %q", len(lines), output)
	}

	if !strings.HasPrefix(lines[0], "promptpack version ") {
		t.Errorf("first line should start with 'promptpack version ', got %q", lines[0])
	}

	for i, line := range lines[1:] {
		if !strings.HasPrefix(line, "  ") {
			t.Errorf("line %d should be indented with 2 spaces, got %q", i+2, line)
		}
	}
}

func TestVersionCommandIncludesVariables(t *testing.T) {
	output, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !strings.Contains(output, Version) {
		t.Errorf("output should contain Version %q, got %q", Version, output)
	}
	if !strings.Contains(output, Commit) {
		t.Errorf("output should contain Commit %q, got %q", Commit, output)
	}
	if !strings.Contains(output, BuildDate) {
		t.Errorf("output should contain BuildDate %q, got %q", BuildDate, output)
	}
	if !strings.Contains(output, runtime.Version()) {
		t.Errorf("output should contain Go version %q, got %q", runtime.Version(), output)
	}
}

func TestVersionCommandDefinition(t *testing.T) {
	cmd := versionCommand()

	if cmd.Name != "version" {
		t.Errorf("command name = %q, want %q", cmd.Name, "version")
	}
	if cmd.Usage == "" {
		t.Error("command should have usage text")
	}
	if cmd.Action == nil {
		t.Error("command should have an action function")
	}
}
