package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/promptpack/promptpack/internal/logging"
)

const sampleRule = `# Team Guidelines

Shared conventions for this repository.

## Rules

- Wrap errors with context.
- Keep functions short.
`

const agentRule = `# Review Agent

## Role

You are a meticulous code reviewer.

## Tools

- grep
- read_file
`

// writeFixture writes content at rel under dir, creating parents.
func writeFixture(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("failed to create fixture dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

// captureStdout runs fn while capturing everything written to stdout.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()

	if err := w.Close(); err != nil {
		t.Fatalf("failed to close pipe writer: %v", err)
	}
	os.Stdout = old

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("failed to close pipe reader: %v", err)
	}
	return buf.String(), runErr
}

// runCLI runs the app with stdout captured.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return captureStdout(t, func() error {
		return Run(context.Background(), append([]string{"promptpack"}, args...))
	})
}

func TestVersionVariables(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if Commit == "" {
		t.Error("Commit should not be empty")
	}
	if BuildDate == "" {
		t.Error("BuildDate should not be empty")
	}
}

func TestConfigureLogging(t *testing.T) {
	tests := map[string]struct {
		args      []string
		wantDebug bool
		wantInfo  bool
	}{
		"no flags stays quiet below warn": {
			args:      []string{"version"},
			wantDebug: false,
			wantInfo:  false,
		},
		"verbose flag enables info level": {
			args:      []string{"--verbose", "version"},
			wantDebug: false,
			wantInfo:  true,
		},
		"debug flag enables debug level": {
			args:      []string{"--debug", "version"},
			wantDebug: true,
			wantInfo:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			logging.SetDefault(logging.New(logging.DefaultOptions()))

			if _, err := runCLI(t, tt.args...); err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			logger := slog.Default()
			if got := logger.Enabled(context.Background(), slog.LevelDebug); got != tt.wantDebug {
				t.Errorf("debug enabled = %v, want %v", got, tt.wantDebug)
			}
			if got := logger.Enabled(context.Background(), slog.LevelInfo); got != tt.wantInfo {
				t.Errorf("info enabled = %v, want %v", got, tt.wantInfo)
			}
		})
	}
}

func TestRunUnknownCommand(t *testing.T) {
	_, err := runCLI(t, "teleport")
	if err == nil {
		t.Error("Run() with unknown command should return an error")
	}
}

func TestConfigCommand(t *testing.T) {
	output, err := runCLI(t, "config")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for _, want := range []string{"Configuration:", "Cache:", "Install:", "Output:", "repo"} {
		if !strings.Contains(output, want) {
			t.Errorf("output = %q, want substring %q", output, want)
		}
	}
}
