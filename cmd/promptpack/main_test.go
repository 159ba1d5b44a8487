package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/promptpack/promptpack/internal/cli"
)

// runApp runs the CLI with stdout captured.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	runErr := cli.Run(context.Background(), append([]string{"promptpack"}, args...))

	if err := w.Close(); err != nil {
		t.Fatalf("failed to close pipe writer: %v", err)
	}
	os.Stdout = old

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return buf.String(), runErr
}

func TestCLIInitialization(t *testing.T) {
	output, err := runApp(t, "--help")
	if err != nil {
		t.Fatalf("CLI initialization failed: %v", err)
	}

	if !strings.Contains(output, "promptpack") {
		t.Errorf("expected help output to contain 'promptpack', got: %q", output)
	}
	if !strings.Contains(output, "USAGE") || !strings.Contains(output, "COMMANDS") {
		t.Errorf("expected help output to contain USAGE and COMMANDS sections, got: %q", output)
	}
}

func TestVersionFlag(t *testing.T) {
	output, err := runApp(t, "--version")
	if err != nil {
		t.Fatalf("--version flag failed: %v", err)
	}

	if !strings.Contains(output, "promptpack") {
		t.Errorf("expected version output to contain 'promptpack', got: %q", output)
	}
}

func TestGlobalFlagsRecognized(t *testing.T) {
	tests := map[string]struct {
		args    []string
		wantErr bool
	}{
		"verbose flag": {
			args:    []string{"--verbose", "version"},
			wantErr: false,
		},
		"debug flag": {
			args:    []string{"--debug", "version"},
			wantErr: false,
		},
		"no-color flag": {
			args:    []string{"--no-color", "version"},
			wantErr: false,
		},
		"combined flags": {
			args:    []string{"--verbose", "--no-color", "version"},
			wantErr: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := runApp(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Errorf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAllCommandsRegistered(t *testing.T) {
	output, err := runApp(t, "--help")
	if err != nil {
		t.Fatalf("help command failed: %v", err)
	}

	expectedCommands := []string{
		"convert",
		"install",
		"new",
		"detect",
		"formats",
		"score",
		"config",
		"onboard",
		"version",
	}

	for _, cmd := range expectedCommands {
		if !strings.Contains(output, cmd) {
			t.Errorf("expected command %q to be registered, help output: %q", cmd, output)
		}
	}
}

func TestHelpSubcommand(t *testing.T) {
	output, err := runApp(t, "help")
	if err != nil {
		t.Fatalf("help subcommand failed: %v", err)
	}

	if !strings.Contains(output, "promptpack") {
		t.Errorf("expected help output to contain 'promptpack', got: %q", output)
	}
}
