// Package e2e provides testing infrastructure for end-to-end CLI tests.
// It includes a harness for running full CLI invocations in-process with
// isolated home directories and captured output streams.
package e2e

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/promptpack/promptpack/internal/cli"
)

// Result contains the outcome of running a CLI command.
type Result struct {
	// Stdout contains the captured standard output.
	Stdout string
	// Stderr contains the captured standard error.
	Stderr string
	// Err is the error returned by the CLI command, if any.
	Err error
	// ExitCode is the inferred exit code (0 for success, 1 for error).
	ExitCode int
}

// Success returns true if the command completed without error.
func (r *Result) Success() bool {
	return r.Err == nil
}

// Harness runs CLI commands in an isolated environment.
// Each harness gets its own home directory so config files, user-scope
// installs, and anything reading HOME stay contained to the test.
type Harness struct {
	t       *testing.T
	homeDir string
}

// NewHarness creates a new E2E test harness with an isolated home.
func NewHarness(t *testing.T) *Harness {
	t.Helper()

	homeDir := t.TempDir()

	h := &Harness{
		t:       t,
		homeDir: homeDir,
	}

	h.SetEnv("HOME", homeDir)
	h.SetEnv("PROMPTPACK_HOME", homeDir)

	return h
}

// SetEnv sets an environment variable for CLI commands run through this
// harness. The previous value is restored when the test completes.
func (h *Harness) SetEnv(key, value string) {
	h.t.Helper()
	h.t.Setenv(key, value)
}

// HomeDir returns the isolated home directory for this test harness.
func (h *Harness) HomeDir() string {
	return h.homeDir
}

// Run executes a CLI command with the given arguments and captures both
// output streams.
func (h *Harness) Run(args ...string) *Result {
	h.t.Helper()

	if len(args) == 0 || args[0] != "promptpack" {
		args = append([]string{"promptpack"}, args...)
	}

	oldStdout := os.Stdout
	oldStderr := os.Stderr

	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		h.t.Fatalf("failed to create stdout pipe: %v", err)
	}
	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		h.t.Fatalf("failed to create stderr pipe: %v", err)
	}
	os.Stdout = stdoutW
	os.Stderr = stderrW

	// Drain both pipes concurrently. A command that writes more than the
	// pipe buffer size (~64KB) would otherwise block until the buffer is
	// read, deadlocking the test.
	var stdoutBuf, stderrBuf bytes.Buffer
	var stdoutErr, stderrErr error
	done := make(chan struct{}, 2)
	go func() {
		_, stdoutErr = io.Copy(&stdoutBuf, stdoutR)
		done <- struct{}{}
	}()
	go func() {
		_, stderrErr = io.Copy(&stderrBuf, stderrR)
		done <- struct{}{}
	}()

	cmdErr := cli.Run(context.Background(), args)

	// Close the writers to signal EOF to the reader goroutines.
	if err := stdoutW.Close(); err != nil {
		h.t.Fatalf("failed to close stdout pipe writer: %v", err)
	}
	if err := stderrW.Close(); err != nil {
		h.t.Fatalf("failed to close stderr pipe writer: %v", err)
	}
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	<-done
	<-done
	if stdoutErr != nil {
		h.t.Fatalf("failed to read captured stdout: %v", stdoutErr)
	}
	if stderrErr != nil {
		h.t.Fatalf("failed to read captured stderr: %v", stderrErr)
	}

	exitCode := 0
	if cmdErr != nil {
		exitCode = 1
	}

	return &Result{
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
		Err:      cmdErr,
		ExitCode: exitCode,
	}
}
