package e2e

import (
	"os"
	"path/filepath"
	"testing"
)

// Fixture provides helpers for creating test files in E2E tests.
type Fixture struct {
	t       *testing.T
	baseDir string
}

// NewFixture creates a new fixture helper rooted at the given directory.
func NewFixture(t *testing.T, baseDir string) *Fixture {
	t.Helper()
	return &Fixture{
		t:       t,
		baseDir: baseDir,
	}
}

// WriteFile writes content to a file relative to the fixture base directory.
// It creates parent directories as needed.
func (f *Fixture) WriteFile(relPath, content string) string {
	f.t.Helper()
	fullPath := filepath.Join(f.baseDir, relPath)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		f.t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(fullPath, []byte(content), 0o600); err != nil {
		f.t.Fatalf("failed to write file %s: %v", fullPath, err)
	}

	return fullPath
}

// WriteRulePack writes a markdown rule package with a title, an intro
// paragraph, and a bulleted rules section.
func (f *Fixture) WriteRulePack(relPath, title, intro string, rules ...string) string {
	f.t.Helper()

	content := "# " + title + "\n\n"
	if intro != "" {
		content += intro + "\n\n"
	}
	content += "## Rules\n\n"
	for _, rule := range rules {
		content += "- " + rule + "\n"
	}

	return f.WriteFile(relPath, content)
}

// Path returns the full path for a relative path.
func (f *Fixture) Path(relPath string) string {
	return filepath.Join(f.baseDir, relPath)
}

// Exists returns true if the file or directory exists.
func (f *Fixture) Exists(relPath string) bool {
	f.t.Helper()
	_, err := os.Stat(filepath.Join(f.baseDir, relPath))
	return err == nil
}

// ReadFile reads and returns the content of a file.
func (f *Fixture) ReadFile(relPath string) string {
	f.t.Helper()
	fullPath := filepath.Join(f.baseDir, relPath)

	// #nosec G304 - fullPath is constructed from trusted test fixture base and test-provided path
	data, err := os.ReadFile(fullPath)
	if err != nil {
		f.t.Fatalf("failed to read file %s: %v", fullPath, err)
	}

	return string(data)
}

// RepoFixture creates a fixture rooted at a fresh repository directory and
// changes the working directory into it. Install destinations resolved
// relative to the repository root land inside this directory.
func (h *Harness) RepoFixture() *Fixture {
	h.t.Helper()

	repoDir := h.t.TempDir()
	if err := os.MkdirAll(filepath.Join(repoDir, ".git"), 0o750); err != nil {
		h.t.Fatalf("failed to create repo marker: %v", err)
	}
	h.t.Chdir(repoDir)

	return NewFixture(h.t, repoDir)
}

// TempFixture creates a fixture helper for a new temporary directory.
func (h *Harness) TempFixture() *Fixture {
	h.t.Helper()
	return NewFixture(h.t, h.t.TempDir())
}
