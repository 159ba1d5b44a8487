package ui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsInteractiveRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if IsInteractive(f) {
		t.Error("IsInteractive() should be false for a regular file")
	}
}

func TestWidthFallback(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if got := Width(f); got != defaultWidth {
		t.Errorf("Width() = %d, want fallback %d for a regular file", got, defaultWidth)
	}
}
