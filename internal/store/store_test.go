package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/promptpack/promptpack/internal/model"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	pkg := &model.CanonicalPackage{Name: "api-rules", Type: model.TypeRule}
	m.PutCanonical("api-rules", "1.0.0", pkg)
	m.PutRaw("api-rules", "1.0.0", RawPackage{
		Content:    []byte("# API Rules\n"),
		SourceHint: "cursor",
	})

	got, err := m.GetCanonical(ctx, "api-rules", "1.0.0")
	if err != nil {
		t.Fatalf("GetCanonical() error = %v", err)
	}
	if got != pkg {
		t.Error("GetCanonical() should return the stored package")
	}

	raw, err := m.GetRaw(ctx, "api-rules", "1.0.0")
	if err != nil {
		t.Fatalf("GetRaw() error = %v", err)
	}
	if string(raw.Content) != "# API Rules\n" || raw.SourceHint != "cursor" {
		t.Errorf("GetRaw() = %+v", raw)
	}
}

func TestMemoryNotFound(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.PutCanonical("api-rules", "1.0.0", &model.CanonicalPackage{Name: "api-rules"})

	tests := map[string]struct {
		id, version string
	}{
		"unknown id":      {id: "other", version: "1.0.0"},
		"unknown version": {id: "api-rules", version: "2.0.0"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := m.GetCanonical(ctx, tt.id, tt.version); !errors.Is(err, ErrNotFound) {
				t.Errorf("GetCanonical() error = %v, want ErrNotFound", err)
			}
			if _, err := m.GetRaw(ctx, tt.id, tt.version); !errors.Is(err, ErrNotFound) {
				t.Errorf("GetRaw() error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "rule.mdc")
	if err := os.WriteFile(path, []byte("# Rule\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := NewFile(path, "cursor")

	raw, err := f.GetRaw(ctx, path, "")
	if err != nil {
		t.Fatalf("GetRaw() error = %v", err)
	}
	if string(raw.Content) != "# Rule\n" {
		t.Errorf("Content = %q", raw.Content)
	}
	if raw.Path != path || raw.SourceHint != "cursor" {
		t.Errorf("RawPackage = %+v", raw)
	}

	if _, err := f.GetCanonical(ctx, path, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetCanonical() error = %v, want ErrNotFound", err)
	}
	if _, err := f.GetRaw(ctx, "some-other-id", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetRaw() with foreign id error = %v, want ErrNotFound", err)
	}
}

func TestFileMissing(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "absent.md")

	f := NewFile(path, "")
	_, err := f.GetRaw(ctx, path, "")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("GetRaw() error = %v, want wrapped fs.ErrNotExist", err)
	}
}
