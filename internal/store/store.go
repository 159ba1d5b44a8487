// Package store defines the package storage collaborators the
// conversion engine reads from. The engine never persists packages
// itself; callers plug in whichever backend owns them.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/promptpack/promptpack/internal/model"
)

// ErrNotFound is returned when a package id/version is not in the store.
var ErrNotFound = errors.New("package not found")

// RawPackage is original-format content as the store holds it.
type RawPackage struct {
	// Content is the raw file content.
	Content []byte

	// Path is the file path the content was stored under, when the
	// backend knows one. The detector uses it as a classification
	// signal.
	Path string

	// SourceHint names the source format when the backend recorded
	// one. Empty means unknown.
	SourceHint string
}

// Store is the read interface the conversion engine consumes. A
// backend may serve already-canonical packages, raw original-format
// content, or both; either getter returns ErrNotFound for the
// representations it does not hold.
type Store interface {
	GetCanonical(ctx context.Context, id, version string) (*model.CanonicalPackage, error)
	GetRaw(ctx context.Context, id, version string) (RawPackage, error)
}

// Memory is an in-memory store, used by tests and for preloaded
// registries. It is safe for concurrent use.
type Memory struct {
	mu        sync.RWMutex
	canonical map[string]*model.CanonicalPackage
	raw       map[string]RawPackage
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		canonical: make(map[string]*model.CanonicalPackage),
		raw:       make(map[string]RawPackage),
	}
}

// PutCanonical stores a canonical package under id/version.
func (m *Memory) PutCanonical(id, version string, pkg *model.CanonicalPackage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.canonical[key(id, version)] = pkg
}

// PutRaw stores raw content under id/version.
func (m *Memory) PutRaw(id, version string, raw RawPackage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.raw[key(id, version)] = raw
}

// GetCanonical returns the canonical package for id/version.
func (m *Memory) GetCanonical(_ context.Context, id, version string) (*model.CanonicalPackage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	pkg, ok := m.canonical[key(id, version)]
	if !ok {
		return nil, ErrNotFound
	}
	return pkg, nil
}

// GetRaw returns the raw content for id/version.
func (m *Memory) GetRaw(_ context.Context, id, version string) (RawPackage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.raw[key(id, version)]
	if !ok {
		return RawPackage{}, ErrNotFound
	}
	return raw, nil
}

func key(id, version string) string {
	return id + "@" + version
}

// File exposes one local package file as a store, which lets the CLI
// drive the orchestrator with its caching intact. The file path is the
// package id; version is ignored since a file on disk is one version.
type File struct {
	path string
	hint string
}

// NewFile creates a store serving the file at path. hint optionally
// names the source format when the caller already knows it.
func NewFile(path, hint string) *File {
	return &File{path: path, hint: hint}
}

// GetCanonical always misses; files hold original-format content.
func (f *File) GetCanonical(_ context.Context, _, _ string) (*model.CanonicalPackage, error) {
	return nil, ErrNotFound
}

// GetRaw reads the file when id names it. The content is read fresh on
// every call so an edited file converts without staleness.
func (f *File) GetRaw(_ context.Context, id, _ string) (RawPackage, error) {
	if id != f.path {
		return RawPackage{}, ErrNotFound
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return RawPackage{}, fmt.Errorf("failed to read package file: %w", err)
	}
	return RawPackage{Content: data, Path: f.path, SourceHint: f.hint}, nil
}
