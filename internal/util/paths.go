package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// HomeDir returns the user's home directory
func HomeDir() string {
	home, _ := os.UserHomeDir()
	return home
}

// ConfigPath returns the promptpack configuration directory.
// PROMPTPACK_HOME overrides the platform default.
func ConfigPath() string {
	if home := os.Getenv("PROMPTPACK_HOME"); home != "" {
		return home
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(HomeDir(), ".promptpack")
	}
	return filepath.Join(dir, "promptpack")
}

// ExpandPath resolves ~ to the home directory and relative paths
// against baseDir. Empty input stays empty.
func ExpandPath(path, baseDir string) string {
	switch {
	case path == "":
		return ""
	case path == "~":
		return HomeDir()
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(HomeDir(), path[2:])
	case filepath.IsAbs(path):
		return filepath.Clean(path)
	default:
		return filepath.Join(baseDir, path)
	}
}

// ExpandPaths expands every path in order, dropping empties
func ExpandPaths(paths []string, baseDir string) []string {
	result := make([]string, 0, len(paths))
	for _, p := range paths {
		if expanded := ExpandPath(p, baseDir); expanded != "" {
			result = append(result, expanded)
		}
	}
	return result
}

// RepoRoot walks up from start until it finds a .git entry and returns
// the containing directory. Falls back to start when nothing above it
// looks like a repository.
func RepoRoot(start string) string {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}

// InstallRoot resolves the directory install output lands under. Scope
// "user" is the home directory; "repo" (the default) is the enclosing
// repository root of the working directory.
func InstallRoot(scope string) (string, error) {
	switch scope {
	case "user":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return home, nil
	case "repo", "":
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to resolve working directory: %w", err)
		}
		return RepoRoot(wd), nil
	default:
		return "", fmt.Errorf("unknown scope %q (expected repo or user)", scope)
	}
}
