// Package format declares the capability data that drives conversion.
//
// Every supported format is described by a Spec value: where its files
// live, which frontmatter fields it understands, how well it represents
// each section kind, and any hard size limit. Format behavior differences
// are expressed entirely through this data so that parsers and
// serializers stay free of per-format branching.
package format

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/promptpack/promptpack/internal/model"
)

// Frontmatter lists the fields a format's frontmatter may carry.
// Fields absent from both lists are never emitted for the format.
type Frontmatter struct {
	Required []string
	Optional []string
}

// Declares reports whether the field has a slot in the frontmatter.
func (f Frontmatter) Declares(field string) bool {
	for _, r := range f.Required {
		if r == field {
			return true
		}
	}
	for _, o := range f.Optional {
		if o == field {
			return true
		}
	}
	return false
}

// Spec describes one format's on-disk convention and fidelity profile.
type Spec struct {
	// ID is the canonical format identifier.
	ID model.FormatID

	// Name is the human-readable format name shown in CLI output.
	Name string

	// PathPattern matches candidate file paths, as a slash-separated
	// suffix pattern where each segment may use glob syntax.
	PathPattern string

	// PathTemplate renders the destination path for a package. The
	// {name} placeholder is replaced with the package name.
	PathTemplate string

	// Frontmatter is the format's frontmatter schema. A zero value
	// means the format carries no frontmatter at all.
	Frontmatter Frontmatter

	// Capabilities maps every section kind to its support level.
	Capabilities Matrix

	// Limit is the hard character limit on serialized content, or 0
	// when the format imposes none.
	Limit int

	// ContentType labels the serialized output, e.g. "text/markdown".
	ContentType string
}

// Capability returns the capability entry for the given section kind.
// Kinds missing from the matrix are treated as fully supported.
func (s Spec) Capability(kind model.SectionKind) Capability {
	if c, ok := s.Capabilities[kind]; ok {
		return c
	}
	return full()
}

// HasFrontmatter reports whether the format carries a frontmatter block.
func (s Spec) HasFrontmatter() bool {
	return len(s.Frontmatter.Required) > 0 || len(s.Frontmatter.Optional) > 0
}

// MatchPath reports whether the path matches the format's convention.
// Matching compares the trailing segments of the cleaned path against
// the pattern, so nested checkouts like repo/sub/.cursor/rules/x.mdc
// still match.
func (s Spec) MatchPath(p string) bool {
	if s.PathPattern == "" || p == "" {
		return false
	}
	want := strings.Split(s.PathPattern, "/")
	have := strings.Split(path.Clean(filepath.ToSlash(p)), "/")
	if len(have) < len(want) {
		return false
	}
	tail := have[len(have)-len(want):]
	for i, pattern := range want {
		ok, err := path.Match(pattern, tail[i])
		if err != nil || !ok {
			return false
		}
	}
	return true
}

// RenderPath returns the conventional destination path for the package.
func (s Spec) RenderPath(name string) string {
	return strings.ReplaceAll(s.PathTemplate, "{name}", name)
}
