// Package detector classifies raw package content into one of the
// supported formats. Detection checks an explicit hint first, then the
// file path convention, then content heuristics; when none of those
// settles on a single format the failure is an explicit error, never a
// silently chosen default.
package detector

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/promptpack/promptpack/internal/codec"
	"github.com/promptpack/promptpack/internal/format"
	"github.com/promptpack/promptpack/internal/logging"
	"github.com/promptpack/promptpack/internal/model"
)

// AmbiguousFormatError reports input matching more than one format.
type AmbiguousFormatError struct {
	Candidates []model.FormatID
}

func (e *AmbiguousFormatError) Error() string {
	names := make([]string, len(e.Candidates))
	for i, id := range e.Candidates {
		names[i] = string(id)
	}
	return fmt.Sprintf("ambiguous format: could be %s; pass an explicit format",
		strings.Join(names, " or "))
}

// UnknownFormatError reports input matching no known format.
type UnknownFormatError struct {
	Path string
	Hint string
}

func (e *UnknownFormatError) Error() string {
	switch {
	case e.Hint != "":
		return fmt.Sprintf("unknown format %q", e.Hint)
	case e.Path != "":
		return fmt.Sprintf("no format matches path %q or its content", e.Path)
	default:
		return "no format matches the content"
	}
}

// Detect classifies content into a format. A non-empty hint wins once
// validated. Otherwise the path convention decides when it names
// exactly one format, and content heuristics settle the rest.
func Detect(path string, raw []byte, hint string) (model.FormatID, error) {
	if hint != "" {
		return byHint(hint, raw)
	}

	var fromPath []model.FormatID
	if path != "" {
		for _, spec := range format.MatchingPath(path) {
			fromPath = append(fromPath, spec.ID)
		}
	}
	if len(fromPath) == 1 {
		return fromPath[0], nil
	}

	return byContent(path, raw, fromPath)
}

// byHint resolves an explicit format hint, accepting the common
// aliases the CLI accepts. The hint is still checked against the
// content heuristics; a disagreement is logged but the hint stands.
func byHint(hint string, raw []byte) (model.FormatID, error) {
	id, err := model.ParseFormatID(hint)
	if err != nil {
		return "", &UnknownFormatError{Hint: hint}
	}

	if candidates := contentCandidates(raw); len(candidates) > 0 {
		agreed := false
		for _, c := range candidates {
			if c == id {
				agreed = true
				break
			}
		}
		if !agreed {
			logging.Debug("format hint disagrees with content heuristics",
				logging.Format(string(id)))
		}
	}
	return id, nil
}

// byContent narrows the path candidates with content heuristics. When
// the path matched nothing the content candidates stand alone.
func byContent(path string, raw []byte, fromPath []model.FormatID) (model.FormatID, error) {
	candidates := contentCandidates(raw)
	if len(fromPath) > 0 {
		if narrowed := intersect(fromPath, candidates); len(narrowed) > 0 {
			candidates = narrowed
		} else {
			candidates = fromPath
		}
	}

	switch len(candidates) {
	case 0:
		return "", &UnknownFormatError{Path: path}
	case 1:
		return candidates[0], nil
	default:
		sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })
		return "", &AmbiguousFormatError{Candidates: candidates}
	}
}

// contentCandidates returns the formats whose content shape matches
// raw. Frontmatter keys are matched against each format's declared
// schema; a spec is a candidate when it declares every observed key
// and every key it requires was observed.
func contentCandidates(raw []byte) []model.FormatID {
	if hasMetadataComment(raw) {
		return []model.FormatID{model.Ruler}
	}

	// A duplicate frontmatter block is a parse error, not a detection
	// one; the first block still identifies the format.
	res, _ := codec.Split(raw)
	if !res.Found {
		return plainCandidates(res.Body)
	}
	if res.TOML {
		return []model.FormatID{model.Cursor}
	}

	fields, err := codec.DecodeMap(res)
	if err != nil {
		return nil
	}

	var out []model.FormatID
	for _, spec := range format.All() {
		if spec.HasFrontmatter() && schemaMatches(spec, fields) {
			out = append(out, spec.ID)
		}
	}
	return out
}

// schemaMatches reports whether the observed frontmatter keys fit the
// spec's schema.
func schemaMatches(spec format.Spec, fields map[string]any) bool {
	for key := range fields {
		if !spec.Frontmatter.Declares(key) {
			return false
		}
	}
	for _, key := range spec.Frontmatter.Required {
		if _, ok := fields[key]; !ok {
			return false
		}
	}
	return true
}

// plainCandidates classifies a body with no frontmatter at all. Within
// the shared character limit the doc-style rule formats are the likely
// authors; past it only the unlimited ones remain.
func plainCandidates(body string) []model.FormatID {
	limit := format.MustLookup(model.Windsurf).Limit
	if utf8.RuneCountInString(body) > limit {
		return []model.FormatID{model.AgentsMD, model.Copilot}
	}
	return []model.FormatID{model.Ruler, model.Windsurf}
}

// hasMetadataComment reports whether raw opens with the HTML comment
// block Ruler uses to carry package metadata.
func hasMetadataComment(raw []byte) bool {
	content := strings.TrimLeft(string(raw), "\n")
	if !strings.HasPrefix(content, "<!--") {
		return false
	}
	end := strings.Index(content, "-->")
	if end == -1 {
		return false
	}

	fields := make(map[string]any)
	if err := yaml.Unmarshal([]byte(content[len("<!--"):end]), &fields); err != nil {
		return false
	}
	return len(fields) > 0
}

func intersect(a, b []model.FormatID) []model.FormatID {
	var out []model.FormatID
	for _, id := range a {
		for _, other := range b {
			if id == other {
				out = append(out, id)
				break
			}
		}
	}
	return out
}
