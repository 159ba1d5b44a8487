package codec

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/promptpack/promptpack/internal/model"
)

// ErrMultipleFrontmatter is returned when a document carries more than
// one frontmatter block. Codecs wrap it into a ParseError.
var ErrMultipleFrontmatter = errors.New("multiple frontmatter blocks")

// SplitResult contains the raw frontmatter block and remaining body.
type SplitResult struct {
	// Frontmatter holds the raw bytes between the delimiters, with
	// line endings normalized to \n. Nil when none was found.
	Frontmatter []byte

	// Body is the content after the frontmatter block.
	Body string

	// Found indicates whether a frontmatter block was present.
	Found bool

	// TOML indicates the block used +++ delimiters instead of ---.
	TOML bool
}

// Split extracts an optional frontmatter block from content. Both ---
// (YAML) and +++ (TOML) delimiters are recognized. A second
// frontmatter-like block immediately following the first is an error
// rather than silently becoming body text.
func Split(content []byte) (SplitResult, error) {
	var res SplitResult
	switch {
	case hasDelimiterPrefix(content, "---"):
		res = extract(content, "---")
	case hasDelimiterPrefix(content, "+++"):
		res = extract(content, "+++")
		res.TOML = res.Found
	default:
		return SplitResult{Body: string(content)}, nil
	}

	if res.Found && looksLikeFrontmatter(res.Body) {
		return res, ErrMultipleFrontmatter
	}
	return res, nil
}

func hasDelimiterPrefix(content []byte, delim string) bool {
	return bytes.HasPrefix(content, []byte(delim+"\n")) ||
		bytes.HasPrefix(content, []byte(delim+"\r\n"))
}

// extract pulls the block between delimiter lines. Content without a
// closing delimiter is treated as having no frontmatter at all.
func extract(content []byte, delim string) SplitResult {
	remaining := content[len(delim):]
	if bytes.HasPrefix(remaining, []byte("\r\n")) {
		remaining = remaining[2:]
	} else if bytes.HasPrefix(remaining, []byte("\n")) {
		remaining = remaining[1:]
	}

	var block []byte
	var bodyStart int
	found := false

	if bytes.HasPrefix(remaining, []byte(delim)) {
		block = []byte{}
		bodyStart = len(delim)
		found = true
	} else {
		for _, nl := range []string{"\n", "\r\n"} {
			closing := []byte(nl + delim)
			if idx := bytes.Index(remaining, closing); idx != -1 {
				block = remaining[:idx]
				bodyStart = idx + len(closing)
				found = true
				break
			}
		}
	}

	if !found {
		return SplitResult{Body: string(content)}
	}

	block = bytes.ReplaceAll(block, []byte("\r\n"), []byte("\n"))
	block = bytes.TrimRight(block, "\r")

	if bodyStart < len(remaining) {
		if bytes.HasPrefix(remaining[bodyStart:], []byte("\r\n")) {
			bodyStart += 2
		} else if bytes.HasPrefix(remaining[bodyStart:], []byte("\n")) {
			bodyStart++
		}
	}

	var body string
	if bodyStart < len(remaining) {
		body = string(remaining[bodyStart:])
	}
	return SplitResult{Frontmatter: block, Body: body, Found: true}
}

// SplitDocument splits raw content for the given format, wrapping a
// duplicate frontmatter block into a ParseError.
func SplitDocument(id model.FormatID, raw []byte) (SplitResult, error) {
	res, err := Split(raw)
	if err != nil {
		return res, &ParseError{Format: id, Reason: "multiple frontmatter blocks", Err: err}
	}
	return res, nil
}

var mappingLine = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*\s*[:=]`)

// looksLikeFrontmatter reports whether the body opens with another
// delimited block of key/value lines. A bare horizontal rule does not
// qualify; the block must close and contain at least one mapping line.
func looksLikeFrontmatter(body string) bool {
	var delim string
	switch {
	case strings.HasPrefix(body, "---\n"):
		delim = "---"
	case strings.HasPrefix(body, "+++\n"):
		delim = "+++"
	default:
		return false
	}

	rest := body[len(delim)+1:]
	end := strings.Index(rest, "\n"+delim)
	if end == -1 {
		return false
	}
	for _, line := range strings.Split(rest[:end], "\n") {
		if mappingLine.MatchString(line) {
			return true
		}
	}
	return false
}

// DecodeYAML unmarshals a YAML frontmatter block into out. Failures
// come back as a ParseError carrying the offending line where the YAML
// parser reports one, offset to account for the opening delimiter.
func DecodeYAML(format model.FormatID, raw []byte, out any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return &ParseError{
			Format: format,
			Line:   yamlErrorLine(err),
			Reason: "malformed frontmatter",
			Err:    err,
		}
	}
	return nil
}

// DecodeTOML unmarshals a TOML frontmatter block into out.
func DecodeTOML(format model.FormatID, raw []byte, out any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := toml.Unmarshal(raw, out); err != nil {
		perr := &ParseError{Format: format, Reason: "malformed frontmatter", Err: err}
		var terr toml.ParseError
		if errors.As(err, &terr) {
			perr.Line = terr.Position.Line + 1
		}
		return perr
	}
	return nil
}

// DecodeMap unmarshals a frontmatter block into a generic map. The
// detector uses this to inspect keys before a format is known.
func DecodeMap(res SplitResult) (map[string]any, error) {
	if !res.Found || len(res.Frontmatter) == 0 {
		return map[string]any{}, nil
	}
	fields := make(map[string]any)
	if res.TOML {
		if err := toml.Unmarshal(res.Frontmatter, &fields); err != nil {
			return nil, fmt.Errorf("failed to parse TOML frontmatter: %w", err)
		}
		return fields, nil
	}
	if err := yaml.Unmarshal(res.Frontmatter, &fields); err != nil {
		return nil, fmt.Errorf("failed to parse YAML frontmatter: %w", err)
	}
	return fields, nil
}

var yamlLinePattern = regexp.MustCompile(`line (\d+):`)

// yamlErrorLine pulls the line number out of a yaml.v3 error message
// and offsets it past the opening delimiter line. Zero means unknown.
func yamlErrorLine(err error) int {
	m := yamlLinePattern.FindStringSubmatch(err.Error())
	if len(m) != 2 {
		return 0
	}
	n, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return 0
	}
	return n + 1
}
