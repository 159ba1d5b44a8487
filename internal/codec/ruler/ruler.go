// Package ruler implements the codec for Ruler rule files. Ruler has
// no frontmatter; package metadata rides in a leading HTML comment so
// the file stays plain markdown for the tools that concatenate it.
package ruler

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/promptpack/promptpack/internal/codec"
	"github.com/promptpack/promptpack/internal/format"
	"github.com/promptpack/promptpack/internal/model"
)

const (
	commentOpen  = "<!--"
	commentClose = "-->"
)

// metadata is the YAML carried inside the leading comment block.
type metadata struct {
	Name    string   `yaml:"name,omitempty"`
	Version string   `yaml:"version,omitempty"`
	Author  string   `yaml:"author,omitempty"`
	Tags    []string `yaml:"tags,omitempty"`
}

// Parser reads .ruler/rules files.
type Parser struct{}

// NewParser creates a Ruler parser.
func NewParser() *Parser {
	return &Parser{}
}

// Format returns the format this parser handles.
func (p *Parser) Format() model.FormatID {
	return model.Ruler
}

// Parse converts a rules file into a canonical package. A leading
// comment block is parsed as metadata; everything after it is body.
func (p *Parser) Parse(raw []byte) (*model.CanonicalPackage, error) {
	meta, body, err := splitComment(string(raw))
	if err != nil {
		return nil, err
	}

	pkg, err := codec.ParseBody(model.Ruler, body)
	if err != nil {
		return nil, err
	}
	if meta.Name != "" {
		pkg.Name = meta.Name
	}
	pkg.Version = meta.Version
	pkg.Author = meta.Author
	pkg.Tags = meta.Tags
	return pkg, nil
}

// splitComment extracts the leading metadata comment, if present.
func splitComment(content string) (metadata, string, error) {
	var meta metadata
	trimmed := strings.TrimLeft(content, "\n")
	if !strings.HasPrefix(trimmed, commentOpen) {
		return meta, content, nil
	}

	end := strings.Index(trimmed, commentClose)
	if end == -1 {
		return meta, content, nil
	}

	inner := trimmed[len(commentOpen):end]
	if err := yaml.Unmarshal([]byte(inner), &meta); err != nil {
		return meta, "", &codec.ParseError{
			Format: model.Ruler,
			Reason: "malformed metadata comment",
			Err:    err,
		}
	}
	return meta, trimmed[end+len(commentClose):], nil
}

// Serializer renders canonical packages as Ruler rules files.
type Serializer struct {
	spec format.Spec
}

// NewSerializer creates a Ruler serializer.
func NewSerializer() *Serializer {
	return &Serializer{spec: format.MustLookup(model.Ruler)}
}

// Format returns the format this serializer emits.
func (s *Serializer) Format() model.FormatID {
	return model.Ruler
}

// Serialize renders the package. Name, version, author and tags go
// into the comment block; fields with no comment slot are dropped
// with a warning like any other missing metadata home.
func (s *Serializer) Serialize(pkg *model.CanonicalPackage) (*model.ConversionResult, error) {
	warnings := metadataWarnings(pkg)

	meta := metadata{
		Name:    pkg.Name,
		Version: pkg.Version,
		Author:  pkg.Author,
		Tags:    pkg.Tags,
	}

	var head string
	if meta.Name != "" || meta.Version != "" || meta.Author != "" || len(meta.Tags) > 0 {
		data, err := yaml.Marshal(meta)
		if err != nil {
			return nil, err
		}
		head = commentOpen + "\n" + string(data) + commentClose + "\n\n"
	}

	var w codec.MarkdownWriter
	if title := codec.MetadataTitle(pkg); title != "" {
		w.Heading(1, title)
	}
	w.Paragraph(pkg.Description)
	warnings = append(warnings, codec.RenderSections(&w, pkg, s.spec, nil)...)

	return codec.FinishResult(s.spec, pkg, head+w.String(), warnings), nil
}

// metadataWarnings flags the canonical metadata the comment block has
// no slot for.
func metadataWarnings(pkg *model.CanonicalPackage) []model.Warning {
	var warnings []model.Warning
	drop := func(field string) {
		warnings = append(warnings, model.Warning{
			Kind:    model.WarnMetadataDropped,
			Message: "metadata field \"" + field + "\" dropped: no ruler equivalent",
		})
	}
	if pkg.Model != "" {
		drop("model")
	}
	if pkg.Activation != nil {
		drop("activation")
	}
	for _, sec := range pkg.Sections {
		if sec.Kind == model.SectionMetadata && sec.Icon != "" {
			drop("icon")
		}
	}
	return warnings
}
