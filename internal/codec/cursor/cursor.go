// Package cursor implements the codec for Cursor rule files.
package cursor

import (
	"github.com/promptpack/promptpack/internal/codec"
	"github.com/promptpack/promptpack/internal/format"
	"github.com/promptpack/promptpack/internal/model"
)

// frontmatter is the schema Cursor rule files carry. Field order here
// is emission order.
type frontmatter struct {
	Name string `yaml:"name,omitempty"`
	Icon string `yaml:"icon,omitempty"`
}

// Parser reads Cursor .mdc rule files.
type Parser struct{}

// NewParser creates a Cursor parser.
func NewParser() *Parser {
	return &Parser{}
}

// Format returns the format this parser handles.
func (p *Parser) Format() model.FormatID {
	return model.Cursor
}

// Parse converts a Cursor rule file into a canonical package.
func (p *Parser) Parse(raw []byte) (*model.CanonicalPackage, error) {
	res, err := codec.SplitDocument(model.Cursor, raw)
	if err != nil {
		return nil, err
	}

	var fm frontmatter
	if res.Found {
		if res.TOML {
			err = codec.DecodeTOML(model.Cursor, res.Frontmatter, &fm)
		} else {
			err = codec.DecodeYAML(model.Cursor, res.Frontmatter, &fm)
		}
		if err != nil {
			return nil, err
		}
	}

	doc := codec.SplitBody(res.Body)
	sections, description := codec.BuildSections(doc, true)

	if doc.Title != "" || fm.Icon != "" {
		sections = append([]model.Section{model.NewMetadata(doc.Title, fm.Icon)}, sections...)
	}

	name := fm.Name
	if name == "" {
		name = codec.Slugify(doc.Title)
	}

	pkg := &model.CanonicalPackage{
		Name:        name,
		Description: description,
		Type:        model.TypeRule,
		Sections:    sections,
	}
	if err := pkg.Validate(); err != nil {
		return nil, &codec.ParseError{Format: model.Cursor, Reason: "invalid package", Err: err}
	}
	return pkg, nil
}

// Serializer renders canonical packages as Cursor rule files.
type Serializer struct {
	spec format.Spec
}

// NewSerializer creates a Cursor serializer.
func NewSerializer() *Serializer {
	return &Serializer{spec: format.MustLookup(model.Cursor)}
}

// Format returns the format this serializer emits.
func (s *Serializer) Format() model.FormatID {
	return model.Cursor
}

// Serialize renders the package as a .mdc rule file.
func (s *Serializer) Serialize(pkg *model.CanonicalPackage) (*model.ConversionResult, error) {
	warnings := codec.MetadataWarnings(s.spec, pkg)

	fm := frontmatter{Name: pkg.Name}
	var title string
	for _, sec := range pkg.Sections {
		if sec.Kind == model.SectionMetadata {
			title = sec.Title
			fm.Icon = sec.Icon
			break
		}
	}

	var w codec.MarkdownWriter
	if title != "" {
		w.Heading(1, title)
	}
	w.Paragraph(pkg.Description)
	warnings = append(warnings, codec.RenderSections(&w, pkg, s.spec, nil)...)

	content := w.String()
	if fm.Name != "" || fm.Icon != "" {
		head, err := codec.EncodeFrontmatter(fm)
		if err != nil {
			return nil, err
		}
		content = head + "\n" + content
	}
	return codec.FinishResult(s.spec, pkg, content, warnings), nil
}
