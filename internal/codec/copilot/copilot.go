// Package copilot implements the codecs for GitHub Copilot customization
// files: repository-wide instructions, path-specific instructions, and
// chat modes.
package copilot

import (
	"github.com/promptpack/promptpack/internal/codec"
	"github.com/promptpack/promptpack/internal/format"
	"github.com/promptpack/promptpack/internal/model"
)

// pathFrontmatter is the schema of .instructions.md files. applyTo is
// required and keeps its authored shape, scalar or array.
type pathFrontmatter struct {
	ApplyTo     *codec.PatternValue `yaml:"applyTo,omitempty"`
	Description string              `yaml:"description,omitempty"`
}

// chatmodeFrontmatter is the schema of .chatmode.md files.
type chatmodeFrontmatter struct {
	Description string           `yaml:"description,omitempty"`
	Tools       codec.StringList `yaml:"tools,omitempty"`
	Model       string           `yaml:"model,omitempty"`
}

// Parser reads one of the Copilot file variants.
type Parser struct {
	id model.FormatID
}

// NewRepoParser creates a parser for copilot-instructions.md.
func NewRepoParser() *Parser {
	return &Parser{id: model.Copilot}
}

// NewPathParser creates a parser for path-specific instructions.
func NewPathParser() *Parser {
	return &Parser{id: model.CopilotPath}
}

// NewChatmodeParser creates a parser for chat mode files.
func NewChatmodeParser() *Parser {
	return &Parser{id: model.CopilotChatmode}
}

// Format returns the format this parser handles.
func (p *Parser) Format() model.FormatID {
	return p.id
}

// Parse converts a Copilot file into a canonical package.
func (p *Parser) Parse(raw []byte) (*model.CanonicalPackage, error) {
	switch p.id {
	case model.CopilotPath:
		return p.parsePath(raw)
	case model.CopilotChatmode:
		return p.parseChatmode(raw)
	default:
		return codec.ParseBody(model.Copilot, string(raw))
	}
}

func (p *Parser) parsePath(raw []byte) (*model.CanonicalPackage, error) {
	res, err := codec.SplitDocument(model.CopilotPath, raw)
	if err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, codec.MissingFieldError(model.CopilotPath, "applyTo")
	}

	var fm pathFrontmatter
	if err := decode(model.CopilotPath, res, &fm); err != nil {
		return nil, err
	}
	if fm.ApplyTo == nil || len(fm.ApplyTo.Patterns) == 0 {
		return nil, codec.MissingFieldError(model.CopilotPath, "applyTo")
	}

	doc := codec.SplitBody(res.Body)
	sections, _ := codec.BuildSections(doc, false)
	if doc.Title != "" {
		sections = append([]model.Section{model.NewMetadata(doc.Title, "")}, sections...)
	}

	pkg := &model.CanonicalPackage{
		Name:        codec.Slugify(doc.Title),
		Description: fm.Description,
		Type:        model.TypeRule,
		Activation: &model.Activation{
			Mode:        model.ActivationFileMatch,
			Patterns:    fm.ApplyTo.Patterns,
			PatternList: fm.ApplyTo.List,
		},
		Sections: sections,
	}
	if err := pkg.Validate(); err != nil {
		return nil, &codec.ParseError{Format: model.CopilotPath, Reason: "invalid package", Err: err}
	}
	return pkg, nil
}

func (p *Parser) parseChatmode(raw []byte) (*model.CanonicalPackage, error) {
	res, err := codec.SplitDocument(model.CopilotChatmode, raw)
	if err != nil {
		return nil, err
	}

	var fm chatmodeFrontmatter
	if err := decode(model.CopilotChatmode, res, &fm); err != nil {
		return nil, err
	}

	doc := codec.SplitBody(res.Body)
	sections, _ := codec.BuildSections(doc, false)
	if doc.Title != "" {
		sections = append([]model.Section{model.NewMetadata(doc.Title, "")}, sections...)
	}
	if len(fm.Tools) > 0 {
		sections = append(sections, model.NewTools(fm.Tools))
	}

	pkg := &model.CanonicalPackage{
		Name:        codec.Slugify(doc.Title),
		Description: fm.Description,
		Type:        model.TypeAgent,
		Subtype:     "chatmode",
		Model:       fm.Model,
		Sections:    sections,
	}
	if err := pkg.Validate(); err != nil {
		return nil, &codec.ParseError{Format: model.CopilotChatmode, Reason: "invalid package", Err: err}
	}
	return pkg, nil
}

func decode(id model.FormatID, res codec.SplitResult, out any) error {
	if !res.Found {
		return nil
	}
	if res.TOML {
		return codec.DecodeTOML(id, res.Frontmatter, out)
	}
	return codec.DecodeYAML(id, res.Frontmatter, out)
}

// Serializer renders canonical packages as one of the Copilot file
// variants.
type Serializer struct {
	spec format.Spec
}

// NewRepoSerializer creates a serializer for copilot-instructions.md.
func NewRepoSerializer() *Serializer {
	return &Serializer{spec: format.MustLookup(model.Copilot)}
}

// NewPathSerializer creates a serializer for path-specific instructions.
func NewPathSerializer() *Serializer {
	return &Serializer{spec: format.MustLookup(model.CopilotPath)}
}

// NewChatmodeSerializer creates a serializer for chat mode files.
func NewChatmodeSerializer() *Serializer {
	return &Serializer{spec: format.MustLookup(model.CopilotChatmode)}
}

// Format returns the format this serializer emits.
func (s *Serializer) Format() model.FormatID {
	return s.spec.ID
}

// Serialize renders the package in the serializer's variant.
func (s *Serializer) Serialize(pkg *model.CanonicalPackage) (*model.ConversionResult, error) {
	switch s.spec.ID {
	case model.CopilotPath:
		return s.serializePath(pkg)
	case model.CopilotChatmode:
		return s.serializeChatmode(pkg)
	default:
		return codec.SerializeBody(s.spec, pkg), nil
	}
}

// serializePath writes path-specific instructions. applyTo is required
// by the format; a package without file-match activation applies
// everywhere, which ** encodes faithfully for always-on packages.
func (s *Serializer) serializePath(pkg *model.CanonicalPackage) (*model.ConversionResult, error) {
	warnings := codec.MetadataWarnings(s.spec, pkg)

	fm := pathFrontmatter{
		ApplyTo:     &codec.PatternValue{Patterns: []string{"**"}},
		Description: pkg.Description,
	}
	if a := pkg.Activation; a != nil {
		switch a.Mode {
		case model.ActivationFileMatch:
			fm.ApplyTo = &codec.PatternValue{Patterns: a.Patterns, List: a.PatternList}
		case model.ActivationAlways:
			// Keep the ** default.
		default:
			warnings = append(warnings, model.Warning{
				Kind:    model.WarnMetadataDropped,
				Message: "activation mode \"" + string(a.Mode) + "\" has no applyTo equivalent, wrote **",
			})
		}
	}

	head, err := codec.EncodeFrontmatter(fm)
	if err != nil {
		return nil, err
	}

	var w codec.MarkdownWriter
	if title := codec.MetadataTitle(pkg); title != "" {
		w.Heading(1, title)
	}
	warnings = append(warnings, codec.RenderSections(&w, pkg, s.spec, nil)...)

	return codec.FinishResult(s.spec, pkg, head+"\n"+w.String(), warnings), nil
}

func (s *Serializer) serializeChatmode(pkg *model.CanonicalPackage) (*model.ConversionResult, error) {
	warnings := codec.MetadataWarnings(s.spec, pkg)

	var tools []string
	for _, sec := range pkg.Sections {
		if sec.Kind == model.SectionTools {
			tools = append(tools, sec.Tools...)
		}
	}

	fm := chatmodeFrontmatter{
		Description: pkg.Description,
		Tools:       tools,
		Model:       pkg.Model,
	}

	var content string
	if fm.Description != "" || len(fm.Tools) > 0 || fm.Model != "" {
		head, err := codec.EncodeFrontmatter(fm)
		if err != nil {
			return nil, err
		}
		content = head + "\n"
	}

	var w codec.MarkdownWriter
	if title := codec.MetadataTitle(pkg); title != "" {
		w.Heading(1, title)
	}
	skip := map[model.SectionKind]bool{model.SectionTools: true}
	warnings = append(warnings, codec.RenderSections(&w, pkg, s.spec, skip)...)

	return codec.FinishResult(s.spec, pkg, content+w.String(), warnings), nil
}
