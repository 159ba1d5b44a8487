// Package claude implements the codecs for Claude Code agents and skills.
// Both formats share the same body conventions; they differ in path,
// frontmatter schema and the package type they produce.
package claude

import (
	"github.com/promptpack/promptpack/internal/codec"
	"github.com/promptpack/promptpack/internal/format"
	"github.com/promptpack/promptpack/internal/model"
)

// agentFrontmatter is the schema of .claude/agents/*.md files.
type agentFrontmatter struct {
	Name        string           `yaml:"name,omitempty"`
	Description string           `yaml:"description,omitempty"`
	Tools       codec.StringList `yaml:"tools,omitempty"`
	Model       string           `yaml:"model,omitempty"`
}

// skillFrontmatter is the schema of SKILL.md files.
type skillFrontmatter struct {
	Name        string           `yaml:"name,omitempty"`
	Description string           `yaml:"description,omitempty"`
	Version     string           `yaml:"version,omitempty"`
	Author      string           `yaml:"author,omitempty"`
	Tags        []string         `yaml:"tags,omitempty"`
	Tools       codec.StringList `yaml:"tools,omitempty"`
}

// Parser reads Claude Code agent or skill files.
type Parser struct {
	id model.FormatID
}

// NewAgentParser creates a parser for .claude/agents files.
func NewAgentParser() *Parser {
	return &Parser{id: model.ClaudeAgent}
}

// NewSkillParser creates a parser for SKILL.md files.
func NewSkillParser() *Parser {
	return &Parser{id: model.ClaudeSkill}
}

// Format returns the format this parser handles.
func (p *Parser) Format() model.FormatID {
	return p.id
}

// Parse converts an agent or skill file into a canonical package.
// Frontmatter tools arrive as either a YAML list or a comma-separated
// string; both produce a tools section placed after the body sections.
func (p *Parser) Parse(raw []byte) (*model.CanonicalPackage, error) {
	res, err := codec.SplitDocument(p.id, raw)
	if err != nil {
		return nil, err
	}

	pkg := &model.CanonicalPackage{}
	var tools []string

	if p.id == model.ClaudeSkill {
		var fm skillFrontmatter
		if err := decode(p.id, res, &fm); err != nil {
			return nil, err
		}
		pkg.Name = fm.Name
		pkg.Description = fm.Description
		pkg.Version = fm.Version
		pkg.Author = fm.Author
		pkg.Tags = fm.Tags
		pkg.Type = model.TypeSkill
		tools = fm.Tools
	} else {
		var fm agentFrontmatter
		if err := decode(p.id, res, &fm); err != nil {
			return nil, err
		}
		pkg.Name = fm.Name
		pkg.Description = fm.Description
		pkg.Model = fm.Model
		pkg.Type = model.TypeAgent
		tools = fm.Tools
	}

	doc := codec.SplitBody(res.Body)
	sections, _ := codec.BuildSections(doc, false)
	if doc.Title != "" {
		sections = append([]model.Section{model.NewMetadata(doc.Title, "")}, sections...)
	}
	if len(tools) > 0 {
		sections = append(sections, model.NewTools(tools))
	}
	pkg.Sections = sections

	if pkg.Name == "" {
		pkg.Name = codec.Slugify(doc.Title)
	}
	if err := pkg.Validate(); err != nil {
		return nil, &codec.ParseError{Format: p.id, Reason: "invalid package", Err: err}
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

// Serializer renders canonical packages as Claude Code agent or skill
// files.
type Serializer struct {
	spec format.Spec
}

// NewAgentSerializer creates a serializer for .claude/agents files.
func NewAgentSerializer() *Serializer {
	return &Serializer{spec: format.MustLookup(model.ClaudeAgent)}
}

// NewSkillSerializer creates a serializer for SKILL.md files.
func NewSkillSerializer() *Serializer {
	return &Serializer{spec: format.MustLookup(model.ClaudeSkill)}
}

// Format returns the format this serializer emits.
func (s *Serializer) Format() model.FormatID {
	return s.spec.ID
}

// Serialize renders the package. Tool identifiers go into frontmatter
// rather than the body, so the body loop skips tools sections.
func (s *Serializer) Serialize(pkg *model.CanonicalPackage) (*model.ConversionResult, error) {
	warnings := codec.MetadataWarnings(s.spec, pkg)

	var tools []string
	var title string
	for _, sec := range pkg.Sections {
		switch sec.Kind {
		case model.SectionTools:
			tools = append(tools, sec.Tools...)
		case model.SectionMetadata:
			if title == "" {
				title = sec.Title
			}
		}
	}

	var head string
	var err error
	if s.spec.ID == model.ClaudeSkill {
		head, err = encodeIfSet(skillFrontmatter{
			Name:        pkg.Name,
			Description: pkg.Description,
			Version:     pkg.Version,
			Author:      pkg.Author,
			Tags:        pkg.Tags,
			Tools:       tools,
		}, pkg.Name != "" || pkg.Description != "" || pkg.Version != "" ||
			pkg.Author != "" || len(pkg.Tags) > 0 || len(tools) > 0)
	} else {
		head, err = encodeIfSet(agentFrontmatter{
			Name:        pkg.Name,
			Description: pkg.Description,
			Tools:       tools,
			Model:       pkg.Model,
		}, pkg.Name != "" || pkg.Description != "" || pkg.Model != "" || len(tools) > 0)
	}
	if err != nil {
		return nil, err
	}

	var w codec.MarkdownWriter
	if title != "" {
		w.Heading(1, title)
	}
	skip := map[model.SectionKind]bool{model.SectionTools: true}
	warnings = append(warnings, codec.RenderSections(&w, pkg, s.spec, skip)...)

	content := w.String()
	if head != "" {
		content = head + "\n" + content
	}
	return codec.FinishResult(s.spec, pkg, content, warnings), nil
}

func encodeIfSet(fm any, set bool) (string, error) {
	if !set {
		return "", nil
	}
	return codec.EncodeFrontmatter(fm)
}
