// Package kiro implements the codec for Kiro steering files.
package kiro

import (
	"fmt"
	"strings"

	"github.com/promptpack/promptpack/internal/codec"
	"github.com/promptpack/promptpack/internal/format"
	"github.com/promptpack/promptpack/internal/model"
)

// Inclusion values the inclusion field accepts.
const (
	inclusionAlways    = "always"
	inclusionFileMatch = "fileMatch"
	inclusionManual    = "manual"
)

// frontmatter is the schema of .kiro/steering files. inclusion is
// required; fileMatchPattern only accompanies fileMatch.
type frontmatter struct {
	Inclusion        string `yaml:"inclusion"`
	FileMatchPattern string `yaml:"fileMatchPattern,omitempty"`
}

// Parser reads Kiro steering files.
type Parser struct{}

// NewParser creates a Kiro parser.
func NewParser() *Parser {
	return &Parser{}
}

// Format returns the format this parser handles.
func (p *Parser) Format() model.FormatID {
	return model.Kiro
}

// Parse converts a steering file into a canonical package. A missing
// or unknown inclusion is a hard error; the field is never guessed.
func (p *Parser) Parse(raw []byte) (*model.CanonicalPackage, error) {
	res, err := codec.SplitDocument(model.Kiro, raw)
	if err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, codec.MissingFieldError(model.Kiro, "inclusion")
	}

	var fm frontmatter
	if res.TOML {
		err = codec.DecodeTOML(model.Kiro, res.Frontmatter, &fm)
	} else {
		err = codec.DecodeYAML(model.Kiro, res.Frontmatter, &fm)
	}
	if err != nil {
		return nil, err
	}

	activation, err := parseActivation(fm)
	if err != nil {
		return nil, err
	}

	doc := codec.SplitBody(res.Body)
	sections, description := codec.BuildSections(doc, true)
	if doc.Title != "" {
		sections = append([]model.Section{model.NewMetadata(doc.Title, "")}, sections...)
	}

	pkg := &model.CanonicalPackage{
		Name:        codec.Slugify(doc.Title),
		Description: description,
		Type:        model.TypeRule,
		Activation:  activation,
		Sections:    sections,
	}
	if err := pkg.Validate(); err != nil {
		return nil, &codec.ParseError{Format: model.Kiro, Reason: "invalid package", Err: err}
	}
	return pkg, nil
}

// parseActivation maps the inclusion fields onto canonical activation.
// Multiple patterns are written as a | alternation in the single
// fileMatchPattern field, so parsing splits them back apart.
func parseActivation(fm frontmatter) (*model.Activation, error) {
	switch fm.Inclusion {
	case "":
		return nil, codec.MissingFieldError(model.Kiro, "inclusion")
	case inclusionAlways:
		return &model.Activation{Mode: model.ActivationAlways}, nil
	case inclusionManual:
		return &model.Activation{Mode: model.ActivationManual}, nil
	case inclusionFileMatch:
		if fm.FileMatchPattern == "" {
			return nil, codec.MissingFieldError(model.Kiro, "fileMatchPattern")
		}
		return &model.Activation{
			Mode:     model.ActivationFileMatch,
			Patterns: strings.Split(fm.FileMatchPattern, "|"),
		}, nil
	default:
		return nil, codec.MalformedFieldError(model.Kiro, "inclusion",
			fmt.Sprintf("unknown value %q", fm.Inclusion))
	}
}

// Serializer renders canonical packages as Kiro steering files.
type Serializer struct {
	spec format.Spec
}

// NewSerializer creates a Kiro serializer.
func NewSerializer() *Serializer {
	return &Serializer{spec: format.MustLookup(model.Kiro)}
}

// Format returns the format this serializer emits.
func (s *Serializer) Format() model.FormatID {
	return model.Kiro
}

// Serialize renders the package as a steering file. inclusion is
// mandatory in the output, so a package without activation is written
// as always-on.
func (s *Serializer) Serialize(pkg *model.CanonicalPackage) (*model.ConversionResult, error) {
	warnings := codec.MetadataWarnings(s.spec, pkg)

	fm := frontmatter{Inclusion: inclusionAlways}
	if a := pkg.Activation; a != nil {
		switch a.Mode {
		case model.ActivationAlways:
			fm.Inclusion = inclusionAlways
		case model.ActivationManual:
			fm.Inclusion = inclusionManual
		case model.ActivationFileMatch:
			fm.Inclusion = inclusionFileMatch
			fm.FileMatchPattern = strings.Join(a.Patterns, "|")
		case model.ActivationModel:
			fm.Inclusion = inclusionManual
			warnings = append(warnings, model.Warning{
				Kind:    model.WarnMetadataDropped,
				Message: "activation mode \"model\" has no kiro equivalent, wrote manual",
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
	w.Paragraph(pkg.Description)
	warnings = append(warnings, codec.RenderSections(&w, pkg, s.spec, nil)...)

	return codec.FinishResult(s.spec, pkg, head+"\n"+w.String(), warnings), nil
}
