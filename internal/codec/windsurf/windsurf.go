// Package windsurf implements the codec for the Windsurf rules file.
// Windsurf carries no frontmatter and enforces a hard character limit;
// everything lives in the markdown body.
package windsurf

import (
	"github.com/promptpack/promptpack/internal/codec"
	"github.com/promptpack/promptpack/internal/format"
	"github.com/promptpack/promptpack/internal/model"
)

// Parser reads .windsurf/rules files.
type Parser struct{}

// NewParser creates a Windsurf parser.
func NewParser() *Parser {
	return &Parser{}
}

// Format returns the format this parser handles.
func (p *Parser) Format() model.FormatID {
	return model.Windsurf
}

// Parse converts a rules file into a canonical package.
func (p *Parser) Parse(raw []byte) (*model.CanonicalPackage, error) {
	return codec.ParseBody(model.Windsurf, string(raw))
}

// Serializer renders canonical packages as Windsurf rules files.
type Serializer struct {
	spec format.Spec
}

// NewSerializer creates a Windsurf serializer.
func NewSerializer() *Serializer {
	return &Serializer{spec: format.MustLookup(model.Windsurf)}
}

// Format returns the format this serializer emits.
func (s *Serializer) Format() model.FormatID {
	return model.Windsurf
}

// Serialize renders the package body, dropping sections Windsurf has
// no representation for and reporting the hard size limit.
func (s *Serializer) Serialize(pkg *model.CanonicalPackage) (*model.ConversionResult, error) {
	return codec.SerializeBody(s.spec, pkg), nil
}
