// Package agentsmd implements the codec for AGENTS.md files.
package agentsmd

import (
	"github.com/promptpack/promptpack/internal/codec"
	"github.com/promptpack/promptpack/internal/format"
	"github.com/promptpack/promptpack/internal/model"
)

// Parser reads AGENTS.md files.
type Parser struct{}

// NewParser creates an AGENTS.md parser.
func NewParser() *Parser {
	return &Parser{}
}

// Format returns the format this parser handles.
func (p *Parser) Format() model.FormatID {
	return model.AgentsMD
}

// Parse converts an AGENTS.md file into a canonical package. A tools
// heading over a bullet list comes back as a tools section, which is
// as much structure as the format can express.
func (p *Parser) Parse(raw []byte) (*model.CanonicalPackage, error) {
	return codec.ParseBody(model.AgentsMD, string(raw))
}

// Serializer renders canonical packages as AGENTS.md files.
type Serializer struct {
	spec format.Spec
}

// NewSerializer creates an AGENTS.md serializer.
func NewSerializer() *Serializer {
	return &Serializer{spec: format.MustLookup(model.AgentsMD)}
}

// Format returns the format this serializer emits.
func (s *Serializer) Format() model.FormatID {
	return model.AgentsMD
}

// Serialize renders the package body. Tool identifiers survive only as
// a plain markdown list, so tools sections degrade rather than drop.
func (s *Serializer) Serialize(pkg *model.CanonicalPackage) (*model.ConversionResult, error) {
	return codec.SerializeBody(s.spec, pkg), nil
}
