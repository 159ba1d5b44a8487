// Package registry wires every format to its parser and serializer.
// Adding a format means registering one codec pair here plus its spec;
// nothing else in the engine changes.
package registry

import (
	"fmt"

	"github.com/promptpack/promptpack/internal/codec"
	"github.com/promptpack/promptpack/internal/codec/agentsmd"
	"github.com/promptpack/promptpack/internal/codec/claude"
	"github.com/promptpack/promptpack/internal/codec/copilot"
	"github.com/promptpack/promptpack/internal/codec/cursor"
	"github.com/promptpack/promptpack/internal/codec/kiro"
	"github.com/promptpack/promptpack/internal/codec/ruler"
	"github.com/promptpack/promptpack/internal/codec/windsurf"
	"github.com/promptpack/promptpack/internal/model"
)

// ParserFor returns the parser for the given format.
func ParserFor(id model.FormatID) (codec.Parser, error) {
	switch id {
	case model.Cursor:
		return cursor.NewParser(), nil
	case model.ClaudeAgent:
		return claude.NewAgentParser(), nil
	case model.ClaudeSkill:
		return claude.NewSkillParser(), nil
	case model.Windsurf:
		return windsurf.NewParser(), nil
	case model.Kiro:
		return kiro.NewParser(), nil
	case model.Copilot:
		return copilot.NewRepoParser(), nil
	case model.CopilotPath:
		return copilot.NewPathParser(), nil
	case model.CopilotChatmode:
		return copilot.NewChatmodeParser(), nil
	case model.Ruler:
		return ruler.NewParser(), nil
	case model.AgentsMD:
		return agentsmd.NewParser(), nil
	default:
		return nil, fmt.Errorf("no parser registered for format %q", id)
	}
}

// SerializerFor returns the serializer for the given format.
func SerializerFor(id model.FormatID) (codec.Serializer, error) {
	switch id {
	case model.Cursor:
		return cursor.NewSerializer(), nil
	case model.ClaudeAgent:
		return claude.NewAgentSerializer(), nil
	case model.ClaudeSkill:
		return claude.NewSkillSerializer(), nil
	case model.Windsurf:
		return windsurf.NewSerializer(), nil
	case model.Kiro:
		return kiro.NewSerializer(), nil
	case model.Copilot:
		return copilot.NewRepoSerializer(), nil
	case model.CopilotPath:
		return copilot.NewPathSerializer(), nil
	case model.CopilotChatmode:
		return copilot.NewChatmodeSerializer(), nil
	case model.Ruler:
		return ruler.NewSerializer(), nil
	case model.AgentsMD:
		return agentsmd.NewSerializer(), nil
	default:
		return nil, fmt.Errorf("no serializer registered for format %q", id)
	}
}

// Parse runs the raw content through the parser for the format.
func Parse(id model.FormatID, raw []byte) (*model.CanonicalPackage, error) {
	p, err := ParserFor(id)
	if err != nil {
		return nil, err
	}
	return p.Parse(raw)
}

// Serialize renders the package into the target format.
func Serialize(id model.FormatID, pkg *model.CanonicalPackage) (*model.ConversionResult, error) {
	s, err := SerializerFor(id)
	if err != nil {
		return nil, err
	}
	return s.Serialize(pkg)
}
