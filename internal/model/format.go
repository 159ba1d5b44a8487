package model

import (
	"fmt"
	"strings"
)

// FormatID identifies a supported AI coding tool format dialect.
type FormatID string

const (
	// Cursor is the Cursor rules format (.cursor/rules/*.mdc).
	Cursor FormatID = "cursor"

	// ClaudeAgent is the Claude Code subagent format (.claude/agents/*.md).
	ClaudeAgent FormatID = "claude-agent"

	// ClaudeSkill is the Agent Skills Standard format (.claude/skills/<name>/SKILL.md).
	ClaudeSkill FormatID = "claude-skill"

	// Windsurf is the Windsurf rules format (.windsurf/rules, no frontmatter).
	Windsurf FormatID = "windsurf"

	// Kiro is the Kiro steering format (.kiro/steering/*.md).
	Kiro FormatID = "kiro"

	// Copilot is the repo-wide Copilot instructions format (.github/copilot-instructions.md).
	Copilot FormatID = "copilot"

	// CopilotPath is the path-specific Copilot format (.github/instructions/*.instructions.md).
	CopilotPath FormatID = "copilot-path"

	// CopilotChatmode is the Copilot chat mode format (.github/chatmodes/*.chatmode.md).
	CopilotChatmode FormatID = "copilot-chatmode"

	// Ruler is the Ruler rules format (.ruler/rules, metadata in HTML comments).
	Ruler FormatID = "ruler"

	// AgentsMD is the AGENTS.md convention (hierarchical, nearest file wins).
	AgentsMD FormatID = "agents-md"
)

// IsValid returns true if the format is recognized.
func (f FormatID) IsValid() bool {
	switch f {
	case Cursor, ClaudeAgent, ClaudeSkill, Windsurf, Kiro,
		Copilot, CopilotPath, CopilotChatmode, Ruler, AgentsMD:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f FormatID) String() string {
	return string(f)
}

// AllFormats returns all supported formats.
func AllFormats() []FormatID {
	return []FormatID{
		Cursor, ClaudeAgent, ClaudeSkill, Windsurf, Kiro,
		Copilot, CopilotPath, CopilotChatmode, Ruler, AgentsMD,
	}
}

// ParseFormatID converts a string to a FormatID.
// Returns an error if the format is not recognized.
func ParseFormatID(s string) (FormatID, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return "", fmt.Errorf("format cannot be empty")
	}

	// Try exact match first
	f := FormatID(normalized)
	if f.IsValid() {
		return f, nil
	}

	// Try common aliases
	switch normalized {
	case "claude", "claude-code", "subagent", "agent":
		return ClaudeAgent, nil
	case "skill", "skills", "skill.md":
		return ClaudeSkill, nil
	case "copilot-instructions", "github-copilot", "copilot-repo":
		return Copilot, nil
	case "copilot-path-specific", "instructions":
		return CopilotPath, nil
	case "chatmode", "chat-mode":
		return CopilotChatmode, nil
	case "agents.md", "agentsmd", "agents", "codex":
		return AgentsMD, nil
	case "mdc", "cursor-rules":
		return Cursor, nil
	default:
		return "", fmt.Errorf("unknown format %q (valid: %s)", s, joinFormats(AllFormats()))
	}
}

// joinFormats renders a format list for error messages.
func joinFormats(formats []FormatID) string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
