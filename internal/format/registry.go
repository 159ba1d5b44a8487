package format

import (
	"sort"

	"github.com/promptpack/promptpack/internal/model"
)

const markdownContentType = "text/markdown"

// specs holds the capability data for every supported format. Parsers,
// serializers and the detector consult this table instead of branching
// on format identity.
var specs = map[model.FormatID]Spec{
	model.Cursor: {
		ID:           model.Cursor,
		Name:         "Cursor",
		PathPattern:  ".cursor/rules/*.mdc",
		PathTemplate: ".cursor/rules/{name}.mdc",
		Frontmatter: Frontmatter{
			Optional: []string{"name", "icon"},
		},
		Capabilities: fullMatrix().withOverrides(Matrix{
			model.SectionTools:   unsupported(),
			model.SectionPersona: degraded(TransformPersonaProse),
		}),
		ContentType: markdownContentType,
	},
	model.ClaudeAgent: {
		ID:           model.ClaudeAgent,
		Name:         "Claude Code agent",
		PathPattern:  ".claude/agents/*.md",
		PathTemplate: ".claude/agents/{name}.md",
		Frontmatter: Frontmatter{
			Optional: []string{"name", "description", "tools", "model"},
		},
		Capabilities: fullMatrix(),
		ContentType:  markdownContentType,
	},
	model.ClaudeSkill: {
		ID:           model.ClaudeSkill,
		Name:         "Claude Code skill",
		PathPattern:  ".claude/skills/*/SKILL.md",
		PathTemplate: ".claude/skills/{name}/SKILL.md",
		Frontmatter: Frontmatter{
			Optional: []string{"name", "description", "version", "author", "tags", "tools"},
		},
		Capabilities: fullMatrix(),
		ContentType:  markdownContentType,
	},
	model.Windsurf: {
		ID:           model.Windsurf,
		Name:         "Windsurf",
		PathPattern:  ".windsurf/rules",
		PathTemplate: ".windsurf/rules",
		Capabilities: fullMatrix().withOverrides(Matrix{
			model.SectionTools:   unsupported(),
			model.SectionPersona: unsupported(),
		}),
		Limit:       12000,
		ContentType: markdownContentType,
	},
	model.Kiro: {
		ID:           model.Kiro,
		Name:         "Kiro",
		PathPattern:  ".kiro/steering/*.md",
		PathTemplate: ".kiro/steering/{name}.md",
		Frontmatter: Frontmatter{
			Required: []string{"inclusion"},
			Optional: []string{"fileMatchPattern"},
		},
		Capabilities: fullMatrix().withOverrides(Matrix{
			model.SectionTools:   unsupported(),
			model.SectionPersona: degraded(TransformPersonaProse),
		}),
		ContentType: markdownContentType,
	},
	model.Copilot: {
		ID:           model.Copilot,
		Name:         "Copilot repository instructions",
		PathPattern:  ".github/copilot-instructions.md",
		PathTemplate: ".github/copilot-instructions.md",
		Capabilities: fullMatrix().withOverrides(Matrix{
			model.SectionTools:   unsupported(),
			model.SectionPersona: degraded(TransformPersonaProse),
		}),
		ContentType: markdownContentType,
	},
	model.CopilotPath: {
		ID:           model.CopilotPath,
		Name:         "Copilot path instructions",
		PathPattern:  ".github/instructions/*.instructions.md",
		PathTemplate: ".github/instructions/{name}.instructions.md",
		Frontmatter: Frontmatter{
			Required: []string{"applyTo"},
			Optional: []string{"description"},
		},
		Capabilities: fullMatrix().withOverrides(Matrix{
			model.SectionTools:   unsupported(),
			model.SectionPersona: degraded(TransformPersonaProse),
		}),
		ContentType: markdownContentType,
	},
	model.CopilotChatmode: {
		ID:           model.CopilotChatmode,
		Name:         "Copilot chat mode",
		PathPattern:  ".github/chatmodes/*.chatmode.md",
		PathTemplate: ".github/chatmodes/{name}.chatmode.md",
		Frontmatter: Frontmatter{
			Optional: []string{"description", "tools", "model"},
		},
		Capabilities: fullMatrix(),
		ContentType:  markdownContentType,
	},
	model.Ruler: {
		ID:           model.Ruler,
		Name:         "Ruler",
		PathPattern:  ".ruler/rules",
		PathTemplate: ".ruler/rules",
		Capabilities: fullMatrix().withOverrides(Matrix{
			model.SectionTools:   unsupported(),
			model.SectionPersona: unsupported(),
		}),
		Limit:       12000,
		ContentType: markdownContentType,
	},
	model.AgentsMD: {
		ID:           model.AgentsMD,
		Name:         "AGENTS.md",
		PathPattern:  "AGENTS.md",
		PathTemplate: "AGENTS.md",
		Capabilities: fullMatrix().withOverrides(Matrix{
			model.SectionTools: degraded(TransformToolsList),
		}),
		ContentType: markdownContentType,
	},
}

// Lookup returns the spec for the given format.
func Lookup(id model.FormatID) (Spec, bool) {
	s, ok := specs[id]
	return s, ok
}

// MustLookup returns the spec for a format known to be registered.
// It panics on unknown formats and is intended for static format IDs.
func MustLookup(id model.FormatID) Spec {
	s, ok := specs[id]
	if !ok {
		panic("format: no spec registered for " + string(id))
	}
	return s
}

// All returns every registered spec ordered by format ID.
func All() []Spec {
	out := make([]Spec, 0, len(specs))
	for _, s := range specs {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// MatchingPath returns the specs whose path convention matches p.
func MatchingPath(p string) []Spec {
	var out []Spec
	for _, s := range All() {
		if s.MatchPath(p) {
			out = append(out, s)
		}
	}
	return out
}
