package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
)

func onboardCommand() *cli.Command {
	return &cli.Command{
		Name:    "onboard",
		Aliases: []string{"llm"},
		Usage:   "Print LLM-friendly usage guidance for promptpack",
		Action: func(_ context.Context, _ *cli.Command) error {
			fmt.Print(onboardGuide())
			return nil
		},
	}
}

func onboardGuide() string {
	return strings.TrimSpace(`
# promptpack LLM Onboarding

## Purpose
- Convert prompt packages (rules, agents, guides) between AI coding tool formats.
- One canonical model in the middle: every conversion is parse -> serialize.

## Key concepts
- Format: cursor, claude-agent, claude-skill, windsurf, kiro, copilot, copilot-path, copilot-chatmode, ruler, agents-md.
- Package: one markdown file, optional frontmatter, classified sections (instructions, rules, examples, tools, persona).
- Fidelity: each format supports a section kind fully, degraded, or not at all; every conversion reports a 0-100 score with caveats.
- Install scope: repo (repository root) or user (home directory).

## Quick start
1. promptpack formats
2. promptpack detect .cursor/rules/review.mdc
3. promptpack convert --to claude-agent .cursor/rules/review.mdc
4. promptpack install --all team-rules.md

## Common workflows
- Convert: promptpack convert --to windsurf --output .windsurf/rules/review.md review.md
- Install: promptpack install --to claude-agent --to agents-md team-rules.md
- Scaffold: promptpack new code-review --kind rule
- Score one target: promptpack score --to windsurf AGENTS.md
- Score all targets: promptpack score AGENTS.md
- Inspect formats: promptpack formats --json
- Show config: promptpack config

## Tips for safe usage
- Use --dry-run before install to preview destinations.
- Use --from <format> when detection reports an ambiguous format.
- Converted content goes to stdout, the summary to stderr; redirect freely.
- Install scans content for credential-shaped strings; --force bypasses the block.
- Every command has help: promptpack <command> --help

## Conversion caveats
- windsurf and ruler carry no tools or persona; those sections are dropped.
- cursor, kiro and copilot instruction formats fold persona into prose instead of dropping it.
- windsurf and ruler truncate content above 12000 characters.
`) + "\n"
}
