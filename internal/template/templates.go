package template

// ruleTemplate scaffolds a rules package: a titled list of conventions
// a tool applies to every change.
const ruleTemplate = `# {{.Title}}

{{.Description}}

## Rules

{{range .Rules}}- {{.}}
{{end}}`

// agentTemplate scaffolds a subagent package with a persona and the
// tools it may use.
const agentTemplate = `# {{.Title}}

{{.Description}}

## Role

{{.Persona}}

## Tools

{{range .Tools}}- {{.}}
{{end}}`

// guideTemplate scaffolds a free-form instructions document with an
// example block.
const guideTemplate = `# {{.Title}}

{{.Description}}

## Workflow

Describe the steps this guide covers. Keep instructions imperative
and concrete, one step per paragraph.

## Examples

A short example helps the tool apply the guide:

` + "```" + `
replace this block with a realistic snippet
` + "```" + `
`
