// Package template generates starter package files from built-in
// scaffolding templates.
package template

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/promptpack/promptpack/internal/codec/registry"
	"github.com/promptpack/promptpack/internal/model"
)

// Kind selects a built-in scaffolding template.
type Kind string

const (
	// KindRule scaffolds a rules package: conventions a tool applies
	// to every change in the repository.
	KindRule Kind = "rule"
	// KindAgent scaffolds a subagent package with persona and tools.
	KindAgent Kind = "agent"
	// KindGuide scaffolds a free-form instructions document.
	KindGuide Kind = "guide"
)

// Data holds the values substituted into a scaffolding template.
// Empty fields are filled with starter defaults derived from Name.
type Data struct {
	Name        string
	Title       string
	Description string
	Persona     string
	Tools       []string
	Rules       []string
}

var titleCaser = cases.Title(language.English)

// Generator renders starter packages from built-in or custom templates.
type Generator struct {
	templates map[Kind]*template.Template
}

// New creates a generator with the built-in templates loaded.
func New() (*Generator, error) {
	g := &Generator{templates: make(map[Kind]*template.Template)}

	builtin := map[Kind]string{
		KindRule:  ruleTemplate,
		KindAgent: agentTemplate,
		KindGuide: guideTemplate,
	}
	for kind, text := range builtin {
		tmpl, err := template.New(string(kind)).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", kind, err)
		}
		g.templates[kind] = tmpl
	}

	return g, nil
}

// LoadCustom loads a template from a file and registers it under the
// given kind name.
func (g *Generator) LoadCustom(name, path string) error {
	// #nosec G304 - path is provided by the user on the command line
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read template file: %w", err)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	g.templates[Kind(name)] = tmpl
	return nil
}

// Generate renders the template for a kind as plain markdown.
func (g *Generator) Generate(kind Kind, data Data) (string, error) {
	tmpl, ok := g.templates[kind]
	if !ok {
		return "", fmt.Errorf("template %s not found", kind)
	}

	fillDefaults(&data)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// Package renders a template and parses the result into a canonical
// package, ready to serialize into any target format.
func (g *Generator) Package(kind Kind, data Data) (*model.CanonicalPackage, error) {
	content, err := g.Generate(kind, data)
	if err != nil {
		return nil, err
	}

	pkg, err := registry.Parse(model.AgentsMD, []byte(content))
	if err != nil {
		return nil, fmt.Errorf("generated content does not parse: %w", err)
	}
	if kind == KindAgent {
		pkg.Type = model.TypeAgent
	}
	return pkg, nil
}

// Kinds returns the names of all registered templates, sorted.
func (g *Generator) Kinds() []string {
	kinds := make([]string, 0, len(g.templates))
	for kind := range g.templates {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	return kinds
}

// ParseKind parses a template kind name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rule", "rules":
		return KindRule, nil
	case "agent", "subagent":
		return KindAgent, nil
	case "guide", "doc", "instructions":
		return KindGuide, nil
	default:
		return "", errors.New("unknown template kind")
	}
}

func fillDefaults(data *Data) {
	if data.Title == "" {
		words := strings.NewReplacer("-", " ", "_", " ").Replace(data.Name)
		data.Title = titleCaser.String(words)
	}
	if data.Description == "" {
		data.Description = data.Title + " guidance for this repository."
	}
	if data.Persona == "" {
		data.Persona = "You are a focused assistant for this repository. Stay within the scope described below."
	}
	if len(data.Tools) == 0 {
		data.Tools = []string{"read_file", "grep", "terminal"}
	}
	if len(data.Rules) == 0 {
		data.Rules = []string{
			"Replace this with a concrete convention.",
			"Keep each rule a single imperative sentence.",
		}
	}
}
