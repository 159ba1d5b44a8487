// Package model provides data types for promptpack.
package model

import (
	"fmt"
	"strings"
)

// PackageType classifies what a canonical package defines.
type PackageType string

const (
	// TypeRule is a coding rule or guideline set (default).
	TypeRule PackageType = "rule"

	// TypeAgent is a subagent definition with persona and tools.
	TypeAgent PackageType = "agent"

	// TypeSkill is an Agent Skills Standard skill.
	TypeSkill PackageType = "skill"

	// TypePrompt is a reusable prompt or slash command.
	TypePrompt PackageType = "prompt"
)

// IsValid returns true if the package type is recognized.
func (t PackageType) IsValid() bool {
	switch t {
	case TypeRule, TypeAgent, TypeSkill, TypePrompt:
		return true
	default:
		return false
	}
}

// String returns the string representation of the package type.
func (t PackageType) String() string {
	return string(t)
}

// AllPackageTypes returns all supported package types.
func AllPackageTypes() []PackageType {
	return []PackageType{TypeRule, TypeAgent, TypeSkill, TypePrompt}
}

// ParsePackageType converts a string to a PackageType.
// Returns TypeRule (default) if the string is empty.
func ParsePackageType(s string) (PackageType, error) {
	if s == "" {
		return TypeRule, nil
	}

	normalized := strings.ToLower(strings.TrimSpace(s))

	t := PackageType(normalized)
	if t.IsValid() {
		return t, nil
	}

	switch normalized {
	case "rules", "guideline", "guidelines", "steering":
		return TypeRule, nil
	case "subagent", "chatmode", "chat-mode":
		return TypeAgent, nil
	case "skills":
		return TypeSkill, nil
	case "command", "slash-command":
		return TypePrompt, nil
	default:
		return "", fmt.Errorf("unknown package type %q (valid: rule, agent, skill, prompt)", s)
	}
}

// ActivationMode describes when a target tool applies the package.
type ActivationMode string

const (
	// ActivationAlways applies the package to every request.
	ActivationAlways ActivationMode = "always"

	// ActivationFileMatch applies the package when edited files match patterns.
	ActivationFileMatch ActivationMode = "filematch"

	// ActivationManual applies the package only when the user invokes it.
	ActivationManual ActivationMode = "manual"

	// ActivationModel lets the model decide when to apply the package.
	ActivationModel ActivationMode = "model"
)

// IsValid returns true if the activation mode is recognized.
func (m ActivationMode) IsValid() bool {
	switch m {
	case ActivationAlways, ActivationFileMatch, ActivationManual, ActivationModel:
		return true
	default:
		return false
	}
}

// String returns the string representation of the activation mode.
func (m ActivationMode) String() string {
	return string(m)
}

// ParseActivationMode converts a string to an ActivationMode, accepting the
// per-tool spellings (Kiro's fileMatch, Cursor's alwaysApply vocabulary).
func ParseActivationMode(s string) (ActivationMode, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return "", fmt.Errorf("activation mode cannot be empty")
	}

	m := ActivationMode(normalized)
	if m.IsValid() {
		return m, nil
	}

	switch normalized {
	case "filematch", "file-match", "glob", "globs":
		return ActivationFileMatch, nil
	case "alwaysapply", "always-apply":
		return ActivationAlways, nil
	case "agent", "auto", "intelligent":
		return ActivationModel, nil
	default:
		return "", fmt.Errorf("unknown activation mode %q (valid: always, filematch, manual, model)", s)
	}
}

// Activation records how the target tool decides the package applies.
type Activation struct {
	Mode ActivationMode `json:"mode"`

	// Patterns are file globs, meaningful when Mode is filematch.
	Patterns []string `json:"patterns,omitempty"`

	// PatternList records that the source wrote the patterns as a YAML
	// sequence rather than a scalar, so serializers reproduce the shape.
	PatternList bool `json:"pattern_list,omitempty"`
}

// CanonicalPackage is the tool-independent normalized representation of a
// prompt/rule/agent package. Constructed fresh per conversion and consumed
// once; no component holds long-lived instances.
type CanonicalPackage struct {
	Name        string       `json:"name"`
	Version     string       `json:"version,omitempty"`
	Description string       `json:"description,omitempty"`
	Author      string       `json:"author,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	Type        PackageType  `json:"type"`
	Subtype     string       `json:"subtype,omitempty"`
	Model       string       `json:"model,omitempty"`
	Activation  *Activation  `json:"activation,omitempty"`

	// Sections hold the package content in order. Order is semantically
	// significant and survives every transformation.
	Sections []Section `json:"sections"`
}

// Validate checks structural invariants: a non-empty name, a recognized
// type, and well-formed sections.
func (p *CanonicalPackage) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("package name cannot be empty")
	}
	if p.Type != "" && !p.Type.IsValid() {
		return fmt.Errorf("unknown package type %q", p.Type)
	}
	if p.Activation != nil && !p.Activation.Mode.IsValid() {
		return fmt.Errorf("unknown activation mode %q", p.Activation.Mode)
	}
	for i, s := range p.Sections {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("section %d: %w", i, err)
		}
	}
	return nil
}

// FirstSection returns the first section of the given kind.
func (p *CanonicalPackage) FirstSection(kind SectionKind) (Section, bool) {
	for _, s := range p.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

// HasSection returns true if any section of the given kind is present.
func (p *CanonicalPackage) HasSection(kind SectionKind) bool {
	_, ok := p.FirstSection(kind)
	return ok
}

// Title returns the display title from the metadata section, falling back
// to the package name.
func (p *CanonicalPackage) Title() string {
	if meta, ok := p.FirstSection(SectionMetadata); ok && meta.Title != "" {
		return meta.Title
	}
	return p.Name
}

// SectionKinds returns the kinds present, in section order with duplicates.
func (p *CanonicalPackage) SectionKinds() []SectionKind {
	kinds := make([]SectionKind, len(p.Sections))
	for i, s := range p.Sections {
		kinds[i] = s.Kind
	}
	return kinds
}
