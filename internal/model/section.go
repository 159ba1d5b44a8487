package model

import "fmt"

// SectionKind identifies one typed block of canonical content.
// The taxonomy is closed: parsers must never produce a kind outside it.
type SectionKind string

const (
	// SectionMetadata holds free-form display info (title, icon).
	SectionMetadata SectionKind = "metadata"

	// SectionInstructions holds a title plus a prose content block.
	SectionInstructions SectionKind = "instructions"

	// SectionRules holds a title plus an ordered list of short imperative strings.
	SectionRules SectionKind = "rules"

	// SectionExamples holds a title plus an ordered list of code examples.
	SectionExamples SectionKind = "examples"

	// SectionTools holds an ordered list of tool identifiers available to an agent.
	SectionTools SectionKind = "tools"

	// SectionPersona holds a role/behavioral description.
	SectionPersona SectionKind = "persona"

	// SectionCustom holds an opaque verbatim block a parser could not classify.
	// Serializers must still attempt to emit it.
	SectionCustom SectionKind = "custom"
)

// IsValid returns true if the section kind is recognized.
func (k SectionKind) IsValid() bool {
	switch k {
	case SectionMetadata, SectionInstructions, SectionRules,
		SectionExamples, SectionTools, SectionPersona, SectionCustom:
		return true
	default:
		return false
	}
}

// String returns the string representation of the section kind.
func (k SectionKind) String() string {
	return string(k)
}

// AllSectionKinds returns every kind in the taxonomy.
func AllSectionKinds() []SectionKind {
	return []SectionKind{
		SectionMetadata, SectionInstructions, SectionRules,
		SectionExamples, SectionTools, SectionPersona, SectionCustom,
	}
}

// Example is one code example inside an examples section.
type Example struct {
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
	Code        string `json:"code"`
}

// Section is one typed block of a canonical package. It is a tagged variant:
// Kind selects which payload fields are meaningful, and Validate enforces
// that no other payload is set. String fields use "" as the absence sentinel.
type Section struct {
	Kind     SectionKind `json:"kind"`
	Title    string      `json:"title,omitempty"`
	Content  string      `json:"content,omitempty"`
	Rules    []string    `json:"rules,omitempty"`
	Examples []Example   `json:"examples,omitempty"`
	Tools    []string    `json:"tools,omitempty"`
	Icon     string      `json:"icon,omitempty"`
}

// NewMetadata creates a metadata section with display title and icon.
func NewMetadata(title, icon string) Section {
	return Section{Kind: SectionMetadata, Title: title, Icon: icon}
}

// NewInstructions creates an instructions section.
func NewInstructions(title, content string) Section {
	return Section{Kind: SectionInstructions, Title: title, Content: content}
}

// NewRules creates a rules section from an ordered list of imperatives.
func NewRules(title string, rules []string) Section {
	return Section{Kind: SectionRules, Title: title, Rules: rules}
}

// NewExamples creates an examples section.
func NewExamples(title string, examples []Example) Section {
	return Section{Kind: SectionExamples, Title: title, Examples: examples}
}

// NewTools creates a tools section from an ordered list of tool identifiers.
func NewTools(tools []string) Section {
	return Section{Kind: SectionTools, Tools: tools}
}

// NewPersona creates a persona section.
func NewPersona(content string) Section {
	return Section{Kind: SectionPersona, Content: content}
}

// NewCustom creates a custom section holding a verbatim block.
func NewCustom(content string) Section {
	return Section{Kind: SectionCustom, Content: content}
}

// Validate checks that the section's payload matches its kind.
func (s Section) Validate() error {
	if !s.Kind.IsValid() {
		return fmt.Errorf("unknown section kind %q", s.Kind)
	}

	// A payload field set for the wrong kind indicates a construction bug.
	switch s.Kind {
	case SectionMetadata:
		if s.Content != "" || len(s.Rules) > 0 || len(s.Examples) > 0 || len(s.Tools) > 0 {
			return fmt.Errorf("metadata section carries non-metadata payload")
		}
	case SectionInstructions:
		if len(s.Rules) > 0 || len(s.Examples) > 0 || len(s.Tools) > 0 || s.Icon != "" {
			return fmt.Errorf("instructions section carries non-prose payload")
		}
	case SectionRules:
		if s.Content != "" || len(s.Examples) > 0 || len(s.Tools) > 0 || s.Icon != "" {
			return fmt.Errorf("rules section carries non-rule payload")
		}
		if len(s.Rules) == 0 {
			return fmt.Errorf("rules section has no rules")
		}
	case SectionExamples:
		if s.Content != "" || len(s.Rules) > 0 || len(s.Tools) > 0 || s.Icon != "" {
			return fmt.Errorf("examples section carries non-example payload")
		}
		if len(s.Examples) == 0 {
			return fmt.Errorf("examples section has no examples")
		}
	case SectionTools:
		if s.Title != "" || s.Content != "" || len(s.Rules) > 0 || len(s.Examples) > 0 || s.Icon != "" {
			return fmt.Errorf("tools section carries non-tool payload")
		}
		if len(s.Tools) == 0 {
			return fmt.Errorf("tools section has no tools")
		}
	case SectionPersona:
		if s.Title != "" || len(s.Rules) > 0 || len(s.Examples) > 0 || len(s.Tools) > 0 || s.Icon != "" {
			return fmt.Errorf("persona section carries non-persona payload")
		}
		if s.Content == "" {
			return fmt.Errorf("persona section has no content")
		}
	case SectionCustom:
		if len(s.Rules) > 0 || len(s.Examples) > 0 || len(s.Tools) > 0 || s.Icon != "" {
			return fmt.Errorf("custom section carries structured payload")
		}
		if s.Content == "" {
			return fmt.Errorf("custom section has no content")
		}
	}

	return nil
}
