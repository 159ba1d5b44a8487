package codec

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// StringList accepts both a YAML sequence and a comma-separated scalar,
// which tools files use interchangeably for fields like tools. It
// always marshals back as a sequence.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var raw string
		if err := value.Decode(&raw); err != nil {
			return err
		}
		*s = nil
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				*s = append(*s, trimmed)
			}
		}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*s = items
		return nil
	default:
		return fmt.Errorf("expected string or sequence, got yaml kind %d", value.Kind)
	}
}

// PatternValue carries a pattern field that may be written as a single
// string or as an array. The original shape survives round-trips: a
// scalar stays a scalar and a one-element array stays an array.
type PatternValue struct {
	Patterns []string
	List     bool
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *PatternValue) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var raw string
		if err := value.Decode(&raw); err != nil {
			return err
		}
		p.Patterns = []string{raw}
		p.List = false
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		p.Patterns = items
		p.List = true
		return nil
	default:
		return fmt.Errorf("expected string or sequence, got yaml kind %d", value.Kind)
	}
}

// MarshalYAML implements yaml.Marshaler.
func (p PatternValue) MarshalYAML() (any, error) {
	if !p.List && len(p.Patterns) == 1 {
		return p.Patterns[0], nil
	}
	return p.Patterns, nil
}

// IsZero reports emptiness so omitempty can skip unset values.
func (p PatternValue) IsZero() bool {
	return len(p.Patterns) == 0
}
