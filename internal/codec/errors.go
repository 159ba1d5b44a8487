package codec

import (
	"fmt"

	"github.com/promptpack/promptpack/internal/model"
)

// ParseError describes a failure to parse source content. Field and
// Line are populated when the failure can be pinned to a frontmatter
// field or a position in the source.
type ParseError struct {
	Format model.FormatID
	Field  string
	Line   int
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse %s", e.Format)
	if e.Line > 0 {
		msg += fmt.Sprintf(": line %d", e.Line)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(": field %q", e.Field)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports a required frontmatter field that is absent.
// Required fields are never default-filled.
func MissingFieldError(format model.FormatID, field string) *ParseError {
	return &ParseError{Format: format, Field: field, Reason: "required field missing"}
}

// MalformedFieldError reports a frontmatter field with an unusable value.
func MalformedFieldError(format model.FormatID, field, reason string) *ParseError {
	return &ParseError{Format: format, Field: field, Reason: reason}
}
