package model

import (
	"fmt"
	"strings"
)

// WarningKind classifies a conversion warning for scoring purposes.
type WarningKind string

const (
	// WarnSectionDegraded marks a section rendered through a lossy transform.
	WarnSectionDegraded WarningKind = "section-degraded"

	// WarnSectionDropped marks a section the target format cannot represent.
	WarnSectionDropped WarningKind = "section-dropped"

	// WarnMetadataDropped marks canonical metadata with no target slot.
	WarnMetadataDropped WarningKind = "metadata-dropped"

	// WarnValidation marks a recoverable structural oddity noticed en route.
	WarnValidation WarningKind = "validation"

	// WarnSizeOverflow marks output exceeding the format's hard limit.
	WarnSizeOverflow WarningKind = "size-overflow"
)

// IsValid returns true if the warning kind is recognized.
func (k WarningKind) IsValid() bool {
	switch k {
	case WarnSectionDegraded, WarnSectionDropped, WarnMetadataDropped,
		WarnValidation, WarnSizeOverflow:
		return true
	default:
		return false
	}
}

// String returns the string representation of the warning kind.
func (k WarningKind) String() string {
	return string(k)
}

// Warning is one conversion caveat: a scoring kind plus a human message.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Message string      `json:"message"`
}

// String returns the warning message.
func (w Warning) String() string {
	return w.Message
}

// ConversionResult is the outcome of serializing a canonical package into a
// target format. Warnings are ordered as they were raised.
type ConversionResult struct {
	Content      string    `json:"content"`
	Path         string    `json:"path"`
	ContentType  string    `json:"content_type"`
	Warnings     []Warning `json:"warnings,omitempty"`
	Score        int       `json:"score"`
	Lossy        bool      `json:"lossy"`
	SourceFormat FormatID  `json:"source_format,omitempty"`
	TargetFormat FormatID  `json:"target_format"`
}

// WarningMessages returns the warning messages in order.
func (r *ConversionResult) WarningMessages() []string {
	msgs := make([]string, len(r.Warnings))
	for i, w := range r.Warnings {
		msgs[i] = w.Message
	}
	return msgs
}

// Clean returns true if the conversion carried no caveats.
func (r *ConversionResult) Clean() bool {
	return !r.Lossy && len(r.Warnings) == 0
}

// Summary returns a human-readable summary of the conversion outcome.
func (r *ConversionResult) Summary() string {
	var sb strings.Builder

	if r.SourceFormat != "" {
		sb.WriteString(fmt.Sprintf("Converted %s -> %s", r.SourceFormat, r.TargetFormat))
	} else {
		sb.WriteString(fmt.Sprintf("Converted to %s", r.TargetFormat))
	}
	sb.WriteString(fmt.Sprintf(" (score %d/100)\n", r.Score))

	if len(r.Warnings) == 0 {
		sb.WriteString("  No caveats\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("  Converted with %d caveat(s):\n", len(r.Warnings)))
	for _, w := range r.Warnings {
		sb.WriteString(fmt.Sprintf("  - [%s] %s\n", w.Kind, w.Message))
	}
	return sb.String()
}
