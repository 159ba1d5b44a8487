// Package codec provides the shared machinery for format codecs:
// frontmatter splitting, markdown segmentation, section classification,
// and rendering helpers. Each format lives in its own subpackage and
// builds its parser and serializer on these primitives.
package codec

import "github.com/promptpack/promptpack/internal/model"

// Parser converts raw source content into a canonical package.
type Parser interface {
	// Parse parses raw file content. The returned package carries the
	// source sections in document order.
	Parse(raw []byte) (*model.CanonicalPackage, error)

	// Format returns the format this parser handles.
	Format() model.FormatID
}

// Serializer renders a canonical package into a target format.
type Serializer interface {
	// Serialize renders the package and reports any fidelity loss
	// through the result's warnings and score.
	Serialize(pkg *model.CanonicalPackage) (*model.ConversionResult, error)

	// Format returns the format this serializer emits.
	Format() model.FormatID
}
