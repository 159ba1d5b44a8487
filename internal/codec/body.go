package codec

import (
	"github.com/promptpack/promptpack/internal/format"
	"github.com/promptpack/promptpack/internal/model"
)

// ParseBody parses a format that stores everything in the markdown
// body: optional title heading, leading description paragraph, then
// sections. Windsurf, Copilot repository instructions and AGENTS.md
// all follow this shape.
func ParseBody(id model.FormatID, body string) (*model.CanonicalPackage, error) {
	doc := SplitBody(body)
	sections, description := BuildSections(doc, true)
	if doc.Title != "" {
		sections = append([]model.Section{model.NewMetadata(doc.Title, "")}, sections...)
	}

	pkg := &model.CanonicalPackage{
		Name:        Slugify(doc.Title),
		Description: description,
		Type:        model.TypeRule,
		Sections:    sections,
	}
	if err := pkg.Validate(); err != nil {
		return nil, &ParseError{Format: id, Reason: "invalid package", Err: err}
	}
	return pkg, nil
}

// SerializeBody renders a body-only document. The title heading comes
// from the metadata section alone; a package without one stays
// headingless so a parse of the output reconstructs the same package.
func SerializeBody(spec format.Spec, pkg *model.CanonicalPackage) *model.ConversionResult {
	warnings := MetadataWarnings(spec, pkg)

	var w MarkdownWriter
	if title := MetadataTitle(pkg); title != "" {
		w.Heading(1, title)
	}
	w.Paragraph(pkg.Description)
	warnings = append(warnings, RenderSections(&w, pkg, spec, nil)...)

	return FinishResult(spec, pkg, w.String(), warnings)
}

// MetadataTitle returns the title of the package's metadata section.
func MetadataTitle(pkg *model.CanonicalPackage) string {
	for _, sec := range pkg.Sections {
		if sec.Kind == model.SectionMetadata {
			return sec.Title
		}
	}
	return ""
}
