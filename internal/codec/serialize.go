package codec

import (
	"fmt"
	"unicode/utf8"

	"github.com/promptpack/promptpack/internal/format"
	"github.com/promptpack/promptpack/internal/model"
	"github.com/promptpack/promptpack/internal/score"
)

// RenderSections writes the package's non-metadata sections honoring
// the target capability matrix. Kinds in skip are handled elsewhere by
// the codec, typically as frontmatter, and render nothing here.
// Degraded and dropped sections produce warnings in section order.
func RenderSections(w *MarkdownWriter, pkg *model.CanonicalPackage, spec format.Spec, skip map[model.SectionKind]bool) []model.Warning {
	var warnings []model.Warning
	for _, sec := range pkg.Sections {
		if sec.Kind == model.SectionMetadata || skip[sec.Kind] {
			continue
		}
		c := spec.Capability(sec.Kind)
		switch c.Level {
		case format.Full:
			RenderSection(w, sec)
		case format.Degraded:
			renderDegraded(w, sec, c.Transform)
			warnings = append(warnings, model.Warning{
				Kind:    model.WarnSectionDegraded,
				Message: degradedMessage(sec.Kind, c.Transform),
			})
		case format.Unsupported:
			warnings = append(warnings, model.Warning{
				Kind:    model.WarnSectionDropped,
				Message: fmt.Sprintf("%s section dropped: %s does not support it", sec.Kind, spec.ID),
			})
		}
	}
	return warnings
}

// renderDegraded applies the transform named by the capability entry.
func renderDegraded(w *MarkdownWriter, sec model.Section, t format.Transform) {
	switch t {
	case format.TransformPersonaProse:
		w.Paragraph(sec.Content)
	case format.TransformToolsList:
		w.Heading(2, DefaultTitle(model.SectionTools))
		w.List(sec.Tools)
	default:
		RenderSection(w, sec)
	}
}

func degradedMessage(kind model.SectionKind, t format.Transform) string {
	switch t {
	case format.TransformPersonaProse:
		return "persona section flattened to prose"
	case format.TransformToolsList:
		return "tools section rendered as a plain list"
	default:
		return fmt.Sprintf("%s section degraded", kind)
	}
}

// MetadataWarnings reports canonical metadata that has no slot in the
// target format. Only set fields warn; nothing is ever invented as a
// nonstandard frontmatter key.
func MetadataWarnings(spec format.Spec, pkg *model.CanonicalPackage) []model.Warning {
	var warnings []model.Warning
	drop := func(field string) {
		warnings = append(warnings, model.Warning{
			Kind:    model.WarnMetadataDropped,
			Message: fmt.Sprintf("metadata field %q dropped: no %s equivalent", field, spec.ID),
		})
	}

	if pkg.Version != "" && !spec.Frontmatter.Declares("version") {
		drop("version")
	}
	if pkg.Author != "" && !spec.Frontmatter.Declares("author") {
		drop("author")
	}
	if len(pkg.Tags) > 0 && !spec.Frontmatter.Declares("tags") {
		drop("tags")
	}
	if pkg.Model != "" && !spec.Frontmatter.Declares("model") {
		drop("model")
	}
	if pkg.Activation != nil && !supportsActivation(spec) {
		drop("activation")
	}
	for _, sec := range pkg.Sections {
		if sec.Kind == model.SectionMetadata && sec.Icon != "" && !spec.Frontmatter.Declares("icon") {
			drop("icon")
		}
	}
	return warnings
}

func supportsActivation(spec format.Spec) bool {
	return spec.Frontmatter.Declares("applyTo") || spec.Frontmatter.Declares("inclusion")
}

// FinishResult assembles the conversion result for rendered content,
// applying the hard character limit and scoring. Oversized content is
// never truncated; the overflow is reported and priced instead.
func FinishResult(spec format.Spec, pkg *model.CanonicalPackage, content string, warnings []model.Warning) *model.ConversionResult {
	if spec.Limit > 0 {
		if n := utf8.RuneCountInString(content); n > spec.Limit {
			warnings = append(warnings, model.Warning{
				Kind:    model.WarnSizeOverflow,
				Message: fmt.Sprintf("content is %d characters, over the %s limit of %d", n, spec.ID, spec.Limit),
			})
		}
	}

	s, lossy := score.Score(warnings)
	return &model.ConversionResult{
		Content:      content,
		Path:         spec.RenderPath(pkg.Name),
		ContentType:  spec.ContentType,
		Warnings:     warnings,
		Score:        s,
		Lossy:        lossy,
		TargetFormat: spec.ID,
	}
}
