package codec

import (
	"strings"

	"github.com/promptpack/promptpack/internal/model"
)

// BuildSections classifies a split document into canonical sections.
// When extractDescription is set, the first intro paragraph is pulled
// out and returned separately instead of becoming section content;
// body-oriented formats store the package description there.
func BuildSections(doc Document, extractDescription bool) ([]model.Section, string) {
	var sections []model.Section
	description := ""

	intro := doc.Intro
	if extractDescription && strings.TrimSpace(intro) != "" {
		description, intro = SplitIntro(intro)
	}
	if strings.TrimSpace(intro) != "" {
		sections = append(sections, ClassifySection(BodySection{Content: intro}))
	}

	for _, sec := range doc.Sections {
		if strings.TrimSpace(sec.Content) == "" && sec.Heading == "" {
			continue
		}
		sections = append(sections, ClassifySection(sec))
	}
	return sections, description
}

// SplitIntro separates the first paragraph from the rest of the intro.
func SplitIntro(intro string) (first, rest string) {
	trimmed := strings.TrimSpace(intro)
	if trimmed == "" {
		return "", ""
	}
	if idx := strings.Index(trimmed, "\n\n"); idx != -1 {
		return strings.TrimSpace(trimmed[:idx]), strings.TrimSpace(trimmed[idx:])
	}
	return trimmed, ""
}

// Slugify lowercases a title into a file-name-safe package name.
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case 'a' <= r && r <= 'z' || '0' <= r && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
