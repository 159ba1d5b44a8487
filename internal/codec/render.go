package codec

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/promptpack/promptpack/internal/model"
)

var titleCaser = cases.Title(language.English)

// DefaultTitle returns the display heading used for a section kind
// when the section carries no title of its own.
func DefaultTitle(kind model.SectionKind) string {
	return titleCaser.String(string(kind))
}

// MarkdownWriter accumulates markdown blocks separated by blank lines.
type MarkdownWriter struct {
	b strings.Builder
}

// Heading writes an ATX heading block.
func (w *MarkdownWriter) Heading(level int, text string) {
	w.separate()
	w.b.WriteString(strings.Repeat("#", level))
	w.b.WriteString(" ")
	w.b.WriteString(text)
	w.b.WriteString("\n")
}

// Paragraph writes a block of prose. Empty text writes nothing.
func (w *MarkdownWriter) Paragraph(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	w.separate()
	w.b.WriteString(text)
	w.b.WriteString("\n")
}

// List writes a bullet list block.
func (w *MarkdownWriter) List(items []string) {
	if len(items) == 0 {
		return
	}
	w.separate()
	for _, item := range items {
		w.b.WriteString("- ")
		w.b.WriteString(item)
		w.b.WriteString("\n")
	}
}

// Fence writes a fenced code block with an optional language. The
// fence grows past any backtick run inside the code so the block
// cannot close early.
func (w *MarkdownWriter) Fence(language, code string) {
	marker := "```"
	for strings.Contains(code, marker) {
		marker += "`"
	}
	w.separate()
	w.b.WriteString(marker)
	w.b.WriteString(language)
	w.b.WriteString("\n")
	w.b.WriteString(code)
	if !strings.HasSuffix(code, "\n") {
		w.b.WriteString("\n")
	}
	w.b.WriteString(marker)
	w.b.WriteString("\n")
}

// Raw writes preformatted markdown verbatim as its own block.
func (w *MarkdownWriter) Raw(text string) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return
	}
	w.separate()
	w.b.WriteString(text)
	w.b.WriteString("\n")
}

// separate inserts the blank line between blocks.
func (w *MarkdownWriter) separate() {
	if w.b.Len() > 0 {
		w.b.WriteString("\n")
	}
}

// String returns the accumulated markdown with a single trailing newline.
func (w *MarkdownWriter) String() string {
	return w.b.String()
}

// Len returns the current content length in bytes.
func (w *MarkdownWriter) Len() int {
	return w.b.Len()
}

// RenderSection writes one canonical section in its native markdown
// shape. Metadata sections are not body content and are skipped;
// codecs place title and icon themselves.
func RenderSection(w *MarkdownWriter, sec model.Section) {
	switch sec.Kind {
	case model.SectionInstructions:
		if sec.Title != "" {
			w.Heading(2, sec.Title)
		}
		w.Paragraph(sec.Content)
	case model.SectionRules:
		title := sec.Title
		if title == "" {
			title = DefaultTitle(model.SectionRules)
		}
		w.Heading(2, title)
		w.List(sec.Rules)
	case model.SectionExamples:
		title := sec.Title
		if title == "" {
			title = DefaultTitle(model.SectionExamples)
		}
		w.Heading(2, title)
		for _, ex := range sec.Examples {
			w.Paragraph(ex.Description)
			w.Fence(ex.Language, ex.Code)
		}
	case model.SectionTools:
		w.Heading(2, DefaultTitle(model.SectionTools))
		w.List(sec.Tools)
	case model.SectionPersona:
		w.Heading(2, DefaultTitle(model.SectionPersona))
		w.Paragraph(sec.Content)
	case model.SectionCustom:
		if sec.Title != "" {
			w.Heading(2, sec.Title)
		}
		w.Raw(sec.Content)
	}
}

// EncodeFrontmatter renders a value as a YAML frontmatter block with
// closing delimiter and separating blank line.
func EncodeFrontmatter(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return "---\n" + string(data) + "---\n", nil
}
