package codec

import (
	"regexp"
	"strings"
)

// BodySection is one heading-delimited region of a markdown body.
type BodySection struct {
	// Heading is the section heading text without markers.
	Heading string

	// Level is the heading level, 1 or 2. Deeper headings stay inside
	// the enclosing section's content.
	Level int

	// Content is the trimmed block under the heading.
	Content string

	// Line is the 1-based line of the heading within the body.
	Line int
}

// Document is a markdown body split at its section boundaries.
type Document struct {
	// Title is the text of the leading top-level heading, if any.
	Title string

	// Intro is the prose between the title (or the start of the body)
	// and the first section heading.
	Intro string

	// Sections are the heading-delimited regions in document order.
	Sections []BodySection
}

var headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)

// SplitBody splits a markdown body at level 1 and 2 headings. The
// first top-level heading becomes the document title rather than a
// section. Headings inside fenced code blocks are ignored. A body with
// no headings at all comes back as pure intro.
func SplitBody(body string) Document {
	var doc Document
	lines := strings.Split(body, "\n")

	var fence fenceState
	var buf []string
	cur := -1
	titleSeen := false

	flush := func() {
		content := strings.TrimSpace(strings.Join(buf, "\n"))
		buf = buf[:0]
		if cur >= 0 {
			doc.Sections[cur].Content = content
		} else {
			doc.Intro = content
		}
	}

	for i, line := range lines {
		if fence.observe(line) {
			buf = append(buf, line)
			continue
		}

		m := headingPattern.FindStringSubmatch(line)
		if m == nil || len(m[1]) > 2 {
			buf = append(buf, line)
			continue
		}

		level := len(m[1])
		text := headingText(m[2])
		if level == 1 && !titleSeen && cur == -1 {
			titleSeen = true
			doc.Title = text
			continue
		}

		flush()
		doc.Sections = append(doc.Sections, BodySection{
			Heading: text,
			Level:   level,
			Line:    i + 1,
		})
		cur = len(doc.Sections) - 1
	}
	flush()

	return doc
}

// fenceState tracks whether the scanner is inside a fenced code block.
type fenceState struct {
	open   bool
	marker byte
	length int
}

// observe inspects one line and returns true when the line is part of
// a fenced block, including the fence lines themselves.
func (f *fenceState) observe(line string) bool {
	trimmed := strings.TrimLeft(line, " ")
	if !f.open {
		marker, length := fenceMarker(trimmed)
		if marker == 0 {
			return false
		}
		f.open = true
		f.marker = marker
		f.length = length
		return true
	}

	marker, length := fenceMarker(trimmed)
	if marker == f.marker && length >= f.length && strings.TrimRight(trimmed, string(marker)) == "" {
		f.open = false
	}
	return true
}

// fenceMarker returns the fence character and run length opening the
// line, or 0 when the line does not start a fence.
func fenceMarker(trimmed string) (byte, int) {
	if len(trimmed) < 3 {
		return 0, 0
	}
	c := trimmed[0]
	if c != '`' && c != '~' {
		return 0, 0
	}
	n := 0
	for n < len(trimmed) && trimmed[n] == c {
		n++
	}
	if n < 3 {
		return 0, 0
	}
	return c, n
}

// headingText strips optional trailing closing markers from an ATX
// heading, leaving text like "C#" untouched.
func headingText(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasSuffix(text, "#") {
		trimmed := strings.TrimRight(text, "#")
		if strings.HasSuffix(trimmed, " ") {
			return strings.TrimSpace(trimmed)
		}
	}
	return text
}
