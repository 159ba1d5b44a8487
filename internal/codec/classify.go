package codec

import (
	"regexp"
	"strings"

	"github.com/promptpack/promptpack/internal/model"
)

// Heading vocabularies used to classify sections. Single words match
// whole words of the heading; multiword terms match as phrases.
var (
	rulesVocab = []string{
		"rule", "rules", "guideline", "guidelines", "convention", "conventions",
		"standard", "standards", "requirement", "requirements",
		"constraint", "constraints", "policy", "policies",
	}
	examplesVocab = []string{
		"example", "examples", "usage", "sample", "samples", "snippet", "snippets",
	}
	toolsVocab = []string{
		"tool", "tools", "tooling", "capabilities", "allowed tools", "available tools",
	}
	personaVocab = []string{
		"persona", "role", "personality", "behavior", "behaviour", "tone", "identity",
	}
)

// IsRulesHeading reports whether the heading uses rule-like vocabulary.
func IsRulesHeading(heading string) bool { return matchVocab(heading, rulesVocab) }

// IsExamplesHeading reports whether the heading announces examples.
func IsExamplesHeading(heading string) bool { return matchVocab(heading, examplesVocab) }

// IsToolsHeading reports whether the heading announces a tool list.
func IsToolsHeading(heading string) bool { return matchVocab(heading, toolsVocab) }

// IsPersonaHeading reports whether the heading announces a persona.
func IsPersonaHeading(heading string) bool { return matchVocab(heading, personaVocab) }

func matchVocab(heading string, vocab []string) bool {
	h := strings.ToLower(strings.TrimSpace(heading))
	words := strings.FieldsFunc(h, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
	for _, term := range vocab {
		if strings.Contains(term, " ") {
			if strings.Contains(h, term) {
				return true
			}
			continue
		}
		for _, w := range words {
			if w == term {
				return true
			}
		}
	}
	return false
}

var (
	bulletPattern  = regexp.MustCompile(`^\s*(?:[-*+]|\d+[.)])\s+(.*)$`)
	tableRowPrefix = regexp.MustCompile(`^\s*\|`)
)

// Bullets extracts the items of a bullet or numbered list. Indented
// continuation lines are folded into the preceding item.
func Bullets(content string) []string {
	var items []string
	for _, line := range strings.Split(content, "\n") {
		if m := bulletPattern.FindStringSubmatch(line); m != nil {
			items = append(items, strings.TrimSpace(m[1]))
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && len(items) > 0 && strings.HasPrefix(line, "  ") {
			items[len(items)-1] += " " + trimmed
		}
	}
	return items
}

// AllBullets reports whether every non-blank line of the content
// belongs to a list.
func AllBullets(content string) bool {
	any := false
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if bulletPattern.MatchString(line) {
			any = true
			continue
		}
		if strings.HasPrefix(line, "  ") && any {
			continue
		}
		return false
	}
	return any
}

// Examples extracts fenced code blocks from the content, pairing each
// with the nearest preceding paragraph as its description. A paragraph
// describes at most one example. The second return value reports
// whether the content was fully consumed; prose left dangling after
// the last fence means the block is not a clean example listing.
func Examples(content string) ([]model.Example, bool) {
	var out []model.Example
	var fence fenceState
	var code []string
	var para []string
	desc := ""
	language := ""
	leftover := false

	endParagraph := func() {
		if len(para) > 0 {
			if desc != "" {
				// Two paragraphs before one fence cannot both be
				// the description.
				leftover = true
			}
			desc = strings.TrimSpace(strings.Join(para, "\n"))
			para = para[:0]
		}
	}

	for _, line := range strings.Split(content, "\n") {
		wasOpen := fence.open
		inFence := fence.observe(line)

		switch {
		case inFence && !wasOpen:
			// Opening fence line carries the language info string.
			endParagraph()
			language = fenceLanguage(line)
			code = code[:0]
		case inFence && fence.open:
			code = append(code, line)
		case inFence && !fence.open:
			out = append(out, model.Example{
				Description: desc,
				Language:    language,
				Code:        strings.Join(code, "\n"),
			})
			desc = ""
			language = ""
		case strings.TrimSpace(line) == "":
			endParagraph()
		default:
			para = append(para, strings.TrimSpace(line))
		}
	}

	consumed := len(para) == 0 && desc == "" && !fence.open && !leftover
	return out, consumed
}

// fenceLanguage returns the info string of an opening fence line.
func fenceLanguage(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	info := strings.TrimLeft(trimmed, "`~")
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// isOpaque reports content with no prose reading: a lone fenced block,
// a table, or an HTML fragment. Such blocks are preserved verbatim as
// custom sections instead of being forced into instructions.
func isOpaque(content string) bool {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "<") && strings.HasSuffix(trimmed, ">") {
		return true
	}

	lines := strings.Split(trimmed, "\n")
	tableRows := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !tableRowPrefix.MatchString(line) {
			tableRows = 0
			break
		}
		tableRows++
	}
	if tableRows > 0 {
		return true
	}

	if marker, _ := fenceMarker(trimmed); marker != 0 {
		var fence fenceState
		for i, line := range lines {
			fence.observe(line)
			if !fence.open && i < len(lines)-1 {
				return false
			}
		}
		return !fence.open
	}
	return false
}

// ClassifySection types one heading-delimited block. Vocabulary drives
// the decision, but a structured kind is only assigned when the whole
// block fits the shape: a rules list with stray prose, or an example
// listing with dangling text, is preserved verbatim instead of losing
// the parts that do not fit.
func ClassifySection(sec BodySection) model.Section {
	heading, content := sec.Heading, sec.Content

	switch {
	case IsToolsHeading(heading):
		if items := Bullets(content); len(items) > 0 && AllBullets(content) {
			return model.NewTools(cleanToolIDs(items))
		}
		return custom(heading, content)
	case IsExamplesHeading(heading):
		if examples, consumed := Examples(content); len(examples) > 0 && consumed {
			return model.NewExamples(heading, examples)
		}
		return custom(heading, content)
	case IsPersonaHeading(heading):
		if strings.TrimSpace(content) != "" {
			return model.NewPersona(content)
		}
	case IsRulesHeading(heading):
		if items := Bullets(content); len(items) > 0 && AllBullets(content) {
			return model.NewRules(heading, items)
		}
	}

	if items := Bullets(content); len(items) > 0 && AllBullets(content) {
		return model.NewRules(heading, items)
	}
	if isOpaque(content) {
		return custom(heading, content)
	}
	return model.NewInstructions(heading, content)
}

// custom preserves a block verbatim. Blocks with no content at all
// degrade to an empty instructions section, which stays valid.
func custom(heading, content string) model.Section {
	if strings.TrimSpace(content) == "" {
		return model.NewInstructions(heading, content)
	}
	return model.Section{Kind: model.SectionCustom, Title: heading, Content: content}
}

// cleanToolIDs strips markdown emphasis and code backticks from tool
// identifiers.
func cleanToolIDs(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		id := strings.TrimSpace(strings.Trim(item, "`*_"))
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}

// FirstParagraph returns the first paragraph of prose in the content.
func FirstParagraph(content string) string {
	var para []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(para) > 0 {
				break
			}
			continue
		}
		para = append(para, trimmed)
	}
	return strings.Join(para, "\n")
}
