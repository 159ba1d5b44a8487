package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/promptpack/promptpack/internal/format"
	"github.com/promptpack/promptpack/internal/model"
)

// ResultLine renders a one-line outcome for a conversion result.
func ResultLine(res *model.ConversionResult) string {
	if res.Clean() {
		return StatusSuccess(fmt.Sprintf("converted to %s (score %s)", res.TargetFormat, ScoreText(res.Score)))
	}
	return StatusWarning(fmt.Sprintf("converted to %s with %s (score %s)",
		res.TargetFormat, countNoun(len(res.Warnings), "caveat"), ScoreText(res.Score)))
}

// WarningLines renders the result's warnings as indented list lines.
func WarningLines(res *model.ConversionResult) []string {
	lines := make([]string, 0, len(res.Warnings))
	for _, w := range res.Warnings {
		lines = append(lines, "  "+Warning(SymbolWarning)+" "+w.Message)
	}
	return lines
}

// ScoreText colors a score by band: 90 and up green, 60 to 89 yellow,
// anything lower red.
func ScoreText(score int) string {
	s := strconv.Itoa(score)
	switch {
	case score >= 90:
		return Success(s)
	case score >= 60:
		return Warning(s)
	default:
		return Error(s)
	}
}

func countNoun(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// FidelityNote summarizes what a format loses, plus any size limit.
func FidelityNote(spec format.Spec) string {
	var notes []string
	for _, kind := range model.AllSectionKinds() {
		switch spec.Capability(kind).Level {
		case format.Degraded:
			notes = append(notes, string(kind)+" degraded")
		case format.Unsupported:
			notes = append(notes, string(kind)+" dropped")
		}
	}
	if spec.Limit > 0 {
		notes = append(notes, fmt.Sprintf("%d char limit", spec.Limit))
	}
	if len(notes) == 0 {
		return "full fidelity"
	}
	return strings.Join(notes, ", ")
}
