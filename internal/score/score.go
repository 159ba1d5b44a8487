// Package score computes conversion quality scores from warnings.
package score

import "github.com/promptpack/promptpack/internal/model"

// Perfect is the score of a conversion that produced no warnings.
const Perfect = 100

// Deductions applied per warning instance. A dropped section costs more
// than a degraded one because the content is gone rather than reshaped.
const (
	DeductSectionDegraded = 10
	DeductSectionDropped  = 20
	DeductMetadataDropped = 5
	DeductValidation      = 5
	DeductSizeOverflow    = 15
)

var deductions = map[model.WarningKind]int{
	model.WarnSectionDegraded: DeductSectionDegraded,
	model.WarnSectionDropped:  DeductSectionDropped,
	model.WarnMetadataDropped: DeductMetadataDropped,
	model.WarnValidation:      DeductValidation,
	model.WarnSizeOverflow:    DeductSizeOverflow,
}

// Deduction returns the score cost of a single warning kind.
func Deduction(kind model.WarningKind) int {
	return deductions[kind]
}

// Score applies one fixed deduction per warning and floors the result
// at zero. The second return value reports lossiness: any warning at
// all makes the conversion lossy, even when the deductions are too
// small to move the score below Perfect.
func Score(warnings []model.Warning) (int, bool) {
	s := Perfect
	for _, w := range warnings {
		s -= deductions[w.Kind]
	}
	if s < 0 {
		s = 0
	}
	return s, len(warnings) > 0
}
