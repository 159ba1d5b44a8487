package score

import (
	"testing"

	"github.com/promptpack/promptpack/internal/model"
)

func warn(kind model.WarningKind, n int) []model.Warning {
	out := make([]model.Warning, n)
	for i := range out {
		out[i] = model.Warning{Kind: kind, Message: "test"}
	}
	return out
}

func TestScore(t *testing.T) {
	tests := map[string]struct {
		warnings  []model.Warning
		wantScore int
		wantLossy bool
	}{
		"no warnings is perfect": {
			warnings:  nil,
			wantScore: 100,
			wantLossy: false,
		},
		"degraded section": {
			warnings:  warn(model.WarnSectionDegraded, 1),
			wantScore: 90,
			wantLossy: true,
		},
		"dropped section costs more than degraded": {
			warnings:  warn(model.WarnSectionDropped, 1),
			wantScore: 80,
			wantLossy: true,
		},
		"tools and persona both dropped": {
			warnings: append(
				warn(model.WarnSectionDropped, 1),
				warn(model.WarnSectionDropped, 1)...,
			),
			wantScore: 60,
			wantLossy: true,
		},
		"size overflow": {
			warnings:  warn(model.WarnSizeOverflow, 1),
			wantScore: 85,
			wantLossy: true,
		},
		"low weight warning still lossy": {
			warnings:  warn(model.WarnMetadataDropped, 1),
			wantScore: 95,
			wantLossy: true,
		},
		"floors at zero": {
			warnings:  warn(model.WarnSectionDropped, 8),
			wantScore: 0,
			wantLossy: true,
		},
		"mixed kinds accumulate": {
			warnings: []model.Warning{
				{Kind: model.WarnSectionDegraded},
				{Kind: model.WarnSectionDropped},
				{Kind: model.WarnMetadataDropped},
			},
			wantScore: 65,
			wantLossy: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			gotScore, gotLossy := Score(tt.warnings)
			if gotScore != tt.wantScore {
				t.Errorf("Score() score = %d, want %d", gotScore, tt.wantScore)
			}
			if gotLossy != tt.wantLossy {
				t.Errorf("Score() lossy = %v, want %v", gotLossy, tt.wantLossy)
			}
		})
	}
}

func TestScoreMonotonic(t *testing.T) {
	kinds := []model.WarningKind{
		model.WarnSectionDegraded,
		model.WarnSectionDropped,
		model.WarnMetadataDropped,
		model.WarnValidation,
		model.WarnSizeOverflow,
	}

	var warnings []model.Warning
	prev, _ := Score(warnings)
	for i := 0; i < 12; i++ {
		warnings = append(warnings, model.Warning{Kind: kinds[i%len(kinds)]})
		got, lossy := Score(warnings)
		if got > prev {
			t.Fatalf("score rose from %d to %d after adding a warning", prev, got)
		}
		if !lossy {
			t.Fatalf("lossy = false with %d warnings", len(warnings))
		}
		prev = got
	}
}

func TestDeduction(t *testing.T) {
	if Deduction(model.WarnSectionDropped) <= Deduction(model.WarnSectionDegraded) {
		t.Error("dropping a section should cost more than degrading one")
	}
	if Deduction(model.WarningKind("unknown")) != 0 {
		t.Error("unknown warning kinds should not deduct")
	}
}
