package codec

import (
	"strings"
	"testing"

	"github.com/promptpack/promptpack/internal/format"
	"github.com/promptpack/promptpack/internal/model"
)

func testPackage() *model.CanonicalPackage {
	return &model.CanonicalPackage{
		Name: "go-style",
		Type: model.TypeRule,
		Sections: []model.Section{
			model.NewInstructions("", "Write idiomatic Go."),
			model.NewRules("Rules", []string{"Use tabs"}),
			model.NewTools([]string{"Read", "Bash"}),
			model.NewPersona("You are a reviewer."),
		},
	}
}

func TestRenderSectionsCapabilities(t *testing.T) {
	tests := map[string]struct {
		target       model.FormatID
		wantDropped  int
		wantDegraded int
		wantContent  []string
		wantAbsent   []string
	}{
		"windsurf drops tools and persona": {
			target:       model.Windsurf,
			wantDropped:  2,
			wantDegraded: 0,
			wantContent:  []string{"Write idiomatic Go.", "## Rules", "- Use tabs"},
			wantAbsent:   []string{"Read", "reviewer"},
		},
		"cursor degrades persona and drops tools": {
			target:       model.Cursor,
			wantDropped:  1,
			wantDegraded: 1,
			wantContent:  []string{"You are a reviewer."},
			wantAbsent:   []string{"## Persona", "- Read"},
		},
		"agents md keeps persona and lists tools": {
			target:       model.AgentsMD,
			wantDropped:  0,
			wantDegraded: 1,
			wantContent:  []string{"## Tools", "- Read", "## Persona"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			spec := format.MustLookup(tt.target)
			var w MarkdownWriter
			warnings := RenderSections(&w, testPackage(), spec, nil)

			dropped, degraded := 0, 0
			for _, warn := range warnings {
				switch warn.Kind {
				case model.WarnSectionDropped:
					dropped++
				case model.WarnSectionDegraded:
					degraded++
				}
			}
			if dropped != tt.wantDropped {
				t.Errorf("dropped = %d, want %d (warnings: %v)", dropped, tt.wantDropped, warnings)
			}
			if degraded != tt.wantDegraded {
				t.Errorf("degraded = %d, want %d (warnings: %v)", degraded, tt.wantDegraded, warnings)
			}

			content := w.String()
			for _, want := range tt.wantContent {
				if !strings.Contains(content, want) {
					t.Errorf("output missing %q:\n%s", want, content)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(content, absent) {
					t.Errorf("output should not contain %q:\n%s", absent, content)
				}
			}
		})
	}
}

func TestRenderSectionsSkip(t *testing.T) {
	spec := format.MustLookup(model.ClaudeAgent)
	var w MarkdownWriter
	skip := map[model.SectionKind]bool{model.SectionTools: true}
	warnings := RenderSections(&w, testPackage(), spec, skip)
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if strings.Contains(w.String(), "- Read") {
		t.Errorf("skipped tools still rendered:\n%s", w.String())
	}
}

func TestFinishResultLimit(t *testing.T) {
	spec := format.MustLookup(model.Windsurf)
	pkg := testPackage()

	tests := map[string]struct {
		size      int
		wantLossy bool
	}{
		"under the limit":   {size: 100, wantLossy: false},
		"exactly the limit": {size: 12000, wantLossy: false},
		"one over":          {size: 12001, wantLossy: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			content := strings.Repeat("a", tt.size)
			res := FinishResult(spec, pkg, content, nil)
			if res.Lossy != tt.wantLossy {
				t.Errorf("Lossy = %v, want %v", res.Lossy, tt.wantLossy)
			}
			if res.Content != content {
				t.Error("content must never be truncated")
			}
			if tt.wantLossy && res.Score == 100 {
				t.Error("overflow should reduce the score")
			}
			if !tt.wantLossy && res.Score != 100 {
				t.Errorf("Score = %d, want 100", res.Score)
			}
		})
	}
}

func TestFinishResultFields(t *testing.T) {
	spec := format.MustLookup(model.Cursor)
	res := FinishResult(spec, testPackage(), "content", nil)
	if res.Path != ".cursor/rules/go-style.mdc" {
		t.Errorf("Path = %q", res.Path)
	}
	if res.TargetFormat != model.Cursor {
		t.Errorf("TargetFormat = %s", res.TargetFormat)
	}
	if res.ContentType != "text/markdown" {
		t.Errorf("ContentType = %q", res.ContentType)
	}
}

func TestMetadataWarnings(t *testing.T) {
	pkg := testPackage()
	pkg.Version = "1.0.0"
	pkg.Author = "dev"
	pkg.Model = "fast"

	windsurf := MetadataWarnings(format.MustLookup(model.Windsurf), pkg)
	if len(windsurf) != 3 {
		t.Errorf("windsurf warnings = %d, want 3: %v", len(windsurf), windsurf)
	}
	for _, w := range windsurf {
		if w.Kind != model.WarnMetadataDropped {
			t.Errorf("warning kind = %s, want metadata-dropped", w.Kind)
		}
	}

	pkg.Model = ""
	skill := MetadataWarnings(format.MustLookup(model.ClaudeSkill), pkg)
	if len(skill) != 0 {
		t.Errorf("skill warnings = %v, want none", skill)
	}
}
