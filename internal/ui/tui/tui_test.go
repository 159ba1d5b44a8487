package tui

import "testing"

func TestWrapText_WrapsAtWidth(t *testing.T) {
	got := wrapText("one two three", 6)
	want := "one\ntwo\nthree"
	if got != want {
		t.Errorf("wrapText() = %q, want %q", got, want)
	}
}

func TestWrapText_CollapsesNewlines(t *testing.T) {
	got := wrapText("alpha\nbeta", 20)
	if got != "alpha beta" {
		t.Errorf("wrapText() = %q, want %q", got, "alpha beta")
	}
}

func TestWrapText_ZeroWidth(t *testing.T) {
	if got := wrapText("text", 0); got != "text" {
		t.Errorf("wrapText() = %q, want unchanged text", got)
	}
}

func TestWrapText_Empty(t *testing.T) {
	if got := wrapText("", 10); got != "" {
		t.Errorf("wrapText() = %q, want empty", got)
	}
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{name: "fits", text: "hello", width: 10, want: "hello"},
		{name: "ellipsis", text: "hello world", width: 8, want: "hello..."},
		{name: "tiny width", text: "abcdef", width: 3, want: "abc"},
		{name: "zero width", text: "x", width: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateText(tt.text, tt.width); got != tt.want {
				t.Errorf("truncateText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestFormatDetail_SingleLine(t *testing.T) {
	got := formatDetail("ID: ", "cursor", 20)
	if got != "ID: cursor" {
		t.Errorf("formatDetail() = %q, want %q", got, "ID: cursor")
	}
}

func TestFormatDetail_IndentsContinuations(t *testing.T) {
	got := formatDetail("Note: ", "alpha beta gamma", 12)
	want := "Note: alpha\n      beta\n      gamma"
	if got != want {
		t.Errorf("formatDetail() = %q, want %q", got, want)
	}
}

func TestFormatDetail_NarrowWidth(t *testing.T) {
	got := formatDetail("Long label: ", "x", 5)
	if got != "Long label: x" {
		t.Errorf("formatDetail() = %q, want label plus raw text", got)
	}
}
