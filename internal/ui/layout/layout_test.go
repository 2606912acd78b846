package layout

import (
	"strings"
	"testing"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestContentWidth(t *testing.T) {
	if got := ContentWidth(200); got != 76 {
		t.Errorf("ContentWidth(200) = %d, want 76", got)
	}
	if got := ContentWidth(10); got != 20 {
		t.Errorf("ContentWidth(10) = %d, want 20", got)
	}
}

func TestRenderHeaderShowsUser(t *testing.T) {
	h := RenderHeader("Profile", "Asha", 80)
	if !strings.Contains(h, "CareerWise") || !strings.Contains(h, "Asha") {
		t.Errorf("header missing app name or user:\n%s", h)
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Select"}}, 80)
	if !strings.Contains(f, "Enter") || !strings.Contains(f, "Select") {
		t.Errorf("footer missing hint:\n%s", f)
	}
}

func TestFrameGivesBodyTheRemainingHeight(t *testing.T) {
	var gotW, gotH int
	out := Frame{Title: "Results", Hints: []KeyHint{{Key: "Esc", Description: "Back"}}}.
		Render(80, 30, func(w, h int) string {
			gotW, gotH = w, h
			return "body"
		})

	// Header and footer are one line of text inside a border each.
	if gotW != 80 || gotH != 24 {
		t.Errorf("body got %dx%d, want 80x24", gotW, gotH)
	}
	for _, want := range []string{"Results", "body", "Esc"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q", want)
		}
	}
}
