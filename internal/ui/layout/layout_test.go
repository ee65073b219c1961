package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
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

func TestSpread(t *testing.T) {
	got := spread("ab", "cd", "ef", 20)
	if lipgloss.Width(got) != 20 {
		t.Errorf("width = %d, want 20: %q", lipgloss.Width(got), got)
	}
	if !strings.HasPrefix(got, "ab") || !strings.HasSuffix(got, "ef") {
		t.Errorf("edges not anchored: %q", got)
	}

	// Too narrow still keeps one space between parts.
	if got := spread("ab", "cd", "ef", 2); got != "ab cd ef" {
		t.Errorf("narrow spread = %q", got)
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Quiz", HeaderStatus{Answered: 2, Correct: 1, Total: 5}, 80)
	for _, want := range []string{"Quizview", "Quiz", "✓ 1", "2/5 answered"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "←", Description: "Previous"}, {Key: "Ctrl+C", Description: "Quit"}}, 80)
	if !strings.Contains(f, "Previous") || !strings.Contains(f, "Quit") {
		t.Errorf("footer missing hints: %q", f)
	}
}

func TestRenderFrameHeight(t *testing.T) {
	frame := RenderFrame("head", "body", "foot", 40, 10)
	if got := lipgloss.Height(frame); got != 10 {
		t.Errorf("frame height = %d, want 10", got)
	}
}
