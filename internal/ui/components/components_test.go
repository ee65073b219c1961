package components

import (
	"strings"
	"testing"

	"github.com/abhisek/quizview/internal/quiz"
)

func testOptions() []quiz.OptionView {
	return []quiz.OptionView{
		{Key: "A", Text: "Transport"},
		{Key: "B", Text: "Network"},
		{Key: "C", Text: "Link"},
	}
}

func TestOptionList_CursorBounds(t *testing.T) {
	l := NewOptionList(testOptions())

	l.MoveUp()
	if l.Cursor != 0 {
		t.Errorf("cursor moved above first option: %d", l.Cursor)
	}
	l.MoveDown()
	l.MoveDown()
	l.MoveDown()
	if l.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", l.Cursor)
	}
	if key, ok := l.CursorKey(); !ok || key != "C" {
		t.Errorf("CursorKey = %q, %v", key, ok)
	}
}

func TestOptionList_EmptyCursorKey(t *testing.T) {
	l := NewOptionList(nil)
	if _, ok := l.CursorKey(); ok {
		t.Error("expected no cursor key for an empty list")
	}
	if l.Locked() {
		t.Error("an empty list is not locked")
	}
}

func TestOptionList_ViewMarks(t *testing.T) {
	opts := testOptions()
	for i := range opts {
		opts[i].Disabled = true
	}
	opts[0].Mark = quiz.MarkCorrect
	opts[1].Mark = quiz.MarkIncorrect
	opts[1].Selected = true

	l := NewOptionList(opts)
	if !l.Locked() {
		t.Fatal("expected a locked list")
	}

	lines := strings.Split(strings.TrimRight(l.View(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "A:  Transport") || !strings.Contains(lines[0], "✓") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "✗") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if strings.Contains(l.View(), "▸") {
		t.Error("a locked list should not draw a cursor")
	}
}

func TestOptionList_ViewCursor(t *testing.T) {
	l := NewOptionList(testOptions())
	l.MoveDown()
	lines := strings.Split(l.View(), "\n")
	if !strings.Contains(lines[1], "▸ B:") {
		t.Errorf("cursor line = %q", lines[1])
	}
}

func TestNavButton(t *testing.T) {
	on := NewNavButton("Next", quiz.NavView{Shown: true, Enabled: true})
	off := NewNavButton("Next", quiz.NavView{Shown: true})

	if !on.Enabled || off.Enabled {
		t.Fatal("enabled state not copied from the view")
	}
	if !strings.Contains(on.View(), "Next") || !strings.Contains(off.View(), "Next") {
		t.Error("label missing from rendered button")
	}
}

func TestProgressBar_Fraction(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 0, 0},
		{1, 4, 0.25},
		{4, 4, 1},
		{6, 4, 1},
		{-1, 4, 0},
	}
	for _, tt := range tests {
		got := NewProgressBar("", tt.done, tt.total, false, 20).Fraction()
		if got != tt.want {
			t.Errorf("Fraction(%d/%d) = %v, want %v", tt.done, tt.total, got, tt.want)
		}
	}
}

func TestProgressBar_View(t *testing.T) {
	view := NewProgressBar("Progress", 2, 5, true, 40).View()
	if !strings.Contains(view, "Progress") || !strings.Contains(view, "2/5") {
		t.Errorf("view = %q", view)
	}
}
