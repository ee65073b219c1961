package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizview/internal/quiz"
	"github.com/abhisek/quizview/internal/ui/theme"
)

// OptionList renders the option controls of a question with a cursor.
type OptionList struct {
	Options []quiz.OptionView
	Cursor  int
}

// NewOptionList creates an option list with the cursor on the first option.
func NewOptionList(options []quiz.OptionView) OptionList {
	return OptionList{Options: options}
}

// Locked reports whether the options no longer accept a selection.
func (l OptionList) Locked() bool {
	return len(l.Options) > 0 && l.Options[0].Disabled
}

// MoveUp moves the cursor up one option.
func (l *OptionList) MoveUp() {
	if l.Cursor > 0 {
		l.Cursor--
	}
}

// MoveDown moves the cursor down one option.
func (l *OptionList) MoveDown() {
	if l.Cursor < len(l.Options)-1 {
		l.Cursor++
	}
}

// CursorKey returns the option key under the cursor.
func (l OptionList) CursorKey() (string, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Options) {
		return "", false
	}
	return l.Options[l.Cursor].Key, true
}

// View renders one line per option.
func (l OptionList) View() string {
	var b strings.Builder
	locked := l.Locked()

	for i, o := range l.Options {
		prefix := "  "
		if i == l.Cursor && !locked {
			prefix = "▸ "
		}

		suffix := ""
		switch o.Mark {
		case quiz.MarkCorrect:
			suffix = "  ✓"
		case quiz.MarkIncorrect:
			suffix = "  ✗"
		}

		line := fmt.Sprintf("%s%s:  %s%s", prefix, o.Key, o.Text, suffix)

		switch {
		case o.Mark == quiz.MarkCorrect:
			line = theme.Correct.Render(line)
		case o.Mark == quiz.MarkIncorrect:
			line = theme.Incorrect.Render(line)
		case locked:
			line = theme.OptionLocked.Render(line)
		case i == l.Cursor:
			line = theme.OptionCursor.Render(line)
		default:
			line = theme.OptionIdle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
