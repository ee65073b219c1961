package components

import (
	"github.com/abhisek/quizview/internal/quiz"
	"github.com/abhisek/quizview/internal/ui/theme"
)

// NavButton is a previous/next navigation control.
type NavButton struct {
	Label   string
	Enabled bool
}

// NewNavButton creates a navigation button from its view state.
func NewNavButton(label string, nav quiz.NavView) NavButton {
	return NavButton{Label: label, Enabled: nav.Enabled}
}

// View renders the button. Disabled buttons use a dimmed style.
func (b NavButton) View() string {
	if b.Enabled {
		return theme.ButtonEnabled.Render(b.Label)
	}
	return theme.ButtonDisabled.Render(b.Label)
}
