// Package screen defines the contract between the app shell and the
// screens stacked in its router.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizview/internal/ui/layout"
)

// Screen is one view of the quiz: the question page or the score page.
// The shell draws the header and footer; View fills the space between.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider replaces the shell's default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Resumer is notified when the screen becomes active again after the one
// above it is popped. Screens backed by shared state use it to re-render.
type Resumer interface {
	Resume() tea.Cmd
}
