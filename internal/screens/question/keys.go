package question

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/quizview/internal/ui/layout"
)

// keyMap holds the question screen bindings.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Choose  key.Binding
	Prev    key.Binding
	Next    key.Binding
	Summary key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑↓", "Move"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Down"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("Enter", "Answer"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "Previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "Next"),
		),
		Summary: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "Score"),
		),
	}
}

// hints converts enabled bindings to footer hints.
func hints(bindings ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bindings)+1)
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return append(out, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}
