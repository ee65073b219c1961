package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizview/internal/quiz"
	"github.com/abhisek/quizview/internal/router"
	"github.com/abhisek/quizview/internal/screen"
	"github.com/abhisek/quizview/internal/ui/components"
	"github.com/abhisek/quizview/internal/ui/layout"
	"github.com/abhisek/quizview/internal/ui/theme"
)

// SummaryScreen displays the score so far.
type SummaryScreen struct {
	summary quiz.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary quiz.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Score"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to quiz"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "tab", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder

	title := "Keep going!"
	if sum.Total > 0 && sum.Answered == sum.Total {
		title = "All questions answered!"
	}
	b.WriteString(center(theme.Title.Render(title)))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Answered: %d/%d        Correct: %d        Accuracy: %.0f%%",
		sum.Answered, sum.Total, sum.Correct, sum.Accuracy()*100)
	b.WriteString(center(theme.Body.Render(stats)))
	b.WriteString("\n\n")

	b.WriteString(center(components.NewProgressBar("Progress", sum.Answered, sum.Total, true, min(width-8, 50)).View()))
	b.WriteString("\n")

	if wrong := sum.Answered - sum.Correct; wrong > 0 {
		b.WriteString("\n")
		b.WriteString(center(theme.Incorrect.Render(fmt.Sprintf("%d answered incorrectly", wrong))))
		b.WriteString("\n")
	}

	return b.String()
}
