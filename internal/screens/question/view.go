package question

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizview/internal/quiz"
	"github.com/abhisek/quizview/internal/ui/components"
	"github.com/abhisek/quizview/internal/ui/theme"
)

func (s *QuestionScreen) View(width, height int) string {
	switch s.vm.State {
	case quiz.ViewLoading:
		return renderMessage(width, theme.Hint, s.vm.Message)
	case quiz.ViewFailed:
		// No option or navigation controls on failure.
		return renderMessage(width, theme.ErrorText, s.vm.Message)
	case quiz.ViewEmpty:
		return renderMessage(width, theme.Hint, s.vm.Message) + "\n\n" + renderNav(s.vm, width)
	}
	return s.renderQuestion(width)
}

func renderMessage(width int, style lipgloss.Style, msg string) string {
	return style.
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n" + msg)
}

// renderQuestion renders the prompt, options, explanation and navigation.
func (s *QuestionScreen) renderQuestion(width int) string {
	vm := s.vm
	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder

	// Position and answered progress.
	pos := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", vm.Position+1, vm.Total))
	barWidth := inner - lipgloss.Width(pos) - 2
	if barWidth > 30 {
		barWidth = 30
	}
	b.WriteString(pos + "  " + components.NewProgressBar("", vm.Summary.Answered, vm.Total, true, barWidth).View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", inner)))
	b.WriteString("\n\n")

	b.WriteString(theme.Heading.Width(inner).Render("  " + vm.Heading))
	b.WriteString("\n")
	if vm.Image != "" {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  [image: %s]", vm.Image)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(s.list.View())

	if vm.Explanation.Visible {
		b.WriteString("\n")
		b.WriteString(renderExplanation(vm.Explanation, inner))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderNav(vm, width))
	return b.String()
}

// renderExplanation renders the revealed explanation panel.
func renderExplanation(e quiz.ExplanationView, width int) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render("Explanation:"))
	b.WriteString("\n")
	b.WriteString(theme.Correct.Render("Correct: ") + theme.Body.Render(e.Correct))

	if len(e.Incorrect) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render("Incorrect:"))
		for _, o := range e.Incorrect {
			b.WriteString("\n  ")
			b.WriteString(lipgloss.NewStyle().Bold(true).Render(o.Key+":") + " " + theme.Body.Render(o.Text))
		}
	}
	if e.Image != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("[image: %s]", e.Image)))
	}

	return theme.Explanation.Width(width).Render(b.String())
}

// renderNav renders the previous/next buttons centered.
func renderNav(vm quiz.ViewModel, width int) string {
	if !vm.Prev.Shown && !vm.Next.Shown {
		return ""
	}
	prev := components.NewNavButton("◂ Previous", vm.Prev).View()
	next := components.NewNavButton("Next ▸", vm.Next).View()
	row := lipgloss.JoinHorizontal(lipgloss.Top, prev, "   ", next)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
}
