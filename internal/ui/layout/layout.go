package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizview/internal/ui/theme"
)

// Smallest terminal the quiz frame is drawn in.
const (
	MinWidth  = 60
	MinHeight = 20
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// HeaderStatus is the running score shown on the right of the header.
type HeaderStatus struct {
	Answered int
	Correct  int
	Total    int
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to grow the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small: %d x %d\n\nThe quiz needs at least %d x %d.",
		width, height, MinWidth, MinHeight)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(msg)
}

// RenderHeader draws the app name, the active screen's title centered, and
// the score.
func RenderHeader(title string, status HeaderStatus, width int) string {
	name := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Quizview")
	centered := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	score := lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("✓ %d", status.Correct)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("   %d/%d answered", status.Answered, status.Total))

	return bar(spread(name, centered, score, width-4), width)
}

// RenderFooter draws the key hints.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar("  "+strings.Join(parts, "   "), width)
}

// RenderFrame stacks header, content and footer, sizing the content to
// fill whatever height the bars leave.
func RenderFrame(header, content, footer string, width, height int) string {
	rest := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rest).Render(content)
	return header + "\n" + body + "\n" + footer
}

func bar(content string, width int) string {
	return theme.Bar.Width(width).Render(content)
}

// spread places left and right at the edges of inner columns and center in
// the middle, keeping at least one space between neighbors.
func spread(left, center, right string, inner int) string {
	inner = max(inner, 0)
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	leftGap := max((inner-cw)/2-lw, 1)
	rightGap := max(inner-lw-leftGap-cw-rw, 1)
	return left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
}
