package controller

import (
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/marauders/internal/model"
)

var (
	accentColor = lipgloss.Color("6") // Cyan

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)

	accentStyle = lipgloss.NewStyle().Foreground(accentColor)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("8"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Margin(0, 1).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(accentColor).
			Bold(true)
)

func statusStyle(status m.TestStatus) lipgloss.Style {
	colors := map[m.TestStatus]lipgloss.Color{
		m.StatusPassed:  lipgloss.Color("2"), // Green
		m.StatusFailed:  lipgloss.Color("1"), // Red
		m.StatusError:   lipgloss.Color("1"),
		m.StatusSkipped: lipgloss.Color("8"), // Gray
	}

	color, ok := colors[status]
	if !ok {
		color = lipgloss.Color("8")
	}

	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

// animateScroll returns a window of text of the given width that moves
// with offset, after a short pause. Text that fits is returned unchanged.
func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const (
		gap   = "   "
		pause = 5 // ticks
	)

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
