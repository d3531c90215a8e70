package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/marauders/internal/model"
)

const recentResults = 5

// runModel shows the progress of a test run. It quits by itself once the run
// is finished; the report is displayed afterwards.
type runModel struct {
	title       string
	width       int
	height      int
	progressBar progress.Model
	spinner     spinner.Model
	total       int
	completed   int
	current     []string
	counts      map[m.TestStatus]int
	recent      []resultItem
	finished    bool
}

func newRunModel(title string) runModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	return runModel{
		title:       title,
		width:       80,
		progressBar: prog,
		spinner:     sp,
		counts:      make(map[m.TestStatus]int),
	}
}

func (rm runModel) Init() tea.Cmd {
	return rm.spinner.Tick
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.height = msg.Height
		rm.progressBar.Width = max(rm.width-8, 20)

	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return rm, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd

		rm.spinner, cmd = rm.spinner.Update(msg)

		return rm, cmd

	case configurationStartedMsg:
		rm.total = msg.total
		rm.current = msg.variants

	case configurationCompletedMsg:
		rm = rm.handleCompleted(msg)

	case runFinishedMsg:
		rm.finished = true
		rm.current = nil

		return rm, tea.Quit
	}

	return rm, nil
}

func (rm runModel) handleCompleted(msg configurationCompletedMsg) runModel {
	rm.total = msg.total
	rm.completed++
	rm.current = nil

	counts := make(map[m.TestStatus]int, len(rm.counts)+1)
	for k, v := range rm.counts {
		counts[k] = v
	}

	counts[msg.result.Status]++
	rm.counts = counts

	recent := append([]resultItem{}, rm.recent...)
	recent = append(recent, resultItem{index: msg.index, result: msg.result})

	if len(recent) > recentResults {
		recent = recent[len(recent)-recentResults:]
	}

	rm.recent = recent

	return rm
}

func (rm runModel) percent() float64 {
	if rm.total == 0 {
		return 0
	}

	return float64(rm.completed) / float64(rm.total)
}

func (rm runModel) View() string {
	title := "Marauders Test Run"
	if rm.title != "" {
		title += "  " + rm.title
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Progress: %s / %s  •  Passed: %s  •  Failed: %s  •  Errors: %s  •  Skipped: %s",
		accentStyle.Render(fmt.Sprintf("%d", rm.completed)),
		accentStyle.Render(fmt.Sprintf("%d", rm.total)),
		statusStyle(m.StatusPassed).Render(fmt.Sprintf("%d", rm.counts[m.StatusPassed])),
		statusStyle(m.StatusFailed).Render(fmt.Sprintf("%d", rm.counts[m.StatusFailed])),
		statusStyle(m.StatusError).Render(fmt.Sprintf("%d", rm.counts[m.StatusError])),
		statusStyle(m.StatusSkipped).Render(fmt.Sprintf("%d", rm.counts[m.StatusSkipped])),
	))

	if rm.finished {
		return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), summary) + "\n"
	}

	contentWidth := max(rm.width-8, 20)

	current := "waiting…"
	if len(rm.current) > 0 {
		current = rm.spinner.View() + " " + truncateToWidth(joinVariants(rm.current), contentWidth-2)
	}

	lines := []string{current}
	for _, r := range rm.recent {
		lines = append(lines, renderResultRow(r, contentWidth-indexColumn-statusColumn-exitColumn-6))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		summary,
		lipgloss.NewStyle().Padding(0, 2).Render(rm.progressBar.ViewAs(rm.percent())),
		boxStyle.Margin(1, 1, 1, 0).Width(rm.width-4).Render(strings.Join(lines, "\n")),
		footerStyle.Width(rm.width).Render("q hides progress, the run continues"),
	)
}
