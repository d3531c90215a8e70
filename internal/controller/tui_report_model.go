package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/marauders/internal/model"
)

const (
	indexColumn  = 5
	statusColumn = 8
	exitColumn   = 5
)

type resultDelegate struct {
	offset int
}

func (d resultDelegate) Height() int  { return 1 }
func (d resultDelegate) Spacing() int { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	r, ok := item.(resultItem)
	if !ok {
		return
	}

	variantsWidth := l.Width() - indexColumn - statusColumn - exitColumn - 6

	if index == l.Index() {
		line := fmt.Sprintf("%*d  %-*s  %*s  %s",
			indexColumn, r.index+1,
			statusColumn, r.result.Status,
			exitColumn, exitText(r.result),
			animateScroll(joinVariants(r.result.Variants), variantsWidth, d.offset))
		_, _ = fmt.Fprint(w, selectedStyle.Render(line))

		return
	}

	_, _ = fmt.Fprint(w, renderResultRow(r, variantsWidth))
}

func renderResultRow(r resultItem, variantsWidth int) string {
	return fmt.Sprintf("%s  %s  %s  %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Width(indexColumn).Align(lipgloss.Right).
			Render(fmt.Sprintf("%d", r.index+1)),
		statusStyle(r.result.Status).Width(statusColumn).Render(string(r.result.Status)),
		lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(exitColumn).Align(lipgloss.Right).
			Render(exitText(r.result)),
		lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Render(truncateToWidth(joinVariants(r.result.Variants), variantsWidth)),
	)
}

func exitText(r m.ConfigurationResult) string {
	if r.Status == m.StatusPassed || r.Status == m.StatusFailed {
		return fmt.Sprintf("%d", r.ExitCode)
	}

	return "-"
}

// reportModel browses the results of a run. Enter shows the command output
// of the selected configuration.
type reportModel struct {
	width        int
	height       int
	report       m.RunReport
	list         list.Model
	delegate     resultDelegate
	animOffset   int
	lastSelected int
	showOutput   bool
}

func newReportModel(report m.RunReport) reportModel {
	items := make([]list.Item, 0, len(report.Results))
	for i, r := range report.Results {
		items = append(items, resultItem{index: i, result: r})
	}

	delegate := resultDelegate{}
	l := list.New(items, delegate, 80, 20)
	l.SetShowPagination(false)
	l.SetShowFilter(true)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.FilterInput.Placeholder = "Filter by status or variant…"

	return reportModel{
		width:  80,
		report: report,
		list:   l,
	}
}

func (rm reportModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (rm reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return rm.resize(msg.Width, msg.Height), nil

	case tickMsg:
		if rm.list.FilterState() == list.Filtering {
			return rm, nil
		}

		rm.animOffset++
		rm.delegate.offset = rm.animOffset
		rm.list.SetDelegate(rm.delegate)

		return rm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		filtering := rm.list.FilterState() == list.Filtering

		switch {
		case msg.String() == "ctrl+c", msg.String() == "q" && !filtering:
			return rm, tea.Quit
		case (msg.String() == "enter" || msg.String() == " ") && !filtering:
			rm.showOutput = !rm.showOutput
			return rm, nil
		}

		var cmd tea.Cmd

		rm.list, cmd = rm.list.Update(msg)

		if rm.list.Index() != rm.lastSelected {
			rm.lastSelected = rm.list.Index()
			rm.animOffset = 0
			rm.delegate.offset = 0
			rm.list.SetDelegate(rm.delegate)
			rm.showOutput = false
		}

		return rm, cmd
	}

	return rm, nil
}

func (rm reportModel) resize(width, height int) reportModel {
	rm.width = width
	rm.height = height

	rm.list.SetWidth(max(width-6, 20))
	rm.list.SetHeight(max(height-listChrome-rm.outputHeight(), 5))

	return rm
}

func (rm reportModel) withSize(width, height int) pageable {
	return rm.resize(width, height)
}

func (rm reportModel) needsPagination() bool {
	return rm.height > 0 && len(rm.report.Results)+listChrome > rm.height
}

func (rm reportModel) summary() string {
	status := func(s m.TestStatus) string {
		return statusStyle(s).Render(fmt.Sprintf("%d", rm.report.Count(s)))
	}

	return summaryStyle.Render(fmt.Sprintf(
		"%s  •  %s\nPassed: %s  •  Failed: %s  •  Errors: %s  •  Skipped: %s  •  Total: %s",
		accentStyle.Render(rm.report.Expression),
		rm.report.Command,
		status(m.StatusPassed),
		status(m.StatusFailed),
		status(m.StatusError),
		status(m.StatusSkipped),
		accentStyle.Render(fmt.Sprintf("%d", len(rm.report.Results))),
	))
}

func (rm reportModel) header(width int) string {
	return headerStyle.Width(width).Render(fmt.Sprintf("%*s  %-*s  %*s  %s",
		indexColumn, "#", statusColumn, "Status", exitColumn, "Exit", "Variants"))
}

func (rm reportModel) outputLines() []string {
	item, ok := rm.list.SelectedItem().(resultItem)
	if !rm.showOutput || !ok {
		return nil
	}

	text := strings.TrimSpace(item.result.Output)
	if item.result.Error != "" {
		text = strings.TrimSpace(item.result.Error + "\n" + text)
	}

	if text == "" {
		text = "(no output)"
	}

	lines := strings.Split(text, "\n")

	maxLines := min(max(rm.height/3, 6), 20)
	if len(lines) > maxLines {
		lines = append(lines[len(lines)-maxLines+1:], "…")
	}

	return lines
}

func (rm reportModel) outputHeight() int {
	lines := rm.outputLines()
	if len(lines) == 0 {
		return 0
	}

	return len(lines) + 3
}

func (rm reportModel) View() string {
	listWidth := rm.list.Width()

	parts := []string{
		titleStyle.Render("Marauders Test Results"),
		rm.summary(),
		boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			rm.header(listWidth),
			rm.list.View(),
		)),
	}

	if lines := rm.outputLines(); len(lines) > 0 {
		body := make([]string, 0, len(lines)+1)
		body = append(body, lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true).Render("Output"))

		for _, line := range lines {
			body = append(body, truncateToWidth(line, listWidth))
		}

		parts = append(parts, boxStyle.Width(listWidth).Render(lipgloss.JoinVertical(lipgloss.Left, body...)))
	}

	parts = append(parts, footerStyle.Width(rm.width).Render("↑/k up • ↓/j down • / filter • enter output • q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// staticView renders every row without the interactive list.
func (rm reportModel) staticView() string {
	width := max(rm.width-6, 40)
	rows := []string{rm.header(width)}

	for i, r := range rm.report.Results {
		rows = append(rows, renderResultRow(resultItem{index: i, result: r}, width-indexColumn-statusColumn-exitColumn-6))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Marauders Test Results"),
		rm.summary(),
		boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)),
	) + "\n"
}
