package controller

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/marauders/internal/model"
	"golang.org/x/term"
)

// pageable is a model that is printed directly when it fits the terminal
// and browsed interactively otherwise.
type pageable interface {
	tea.Model
	withSize(width, height int) pageable
	needsPagination() bool
	staticView() string
}

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	options []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
	started bool
	closed  bool
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress display of a test run.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)

	return t.startWithModel(newRunModel(cfg.title))
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model, t.programOptions()...)
	t.done = make(chan struct{})
	t.started = true

	go func() {
		defer close(t.done)

		if _, err := t.program.Run(); err != nil {
			_, _ = fmt.Fprintf(t.output, "display error: %v\n", err)
		}
	}()

	return nil
}

func (t *TUI) programOptions(extra ...tea.ProgramOption) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithOutput(t.output)}
	opts = append(opts, t.options...)

	return append(opts, extra...)
}

func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if !started {
		_ = t.startWithModel(newRunModel(""))
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// Close tells the progress display that the run is over.
func (t *TUI) Close() {
	t.mu.Lock()
	if !t.started || t.closed {
		t.mu.Unlock()
		return
	}

	t.closed = true
	t.mu.Unlock()

	t.send(runFinishedMsg{})
}

// Wait blocks until the progress display has exited.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// ConfigurationStarted forwards the start of a configuration to the display.
func (t *TUI) ConfigurationStarted(index, total int, variants []string) {
	t.ensureStarted()
	t.send(configurationStartedMsg{index: index, total: total, variants: variants})
}

// ConfigurationCompleted forwards a configuration result to the display.
func (t *TUI) ConfigurationCompleted(index, total int, result m.ConfigurationResult) {
	t.ensureStarted()
	t.send(configurationCompletedMsg{index: index, total: total, result: result})
}

// DisplayVariations shows the variations, interactively when they do not fit
// the terminal.
func (t *TUI) DisplayVariations(infos []m.VariationInfo) error {
	if len(infos) == 0 {
		_, err := fmt.Fprintln(t.output, summaryStyle.Render("No variations found"))
		return err
	}

	return t.show(newVariationsModel(infos))
}

// DisplayReport shows the results of a run.
func (t *TUI) DisplayReport(report m.RunReport) error {
	return t.show(newReportModel(report))
}

func (t *TUI) show(model pageable) error {
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.withSize(width, height)
		}
	}

	// If list is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.staticView())
		return err
	}

	program := tea.NewProgram(model, t.programOptions(tea.WithAltScreen())...)
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplaySetResults prints the variations whose active body changed.
func (t *TUI) DisplaySetResults(results []m.SetResult) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(t.output, summaryStyle.Render("No variations changed"))
		return err
	}

	lines := make([]string, 0, len(results))

	for _, r := range results {
		name := r.Variation
		if name == "" {
			name = "anonymous"
		}

		lines = append(lines, fmt.Sprintf("%s %s  %s %s %s",
			lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Render(fmt.Sprintf("%s:%d", r.File, r.Line)),
			lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Render(name),
			r.From,
			accentStyle.Render("→"),
			lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Render(r.To),
		))
	}

	_, err := fmt.Fprintln(t.output, strings.Join(lines, "\n"))

	return err
}

// DisplayPlan prints the configurations a selection expands to.
func (t *TUI) DisplayPlan(configurations [][]string) error {
	lines := []string{
		titleStyle.Render("Marauders Test Plan"),
		summaryStyle.Render(fmt.Sprintf("Configurations: %s", accentStyle.Render(fmt.Sprintf("%d", len(configurations))))),
	}

	for i, cfg := range configurations {
		lines = append(lines, fmt.Sprintf("%s  %s",
			lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Width(indexColumn).Align(lipgloss.Right).
				Render(fmt.Sprintf("%d", i+1)),
			lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Render(joinVariants(cfg)),
		))
	}

	_, err := fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left, lines...))

	return err
}

// DisplayLanguages prints the enabled language profiles.
func (t *TUI) DisplayLanguages(profiles []m.LanguageProfile) error {
	rows := make([]string, 0, len(profiles))

	for _, p := range profiles {
		rows = append(rows, fmt.Sprintf("%s  %s  %s",
			lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true).Width(12).Render(p.Name),
			lipgloss.NewStyle().Width(14).Render(strings.Join(p.Extensions, ", ")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Render(
				fmt.Sprintf("%s %s  %s %s  %s", p.VariationBegin(), p.CommentEnd,
					p.VariantHeaderBegin(), p.VariantHeaderEnd(), p.VariationEnd())),
		))
	}

	_, err := fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Marauders Languages"),
		summaryStyle.Render(fmt.Sprintf("Enabled: %s", accentStyle.Render(fmt.Sprintf("%d", len(profiles))))),
		boxStyle.Render(strings.Join(rows, "\n")),
	))

	return err
}
