package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/marauders/internal/model"
)

type quitModel struct{}

func (m quitModel) Init() tea.Cmd { return tea.Quit }
func (m quitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
func (m quitModel) View() string { return "" }

func newTestTUI(buf *bytes.Buffer) *TUI {
	tui := NewTUI(buf)
	tui.options = []tea.ProgramOption{tea.WithInput(nil), tea.WithoutSignalHandler()}

	return tui
}

func waitFor(t *testing.T, name string, fn func()) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		fn()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("%s timed out", name)
	}
}

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	waitFor(t, "Wait()", tui.Wait)

	// the program is gone, sending must not block
	waitFor(t, "send()", func() { tui.send(configurationStartedMsg{total: 2}) })
	waitFor(t, "Close()", tui.Close)
}

func TestTUI_RunLifecycle(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	if err := tui.Start(WithTitle("+easy")); err != nil {
		t.Fatalf("Start error = %v", err)
	}

	tui.ConfigurationStarted(0, 1, []string{"a"})
	tui.ConfigurationCompleted(0, 1, m.ConfigurationResult{Variants: []string{"a"}, Status: m.StatusPassed})

	waitFor(t, "Close()", tui.Close)
	waitFor(t, "Wait()", tui.Wait)

	if !strings.Contains(buf.String(), "Marauders Test Run") {
		t.Fatalf("output missing run title\noutput:\n%s", buf.String())
	}
}

func TestTUI_ProgressStartsDisplay(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	tui.ConfigurationStarted(0, 1, []string{"a"})

	if !tui.started {
		t.Fatalf("ConfigurationStarted did not start the display")
	}

	waitFor(t, "Close()", tui.Close)
	waitFor(t, "Wait()", tui.Wait)
}

func TestTUI_MultipleClose(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	tui.Close()
	tui.Close() // Close again should be safe

	tui2 := newTestTUI(&buf)
	tui2.Wait() // Wait without start should be no-op

	tui3 := newTestTUI(&buf)
	tui3.send(runFinishedMsg{}) // send without start should be no-op
}

func TestTUI_DisplayMethods_PrintWhenOutputIsNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	infos := []m.VariationInfo{
		{Path: "lib.rs", Line: 3, Name: "insert", Variants: []string{"insert_1"}, Active: 1},
	}

	if err := tui.DisplayVariations(infos); err != nil {
		t.Fatalf("DisplayVariations error = %v", err)
	}

	if err := tui.DisplayVariations(nil); err != nil {
		t.Fatalf("DisplayVariations(nil) error = %v", err)
	}

	report := m.RunReport{
		Expression: "insert",
		Command:    "cargo test",
		Results:    []m.ConfigurationResult{{Variants: []string{"insert_1"}, Status: m.StatusFailed, ExitCode: 101}},
	}

	if err := tui.DisplayReport(report); err != nil {
		t.Fatalf("DisplayReport error = %v", err)
	}

	if err := tui.DisplaySetResults([]m.SetResult{{File: "lib.rs", Line: 3, Variation: "insert", From: "base", To: "insert_1"}}); err != nil {
		t.Fatalf("DisplaySetResults error = %v", err)
	}

	if err := tui.DisplaySetResults(nil); err != nil {
		t.Fatalf("DisplaySetResults(nil) error = %v", err)
	}

	if err := tui.DisplayPlan([][]string{{"insert_1", "delete_1"}}); err != nil {
		t.Fatalf("DisplayPlan error = %v", err)
	}

	profiles := []m.LanguageProfile{{Name: "rust", Extensions: []string{"rs"}, CommentBegin: "/*", CommentEnd: "*/", Marker: '|'}}
	if err := tui.DisplayLanguages(profiles); err != nil {
		t.Fatalf("DisplayLanguages error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"Marauders Variations",
		"lib.rs:3",
		"insert_1",
		"No variations found",
		"Marauders Test Results",
		"failed",
		"101",
		"No variations changed",
		"insert_1 * delete_1",
		"Marauders Languages",
		"/*|| */",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}
