package controller

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	m "github.com/mouse-blink/marauders/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start prints the run title, if any.
func (s *SimpleUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)
	if cfg.title != "" {
		s.printf("Testing %s\n", cfg.title)
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; nothing is interactive.
func (s *SimpleUI) Wait() {}

// ConfigurationStarted announces the variants about to be tested.
func (s *SimpleUI) ConfigurationStarted(index, total int, variants []string) {
	s.printf("==> [%d/%d] %s\n", index+1, total, joinVariants(variants))
}

// ConfigurationCompleted prints the outcome of one configuration.
func (s *SimpleUI) ConfigurationCompleted(index, total int, result m.ConfigurationResult) {
	s.printf("<== [%d/%d] %s %s\n", index+1, total, result.Status, describeOutcome(result))
}

// DisplayVariations prints every variation as a table.
func (s *SimpleUI) DisplayVariations(infos []m.VariationInfo) error {
	if len(infos) == 0 {
		s.printf("No variations found\n")
		return nil
	}

	table, buf := newTable([]string{"Location", "Variation", "Active", "Variants", "Tags"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	variants := 0

	for _, info := range infos {
		variants += len(info.Variants)
		table.Append([]string{
			fmt.Sprintf("%s:%d", info.Path, info.Line),
			info.DisplayName(),
			info.ActiveName(),
			strings.Join(info.Variants, ", "),
			strings.Join(info.Tags, ", "),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Variations %d", len(infos)),
		"",
		"",
		fmt.Sprintf("%d", variants),
		"",
	})

	table.Render()
	s.printf("%s", buf.String())

	return nil
}

// DisplaySetResults prints one line per changed variation.
func (s *SimpleUI) DisplaySetResults(results []m.SetResult) error {
	if len(results) == 0 {
		s.printf("No variations changed\n")
		return nil
	}

	for _, r := range results {
		s.printf("%s\n", describeChange(r))
	}

	return nil
}

// DisplayPlan prints the configurations a selection expands to.
func (s *SimpleUI) DisplayPlan(configurations [][]string) error {
	s.printf("%d configuration(s)\n", len(configurations))

	for i, cfg := range configurations {
		s.printf("%4d  %s\n", i+1, joinVariants(cfg))
	}

	return nil
}

// DisplayReport prints a run report as a table followed by its totals.
func (s *SimpleUI) DisplayReport(report m.RunReport) error {
	s.printf("Run %s\n", report.ID)
	s.printf("Selection: %s\n", report.Expression)
	s.printf("Command:   %s\n", report.Command)
	s.printf("Started:   %s\n\n", report.Started.Local().Format(time.DateTime))

	table, buf := newTable([]string{"#", "Status", "Exit", "Duration", "Variants"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})

	for i, r := range report.Results {
		exit := fmt.Sprintf("%d", r.ExitCode)
		if r.Status == m.StatusSkipped || r.Status == m.StatusError {
			exit = "-"
		}

		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			string(r.Status),
			exit,
			r.Duration.Round(time.Millisecond).String(),
			joinVariants(r.Variants),
		})
	}

	table.Render()
	s.printf("%s\n%s\n", buf.String(), summarize(report))

	for i, r := range report.Results {
		if r.Error != "" {
			s.printf("%4d  %s\n", i+1, r.Error)
		}
	}

	return nil
}

// DisplayLanguages prints the enabled language profiles.
func (s *SimpleUI) DisplayLanguages(profiles []m.LanguageProfile) error {
	table, buf := newTable([]string{"Language", "Extensions", "Variation", "Variant", "End"})

	for _, p := range profiles {
		table.Append([]string{
			p.Name,
			strings.Join(p.Extensions, ", "),
			p.VariationBegin() + " " + p.CommentEnd,
			p.VariantHeaderBegin() + " " + p.VariantHeaderEnd(),
			p.VariationEnd(),
		})
	}

	table.Render()
	s.printf("%s", buf.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(header []string) (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table, &buf
}

func joinVariants(variants []string) string {
	return strings.Join(variants, " * ")
}

func describeChange(r m.SetResult) string {
	name := r.Variation
	if name == "" {
		name = "anonymous"
	}

	return fmt.Sprintf("%s:%d %s: %s -> %s", r.File, r.Line, name, r.From, r.To)
}

func describeOutcome(r m.ConfigurationResult) string {
	switch r.Status {
	case m.StatusPassed, m.StatusFailed:
		return fmt.Sprintf("(exit %d, %s)", r.ExitCode, r.Duration.Round(time.Millisecond))
	default:
		return fmt.Sprintf("(%s)", r.Error)
	}
}

func summarize(report m.RunReport) string {
	return fmt.Sprintf("Passed: %d  Failed: %d  Errors: %d  Skipped: %d  Total: %d",
		report.Count(m.StatusPassed),
		report.Count(m.StatusFailed),
		report.Count(m.StatusError),
		report.Count(m.StatusSkipped),
		len(report.Results),
	)
}
