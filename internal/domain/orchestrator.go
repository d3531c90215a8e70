package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mouse-blink/marauders/internal/adapter"
	"github.com/mouse-blink/marauders/internal/domain/algebra"
	m "github.com/mouse-blink/marauders/internal/model"
)

// Progress receives notifications while configurations are tested.
type Progress interface {
	ConfigurationStarted(index, total int, variants []string)
	ConfigurationCompleted(index, total int, result m.ConfigurationResult)
}

// RunOptions controls a test run.
type RunOptions struct {
	Expression string
	Command    string
	// FailFast stops after the first configuration that failed or errored.
	FailFast bool
	Progress Progress
}

// Orchestrator expands selection expressions and tests every resulting
// configuration of variants against the user's test command.
type Orchestrator interface {
	// Plan returns the configurations expr expands to, without touching files.
	Plan(project *Project, expr string) ([][]string, error)
	// Run activates each configuration in turn, runs the command and puts the
	// project back on base afterwards.
	Run(project *Project, opts RunOptions) (m.RunReport, error)
}

type orchestrator struct {
	loader   ProjectLoader
	selector Selector
	runner   adapter.TestRunnerAdapter
	logger   *slog.Logger
	now      func() time.Time
}

// NewOrchestrator constructs an Orchestrator. A nil logger uses slog.Default.
func NewOrchestrator(loader ProjectLoader, selector Selector, runner adapter.TestRunnerAdapter, logger *slog.Logger) Orchestrator {
	return &orchestrator{
		loader:   loader,
		selector: selector,
		runner:   runner,
		logger:   logger,
		now:      time.Now,
	}
}

func (o *orchestrator) log() *slog.Logger {
	if o.logger == nil {
		return slog.Default()
	}

	return o.logger
}

func (o *orchestrator) Plan(project *Project, expr string) ([][]string, error) {
	ix, err := BuildIndex(project)
	if err != nil {
		return nil, err
	}

	configurations, err := algebra.Compile(expr, ix)
	if err != nil {
		return nil, fmt.Errorf("invalid selection %q: %w", expr, err)
	}

	checked := map[string]bool{}

	for _, cfg := range configurations {
		for _, variant := range cfg {
			if checked[variant] {
				continue
			}

			checked[variant] = true

			if _, err := o.selector.Find(project, variant); err != nil {
				return nil, err
			}
		}
	}

	return configurations, nil
}

func (o *orchestrator) Run(project *Project, opts RunOptions) (m.RunReport, error) {
	if !project.AllBase() {
		return m.RunReport{}, &PreconditionError{Active: project.ActiveVariations()}
	}

	if strings.TrimSpace(opts.Command) == "" {
		return m.RunReport{}, errors.New("test command is empty")
	}

	configurations, err := o.Plan(project, opts.Expression)
	if err != nil {
		return m.RunReport{}, err
	}

	report := m.RunReport{
		ID:         uuid.NewString(),
		Expression: opts.Expression,
		Command:    opts.Command,
		Root:       project.Root,
		Started:    o.now().UTC(),
	}

	total := len(configurations)

	o.log().Info("test run started", "id", report.ID, "expression", opts.Expression, "configurations", total)

	for i, variants := range configurations {
		if opts.Progress != nil {
			opts.Progress.ConfigurationStarted(i, total, variants)
		}

		result, err := o.runConfiguration(project, variants, opts.Command)
		report.Results = append(report.Results, result)

		if opts.Progress != nil {
			opts.Progress.ConfigurationCompleted(i, total, result)
		}

		if err != nil {
			report.Finished = o.now().UTC()
			return report, err
		}

		if opts.FailFast && (result.Status == m.StatusFailed || result.Status == m.StatusError) {
			o.log().Info("stopping after first failure", "variants", variants)
			break
		}
	}

	report.Finished = o.now().UTC()

	o.log().Info("test run finished", "id", report.ID,
		"passed", report.Count(m.StatusPassed),
		"failed", report.Count(m.StatusFailed),
		"errors", report.Count(m.StatusError),
		"skipped", report.Count(m.StatusSkipped))

	return report, nil
}

// runConfiguration tests one configuration. The returned error is set only
// when the project could not be restored to base, which ends the run.
func (o *orchestrator) runConfiguration(project *Project, variants []string, command string) (m.ConfigurationResult, error) {
	start := o.now()
	result := m.ConfigurationResult{Variants: variants}

	targets, err := o.locate(project, variants)
	if err != nil {
		result.Status = m.StatusSkipped
		result.Error = err.Error()
		o.log().Debug("configuration skipped", "variants", variants, "reason", err)

		return result, nil
	}

	o.apply(project, targets, command, &result)

	result.Duration = o.now().Sub(start)

	_, changed := o.selector.Reset(project)
	if err := o.loader.Save(changed...); err != nil {
		return result, fmt.Errorf("failed to restore project after %v: %w", variants, err)
	}

	o.log().Debug("configuration tested", "variants", variants, "status", result.Status, "exit_code", result.ExitCode)

	return result, nil
}

// locate resolves the variants of a configuration, dropping repeated names.
// Two variants of one variation cannot be active together.
func (o *orchestrator) locate(project *Project, variants []string) ([]VariantLocation, error) {
	var targets []VariantLocation

	for _, variant := range variants {
		loc, err := o.selector.Find(project, variant)
		if err != nil {
			return nil, err
		}

		idx := slices.IndexFunc(targets, func(t VariantLocation) bool { return t.Variation == loc.Variation })
		if idx < 0 {
			targets = append(targets, loc)
			continue
		}

		if targets[idx].Variant != variant {
			return nil, fmt.Errorf("variants %q and %q belong to the same variation at %s",
				targets[idx].Variant, variant, loc.Location())
		}
	}

	return targets, nil
}

func (o *orchestrator) apply(project *Project, targets []VariantLocation, command string, result *m.ConfigurationResult) {
	var changed []*File

	for _, target := range targets {
		_, file, err := o.selector.Set(project, target.Variant)
		if err != nil {
			result.Status = m.StatusError
			result.Error = err.Error()

			return
		}

		if !slices.Contains(changed, file) {
			changed = append(changed, file)
		}
	}

	if err := o.loader.Save(changed...); err != nil {
		result.Status = m.StatusError
		result.Error = err.Error()

		return
	}

	out, err := o.runner.Run(project.Root, command)
	result.Output = out.Output
	result.ExitCode = out.ExitCode

	switch {
	case err != nil:
		result.Status = m.StatusError
		result.Error = err.Error()
	case out.ExitCode == 0:
		result.Status = m.StatusPassed
	default:
		result.Status = m.StatusFailed
	}
}
