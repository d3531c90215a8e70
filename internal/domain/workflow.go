// Package domain implements the marauders workflows: loading projects,
// toggling variants, expanding selection expressions and running the test
// command over every selected configuration.
package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/mouse-blink/marauders/internal/adapter"
	m "github.com/mouse-blink/marauders/internal/model"
)

// ReportsDir is where run reports are kept, relative to the project root.
const ReportsDir = ".marauders/reports"

// ErrNoReports is returned by View when the project has no saved run.
var ErrNoReports = errors.New("no test reports found, run `marauders test` first")

// ConfigExistsError is returned by Init when a configuration file is already
// present and overwriting was not requested.
type ConfigExistsError struct {
	Path m.Path
}

func (e *ConfigExistsError) Error() string {
	return fmt.Sprintf("configuration already exists: %s (use --force to overwrite)", e.Path)
}

// InitArgs describes the configuration written by Init.
type InitArgs struct {
	Dir         string
	Format      string
	Languages   []string
	Ignore      []string
	NoGitignore bool
	Force       bool
}

// TestArgs describes a test run.
type TestArgs struct {
	Path       string
	Expression string
	Command    string
	FailFast   bool
	Progress   Progress
}

// Workflow is the set of operations exposed by the CLI.
type Workflow interface {
	List(path string) ([]m.VariationInfo, error)
	Set(path, variant string) (m.SetResult, error)
	Unset(path, variant string) (m.SetResult, error)
	Reset(path string) ([]m.SetResult, error)
	Init(args InitArgs) (m.Path, error)
	Plan(path, expr string) ([][]string, error)
	Test(args TestArgs) (m.RunReport, m.Path, error)
	View(path string) (m.RunReport, error)
	Languages(path string) ([]m.LanguageProfile, error)
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	configs   adapter.ConfigStore
	reports   adapter.ReportStore
	loader    ProjectLoader
	selector  Selector
	orch      Orchestrator
	logger    *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters. A
// nil logger uses slog.Default.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	configs adapter.ConfigStore,
	reports adapter.ReportStore,
	runner adapter.TestRunnerAdapter,
	logger *slog.Logger,
) Workflow {
	loader := NewProjectLoader(fsAdapter, configs, logger)
	selector := NewSelector(logger)

	return &workflow{
		fsAdapter: fsAdapter,
		configs:   configs,
		reports:   reports,
		loader:    loader,
		selector:  selector,
		orch:      NewOrchestrator(loader, selector, runner, logger),
		logger:    logger,
	}
}

func (w *workflow) log() *slog.Logger {
	if w.logger == nil {
		return slog.Default()
	}

	return w.logger
}

// List returns every variation found under path.
func (w *workflow) List(path string) ([]m.VariationInfo, error) {
	project, err := w.loader.Load(path)
	if err != nil {
		return nil, err
	}

	infos := w.selector.List(project)
	for i := range infos {
		infos[i].Path = w.relative(project.Root, infos[i].Path)
	}

	return infos, nil
}

// Set activates variant and writes its file.
func (w *workflow) Set(path, variant string) (m.SetResult, error) {
	return w.toggle(path, variant, w.selector.Set)
}

// Unset puts the variation of the active variant back on base.
func (w *workflow) Unset(path, variant string) (m.SetResult, error) {
	return w.toggle(path, variant, w.selector.Unset)
}

func (w *workflow) toggle(
	path, variant string,
	op func(*Project, string) (m.SetResult, *File, error),
) (m.SetResult, error) {
	project, err := w.loader.Load(path)
	if err != nil {
		return m.SetResult{}, err
	}

	result, file, err := op(project, variant)
	if err != nil {
		return m.SetResult{}, err
	}

	if err := w.loader.Save(file); err != nil {
		return m.SetResult{}, err
	}

	result.File = w.relative(project.Root, result.File)

	return result, nil
}

// Reset puts every variation under path back on base.
func (w *workflow) Reset(path string) ([]m.SetResult, error) {
	project, err := w.loader.Load(path)
	if err != nil {
		return nil, err
	}

	results, changed := w.selector.Reset(project)
	if err := w.loader.Save(changed...); err != nil {
		return nil, err
	}

	for i := range results {
		results[i].File = w.relative(project.Root, results[i].File)
	}

	return results, nil
}

// Init writes a project configuration into args.Dir.
func (w *workflow) Init(args InitArgs) (m.Path, error) {
	format := args.Format
	if format == "" {
		format = "toml"
	}

	if !slices.Contains([]string{"toml", "yaml"}, format) {
		return "", fmt.Errorf("unsupported configuration format %q (want toml or yaml)", format)
	}

	dir, _, err := w.fsAdapter.ResolveRoot(args.Dir)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", args.Dir, err)
	}

	existing, found, err := w.configs.Find(dir)
	if err != nil {
		return "", err
	}

	if found && !args.Force {
		return "", &ConfigExistsError{Path: existing}
	}

	cfg := m.DefaultProjectConfig()
	cfg.Languages = args.Languages
	cfg.Ignore = args.Ignore
	cfg.UseGitignore = !args.NoGitignore

	if _, err := NewLanguages(cfg); err != nil {
		return "", err
	}

	path := w.fsAdapter.JoinPath(string(dir), "marauder."+format)
	if found && existing != path {
		// the other file would shadow the new one on load
		return "", fmt.Errorf("configuration %s uses another format, remove it first", existing)
	}

	if err := w.configs.Save(path, cfg); err != nil {
		return "", err
	}

	w.log().Info("configuration written", "path", path)

	return path, nil
}

// Plan expands expr against the project without changing any file.
func (w *workflow) Plan(path, expr string) ([][]string, error) {
	project, err := w.loader.Load(path)
	if err != nil {
		return nil, err
	}

	return w.orch.Plan(project, expr)
}

// Test runs the command for every configuration and saves the report. The
// report is returned, and saved, even when the run stopped on an error.
func (w *workflow) Test(args TestArgs) (m.RunReport, m.Path, error) {
	project, err := w.loader.Load(args.Path)
	if err != nil {
		return m.RunReport{}, "", err
	}

	report, runErr := w.orch.Run(project, RunOptions{
		Expression: args.Expression,
		Command:    args.Command,
		FailFast:   args.FailFast,
		Progress:   args.Progress,
	})
	if report.ID == "" {
		return report, "", runErr
	}

	saved, err := w.reports.SaveReport(w.reportsDir(project.Root), report)
	if err != nil {
		return report, "", errors.Join(runErr, fmt.Errorf("failed to save report: %w", err))
	}

	return report, saved, runErr
}

// View returns the most recent report of the project containing path.
func (w *workflow) View(path string) (m.RunReport, error) {
	root, err := w.projectRoot(path)
	if err != nil {
		return m.RunReport{}, err
	}

	reports, err := w.reports.LoadReports(w.reportsDir(root))
	if err != nil {
		return m.RunReport{}, err
	}

	if len(reports) == 0 {
		return m.RunReport{}, ErrNoReports
	}

	return reports[len(reports)-1], nil
}

// Languages lists the language profiles enabled for the project at path.
func (w *workflow) Languages(path string) ([]m.LanguageProfile, error) {
	root, err := w.projectRoot(path)
	if err != nil {
		return nil, err
	}

	cfg, cfgPath, err := w.configs.Load(root)
	if err != nil {
		return nil, err
	}

	languages, err := NewLanguages(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", cfgPath, err)
	}

	return languages.All(), nil
}

func (w *workflow) projectRoot(path string) (m.Path, error) {
	root, _, err := w.fsAdapter.ResolveRoot(path)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", path, err)
	}

	info, err := w.fsAdapter.FileInfo(root)
	if err != nil {
		return "", fmt.Errorf("root path error: %w", err)
	}

	return findProjectRoot(w.fsAdapter, root, info.IsDir())
}

// relative shortens path for display. Paths outside root are kept whole.
func (w *workflow) relative(root, path m.Path) m.Path {
	rel, err := w.fsAdapter.RelPath(root, path)
	if err != nil || strings.HasPrefix(string(rel), "..") {
		return path
	}

	return rel
}

func (w *workflow) reportsDir(root m.Path) m.Path {
	return w.fsAdapter.JoinPath(string(root), ReportsDir)
}
