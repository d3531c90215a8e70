package domain

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mouse-blink/marauders/internal/adapter"
	adaptermocks "github.com/mouse-blink/marauders/internal/adapter/mocks"
	"github.com/mouse-blink/marauders/internal/logging"
	m "github.com/mouse-blink/marauders/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type workflowFixture struct {
	workflow Workflow
	reports  *adaptermocks.MockReportStore
	runner   *adaptermocks.MockTestRunnerAdapter
}

func newWorkflowFixture(t *testing.T) workflowFixture {
	t.Helper()

	reports := adaptermocks.NewMockReportStore(t)
	runner := adaptermocks.NewMockTestRunnerAdapter(t)

	wf := NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewConfigStore(),
		reports,
		runner,
		logging.Discard(),
	)

	return workflowFixture{workflow: wf, reports: reports, runner: runner}
}

func TestWorkflow_List(t *testing.T) {
	dir := sampleProject(t)
	f := newWorkflowFixture(t)

	infos, err := f.workflow.List(dir + "/...")
	require.NoError(t, err)

	require.Len(t, infos, 3)
	assert.Equal(t, "add", infos[0].Name)
	assert.Equal(t, m.Path("lib.rs"), infos[0].Path)
	assert.Equal(t, m.Path(filepath.Join("sub", "other.rs")), infos[2].Path)
	assert.Equal(t, "anonymous", infos[2].DisplayName())
}

func TestWorkflow_SetAndUnsetWriteFiles(t *testing.T) {
	dir := sampleProject(t)
	lib := filepath.Join(dir, "lib.rs")
	f := newWorkflowFixture(t)

	result, err := f.workflow.Set(dir+"/...", "add_sub")
	require.NoError(t, err)
	assert.Equal(t, m.Path("lib.rs"), result.File)
	assert.Equal(t, "add_sub", result.To)
	assert.Contains(t, readFile(t, lib), "    /*|| add_sub */\n    a - b\n")

	_, err = f.workflow.Set(dir+"/...", "add_sub")

	var already *VariantAlreadyActiveError
	require.ErrorAs(t, err, &already)

	result, err = f.workflow.Unset(lib, "add_sub")
	require.NoError(t, err)
	assert.Equal(t, m.BaseName, result.To)
	assert.Equal(t, libSource, readFile(t, lib))
}

func TestWorkflow_SetUnknownVariantLeavesFiles(t *testing.T) {
	dir := sampleProject(t)
	f := newWorkflowFixture(t)

	_, err := f.workflow.Set(dir+"/...", "nope")

	var notFound *VariantNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Available, "neg_id")
	assert.Equal(t, libSource, readFile(t, filepath.Join(dir, "lib.rs")))
}

func TestWorkflow_Reset(t *testing.T) {
	dir := sampleProject(t)
	f := newWorkflowFixture(t)

	for _, variant := range []string{"add_mul", "neg_id"} {
		_, err := f.workflow.Set(dir+"/...", variant)
		require.NoError(t, err)
	}

	results, err := f.workflow.Reset(dir + "/...")
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "add_mul", results[0].From)
	assert.Equal(t, "neg_id", results[1].From)
	assert.Equal(t, m.Path("ops.py"), results[1].File)
	assert.Equal(t, libSource, readFile(t, filepath.Join(dir, "lib.rs")))
	assert.Equal(t, opsSource, readFile(t, filepath.Join(dir, "ops.py")))

	results, err = f.workflow.Reset(dir + "/...")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestWorkflow_Init(t *testing.T) {
	dir := t.TempDir()
	f := newWorkflowFixture(t)

	path, err := f.workflow.Init(InitArgs{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(dir, "marauder.toml")), path)

	cfg, cfgPath, err := adapter.NewConfigStore().Load(m.Path(dir))
	require.NoError(t, err)
	assert.Equal(t, path, cfgPath)
	assert.True(t, cfg.UseGitignore)
	assert.Empty(t, cfg.Languages)

	_, err = f.workflow.Init(InitArgs{Dir: dir})

	var exists *ConfigExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, path, exists.Path)

	_, err = f.workflow.Init(InitArgs{
		Dir:         dir,
		Languages:   []string{"rust"},
		Ignore:      []string{"target/**"},
		NoGitignore: true,
		Force:       true,
	})
	require.NoError(t, err)

	cfg, _, err = adapter.NewConfigStore().Load(m.Path(dir))
	require.NoError(t, err)
	assert.Equal(t, []string{"rust"}, cfg.Languages)
	assert.Equal(t, []string{"target/**"}, cfg.Ignore)
	assert.False(t, cfg.UseGitignore)
}

func TestWorkflow_InitYAML(t *testing.T) {
	dir := t.TempDir()
	f := newWorkflowFixture(t)

	path, err := f.workflow.Init(InitArgs{Dir: dir, Format: "yaml", Languages: []string{"python"}})
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(dir, "marauder.yaml")), path)

	cfg, _, err := adapter.NewConfigStore().Load(m.Path(dir))
	require.NoError(t, err)
	assert.Equal(t, []string{"python"}, cfg.Languages)

	_, err = f.workflow.Init(InitArgs{Dir: dir, Format: "toml", Force: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uses another format")
}

func TestWorkflow_InitRejectsInvalidArguments(t *testing.T) {
	dir := t.TempDir()
	f := newWorkflowFixture(t)

	_, err := f.workflow.Init(InitArgs{Dir: dir, Format: "json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported configuration format")

	_, err = f.workflow.Init(InitArgs{Dir: dir, Languages: []string{"cobol"}})

	var unknown *UnknownLanguageError
	require.ErrorAs(t, err, &unknown)

	_, statErr := os.Stat(filepath.Join(dir, "marauder.toml"))
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestWorkflow_Plan(t *testing.T) {
	dir := sampleProject(t)
	f := newWorkflowFixture(t)

	configurations, err := f.workflow.Plan(dir+"/...", "neg * add")
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"neg_id", "add_sub"}, {"neg_id", "add_mul"}}, configurations)
}

func TestWorkflow_TestSavesReport(t *testing.T) {
	dir := sampleProject(t)
	f := newWorkflowFixture(t)
	saved := m.Path(filepath.Join(dir, ReportsDir, "run.yaml"))

	f.runner.EXPECT().Run(m.Path(dir), testCommand).Return(m.CommandResult{ExitCode: 1}, nil).Times(2)
	f.reports.EXPECT().
		SaveReport(m.Path(filepath.Join(dir, ReportsDir)), mock.MatchedBy(func(r m.RunReport) bool {
			return r.Expression == "add" && len(r.Results) == 2
		})).
		Return(saved, nil).
		Once()

	report, path, err := f.workflow.Test(TestArgs{Path: dir + "/...", Expression: "add", Command: testCommand})
	require.NoError(t, err)

	assert.Equal(t, saved, path)
	assert.Equal(t, 2, report.Count(m.StatusFailed))
}

func TestWorkflow_TestNotOnBaseSavesNothing(t *testing.T) {
	dir := sampleProject(t)
	f := newWorkflowFixture(t)

	_, err := f.workflow.Set(dir+"/...", "neg_id")
	require.NoError(t, err)

	report, path, err := f.workflow.Test(TestArgs{Path: dir + "/...", Expression: "add", Command: testCommand})

	var precondition *PreconditionError
	require.ErrorAs(t, err, &precondition)
	assert.Empty(t, report.ID)
	assert.Empty(t, path)
	f.reports.AssertNotCalled(t, "SaveReport", mock.Anything, mock.Anything)
}

func TestWorkflow_TestSaveFailure(t *testing.T) {
	dir := sampleProject(t)
	f := newWorkflowFixture(t)

	f.runner.EXPECT().Run(m.Path(dir), testCommand).Return(m.CommandResult{}, nil).Once()
	f.reports.EXPECT().SaveReport(mock.Anything, mock.Anything).Return(m.Path(""), errors.New("read-only")).Once()

	report, path, err := f.workflow.Test(TestArgs{Path: dir + "/...", Expression: "neg_id", Command: testCommand})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save report: read-only")
	assert.Empty(t, path)
	require.Len(t, report.Results, 1)
	assert.Equal(t, m.StatusPassed, report.Results[0].Status)
}

func TestWorkflow_ViewReturnsLatestReport(t *testing.T) {
	dir := sampleProject(t)
	f := newWorkflowFixture(t)

	older := m.RunReport{ID: "older"}
	latest := m.RunReport{ID: "latest"}
	f.reports.EXPECT().LoadReports(m.Path(filepath.Join(dir, ReportsDir))).Return([]m.RunReport{older, latest}, nil)

	report, err := f.workflow.View(filepath.Join(dir, "lib.rs"))
	require.NoError(t, err)
	assert.Equal(t, "latest", report.ID)
}

func TestWorkflow_ViewWithoutReports(t *testing.T) {
	dir := sampleProject(t)
	f := newWorkflowFixture(t)

	f.reports.EXPECT().LoadReports(mock.Anything).Return(nil, nil)

	_, err := f.workflow.View(dir + "/...")
	require.ErrorIs(t, err, ErrNoReports)
}

func TestWorkflow_Languages(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"marauder.toml": plainConfig + "languages = [\"python\", \"rust\"]\n",
	})
	f := newWorkflowFixture(t)

	profiles, err := f.workflow.Languages(dir)
	require.NoError(t, err)

	require.Len(t, profiles, 2)
	assert.Equal(t, "python", profiles[0].Name)
	assert.Equal(t, "rust", profiles[1].Name)
}
