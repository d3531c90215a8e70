package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"

	m "github.com/mouse-blink/marauders/internal/model"
)

// TestRunnerAdapter runs the user supplied test command.
type TestRunnerAdapter interface {
	// Run executes command through the platform shell inside dir. A command
	// that starts and exits with a non-zero status is not an error; its exit
	// code is reported in the result.
	Run(dir m.Path, command string) (m.CommandResult, error)
}

// LocalTestRunnerAdapter executes commands with os/exec.
type LocalTestRunnerAdapter struct {
	stream io.Writer
}

// NewTestRunnerAdapter constructs a TestRunnerAdapter. When stream is not
// nil the command output is copied to it while the command runs.
func NewTestRunnerAdapter(stream io.Writer) *LocalTestRunnerAdapter {
	return &LocalTestRunnerAdapter{stream: stream}
}

// Run executes command and captures its combined output.
func (r *LocalTestRunnerAdapter) Run(dir m.Path, command string) (m.CommandResult, error) {
	if command == "" {
		return m.CommandResult{}, errors.New("empty test command")
	}

	cmd := shellCommand(command)
	cmd.Dir = string(dir)

	var output bytes.Buffer

	var w io.Writer = &output
	if r.stream != nil {
		w = io.MultiWriter(&output, r.stream)
	}

	cmd.Stdout = w
	cmd.Stderr = w

	err := cmd.Run()
	result := m.CommandResult{Output: output.String()}

	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	return result, fmt.Errorf("failed to run %q: %w", command, err)
}

func shellCommand(command string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		// #nosec G204 - the test command is supplied by the user on purpose
		return exec.Command("cmd", "/C", command)
	}

	// #nosec G204 - the test command is supplied by the user on purpose
	return exec.Command("sh", "-c", command)
}
