package model

import "time"

// TestStatus is the outcome of running the test command for one configuration.
type TestStatus string

const (
	// StatusPassed means the test command exited with status 0.
	StatusPassed TestStatus = "passed"
	// StatusFailed means the test command exited with a non-zero status.
	StatusFailed TestStatus = "failed"
	// StatusError means the command could not be run or files could not be written.
	StatusError TestStatus = "error"
	// StatusSkipped means the configuration could not be applied, e.g. two
	// variants of the same variation were requested together.
	StatusSkipped TestStatus = "skipped"
)

// CommandResult is what the process collaborator returns for one command.
type CommandResult struct {
	ExitCode int
	Output   string
}

// ConfigurationResult records one tested combination of variants.
type ConfigurationResult struct {
	Variants []string      `yaml:"variants" json:"variants"`
	Status   TestStatus    `yaml:"status" json:"status"`
	ExitCode int           `yaml:"exit_code" json:"exit_code"`
	Output   string        `yaml:"output,omitempty" json:"output,omitempty"`
	Error    string        `yaml:"error,omitempty" json:"error,omitempty"`
	Duration time.Duration `yaml:"duration" json:"duration"`
}

// RunReport is the persisted outcome of one `test` invocation.
type RunReport struct {
	ID         string                `yaml:"id" json:"id"`
	Expression string                `yaml:"expression" json:"expression"`
	Command    string                `yaml:"command" json:"command"`
	Root       Path                  `yaml:"root" json:"root"`
	Started    time.Time             `yaml:"started" json:"started"`
	Finished   time.Time             `yaml:"finished" json:"finished"`
	Results    []ConfigurationResult `yaml:"results" json:"results"`
}

// Count returns how many results have the given status.
func (r RunReport) Count(status TestStatus) int {
	n := 0

	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}

	return n
}
