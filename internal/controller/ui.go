// Package controller provides the output adapters of the marauders CLI:
// plain tables for pipes and a Bubble Tea interface for terminals.
package controller

import (
	m "github.com/mouse-blink/marauders/internal/model"
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	title string
}

// WithTitle names the run shown while configurations are tested, usually
// the selection expression.
func WithTitle(title string) StartOption {
	return func(c *StartConfig) {
		c.title = title
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines how command results are presented. A UI also receives the
// progress of a test run between Start and Close.
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	ConfigurationStarted(index, total int, variants []string)
	ConfigurationCompleted(index, total int, result m.ConfigurationResult)
	DisplayVariations(infos []m.VariationInfo) error
	DisplaySetResults(results []m.SetResult) error
	DisplayPlan(configurations [][]string) error
	DisplayReport(report m.RunReport) error
	DisplayLanguages(profiles []m.LanguageProfile) error
}
