// Package controller provides output adapters for displaying paramfix results.
package controller

import (
	m "github.com/mouse-blink/paramfix/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeFix StartMode = iota
	ModeList
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode  StartMode
	total int
}

// WithFixMode sets the UI to fix mode with the number of files to process.
func WithFixMode(total int) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeFix
		c.total = total
	}
}

// WithListMode sets the UI to candidate listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeFix}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for reporting a run.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	// Advance marks one file as processed. It may be called concurrently.
	Advance()
	DisplayResult(result m.FileResult)
	DisplaySummary(summary m.Summary)
	DisplayCandidates(candidates []m.Candidate) error
}
