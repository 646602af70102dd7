// Package controller provides output adapters for displaying sweep results.
package controller

import (
	"fmt"

	m "github.com/mouse-blink/patchall/internal/model"
)

// Option is a functional option for NewUI.
type Option func(*Config)

// Config holds configuration shared by the UI implementations.
type Config struct {
	stats bool
}

// WithStats appends a statistics table to the final summary.
func WithStats() Option {
	return func(c *Config) {
		c.stats = true
	}
}

func newConfig(options ...Option) Config {
	var c Config
	for _, o := range options {
		o(&c)
	}

	return c
}

// UI defines the interface for reporting sweep progress.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start() error
	Close()
	DisplayLoader(loader m.Path, dryRun bool)
	DisplayOutcome(outcome m.Outcome)
	DisplaySummary(summary m.Summary)
}

func finishedLine(summary m.Summary) string {
	if summary.Failed == 0 {
		return ""
	}

	return fmt.Sprintf("Finished. %d errors occurred", summary.Failed)
}
