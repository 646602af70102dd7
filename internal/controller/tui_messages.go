package controller

import (
	m "github.com/mouse-blink/patchall/internal/model"
)

// Message types.
type loaderMsg struct {
	loader m.Path
	dryRun bool
}

type outcomeMsg struct {
	outcome m.Outcome
}

type summaryMsg struct {
	summary m.Summary
}
