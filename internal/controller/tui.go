package controller

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/patchall/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
// Action lines scroll above a live status line.
type TUI struct {
	output  io.Writer
	config  Config
	program *tea.Program
	done    chan struct{}
	started bool
	mu      sync.Mutex
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, options ...Option) *TUI {
	return &TUI{output: output, config: newConfig(options...)}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start() error {
	return t.startWithModel(newSweepModel(t.config))
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	t.done = make(chan struct{})
	t.started = true

	go func() {
		defer close(t.done)

		_, _ = t.program.Run()
	}()

	return nil
}

func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if !started {
		_ = t.Start()
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	started := t.started
	t.mu.Unlock()

	if !started || program == nil {
		return
	}

	program.Send(msg)
}

// Wait blocks until the program exits.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done
}

// Close stops the program and waits for the final frame to be written.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	t.Wait()
}

// DisplayLoader shows the loader in the status line.
func (t *TUI) DisplayLoader(loader m.Path, dryRun bool) {
	t.ensureStarted()
	t.send(loaderMsg{loader: loader, dryRun: dryRun})
}

// DisplayOutcome prints the action or error for one file.
func (t *TUI) DisplayOutcome(outcome m.Outcome) {
	t.send(outcomeMsg{outcome: outcome})
}

// DisplaySummary renders the final summary and ends the program.
func (t *TUI) DisplaySummary(summary m.Summary) {
	t.send(summaryMsg{summary: summary})
	t.Wait()
}
