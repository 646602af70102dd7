package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/patchall/internal/model"
)

var (
	actionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dryRunStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	counterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// sweepModel is the Bubble Tea model shown while a sweep runs.
type sweepModel struct {
	width   int
	config  Config
	spinner spinner.Model
	loader  m.Path
	dryRun  bool
	current m.Path
	summary m.Summary
	done    bool
}

func newSweepModel(config Config) sweepModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = counterStyle

	return sweepModel{config: config, spinner: s}
}

func (sm sweepModel) Init() tea.Cmd {
	return sm.spinner.Tick
}

func (sm sweepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loaderMsg:
		sm.loader = msg.loader
		sm.dryRun = msg.dryRun

		return sm, nil

	case outcomeMsg:
		sm.current = msg.outcome.Path
		sm.summary.Add(msg.outcome)

		if lines := outcomeLines(msg.outcome); len(lines) > 0 {
			return sm, tea.Println(strings.Join(lines, "\n"))
		}

		return sm, nil

	case summaryMsg:
		sm.summary = msg.summary
		sm.done = true

		return sm, tea.Quit

	case tea.WindowSizeMsg:
		sm.width = msg.Width
		return sm, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		sm.spinner, cmd = sm.spinner.Update(msg)

		return sm, cmd
	}

	return sm, nil
}

func (sm sweepModel) View() string {
	if sm.done {
		return sm.finalView()
	}

	var b strings.Builder

	b.WriteString(sm.spinner.View())
	b.WriteString(" ")

	if sm.dryRun {
		b.WriteString(dryRunStyle.Render("dry run"))
		b.WriteString(" ")
	}

	fmt.Fprintf(&b, "%s scanned  %s patched  %s errors",
		counterStyle.Render(fmt.Sprintf("%d", sm.summary.Scanned)),
		counterStyle.Render(fmt.Sprintf("%d", sm.summary.Patched)),
		counterStyle.Render(fmt.Sprintf("%d", sm.summary.Failed)),
	)

	if sm.current != "" {
		current := string(sm.current)
		if sm.width > 0 {
			current = truncatePath(current, sm.width-lipgloss.Width(b.String())-2)
		}

		if current != "" {
			b.WriteString("  ")
			b.WriteString(dimStyle.Render(current))
		}
	}

	b.WriteString("\n")

	return b.String()
}

func (sm sweepModel) finalView() string {
	var b strings.Builder

	if line := finishedLine(sm.summary); line != "" {
		b.WriteString(errorStyle.Render(line))
		b.WriteString("\n")
	}

	if sm.config.stats {
		b.WriteString(statsTable(sm.loader, sm.dryRun, sm.summary))
	}

	return b.String()
}

func outcomeLines(outcome m.Outcome) []string {
	var lines []string

	if line := outcome.Action.Describe(outcome.Path); line != "" {
		if outcome.DryRun {
			line = dryRunStyle.Render("[dry run]") + " " + line
		}

		lines = append(lines, actionStyle.Render(line))
	}

	if outcome.Err != nil {
		lines = append(lines, errorStyle.Render(outcome.Err.Error()))
	}

	return lines
}

// truncatePath shortens text to width cells, keeping the end of the path.
func truncatePath(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	runes := []rune(text)
	start := len(runes)
	kept := 0

	for start > 0 {
		rWidth := lipgloss.Width(string(runes[start-1]))
		if kept+rWidth > width-1 {
			break
		}

		kept += rWidth
		start--
	}

	return ellipsis + string(runes[start:])
}
