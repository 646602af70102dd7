package controller

import (
	"bytes"
	"fmt"
	"time"

	m "github.com/mouse-blink/patchall/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using the cobra command's output streams.
// Actions go to stdout, per-file errors to stderr.
type SimpleUI struct {
	cmd    *cobra.Command
	config Config
	loader m.Path
	dryRun bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, options ...Option) *SimpleUI {
	return &SimpleUI{cmd: cmd, config: newConfig(options...)}
}

// Start initializes the UI.
func (s *SimpleUI) Start() error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// DisplayLoader records the loader for the statistics table.
func (s *SimpleUI) DisplayLoader(loader m.Path, dryRun bool) {
	s.loader = loader
	s.dryRun = dryRun
}

// DisplayOutcome prints the decided action and any error for one file.
func (s *SimpleUI) DisplayOutcome(outcome m.Outcome) {
	if line := outcome.Action.Describe(outcome.Path); line != "" {
		s.printf("%s\n", line)
	}

	if outcome.Err != nil {
		s.errorf("%v\n", outcome.Err)
	}
}

// DisplaySummary prints the error count when there were errors and the
// statistics table when requested. A clean run prints nothing.
func (s *SimpleUI) DisplaySummary(summary m.Summary) {
	if line := finishedLine(summary); line != "" {
		s.printf("%s\n", line)
	}

	if s.config.stats {
		s.printf("\n%s", statsTable(s.loader, s.dryRun, summary))
	}
}

func statsTable(loader m.Path, dryRun bool, summary m.Summary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	table.Append([]string{"Loader", string(loader)})
	table.Append([]string{"Dry run", fmt.Sprintf("%t", dryRun)})
	table.Append([]string{"Scanned", fmt.Sprintf("%d", summary.Scanned)})
	table.Append([]string{"Excluded", fmt.Sprintf("%d", summary.Excluded)})
	table.Append([]string{"ELF binaries", fmt.Sprintf("%d", summary.Elf)})
	table.Append([]string{"Scripts", fmt.Sprintf("%d", summary.Shebang)})
	table.Append([]string{"Patched", fmt.Sprintf("%d", summary.Patched)})
	table.Append([]string{"Errors", fmt.Sprintf("%d", summary.Failed)})
	table.SetFooter([]string{"Duration", summary.Duration().Round(time.Millisecond).String()})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
