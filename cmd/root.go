// Package cmd provides the root command and CLI setup for patchall.
package cmd

import (
	"os"

	"github.com/mouse-blink/patchall/internal/adapter"
	"github.com/mouse-blink/patchall/internal/controller"
	"github.com/mouse-blink/patchall/internal/domain"
	"github.com/mouse-blink/patchall/internal/logging"
	m "github.com/mouse-blink/patchall/internal/model"
	"github.com/spf13/cobra"
)

// workflow is built from the flags on each run unless a test sets it.
var workflow domain.Workflow

var dryRunFlag bool
var verboseFlag bool
var statsFlag bool
var plainFlag bool
var loaderFlag string
var lddFlag string
var patchelfFlag string
var excludeFlag *globListValue

const rootLongDescription = `Patchall rewrites executables so they run on hosts without the
conventional /lib64 and /usr layout.

For every executable found under the given directories:
  - ELF binaries whose recorded dynamic loader does not exist are repointed
    at the loader patchall itself runs with (via patchelf)
  - scripts starting with #!/usr/..., #!/bin/... and similar are rewritten
    to #!/usr/bin/env <name> <args>

Scripts using #!/bin/sh or #!/usr/bin/env are left alone. Nothing is printed
for a clean run; per-file errors are reported and counted.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	excludeFlag = newGlobListValue()

	cmd := &cobra.Command{
		Use:          "patchall DIR...",
		Short:        "Repoint ELF interpreters and script shebangs for non-FHS hosts",
		Long:         rootLongDescription,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			wf := workflow
			if wf == nil {
				wf = buildWorkflow(cmd)
			}

			_, err := wf.Sweep(domain.SweepArgs{
				Roots:   parsePaths(args),
				DryRun:  dryRunFlag,
				Exclude: excludeFlag.Globs(),
				Loader:  m.Path(loaderFlag),
			})

			return err
		},
	}
	cmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "d", false, "report what would be patched without modifying any file")
	cmd.Flags().VarP(excludeFlag, "exclude", "x", "skip paths or file names matching a glob (can be repeated)")
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "log skipped files and tool invocations")
	cmd.Flags().BoolVar(&statsFlag, "stats", false, "print a statistics table when finished")
	cmd.Flags().BoolVar(&plainFlag, "plain", false, "plain output even when stdout is a terminal")
	cmd.Flags().StringVar(&loaderFlag, "loader", "", "use this dynamic loader instead of the one patchall runs with")
	cmd.Flags().StringVar(&lddFlag, "ldd", adapter.DefaultLddTool, "dependency lister to run")
	cmd.Flags().StringVar(&patchelfFlag, "patchelf", adapter.DefaultPatchelfTool, "ELF patch tool to run")

	return cmd
}

func buildWorkflow(cmd *cobra.Command) domain.Workflow {
	level := logging.LevelWarning
	if verboseFlag {
		level = logging.LevelDebug
	}

	logger := logging.NewLogger(cmd.ErrOrStderr(), level)

	var options []controller.Option
	if statsFlag {
		options = append(options, controller.WithStats())
	}

	ui := controller.NewUI(cmd, !plainFlag && controller.IsTTY(cmd.OutOrStdout()), options...)

	return domain.NewWorkflow(
		adapter.NewLocalFileSystemAdapter(),
		adapter.NewLocalToolAdapter(lddFlag, patchelfFlag, logger),
		ui,
		logger,
	)
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
