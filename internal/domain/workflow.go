// Package domain holds the patch decision logic of patchall.
package domain

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/gobwas/glob"
	"github.com/mouse-blink/patchall/internal/adapter"
	"github.com/mouse-blink/patchall/internal/controller"
	"github.com/mouse-blink/patchall/internal/logging"
	m "github.com/mouse-blink/patchall/internal/model"
)

// SweepArgs configures a single run.
type SweepArgs struct {
	Roots  []m.Path
	DryRun bool
	// Exclude patterns are matched against the full path and the base name.
	Exclude []glob.Glob
	// Loader overrides self-resolution when set.
	Loader m.Path
}

// Workflow drives a sweep over directory trees.
type Workflow interface {
	Sweep(args SweepArgs) (m.Summary, error)
}

type workflow struct {
	fs         adapter.FileSystemAdapter
	ui         controller.UI
	resolver   LoaderResolver
	classifier Classifier
	elf        ElfPatcher
	shebang    ShebangRewriter
	logger     *logging.Logger
	now        func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(fs adapter.FileSystemAdapter, tools adapter.ToolAdapter, ui controller.UI, logger *logging.Logger) Workflow {
	resolver := NewLoaderResolver(tools, logger)

	return &workflow{
		fs:         fs,
		ui:         ui,
		resolver:   resolver,
		classifier: NewClassifier(fs),
		elf:        NewElfPatcher(resolver, fs, tools, logger),
		shebang:    NewShebangRewriter(fs, logger),
		logger:     logger,
		now:        time.Now,
	}
}

// Sweep resolves the loader once, then walks every root in order and patches
// what needs patching. Per-file problems are reported and counted; only a
// loader resolution failure is returned as an error.
func (w *workflow) Sweep(args SweepArgs) (m.Summary, error) {
	summary := m.Summary{Start: w.now()}

	loader, err := w.loader(args.Loader)
	if err != nil {
		return summary, err
	}

	if err := w.ui.Start(); err != nil {
		return summary, fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	w.ui.DisplayLoader(loader, args.DryRun)

	for _, root := range args.Roots {
		w.logger.Debugf("walking %s", root)

		err := w.fs.Walk(root, func(candidate m.Candidate, walkErr error) error {
			if walkErr != nil {
				w.record(&summary, m.Outcome{
					Path:   candidate.Path,
					Kind:   m.KindUninteresting,
					Action: m.NoAction(),
					DryRun: args.DryRun,
					Err:    m.NewFailure(m.FailureTraversal, candidate.Path, walkErr),
				})

				return nil
			}

			if isExcluded(args.Exclude, candidate.Path) {
				w.logger.Debugf("skip %s: excluded", candidate.Path)

				summary.Excluded++

				if candidate.IsDir() {
					return fs.SkipDir
				}

				return nil
			}

			if candidate.IsDir() {
				return nil
			}

			w.record(&summary, w.process(candidate, loader, args.DryRun))

			return nil
		})
		if err != nil {
			w.record(&summary, m.Outcome{
				Path:   root,
				Kind:   m.KindUninteresting,
				Action: m.NoAction(),
				DryRun: args.DryRun,
				Err:    m.NewFailure(m.FailureTraversal, root, err),
			})
		}
	}

	summary.End = w.now()
	w.ui.DisplaySummary(summary)

	return summary, nil
}

func (w *workflow) loader(override m.Path) (m.Path, error) {
	if override == "" {
		return w.resolver.ResolveSelf()
	}

	if !w.fs.Exists(override) {
		return "", fmt.Errorf("loader %s: %w", override, fs.ErrNotExist)
	}

	return override, nil
}

func (w *workflow) process(candidate m.Candidate, loader m.Path, dryRun bool) m.Outcome {
	kind, err := w.classifier.Classify(candidate)
	if err != nil {
		return m.Outcome{Path: candidate.Path, Kind: kind, Action: m.NoAction(), DryRun: dryRun, Err: err}
	}

	switch kind {
	case m.KindElfBinary:
		return w.elf.Patch(candidate.Path, loader, dryRun)
	case m.KindShebangScript:
		return w.shebang.Patch(candidate.Path, dryRun)
	case m.KindUninteresting:
	}

	return m.Outcome{Path: candidate.Path, Kind: kind, Action: m.NoAction(), DryRun: dryRun}
}

func (w *workflow) record(summary *m.Summary, outcome m.Outcome) {
	summary.Add(outcome)
	w.ui.DisplayOutcome(outcome)
}

func isExcluded(patterns []glob.Glob, path m.Path) bool {
	if len(patterns) == 0 {
		return false
	}

	base := path.Base()
	for _, p := range patterns {
		if p.Match(string(path)) || p.Match(base) {
			return true
		}
	}

	return false
}
