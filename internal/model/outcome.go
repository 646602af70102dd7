package model

import (
	"fmt"
	"time"
)

// FailureKind names the stage a per-file error came from.
type FailureKind string

// Per-file failure kinds. None of them stop the sweep.
const (
	FailureTraversal      FailureKind = "traversal"
	FailureClassification FailureKind = "classification"
	FailureElfPatch       FailureKind = "elf-patch"
	FailureShebangRewrite FailureKind = "shebang-rewrite"
)

// Failure is a per-file error tagged with the stage that produced it.
type Failure struct {
	Kind FailureKind
	Path Path
	Err  error
}

// NewFailure wraps err as a Failure for path.
func NewFailure(kind FailureKind, path Path, err error) *Failure {
	return &Failure{Kind: kind, Path: path, Err: err}
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s %q: %v", f.Kind, f.Path, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Outcome is the result of processing a single candidate.
type Outcome struct {
	Path   Path
	Kind   FileKind
	Action PatchAction
	DryRun bool
	// Applied is true once the rewrite was actually performed on disk.
	Applied bool
	Err     error
}

// Failed reports whether the outcome carries an error.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Changed reports whether a rewrite was decided for the file, applied or not.
func (o Outcome) Changed() bool {
	return !o.Action.IsNone()
}

// Summary tallies the outcomes of a sweep.
type Summary struct {
	Scanned  int
	Excluded int
	Elf      int
	Shebang  int
	Patched  int
	Failed   int
	Start    time.Time
	End      time.Time
}

// Add folds one outcome into the summary.
func (s *Summary) Add(o Outcome) {
	s.Scanned++

	switch o.Kind {
	case KindElfBinary:
		s.Elf++
	case KindShebangScript:
		s.Shebang++
	case KindUninteresting:
	}

	if o.Failed() {
		s.Failed++
		return
	}

	if o.Changed() {
		s.Patched++
	}
}

// Duration returns the wall time between Start and End.
func (s Summary) Duration() time.Duration {
	if s.End.Before(s.Start) {
		return 0
	}

	return s.End.Sub(s.Start)
}

func (s Summary) String() string {
	return fmt.Sprintf("%s scanned, %d excluded, %d patched, %s",
		pluralize(s.Scanned, "file", "files"),
		s.Excluded,
		s.Patched,
		pluralize(s.Failed, "error", "errors"),
	)
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}

	return fmt.Sprintf("%d %s", n, plural)
}
